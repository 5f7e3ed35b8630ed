// Package models defines data structures for comparison report rendering.
package models

// ReportMetadata is a single comparison record: a source document, the
// neighbor documents it was compared against and the comparison text.
type ReportMetadata struct {
	// Directorate is the categorical label shown in the first column.
	Directorate string `json:"directorate,omitempty" yaml:"directorate,omitempty"`
	// Keyword is the search keyword that produced the source document.
	Keyword string `json:"keyword,omitempty" yaml:"keyword,omitempty"`
	// Date is the document date, kept verbatim.
	Date string `json:"date,omitempty" yaml:"date,omitempty"`
	// URL links to the source document.
	URL string `json:"url,omitempty" yaml:"url,omitempty"`
	// CombinedComparison summarizes the differences against all neighbors.
	CombinedComparison string `json:"combined_comparison,omitempty" yaml:"combined_comparison,omitempty"`
	// NeighborURLs links to each neighbor document, in column order.
	NeighborURLs []string `json:"neighbor_urls,omitempty" yaml:"neighbor_urls,omitempty"`
	// IndividualComparisons holds the comparison text for each neighbor,
	// index-aligned with NeighborURLs.
	IndividualComparisons []string `json:"individual_comparisons,omitempty" yaml:"individual_comparisons,omitempty"`
}

// NeighborCount returns the number of neighbor blocks that pair a URL with a
// comparison text.
func (m *ReportMetadata) NeighborCount() int {
	return min(len(m.NeighborURLs), len(m.IndividualComparisons))
}

// Aligned reports whether NeighborURLs and IndividualComparisons have the
// same length.
func (m *ReportMetadata) Aligned() bool {
	return len(m.NeighborURLs) == len(m.IndividualComparisons)
}

// Neighbor is one neighbor document paired with its comparison text.
type Neighbor struct {
	// Index is the 1-based neighbor position.
	Index int
	// URL links to the neighbor document.
	URL string
	// Comparison is the raw comparison text.
	Comparison string
}

// Neighbors pairs URLs and comparisons by position, stopping at the shorter
// sequence.
func (m *ReportMetadata) Neighbors() []Neighbor {
	n := m.NeighborCount()
	out := make([]Neighbor, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, Neighbor{
			Index:      i + 1,
			URL:        m.NeighborURLs[i],
			Comparison: m.IndividualComparisons[i],
		})
	}
	return out
}
