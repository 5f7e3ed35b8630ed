package layout

import (
	"fmt"

	"golang.org/x/text/language"
)

// Labels holds the literal texts written into a report.
type Labels struct {
	Directorate    string
	Keyword        string
	Date           string
	Source         string
	KeyDifferences string
	// SimilarDocument is a format string taking the 1-based neighbor index.
	SimilarDocument string
	// SourceLink is the visible text of the source document link.
	SourceLink string
	// NeighborLink is the visible text of a neighbor document link.
	NeighborLink string
	// Placeholder stands in for text moved into a note.
	Placeholder string
	// Missing replaces absent metadata values.
	Missing string
	// DefaultDirectorate is used when the record carries no directorate.
	DefaultDirectorate string
	// KeyDifferencesAuthor and ComparisonAuthor are the note authors.
	KeyDifferencesAuthor string
	ComparisonAuthor     string
}

// EnglishLabels returns the English label set.
func EnglishLabels() Labels {
	return Labels{
		Directorate:          "Directorate",
		Keyword:              "Keyword",
		Date:                 "Date",
		Source:               "Source",
		KeyDifferences:       "Key Differences",
		SimilarDocument:      "Similar Document %d",
		SourceLink:           "Original Document",
		NeighborLink:         "Link",
		Placeholder:          "...",
		Missing:              "N/A",
		DefaultDirectorate:   "Environment",
		KeyDifferencesAuthor: "Key Differences",
		ComparisonAuthor:     "Comparison",
	}
}

// TurkishLabels returns the Turkish label set.
func TurkishLabels() Labels {
	l := EnglishLabels()
	l.Directorate = "İlgili Direktörlük"
	l.Source = "Kaynak"
	l.SimilarDocument = "Benzer Doküman %d"
	l.DefaultDirectorate = "Çevre"
	return l
}

var (
	supportedLanguages = []language.Tag{language.English, language.Turkish}
	labelSets          = []func() Labels{EnglishLabels, TurkishLabels}
	languageMatcher    = language.NewMatcher(supportedLanguages)
)

// LabelsFor returns the label set best matching the given BCP 47 language
// preferences (e.g. "tr-TR", "en"). Unknown or empty input yields English.
func LabelsFor(lang ...string) Labels {
	_, idx := language.MatchStrings(languageMatcher, lang...)
	return labelSets[idx]()
}

// Headers returns the five fixed column headers.
func (l Labels) Headers() [FixedColumns]string {
	return [FixedColumns]string{l.Directorate, l.Keyword, l.Date, l.Source, l.KeyDifferences}
}

// NeighborHeader returns the merged header text of the i-th neighbor block.
func (l Labels) NeighborHeader(i int) string {
	return fmt.Sprintf(l.SimilarDocument, i)
}

// orMissing returns s, or the missing-value placeholder when s is empty.
func (l Labels) orMissing(s string) string {
	if s == "" {
		return l.Missing
	}
	return s
}
