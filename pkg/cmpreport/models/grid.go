package models

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidCoordinates indicates a row or column index below 1.
var ErrInvalidCoordinates = errors.New("invalid cell coordinates")

// ErrOverlappingMerge indicates a merge range overlapping an existing one.
var ErrOverlappingMerge = errors.New("merge range overlaps an existing merge")

// CellRef addresses a cell by 1-based column and row.
type CellRef struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// Note is an annotation attached to a cell.
type Note struct {
	// Author is the note author shown by spreadsheet applications.
	Author string `json:"author"`
	// Text is the note body.
	Text string `json:"text"`
}

// Cell is a single laid-out cell.
type Cell struct {
	Value string `json:"value"`
	// Link is the hyperlink target, empty when the cell is not linked.
	Link  string `json:"link,omitempty"`
	Note  *Note  `json:"note,omitempty"`
	Style *Style `json:"style,omitempty"`
}

// Grid is an in-memory layout grid. It records the same operations a
// spreadsheet writer receives and is used for previews and tests.
type Grid struct {
	Cells     map[CellRef]*Cell `json:"-"`
	Merges    []Range           `json:"merges,omitempty"`
	ColWidths map[int]float64   `json:"col_widths,omitempty"`
}

// NewGrid creates an empty grid.
func NewGrid() *Grid {
	return &Grid{
		Cells:     make(map[CellRef]*Cell),
		ColWidths: make(map[int]float64),
	}
}

func (g *Grid) cell(col, row int) (*Cell, error) {
	if col < 1 || row < 1 {
		return nil, fmt.Errorf("%w: column %d, row %d", ErrInvalidCoordinates, col, row)
	}
	ref := CellRef{Col: col, Row: row}
	c, ok := g.Cells[ref]
	if !ok {
		c = &Cell{}
		g.Cells[ref] = c
	}
	return c, nil
}

// SetValue sets the displayed value of a cell.
func (g *Grid) SetValue(col, row int, value string) error {
	c, err := g.cell(col, row)
	if err != nil {
		return err
	}
	c.Value = value
	return nil
}

// SetStyle replaces the style of a cell.
func (g *Grid) SetStyle(col, row int, style Style) error {
	c, err := g.cell(col, row)
	if err != nil {
		return err
	}
	c.Style = &style
	return nil
}

// Merge records a merged range.
func (g *Grid) Merge(area Range) error {
	if !area.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidCoordinates, area)
	}
	for _, m := range g.Merges {
		if m.Overlaps(area) {
			return fmt.Errorf("%w: %s and %s", ErrOverlappingMerge, m, area)
		}
	}
	g.Merges = append(g.Merges, area)
	return nil
}

// SetHyperlink sets the hyperlink target of a cell.
func (g *Grid) SetHyperlink(col, row int, target string) error {
	c, err := g.cell(col, row)
	if err != nil {
		return err
	}
	c.Link = target
	return nil
}

// AddNote attaches a note to a cell, replacing any previous note.
func (g *Grid) AddNote(col, row int, author, text string) error {
	c, err := g.cell(col, row)
	if err != nil {
		return err
	}
	c.Note = &Note{Author: author, Text: text}
	return nil
}

// SetColWidth sets the width of a column in character units.
func (g *Grid) SetColWidth(col int, width float64) error {
	if col < 1 {
		return fmt.Errorf("%w: column %d", ErrInvalidCoordinates, col)
	}
	g.ColWidths[col] = width
	return nil
}

// Cell returns the cell at (col, row) or nil when nothing was written there.
func (g *Grid) Cell(col, row int) *Cell {
	return g.Cells[CellRef{Col: col, Row: row}]
}

// Rows returns the highest row index holding a cell.
func (g *Grid) Rows() int {
	n := 0
	for ref := range g.Cells {
		n = max(n, ref.Row)
	}
	return n
}

// Cols returns the highest column index holding a cell in the given row.
func (g *Grid) Cols(row int) int {
	n := 0
	for ref := range g.Cells {
		if ref.Row == row {
			n = max(n, ref.Col)
		}
	}
	return n
}

// MergeAt returns the merged range whose top-left cell is (col, row).
func (g *Grid) MergeAt(col, row int) (Range, bool) {
	for _, m := range g.Merges {
		if m.C1 == col && m.R1 == row {
			return m, true
		}
	}
	return Range{}, false
}

// Covered reports whether (col, row) is hidden by a merge, that is, inside a
// merged range but not its top-left cell.
func (g *Grid) Covered(col, row int) bool {
	for _, m := range g.Merges {
		if m.Contains(col, row) && (m.C1 != col || m.R1 != row) {
			return true
		}
	}
	return false
}

// Notes returns all noted cells ordered by row, then column.
func (g *Grid) Notes() []CellRef {
	var refs []CellRef
	for ref, c := range g.Cells {
		if c.Note != nil {
			refs = append(refs, ref)
		}
	}
	sort.Slice(refs, func(i, j int) bool {
		if refs[i].Row != refs[j].Row {
			return refs[i].Row < refs[j].Row
		}
		return refs[i].Col < refs[j].Col
	})
	return refs
}
