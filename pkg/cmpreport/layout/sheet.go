// Package layout maps a comparison record onto a two-row spreadsheet grid.
package layout

import "github.com/mbakisahin/sisecam-summarize-3/pkg/cmpreport/models"

// Sheet is the set of spreadsheet operations the layout engine issues.
// Columns and rows are 1-based.
type Sheet interface {
	SetValue(col, row int, value string) error
	SetStyle(col, row int, style models.Style) error
	Merge(area models.Range) error
	SetHyperlink(col, row int, target string) error
	AddNote(col, row int, author, text string) error
	SetColWidth(col int, width float64) error
}

var _ Sheet = (*models.Grid)(nil)
