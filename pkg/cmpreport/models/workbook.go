package models

// CellRow represents a single row of cells with optional hyperlinks.
type CellRow struct {
	// R is the row index (1-based).
	R int `json:"r"`
	// C maps column index (string) to cell value.
	C map[string]string `json:"c"`
	// Links maps column index to hyperlink URL (optional).
	Links map[string]string `json:"links,omitempty"`
}

// CellNote is a note found on a sheet.
type CellNote struct {
	// Cell is the cell name (e.g. "E2").
	Cell string `json:"cell"`
	// R is the row index (1-based).
	R int `json:"r"`
	// C is the column index (1-based).
	C int `json:"c"`
	// Author is the note author.
	Author string `json:"author,omitempty"`
	// Text is the note body without the author prefix.
	Text string `json:"text"`
}

// SheetData represents the read-back content of a single sheet.
type SheetData struct {
	// Name is the sheet name.
	Name string `json:"name"`
	// Rows contains non-empty rows with cell values and links.
	Rows []CellRow `json:"rows,omitempty"`
	// Notes contains cell notes ordered by row, then column.
	Notes []CellNote `json:"notes,omitempty"`
	// Merges contains merged cell ranges.
	Merges []Range `json:"merges,omitempty"`
	// ColWidths maps column name to width for every used column.
	ColWidths map[string]float64 `json:"col_widths,omitempty"`
	// UsedRange is the bounding range of non-empty cells (e.g. "A1:J2").
	UsedRange string `json:"used_range,omitempty"`
}

// Row returns the row with index r, or nil.
func (s *SheetData) Row(r int) *CellRow {
	for i := range s.Rows {
		if s.Rows[i].R == r {
			return &s.Rows[i]
		}
	}
	return nil
}

// Note returns the note on the named cell, or nil.
func (s *SheetData) Note(cell string) *CellNote {
	for i := range s.Notes {
		if s.Notes[i].Cell == cell {
			return &s.Notes[i]
		}
	}
	return nil
}

// WorkbookData represents a workbook read back from disk.
type WorkbookData struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheets holds the sheets in workbook order.
	Sheets []SheetData `json:"sheets"`
}
