// Package xlsx binds the layout engine to excelize workbooks and reads
// rendered workbooks back.
package xlsx

import (
	"fmt"
	"io"

	"github.com/mbakisahin/sisecam-summarize-3/pkg/cmpreport/layout"
	"github.com/mbakisahin/sisecam-summarize-3/pkg/cmpreport/models"
	"github.com/xuri/excelize/v2"
)

// thinBorder is the border style index of a thin line.
const thinBorder = 1

// Writer is a layout.Sheet backed by the first sheet of a new excelize
// workbook. A Writer must be closed.
type Writer struct {
	f      *excelize.File
	sheet  string
	styles map[models.Style]int
}

var _ layout.Sheet = (*Writer)(nil)

// NewWriter creates a workbook with a single sheet.
func NewWriter() *Writer {
	f := excelize.NewFile()
	return &Writer{
		f:      f,
		sheet:  f.GetSheetName(f.GetActiveSheetIndex()),
		styles: make(map[models.Style]int),
	}
}

// SheetName returns the name of the sheet being written.
func (w *Writer) SheetName() string {
	return w.sheet
}

// File exposes the underlying workbook.
func (w *Writer) File() *excelize.File {
	return w.f
}

func (w *Writer) SetValue(col, row int, value string) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return w.f.SetCellStr(w.sheet, cell, value)
}

func (w *Writer) SetStyle(col, row int, style models.Style) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	id, err := w.styleID(style)
	if err != nil {
		return err
	}
	return w.f.SetCellStyle(w.sheet, cell, cell, id)
}

func (w *Writer) Merge(area models.Range) error {
	start, err := excelize.CoordinatesToCellName(area.C1, area.R1)
	if err != nil {
		return err
	}
	end, err := excelize.CoordinatesToCellName(area.C2, area.R2)
	if err != nil {
		return err
	}
	return w.f.MergeCell(w.sheet, start, end)
}

func (w *Writer) SetHyperlink(col, row int, target string) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return w.f.SetCellHyperLink(w.sheet, cell, target, "External")
}

func (w *Writer) AddNote(col, row int, author, text string) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return w.f.AddComment(w.sheet, excelize.Comment{
		Cell:      cell,
		Author:    author,
		Paragraph: []excelize.RichTextRun{{Text: text}},
	})
}

func (w *Writer) SetColWidth(col int, width float64) error {
	name, err := excelize.ColumnNumberToName(col)
	if err != nil {
		return err
	}
	return w.f.SetColWidth(w.sheet, name, name, width)
}

// SaveAs writes the workbook to path, creating or truncating it.
func (w *Writer) SaveAs(path string) error {
	return w.f.SaveAs(path)
}

// WriteTo writes the workbook to dst.
func (w *Writer) WriteTo(dst io.Writer) (int64, error) {
	return w.f.WriteTo(dst)
}

// Close releases the workbook.
func (w *Writer) Close() error {
	return w.f.Close()
}

// styleID returns the workbook style index of s, registering it on first use.
func (w *Writer) styleID(s models.Style) (int, error) {
	if id, ok := w.styles[s]; ok {
		return id, nil
	}
	id, err := w.f.NewStyle(toExcelStyle(s))
	if err != nil {
		return 0, fmt.Errorf("register style: %w", err)
	}
	w.styles[s] = id
	return id, nil
}

// toExcelStyle converts a style value into its excelize form.
func toExcelStyle(s models.Style) *excelize.Style {
	st := &excelize.Style{
		Font: &excelize.Font{
			Bold:      s.Font.Bold,
			Family:    s.Font.Family,
			Size:      s.Font.Size,
			Color:     s.Font.Color,
			Underline: s.Font.Underline,
		},
		Alignment: &excelize.Alignment{
			Horizontal: s.Horizontal,
			Vertical:   s.Vertical,
			WrapText:   s.Wrap,
		},
	}
	if s.Fill != "" {
		st.Fill = excelize.Fill{Type: "pattern", Color: []string{s.Fill}, Pattern: 1}
	}
	if s.Border {
		for _, side := range []string{"left", "top", "right", "bottom"} {
			st.Border = append(st.Border, excelize.Border{Type: side, Color: "000000", Style: thinBorder})
		}
	}
	return st
}
