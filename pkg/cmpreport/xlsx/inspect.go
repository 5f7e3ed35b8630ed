package xlsx

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/mbakisahin/sisecam-summarize-3/pkg/cmpreport/models"
	"github.com/xuri/excelize/v2"
)

// Inspect reads a workbook from path and returns its cells, links, notes,
// merged ranges and column widths.
func Inspect(path string) (*models.WorkbookData, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	return inspectFile(f, filepath.Base(path))
}

// InspectReader is Inspect for a workbook held in r.
func InspectReader(r io.Reader, bookName string) (*models.WorkbookData, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	return inspectFile(f, bookName)
}

func inspectFile(f *excelize.File, bookName string) (*models.WorkbookData, error) {
	wb := &models.WorkbookData{BookName: bookName}
	for _, sheetName := range f.GetSheetList() {
		sheet, err := inspectSheet(f, sheetName)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", sheetName, err)
		}
		wb.Sheets = append(wb.Sheets, *sheet)
	}
	return wb, nil
}

func inspectSheet(f *excelize.File, sheetName string) (*models.SheetData, error) {
	rows, err := ExtractCells(f, sheetName)
	if err != nil {
		return nil, fmt.Errorf("cells: %w", err)
	}
	notes, err := ExtractNotes(f, sheetName)
	if err != nil {
		return nil, fmt.Errorf("notes: %w", err)
	}
	merges, err := ExtractMerges(f, sheetName)
	if err != nil {
		return nil, fmt.Errorf("merges: %w", err)
	}
	used, err := UsedRange(f, sheetName)
	if err != nil {
		return nil, fmt.Errorf("used range: %w", err)
	}

	maxCol := 0
	for _, r := range rows {
		for key := range r.C {
			if c, err := strconv.Atoi(key); err == nil {
				maxCol = max(maxCol, c)
			}
		}
	}
	for _, m := range merges {
		maxCol = max(maxCol, m.C2)
	}
	widths := make(map[string]float64, maxCol)
	for c := 1; c <= maxCol; c++ {
		name, err := excelize.ColumnNumberToName(c)
		if err != nil {
			return nil, err
		}
		w, err := f.GetColWidth(sheetName, name)
		if err != nil {
			return nil, fmt.Errorf("column %s width: %w", name, err)
		}
		widths[name] = w
	}

	return &models.SheetData{
		Name:      sheetName,
		Rows:      rows,
		Notes:     notes,
		Merges:    merges,
		ColWidths: widths,
		UsedRange: used,
	}, nil
}
