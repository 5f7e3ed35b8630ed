package xlsx

import (
	"strconv"

	"github.com/mbakisahin/sisecam-summarize-3/pkg/cmpreport/models"
	"github.com/xuri/excelize/v2"
)

// ExtractCells extracts cell values and hyperlinks from a sheet.
// It returns a slice of CellRow containing non-empty rows.
func ExtractCells(f *excelize.File, sheetName string) ([]models.CellRow, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	var result []models.CellRow
	for rowIdx, row := range rows {
		rowNum := rowIdx + 1
		cellMap := make(map[string]string)
		linkMap := make(map[string]string)

		for colIdx, cellValue := range row {
			if cellValue == "" {
				continue
			}
			colStr := strconv.Itoa(colIdx + 1)
			cellMap[colStr] = cellValue

			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowNum)
			if err != nil {
				return nil, err
			}
			hasLink, target, err := f.GetCellHyperLink(sheetName, cellName)
			if err == nil && hasLink && target != "" {
				linkMap[colStr] = target
			}
		}

		if len(cellMap) > 0 {
			cellRow := models.CellRow{R: rowNum, C: cellMap}
			if len(linkMap) > 0 {
				cellRow.Links = linkMap
			}
			result = append(result, cellRow)
		}
	}

	return result, nil
}

// UsedRange returns the bounding range of non-empty cells (e.g. "A1:J2"),
// or "" for an empty sheet.
func UsedRange(f *excelize.File, sheetName string) (string, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return "", err
	}
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return "", nil
	}
	startCell, err := excelize.CoordinatesToCellName(minCol+1, minRow+1)
	if err != nil {
		return "", err
	}
	endCell, err := excelize.CoordinatesToCellName(maxCol+1, maxRow+1)
	if err != nil {
		return "", err
	}
	return startCell + ":" + endCell, nil
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell != "" {
				if minRow < 0 || rowIdx < minRow {
					minRow = rowIdx
				}
				if maxRow < 0 || rowIdx > maxRow {
					maxRow = rowIdx
				}
				if minCol < 0 || colIdx < minCol {
					minCol = colIdx
				}
				if maxCol < 0 || colIdx > maxCol {
					maxCol = colIdx
				}
			}
		}
	}

	return
}
