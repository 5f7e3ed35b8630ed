package xlsx

import (
	"strings"

	"github.com/mbakisahin/sisecam-summarize-3/pkg/cmpreport/models"
	"github.com/xuri/excelize/v2"
)

// ExtractMerges returns the merged ranges of a sheet.
func ExtractMerges(f *excelize.File, sheetName string) ([]models.Range, error) {
	merged, err := f.GetMergeCells(sheetName)
	if err != nil {
		return nil, err
	}
	var result []models.Range
	for _, mc := range merged {
		if area := parseRange(mc.GetStartAxis() + ":" + mc.GetEndAxis()); area != nil {
			result = append(result, *area)
		}
	}
	return result, nil
}

// parseRange parses a range string like $A$1:$D$10 to a Range.
func parseRange(rangeStr string) *models.Range {
	rangeStr = strings.ReplaceAll(rangeStr, "$", "")

	parts := strings.Split(rangeStr, ":")
	if len(parts) != 2 {
		return nil
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return nil
	}

	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return nil
	}

	return &models.Range{
		R1: startRow,
		C1: startCol,
		R2: endRow,
		C2: endCol,
	}
}
