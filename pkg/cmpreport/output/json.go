// Package output serializes inspected workbooks.
package output

import (
	"encoding/json"

	"github.com/mbakisahin/sisecam-summarize-3/pkg/cmpreport/models"
)

// ToJSON serializes a workbook, indented when pretty is set.
func ToJSON(wb *models.WorkbookData, pretty bool) ([]byte, error) {
	return marshal(wb, pretty)
}

// SheetToJSON serializes a single sheet.
func SheetToJSON(sheet *models.SheetData, pretty bool) ([]byte, error) {
	return marshal(sheet, pretty)
}

func marshal(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
