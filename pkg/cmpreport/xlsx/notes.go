package xlsx

import (
	"sort"
	"strings"

	"github.com/mbakisahin/sisecam-summarize-3/pkg/cmpreport/models"
	"github.com/xuri/excelize/v2"
)

// ExtractNotes returns the cell notes of a sheet ordered by row, then column.
func ExtractNotes(f *excelize.File, sheetName string) ([]models.CellNote, error) {
	comments, err := f.GetComments(sheetName)
	if err != nil {
		return nil, err
	}

	result := make([]models.CellNote, 0, len(comments))
	for _, c := range comments {
		col, row, err := excelize.CellNameToCoordinates(c.Cell)
		if err != nil {
			return nil, err
		}
		result = append(result, models.CellNote{
			Cell:   c.Cell,
			R:      row,
			C:      col,
			Author: c.Author,
			Text:   noteText(c),
		})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].R != result[j].R {
			return result[i].R < result[j].R
		}
		return result[i].C < result[j].C
	})
	return result, nil
}

// noteText joins the runs of a comment and drops the "Author:" prefix some
// writers put in front of the body.
func noteText(c excelize.Comment) string {
	var b strings.Builder
	b.WriteString(c.Text)
	for _, run := range c.Paragraph {
		b.WriteString(run.Text)
	}
	text := b.String()
	if c.Author != "" {
		if rest, ok := strings.CutPrefix(text, c.Author+":"); ok {
			text = strings.TrimLeft(rest, " \n")
		}
	}
	return text
}
