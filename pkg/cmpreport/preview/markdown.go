// Package preview renders a laid-out report grid as Markdown.
package preview

import (
	"fmt"
	"io"
	"strings"

	"github.com/mbakisahin/sisecam-summarize-3/pkg/cmpreport/models"
	"github.com/nao1215/markdown"
	"github.com/xuri/excelize/v2"
)

// DefaultTitle heads a preview when no title is given.
const DefaultTitle = "Comparison Report"

// cellEscaper keeps cell text inside a single Markdown table cell.
var cellEscaper = strings.NewReplacer("|", `\|`, "\r\n", "<br>", "\n", "<br>")

// Write outputs grid as a Markdown table followed by the cell notes.
// Merged header cells keep their text in the first column and leave the
// covered columns empty.
func Write(out io.Writer, grid *models.Grid, title string) error {
	if title == "" {
		title = DefaultTitle
	}
	md := markdown.NewMarkdown(out)
	md.H1(title)

	cols := 0
	for r := 1; r <= grid.Rows(); r++ {
		cols = max(cols, grid.Cols(r))
	}
	if cols == 0 {
		md.PlainText("Empty report.")
		return md.Build()
	}

	header := rowTexts(grid, 1, cols)
	var rows [][]string
	for r := 2; r <= grid.Rows(); r++ {
		rows = append(rows, rowTexts(grid, r, cols))
	}
	md.Table(markdown.TableSet{Header: header, Rows: rows})

	notes := grid.Notes()
	if len(notes) > 0 {
		md.H2("Notes")
		for _, ref := range notes {
			name, err := excelize.CoordinatesToCellName(ref.Col, ref.Row)
			if err != nil {
				return err
			}
			note := grid.Cell(ref.Col, ref.Row).Note
			md.Details(fmt.Sprintf("%s (%s)", name, note.Author), note.Text)
		}
	}

	return md.Build()
}

func rowTexts(grid *models.Grid, row, cols int) []string {
	texts := make([]string, cols)
	for c := 1; c <= cols; c++ {
		if grid.Covered(c, row) {
			continue
		}
		texts[c-1] = cellText(grid.Cell(c, row))
	}
	return texts
}

func cellText(c *models.Cell) string {
	if c == nil {
		return ""
	}
	text := cellEscaper.Replace(c.Value)
	if c.Link != "" {
		return fmt.Sprintf("[%s](%s)", text, c.Link)
	}
	return text
}
