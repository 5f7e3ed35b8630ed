package layout

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/mbakisahin/sisecam-summarize-3/pkg/cmpreport/models"
)

// MaxColWidth is the largest column width a spreadsheet accepts.
const MaxColWidth = 255

// ErrInvalidTheme indicates a theme with a malformed colour or width.
var ErrInvalidTheme = errors.New("invalid theme")

var hexColor = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)

// Theme is the visual style sheet of a report. It is a value type; engines
// copy it and never mutate it.
type Theme struct {
	// HeaderFill is the background of every header cell.
	HeaderFill string `yaml:"header_fill"`
	// HeaderFont is the font of every header cell.
	HeaderFont models.Font `yaml:"header_font"`
	// OddFill is the fill of odd fixed columns and even neighbor blocks.
	OddFill string `yaml:"odd_fill"`
	// EvenFill is the fill of even fixed columns and odd neighbor blocks.
	EvenFill string `yaml:"even_fill"`
	// BodyFont is the font of plain value cells.
	BodyFont models.Font `yaml:"body_font"`
	// LinkFont is the font of hyperlinked cells.
	LinkFont models.Font `yaml:"link_font"`
	// NoteFont is the font of placeholder cells carrying a note.
	NoteFont models.Font `yaml:"note_font"`
	// FixedColWidth is the width of the five fixed columns.
	FixedColWidth float64 `yaml:"fixed_col_width"`
	// LinkColWidth is the width of a neighbor's link column.
	LinkColWidth float64 `yaml:"link_col_width"`
	// NoteColWidth is the width of a neighbor's comparison column.
	NoteColWidth float64 `yaml:"note_col_width"`
}

// DefaultTheme returns the standard report theme.
func DefaultTheme() Theme {
	return Theme{
		HeaderFill:    "1E90FF",
		HeaderFont:    models.Font{Family: "Arial", Size: 12, Bold: true, Color: "FFFFFF"},
		OddFill:       "D3D3D3",
		EvenFill:      "FFFFFF",
		LinkFont:      models.Font{Family: "Calibri", Size: 11, Color: "0000FF", Underline: "single"},
		NoteFont:      models.Font{Family: "Arial", Size: 11},
		FixedColWidth: 20,
		LinkColWidth:  15,
		NoteColWidth:  10,
	}
}

// Validate checks colours and widths.
func (t Theme) Validate() error {
	colors := map[string]string{
		"header_fill":       t.HeaderFill,
		"odd_fill":          t.OddFill,
		"even_fill":         t.EvenFill,
		"header_font.color": t.HeaderFont.Color,
		"body_font.color":   t.BodyFont.Color,
		"link_font.color":   t.LinkFont.Color,
		"note_font.color":   t.NoteFont.Color,
	}
	for name, c := range colors {
		if c != "" && !hexColor.MatchString(c) {
			return fmt.Errorf("%w: %s %q is not an RRGGBB colour", ErrInvalidTheme, name, c)
		}
	}
	widths := map[string]float64{
		"fixed_col_width": t.FixedColWidth,
		"link_col_width":  t.LinkColWidth,
		"note_col_width":  t.NoteColWidth,
	}
	for name, w := range widths {
		if w <= 0 || w > MaxColWidth {
			return fmt.Errorf("%w: %s %v out of range (0, %d]", ErrInvalidTheme, name, w, MaxColWidth)
		}
	}
	return nil
}

// HeaderStyle is the style of every occupied header cell.
func (t Theme) HeaderStyle() models.Style {
	return models.Style{
		Font:       t.HeaderFont,
		Fill:       t.HeaderFill,
		Border:     true,
		Horizontal: "center",
		Vertical:   "center",
	}
}

// FixedFill returns the fill of a fixed column: odd columns use OddFill,
// even columns EvenFill.
func (t Theme) FixedFill(col int) string {
	if col%2 == 0 {
		return t.EvenFill
	}
	return t.OddFill
}

// NeighborFill returns the fill of the i-th neighbor block (1-based): even
// blocks use OddFill, odd blocks EvenFill.
func (t Theme) NeighborFill(i int) string {
	if i%2 == 0 {
		return t.OddFill
	}
	return t.EvenFill
}

func (t Theme) valueStyle(font models.Font, fill string) models.Style {
	return models.Style{
		Font:       font,
		Fill:       fill,
		Border:     true,
		Horizontal: "center",
		Vertical:   "center",
		Wrap:       true,
	}
}

// BodyStyle is the style of a plain value cell.
func (t Theme) BodyStyle(fill string) models.Style { return t.valueStyle(t.BodyFont, fill) }

// LinkStyle is the style of a hyperlinked value cell.
func (t Theme) LinkStyle(fill string) models.Style { return t.valueStyle(t.LinkFont, fill) }

// NoteStyle is the style of a placeholder cell carrying a note.
func (t Theme) NoteStyle(fill string) models.Style { return t.valueStyle(t.NoteFont, fill) }
