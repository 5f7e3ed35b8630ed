package models

// Font describes the font of a cell.
type Font struct {
	// Family is the font family name (e.g. Arial). Empty keeps the default.
	Family string `json:"family,omitempty" yaml:"family,omitempty"`
	// Size is the font size in points. Zero keeps the default.
	Size float64 `json:"size,omitempty" yaml:"size,omitempty"`
	// Bold enables bold text.
	Bold bool `json:"bold,omitempty" yaml:"bold,omitempty"`
	// Color is the RGB hex colour without '#' (e.g. FFFFFF).
	Color string `json:"color,omitempty" yaml:"color,omitempty"`
	// Underline is the underline type ("single", "double") or empty.
	Underline string `json:"underline,omitempty" yaml:"underline,omitempty"`
}

// Style is a complete cell style. Style values are comparable and may be used
// as map keys.
type Style struct {
	// Font is the cell font.
	Font Font `json:"font"`
	// Fill is the solid background RGB hex colour, empty for no fill.
	Fill string `json:"fill,omitempty"`
	// Border enables a thin border on all four sides.
	Border bool `json:"border,omitempty"`
	// Horizontal is the horizontal alignment ("center", "left", ...).
	Horizontal string `json:"horizontal,omitempty"`
	// Vertical is the vertical alignment ("center", "top", ...).
	Vertical string `json:"vertical,omitempty"`
	// Wrap enables text wrapping.
	Wrap bool `json:"wrap,omitempty"`
}

// WithFill returns a copy of s with the given fill colour.
func (s Style) WithFill(fill string) Style {
	s.Fill = fill
	return s
}
