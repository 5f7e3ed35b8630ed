package models

import "fmt"

// Range represents cell coordinate bounds of a rectangular cell range.
type Range struct {
	// R1 is the start row (1-based).
	R1 int `json:"r1"`
	// C1 is the start column (1-based).
	C1 int `json:"c1"`
	// R2 is the end row (1-based, inclusive).
	R2 int `json:"r2"`
	// C2 is the end column (1-based, inclusive).
	C2 int `json:"c2"`
}

// Valid reports whether the range has positive coordinates and is not
// inverted.
func (r Range) Valid() bool {
	return r.R1 >= 1 && r.C1 >= 1 && r.R2 >= r.R1 && r.C2 >= r.C1
}

// Contains reports whether the cell at (col, row) lies inside the range.
func (r Range) Contains(col, row int) bool {
	return row >= r.R1 && row <= r.R2 && col >= r.C1 && col <= r.C2
}

// Overlaps reports whether the two ranges share at least one cell.
func (r Range) Overlaps(o Range) bool {
	return r.C1 <= o.C2 && o.C1 <= r.C2 && r.R1 <= o.R2 && o.R1 <= r.R2
}

func (r Range) String() string {
	return fmt.Sprintf("R%dC%d:R%dC%d", r.R1, r.C1, r.R2, r.C2)
}
