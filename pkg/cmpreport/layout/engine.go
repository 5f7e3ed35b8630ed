package layout

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/mbakisahin/sisecam-summarize-3/pkg/cmpreport/models"
)

// Grid rows and fixed column positions.
const (
	HeaderRow = 1
	ValueRow  = 2

	FixedColumns = 5

	ColDirectorate    = 1
	ColKeyword        = 2
	ColDate           = 3
	ColSource         = 4
	ColKeyDifferences = 5
)

// NeighborColumns returns the link and comparison columns of the i-th
// neighbor block (1-based).
func NeighborColumns(i int) (link, comparison int) {
	return FixedColumns + 2*i - 1, FixedColumns + 2*i
}

// HeaderColumns returns the number of occupied header columns for n neighbor
// blocks.
func HeaderColumns(n int) int {
	return FixedColumns + 2*n
}

// Settings configures an Engine. Zero fields take defaults.
type Settings struct {
	// Theme is the visual style sheet. The zero Theme selects DefaultTheme.
	Theme Theme
	// Labels is the literal label set. The zero Labels selects EnglishLabels.
	Labels Labels
	// WrapWidth is the note line width, DefaultWrapWidth when zero.
	WrapWidth int
	// AutoSize sizes the fixed columns to their content instead of
	// Theme.FixedColWidth.
	AutoSize bool
	// Logger receives debug output. Nil discards it.
	Logger *slog.Logger
}

// Engine lays out comparison records. An Engine holds no per-record state
// and may be shared between goroutines.
type Engine struct {
	theme     Theme
	labels    Labels
	wrapWidth int
	autoSize  bool
	logger    *slog.Logger
}

// NewEngine creates an Engine from s.
func NewEngine(s Settings) *Engine {
	e := &Engine{
		theme:     s.Theme,
		labels:    s.Labels,
		wrapWidth: s.WrapWidth,
		autoSize:  s.AutoSize,
		logger:    s.Logger,
	}
	if e.theme == (Theme{}) {
		e.theme = DefaultTheme()
	}
	if e.labels == (Labels{}) {
		e.labels = EnglishLabels()
	}
	if e.wrapWidth < 1 {
		e.wrapWidth = DefaultWrapWidth
	}
	if e.logger == nil {
		e.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return e
}

// Theme returns the engine's theme.
func (e *Engine) Theme() Theme { return e.theme }

// Labels returns the engine's label set.
func (e *Engine) Labels() Labels { return e.labels }

// Layout writes meta onto sh: the fixed header and value columns, one merged
// two-column block per neighbor, styles, links, notes and column widths.
// Neighbors are paired by position and placed in input order; callers decide
// beforehand whether unequal sequence lengths are acceptable.
func (e *Engine) Layout(meta *models.ReportMetadata, sh Sheet) error {
	neighbors := meta.Neighbors()
	e.logger.Debug("laying out report",
		"keyword", meta.Keyword,
		"neighbors", len(neighbors),
		"header_columns", HeaderColumns(len(neighbors)),
	)

	headers := e.labels.Headers()
	values := e.fixedValues(meta)
	for i := 0; i < FixedColumns; i++ {
		col := i + 1
		if err := sh.SetValue(col, HeaderRow, headers[i]); err != nil {
			return cellError("header value", col, HeaderRow, err)
		}
		if err := sh.SetValue(col, ValueRow, values[i]); err != nil {
			return cellError("value", col, ValueRow, err)
		}
	}

	headerStyle := e.theme.HeaderStyle()
	for col := 1; col <= HeaderColumns(len(neighbors)); col++ {
		if err := sh.SetStyle(col, HeaderRow, headerStyle); err != nil {
			return cellError("header style", col, HeaderRow, err)
		}
	}

	if err := e.layoutFixedValues(meta, sh); err != nil {
		return err
	}

	for _, n := range neighbors {
		if err := e.layoutNeighbor(n, sh); err != nil {
			return err
		}
	}

	return e.sizeFixedColumns(headers, values, sh)
}

// fixedValues returns the visible row-2 values of the fixed columns.
func (e *Engine) fixedValues(meta *models.ReportMetadata) [FixedColumns]string {
	directorate := meta.Directorate
	if directorate == "" {
		directorate = e.labels.DefaultDirectorate
	}
	return [FixedColumns]string{
		directorate,
		e.labels.orMissing(meta.Keyword),
		e.labels.orMissing(meta.Date),
		e.labels.SourceLink,
		e.labels.Placeholder,
	}
}

func (e *Engine) layoutFixedValues(meta *models.ReportMetadata, sh Sheet) error {
	for col := 1; col <= FixedColumns; col++ {
		fill := e.theme.FixedFill(col)
		var style models.Style
		switch col {
		case ColSource:
			style = e.theme.LinkStyle(fill)
		case ColKeyDifferences:
			style = e.theme.NoteStyle(fill)
		default:
			style = e.theme.BodyStyle(fill)
		}
		if err := sh.SetStyle(col, ValueRow, style); err != nil {
			return cellError("value style", col, ValueRow, err)
		}
	}

	if meta.URL != "" {
		if err := sh.SetHyperlink(ColSource, ValueRow, meta.URL); err != nil {
			return cellError("source link", ColSource, ValueRow, err)
		}
	} else {
		e.logger.Debug("source url missing, leaving cell unlinked")
	}

	text := e.wrap(e.labels.orMissing(meta.CombinedComparison))
	if err := sh.AddNote(ColKeyDifferences, ValueRow, e.labels.KeyDifferencesAuthor, text); err != nil {
		return cellError("key differences note", ColKeyDifferences, ValueRow, err)
	}
	return nil
}

func (e *Engine) layoutNeighbor(n models.Neighbor, sh Sheet) error {
	linkCol, noteCol := NeighborColumns(n.Index)
	fill := e.theme.NeighborFill(n.Index)

	area := models.Range{R1: HeaderRow, C1: linkCol, R2: HeaderRow, C2: noteCol}
	if err := sh.Merge(area); err != nil {
		return fmt.Errorf("merge neighbor %d header: %w", n.Index, err)
	}
	if err := sh.SetValue(linkCol, HeaderRow, e.labels.NeighborHeader(n.Index)); err != nil {
		return cellError("neighbor header", linkCol, HeaderRow, err)
	}

	if err := sh.SetValue(linkCol, ValueRow, e.labels.NeighborLink); err != nil {
		return cellError("neighbor link value", linkCol, ValueRow, err)
	}
	if n.URL != "" {
		if err := sh.SetHyperlink(linkCol, ValueRow, n.URL); err != nil {
			return cellError("neighbor link", linkCol, ValueRow, err)
		}
	}
	if err := sh.SetStyle(linkCol, ValueRow, e.theme.LinkStyle(fill)); err != nil {
		return cellError("neighbor link style", linkCol, ValueRow, err)
	}

	if err := sh.SetValue(noteCol, ValueRow, e.labels.Placeholder); err != nil {
		return cellError("neighbor placeholder", noteCol, ValueRow, err)
	}
	if err := sh.SetStyle(noteCol, ValueRow, e.theme.NoteStyle(fill)); err != nil {
		return cellError("neighbor note style", noteCol, ValueRow, err)
	}
	text := e.wrap(e.labels.orMissing(n.Comparison))
	if err := sh.AddNote(noteCol, ValueRow, e.labels.ComparisonAuthor, text); err != nil {
		return cellError("neighbor note", noteCol, ValueRow, err)
	}

	if err := sh.SetColWidth(linkCol, e.theme.LinkColWidth); err != nil {
		return fmt.Errorf("width of column %d: %w", linkCol, err)
	}
	if err := sh.SetColWidth(noteCol, e.theme.NoteColWidth); err != nil {
		return fmt.Errorf("width of column %d: %w", noteCol, err)
	}

	e.logger.Debug("neighbor block placed", "neighbor", n.Index, "link_col", linkCol, "note_col", noteCol)
	return nil
}

func (e *Engine) sizeFixedColumns(headers, values [FixedColumns]string, sh Sheet) error {
	widths := make([]float64, FixedColumns)
	if e.autoSize {
		columns := make([][]string, FixedColumns)
		for i := range columns {
			columns[i] = []string{headers[i], values[i]}
		}
		widths = ContentWidths(columns, e.wrapWidth)
	} else {
		for i := range widths {
			widths[i] = e.theme.FixedColWidth
		}
	}
	for i, w := range widths {
		if err := sh.SetColWidth(i+1, w); err != nil {
			return fmt.Errorf("width of column %d: %w", i+1, err)
		}
	}
	return nil
}

func (e *Engine) wrap(text string) string {
	return WrapText(text, e.wrapWidth)
}

func cellError(op string, col, row int, err error) error {
	return fmt.Errorf("%s at row %d column %d: %w", op, row, col, err)
}
