package cmpreport

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mbakisahin/sisecam-summarize-3/pkg/cmpreport/models"
	"github.com/mbakisahin/sisecam-summarize-3/pkg/cmpreport/xlsx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floodMetadata() *models.ReportMetadata {
	return &models.ReportMetadata{
		Keyword:               "flood",
		Date:                  "2024-01-01",
		URL:                   "http://a",
		NeighborURLs:          []string{"http://b", "http://c"},
		IndividualComparisons: []string{"diff1", "diff2"},
		CombinedComparison:    "summary",
	}
}

func renderAndInspect(t *testing.T, meta *models.ReportMetadata, opts Options) *models.SheetData {
	t.Helper()
	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, Render(meta, path, opts))
	wb, err := xlsx.Inspect(path)
	require.NoError(t, err)
	require.Len(t, wb.Sheets, 1)
	return &wb.Sheets[0]
}

// headerCells counts occupied header cells: written values plus the cells
// covered by merged header ranges.
func headerCells(sheet *models.SheetData) int {
	n := len(sheet.Row(1).C)
	for _, m := range sheet.Merges {
		n += m.C2 - m.C1
	}
	return n
}

func TestRenderScenario(t *testing.T) {
	sheet := renderAndInspect(t, floodMetadata(), DefaultOptions())

	assert.Equal(t, "Sheet1", sheet.Name)
	header := sheet.Row(1)
	require.NotNil(t, header)
	assert.Equal(t, map[string]string{
		"1": "Directorate",
		"2": "Keyword",
		"3": "Date",
		"4": "Source",
		"5": "Key Differences",
		"6": "Similar Document 1",
		"8": "Similar Document 2",
	}, header.C)
	assert.Equal(t, 9, headerCells(sheet))
	assert.Equal(t, []models.Range{{R1: 1, C1: 6, R2: 1, C2: 7}, {R1: 1, C1: 8, R2: 1, C2: 9}}, sheet.Merges)

	values := sheet.Row(2)
	require.NotNil(t, values)
	assert.Equal(t, "Environment", values.C["1"])
	assert.Equal(t, "flood", values.C["2"])
	assert.Equal(t, "2024-01-01", values.C["3"])
	assert.Equal(t, "Original Document", values.C["4"])
	assert.Equal(t, "...", values.C["7"])
	assert.Equal(t, "...", values.C["9"])

	assert.Equal(t, "http://a", values.Links["4"])
	assert.Equal(t, "http://b", values.Links["6"])
	assert.Equal(t, "http://c", values.Links["8"])

	require.NotNil(t, sheet.Note("E2"))
	assert.Equal(t, "summary", sheet.Note("E2").Text)
	require.NotNil(t, sheet.Note("G2"))
	assert.Equal(t, "diff1", sheet.Note("G2").Text)
	assert.Equal(t, "Comparison", sheet.Note("G2").Author)
	require.NotNil(t, sheet.Note("I2"))
	assert.Equal(t, "diff2", sheet.Note("I2").Text)
	assert.Len(t, sheet.Notes, 3)

	for col, want := range map[string]float64{"A": 20, "E": 20, "F": 15, "G": 10, "H": 15, "I": 10} {
		assert.InDelta(t, want, sheet.ColWidths[col], 0.01, "column %s", col)
	}
}

func TestRenderNoNeighbors(t *testing.T) {
	sheet := renderAndInspect(t, &models.ReportMetadata{Keyword: "air"}, DefaultOptions())

	assert.Equal(t, 5, headerCells(sheet))
	assert.Empty(t, sheet.Merges)
	assert.Equal(t, "N/A", sheet.Row(2).C["3"])
	assert.Empty(t, sheet.Row(2).Links)
	assert.Equal(t, "A1:E2", sheet.UsedRange)
}

func TestRenderLengthPolicy(t *testing.T) {
	meta := floodMetadata()
	meta.NeighborURLs = append(meta.NeighborURLs, "http://d")

	sheet := renderAndInspect(t, meta, DefaultOptions())
	assert.Equal(t, 9, headerCells(sheet), "lenient policy truncates to the shorter sequence")

	opts := DefaultOptions()
	opts.Policy = PolicyStrict
	meta.Directorate = "Environment"
	err := Render(meta, filepath.Join(t.TempDir(), "strict.xlsx"), opts)
	assert.ErrorIs(t, err, ErrSequenceLengthMismatch)
}

func TestRenderStrictDirectorate(t *testing.T) {
	opts := DefaultOptions()
	opts.Policy = PolicyStrict
	dir := t.TempDir()

	err := Render(floodMetadata(), filepath.Join(dir, "a.xlsx"), opts)
	assert.ErrorIs(t, err, ErrMissingDirectorate)
	_, statErr := os.Stat(filepath.Join(dir, "a.xlsx"))
	assert.True(t, os.IsNotExist(statErr), "no file is written for a rejected record")

	meta := floodMetadata()
	meta.Directorate = "Climate"
	sheet := renderAndInspect(t, meta, opts)
	assert.Equal(t, "Climate", sheet.Row(2).C["1"])
}

func TestRenderWriteFailure(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "missing-dir", "report.xlsx")
	err := Render(floodMetadata(), dest, DefaultOptions())
	require.Error(t, err)

	var renderErr *RenderError
	require.True(t, errors.As(err, &renderErr), "got %T", err)
	assert.Equal(t, dest, renderErr.Destination)
	assert.Equal(t, "save", renderErr.Stage)
	assert.NotNil(t, errors.Unwrap(err))
}

func TestRenderOptionErrors(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "x.xlsx")
	assert.ErrorIs(t, Render(nil, dest, DefaultOptions()), ErrNilMetadata)
	assert.ErrorIs(t, Render(floodMetadata(), dest, Options{Policy: "loose"}), ErrInvalidPolicy)
	assert.ErrorIs(t, Render(floodMetadata(), dest, Options{WrapWidth: -1}), ErrInvalidWrapWidth)
}

func TestRenderDefaultDestination(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, Render(floodMetadata(), "", DefaultOptions()))
	_, err := os.Stat(filepath.Join(dir, DefaultFileName))
	assert.NoError(t, err)
}

func TestRenderTurkishAutoSize(t *testing.T) {
	autoSize := true
	opts := DefaultOptions()
	opts.Language = "tr"
	opts.AutoSize = &autoSize

	sheet := renderAndInspect(t, floodMetadata(), opts)
	assert.Equal(t, "Çevre", sheet.Row(2).C["1"])
	assert.Equal(t, "Benzer Doküman 2", sheet.Row(1).C["8"])
	assert.InDelta(t, float64(len("Original Document")), sheet.ColWidths["D"], 0.01)
}

func TestRenderIdempotent(t *testing.T) {
	first := renderAndInspect(t, floodMetadata(), DefaultOptions())
	second := renderAndInspect(t, floodMetadata(), DefaultOptions())
	assert.Equal(t, first, second)
}

func TestRenderTo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderTo(floodMetadata(), &buf, DefaultOptions()))

	wb, err := xlsx.InspectReader(&buf, "stream.xlsx")
	require.NoError(t, err)
	assert.Equal(t, "http://b", wb.Sheets[0].Row(2).Links["6"])
}

func TestLayout(t *testing.T) {
	grid, err := Layout(floodMetadata(), DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 9, grid.Cols(1))
	assert.Equal(t, 9, HeaderColumns(floodMetadata()))
}
