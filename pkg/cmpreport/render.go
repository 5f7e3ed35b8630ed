package cmpreport

import (
	"fmt"
	"io"

	"github.com/mbakisahin/sisecam-summarize-3/pkg/cmpreport/layout"
	"github.com/mbakisahin/sisecam-summarize-3/pkg/cmpreport/models"
	"github.com/mbakisahin/sisecam-summarize-3/pkg/cmpreport/xlsx"
)

// Render writes the report for meta to destination, creating or overwriting
// the file. An empty destination writes DefaultFileName. A failed save may
// leave a partial file behind.
func Render(meta *models.ReportMetadata, destination string, opts Options) error {
	if destination == "" {
		destination = DefaultFileName
	}
	w, err := prepare(meta, destination, opts)
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.SaveAs(destination); err != nil {
		return NewRenderError(destination, "save", err)
	}
	opts.logger().Info("report written",
		"destination", destination,
		"neighbors", meta.NeighborCount(),
	)
	return nil
}

// RenderTo writes the report for meta to out.
func RenderTo(meta *models.ReportMetadata, out io.Writer, opts Options) error {
	const destination = "<stream>"
	w, err := prepare(meta, destination, opts)
	if err != nil {
		return err
	}
	defer w.Close()

	if _, err := w.WriteTo(out); err != nil {
		return NewRenderError(destination, "write", err)
	}
	return nil
}

// Layout lays meta out on an in-memory grid without producing a workbook.
func Layout(meta *models.ReportMetadata, opts Options) (*models.Grid, error) {
	if err := check(meta, opts); err != nil {
		return nil, err
	}
	grid := models.NewGrid()
	if err := opts.engine().Layout(meta, grid); err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	return grid, nil
}

// prepare validates meta and lays it out on a new workbook. The caller owns
// the returned writer.
func prepare(meta *models.ReportMetadata, destination string, opts Options) (*xlsx.Writer, error) {
	if err := check(meta, opts); err != nil {
		return nil, err
	}
	w := xlsx.NewWriter()
	if err := opts.engine().Layout(meta, w); err != nil {
		w.Close()
		return nil, NewRenderError(destination, "layout", err)
	}
	return w, nil
}

// check validates opts and applies the record policy to meta.
func check(meta *models.ReportMetadata, opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	if meta == nil {
		return ErrNilMetadata
	}
	if !meta.Aligned() {
		if opts.Policy == PolicyStrict {
			return fmt.Errorf("%w: %d urls, %d comparisons",
				ErrSequenceLengthMismatch, len(meta.NeighborURLs), len(meta.IndividualComparisons))
		}
		opts.logger().Warn("neighbor sequences differ in length, truncating",
			"neighbor_urls", len(meta.NeighborURLs),
			"individual_comparisons", len(meta.IndividualComparisons),
			"kept", meta.NeighborCount(),
		)
	}
	if opts.Policy == PolicyStrict && meta.Directorate == "" {
		return ErrMissingDirectorate
	}
	return nil
}

// HeaderColumns returns the number of header columns the report for meta
// occupies.
func HeaderColumns(meta *models.ReportMetadata) int {
	return layout.HeaderColumns(meta.NeighborCount())
}
