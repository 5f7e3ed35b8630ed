// Package cmpreport renders document comparison records into styled xlsx
// reports.
package cmpreport

import (
	"io"
	"log/slog"

	"github.com/mbakisahin/sisecam-summarize-3/pkg/cmpreport/layout"
)

// DefaultFileName is the destination used when none is given.
const DefaultFileName = "comparison_report.xlsx"

// DefaultConcurrency is the number of reports RenderBatch writes at once.
const DefaultConcurrency = 4

// Policy controls how incomplete records are treated.
type Policy string

const (
	// PolicyLenient truncates unequal neighbor sequences to the shorter one
	// and falls back to the default directorate label.
	PolicyLenient Policy = "lenient"
	// PolicyStrict rejects unequal neighbor sequences and records without a
	// directorate.
	PolicyStrict Policy = "strict"
)

// Options configures rendering behavior.
type Options struct {
	// Policy specifies how incomplete records are handled (lenient, strict).
	Policy Policy
	// AutoSize specifies whether the fixed columns are sized to their
	// content. If nil, defaults to false.
	AutoSize *bool
	// Language selects the label set (BCP 47, e.g. "en", "tr").
	Language string
	// Directorate replaces the language's default directorate label.
	Directorate string
	// WrapWidth is the note line width. Zero uses layout.DefaultWrapWidth.
	WrapWidth int
	// Theme overrides the default theme when non-nil.
	Theme *layout.Theme
	// Concurrency limits RenderBatch. Zero uses DefaultConcurrency.
	Concurrency int
	// Logger receives progress and warnings. Nil discards them.
	Logger *slog.Logger
}

// DefaultOptions returns default rendering options.
func DefaultOptions() Options {
	return Options{
		Policy:   PolicyLenient,
		Language: "en",
	}
}

// ShouldAutoSize returns whether the fixed columns are sized to content.
func (o Options) ShouldAutoSize() bool {
	if o.AutoSize != nil {
		return *o.AutoSize
	}
	return false
}

// Validate checks the option values.
func (o Options) Validate() error {
	switch o.Policy {
	case "", PolicyLenient, PolicyStrict:
	default:
		return ErrInvalidPolicy
	}
	if o.WrapWidth < 0 {
		return ErrInvalidWrapWidth
	}
	if o.Theme != nil {
		if err := o.Theme.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (o Options) concurrency() int {
	if o.Concurrency > 0 {
		return o.Concurrency
	}
	return DefaultConcurrency
}

// engine builds the layout engine described by o.
func (o Options) engine() *layout.Engine {
	labels := layout.LabelsFor(o.Language)
	if o.Directorate != "" {
		labels.DefaultDirectorate = o.Directorate
	}
	theme := layout.DefaultTheme()
	if o.Theme != nil {
		theme = *o.Theme
	}
	return layout.NewEngine(layout.Settings{
		Theme:     theme,
		Labels:    labels,
		WrapWidth: o.WrapWidth,
		AutoSize:  o.ShouldAutoSize(),
		Logger:    o.logger(),
	})
}
