package cmpreport

import (
	"errors"
	"fmt"
)

// ErrSequenceLengthMismatch indicates neighbor URLs and comparisons of
// different lengths under PolicyStrict.
var ErrSequenceLengthMismatch = errors.New("neighbor_urls and individual_comparisons differ in length")

// ErrMissingDirectorate indicates a record without directorate under
// PolicyStrict.
var ErrMissingDirectorate = errors.New("directorate is required")

// ErrNilMetadata indicates a nil record.
var ErrNilMetadata = errors.New("metadata is nil")

// ErrInvalidPolicy indicates an unknown Policy value.
var ErrInvalidPolicy = errors.New("invalid policy: must be lenient or strict")

// ErrInvalidWrapWidth indicates a negative wrap width.
var ErrInvalidWrapWidth = errors.New("invalid wrap width: must be non-negative")

// ErrUnsupportedInput indicates a metadata file with an unknown extension.
var ErrUnsupportedInput = errors.New("unsupported metadata format")

// ErrDuplicateDestination indicates two batch jobs writing the same file.
var ErrDuplicateDestination = errors.New("duplicate destination")

// RenderError represents an error while producing a report.
type RenderError struct {
	Destination string
	Stage       string // "layout", "save", "write"
	Err         error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render error for %q (%s): %v", e.Destination, e.Stage, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// NewRenderError creates a new RenderError.
func NewRenderError(destination, stage string, err error) *RenderError {
	return &RenderError{
		Destination: destination,
		Stage:       stage,
		Err:         err,
	}
}
