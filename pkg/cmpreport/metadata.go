package cmpreport

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mbakisahin/sisecam-summarize-3/pkg/cmpreport/models"
	"gopkg.in/yaml.v3"
)

// Format is a metadata file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatOf returns the metadata format implied by a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedInput, path)
	}
}

// LoadMetadata reads a comparison record from a JSON or YAML file.
func LoadMetadata(path string) (*models.ReportMetadata, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path) //nolint:gosec // User-provided input path is intentional
	if err != nil {
		return nil, err
	}
	defer f.Close()

	meta, err := DecodeMetadata(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return meta, nil
}

// DecodeMetadata decodes a comparison record. Absent keys stay empty.
func DecodeMetadata(r io.Reader, format Format) (*models.ReportMetadata, error) {
	var meta models.ReportMetadata
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&meta); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&meta); err != nil && err != io.EOF {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedInput, format)
	}
	return &meta, nil
}
