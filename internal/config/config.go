package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/mbakisahin/sisecam-summarize-3/pkg/cmpreport"
	"github.com/mbakisahin/sisecam-summarize-3/pkg/cmpreport/layout"
)

const (
	// AppName is the application name used for XDG directory paths.
	AppName = "cmpreport"

	// DefaultConfigFile is the configuration file name looked up in the
	// current directory.
	DefaultConfigFile = ".cmpreport.yaml"

	// XDGConfigFile is the configuration file name inside XDGConfigDir.
	XDGConfigFile = "config.yaml"
)

// File is the content of a configuration file.
type File struct {
	// Language selects the label set ("en", "tr").
	Language string `yaml:"language"`
	// Directorate replaces the default directorate label.
	Directorate string `yaml:"directorate"`
	// Policy is "lenient" or "strict".
	Policy cmpreport.Policy `yaml:"policy"`
	// AutoSize sizes the fixed columns to content when true.
	AutoSize *bool `yaml:"autosize"`
	// WrapWidth is the note line width.
	WrapWidth int `yaml:"wrap_width"`
	// Concurrency limits batch rendering.
	Concurrency int `yaml:"concurrency"`
	// Theme overrides individual theme values; omitted keys keep defaults.
	Theme layout.Theme `yaml:"theme"`
}

// Default returns a File holding the built-in settings.
func Default() *File {
	return &File{
		Language: "en",
		Policy:   cmpreport.PolicyLenient,
		Theme:    layout.DefaultTheme(),
	}
}

// XDGConfigDir returns the XDG config directory for cmpreport.
// On Linux: ~/.config/cmpreport
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks the configuration values.
func (f *File) Validate() error {
	if f.Concurrency < 0 {
		return ErrInvalidConcurrency
	}
	return f.Options().Validate()
}

// Options converts the file into rendering options.
func (f *File) Options() cmpreport.Options {
	opts := cmpreport.DefaultOptions()
	if f.Language != "" {
		opts.Language = f.Language
	}
	if f.Policy != "" {
		opts.Policy = f.Policy
	}
	opts.Directorate = f.Directorate
	opts.AutoSize = f.AutoSize
	opts.WrapWidth = f.WrapWidth
	opts.Concurrency = f.Concurrency
	theme := f.Theme
	opts.Theme = &theme
	return opts
}
