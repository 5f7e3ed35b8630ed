// Package config loads cmpreport settings from a YAML file. Settings cover
// the label language, the record policy, column sizing and the visual theme.
// Command-line flags take precedence over file values.
package config
