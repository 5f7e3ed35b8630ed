// Package main provides the CLI entry point for cmpreport.
//
// Usage:
//
//	cmpreport render metadata.json -o report.xlsx
//	cmpreport inspect report.xlsx --pretty
//	cmpreport preview metadata.yaml
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cmpreport",
		Short: "Render document comparison records into Excel reports",
		Long: `cmpreport turns a comparison record (a source document, its similar
documents and the comparison texts) into a styled xlsx report.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Configuration file (default: ./.cmpreport.yaml or XDG config dir)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newInspectCmd())
	rootCmd.AddCommand(newPreviewCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// newLogger returns a text logger on w, at debug level when verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
