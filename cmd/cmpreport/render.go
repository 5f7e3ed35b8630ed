package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mbakisahin/sisecam-summarize-3/internal/config"
	"github.com/mbakisahin/sisecam-summarize-3/pkg/cmpreport"
	"github.com/spf13/cobra"
)

// renderFlags holds the flags shared by render and preview.
type renderFlags struct {
	outputPath  string
	outputDir   string
	language    string
	directorate string
	autoSize    bool
	strict      bool
	wrapWidth   int
	concurrency int
}

func (f *renderFlags) addLayoutFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.language, "lang", "en", "Label language: en, tr")
	cmd.Flags().StringVar(&f.directorate, "directorate", "", "Directorate label for records without one")
	cmd.Flags().BoolVar(&f.autoSize, "autosize", false, "Size the fixed columns to their content")
	cmd.Flags().BoolVar(&f.strict, "strict", false, "Reject records with unequal neighbor lists or no directorate")
	cmd.Flags().IntVar(&f.wrapWidth, "wrap-width", 0, "Note line width (default 100)")
}

// options merges the configuration file with explicitly set flags.
func (f *renderFlags) options(cmd *cobra.Command) (cmpreport.Options, error) {
	cf, err := config.Load(configPath)
	if err != nil {
		return cmpreport.Options{}, fmt.Errorf("failed to load config: %w", err)
	}
	opts := cf.Options()

	flags := cmd.Flags()
	if flags.Changed("lang") {
		opts.Language = f.language
	}
	if flags.Changed("directorate") {
		opts.Directorate = f.directorate
	}
	if flags.Changed("autosize") {
		opts.AutoSize = &f.autoSize
	}
	if flags.Changed("strict") {
		if f.strict {
			opts.Policy = cmpreport.PolicyStrict
		} else {
			opts.Policy = cmpreport.PolicyLenient
		}
	}
	if flags.Changed("wrap-width") {
		opts.WrapWidth = f.wrapWidth
	}
	if flags.Lookup("concurrency") != nil && flags.Changed("concurrency") {
		opts.Concurrency = f.concurrency
	}
	opts.Logger = newLogger(cmd.ErrOrStderr(), verbose)

	if err := opts.Validate(); err != nil {
		return cmpreport.Options{}, err
	}
	return opts, nil
}

func newRenderCmd() *cobra.Command {
	f := &renderFlags{}
	cmd := &cobra.Command{
		Use:   "render [metadata.json|metadata.yaml]...",
		Short: "Render comparison records into xlsx reports",
		Long: `Render writes one xlsx report per metadata file. With a single input the
report goes to --output; with several inputs each report is named after its
input file and written to --output-dir.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, f, args)
		},
	}

	cmd.Flags().StringVarP(&f.outputPath, "output", "o", cmpreport.DefaultFileName, "Output file path for a single input")
	cmd.Flags().StringVar(&f.outputDir, "output-dir", ".", "Output directory for several inputs")
	cmd.Flags().IntVar(&f.concurrency, "concurrency", cmpreport.DefaultConcurrency, "Reports rendered at once")
	f.addLayoutFlags(cmd)

	return cmd
}

func runRender(cmd *cobra.Command, f *renderFlags, args []string) error {
	opts, err := f.options(cmd)
	if err != nil {
		return err
	}

	if len(args) == 1 {
		meta, err := cmpreport.LoadMetadata(args[0])
		if err != nil {
			return fmt.Errorf("failed to load metadata: %w", err)
		}
		if err := cmpreport.Render(meta, f.outputPath, opts); err != nil {
			return fmt.Errorf("render failed: %w", err)
		}
		return nil
	}

	jobs := make([]cmpreport.Job, 0, len(args))
	for _, input := range args {
		meta, err := cmpreport.LoadMetadata(input)
		if err != nil {
			return fmt.Errorf("failed to load metadata: %w", err)
		}
		jobs = append(jobs, cmpreport.Job{
			Metadata:    meta,
			Destination: batchDestination(f.outputDir, input),
		})
	}
	if err := cmpreport.RenderBatch(cmd.Context(), jobs, opts); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	return nil
}

// batchDestination names the report of input inside dir.
func batchDestination(dir, input string) string {
	base := filepath.Base(input)
	return filepath.Join(dir, strings.TrimSuffix(base, filepath.Ext(base))+".xlsx")
}
