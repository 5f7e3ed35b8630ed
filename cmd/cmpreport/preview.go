package main

import (
	"fmt"

	"github.com/mbakisahin/sisecam-summarize-3/pkg/cmpreport"
	"github.com/mbakisahin/sisecam-summarize-3/pkg/cmpreport/preview"
	"github.com/spf13/cobra"
)

func newPreviewCmd() *cobra.Command {
	f := &renderFlags{}
	var title string
	cmd := &cobra.Command{
		Use:   "preview [metadata.json|metadata.yaml]",
		Short: "Print the report layout as Markdown",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := f.options(cmd)
			if err != nil {
				return err
			}
			meta, err := cmpreport.LoadMetadata(args[0])
			if err != nil {
				return fmt.Errorf("failed to load metadata: %w", err)
			}
			grid, err := cmpreport.Layout(meta, opts)
			if err != nil {
				return err
			}
			if title == "" && meta.Keyword != "" {
				title = "Comparison Report: " + meta.Keyword
			}
			return preview.Write(cmd.OutOrStdout(), grid, title)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Preview heading")
	f.addLayoutFlags(cmd)

	return cmd
}
