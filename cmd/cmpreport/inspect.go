package main

import (
	"fmt"
	"os"

	"github.com/mbakisahin/sisecam-summarize-3/pkg/cmpreport/output"
	"github.com/mbakisahin/sisecam-summarize-3/pkg/cmpreport/xlsx"
	"github.com/spf13/cobra"
)

func newInspectCmd() *cobra.Command {
	var (
		outputPath string
		pretty     bool
	)
	cmd := &cobra.Command{
		Use:   "inspect [report.xlsx]",
		Short: "Print the cells, links, notes and merges of a workbook as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wb, err := xlsx.Inspect(args[0])
			if err != nil {
				return fmt.Errorf("inspection failed: %w", err)
			}

			jsonData, err := output.ToJSON(wb, pretty)
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}

			if outputPath != "" {
				if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
					return fmt.Errorf("failed to write output: %w", err)
				}
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	return cmd
}
