package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var diffOut string

func init() {
	cmd := newDiffCmd()
	cmd.Flags().StringVarP(&diffOut, "out", "o", "", "Write the delta dump to a file instead of stdout")
	rootCmd.AddCommand(cmd)
}

func newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <after> <before>",
		Short: "Subtract one YAML dump from another",
		Long: `The diff command subtracts the second dump from the first elementwise,
producing the counter deltas between two points of a run. Both dumps must
come from the same counter schema.

Example:
  statctl diff end.yaml start.yaml
  statctl diff end.yaml start.yaml -o interval.yaml`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(args)
		},
	}
}

func runDiff(args []string) error {
	after, err := loadDump(args[0])
	if err != nil {
		return err
	}
	before, err := loadDump(args[1])
	if err != nil {
		return err
	}
	if err := combineDump(after, before, opSubtract, ""); err != nil {
		return fmt.Errorf("diff %s against %s: %w", args[0], args[1], err)
	}

	return writeDump(after, diffOut)
}
