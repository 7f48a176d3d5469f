package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var mergeOut string

func init() {
	cmd := newMergeCmd()
	cmd.Flags().StringVarP(&mergeOut, "out", "o", "", "Write the merged dump to a file instead of stdout")
	rootCmd.AddCommand(cmd)
}

func newMergeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "merge <dump> <dump>...",
		Short: "Add YAML dumps elementwise into one",
		Long: `The merge command folds two or more YAML statistics dumps into a single
dump by adding every counter elementwise, the same way the library
accumulates live snapshot instances. All dumps must come from the same
counter schema.

Example:
  statctl merge core0.yaml core1.yaml
  statctl merge phase*.yaml -o total.yaml`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMerge(args)
		},
	}
}

func runMerge(args []string) error {
	printVerbose("merging %d dumps\n", len(args))

	total, err := loadDump(args[0])
	if err != nil {
		return err
	}
	for _, path := range args[1:] {
		next, err := loadDump(path)
		if err != nil {
			return err
		}
		if err := combineDump(total, next, opAdd, ""); err != nil {
			return fmt.Errorf("merge %s: %w", path, err)
		}
	}

	return writeDump(total, mergeOut)
}
