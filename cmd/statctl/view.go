package main

import (
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newViewCmd())
}

func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view <dump>",
		Short: "Render a YAML dump in the plain text format",
		Long: `The view command re-renders a YAML statistics dump in the classic
indented text format, for quick reading in a terminal.

Example:
  statctl view run.stats.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(args)
		},
	}
}

func runView(args []string) error {
	root, err := loadDump(args[0])
	if err != nil {
		return err
	}
	return renderDumpText(os.Stdout, root, "")
}
