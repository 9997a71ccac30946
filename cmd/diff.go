package cmd

import (
	"github.com/spf13/cobra"

	m "opaq.dev/pkg/opaq/internal/model"
)

// diffCmd represents the diff command.
var diffCmd = newDiffCmd()

func newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <before> <after>",
		Short: "Show a unified diff between the listings of two modules",
		Long: `Render both modules as listings and print a unified diff, typically between
an input module and its obfuscated copy under <out>/assemblies.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := workflow.Diff(cmd.Context(), m.Path(args[0]), m.Path(args[1]))
			if err != nil {
				return err
			}

			cmd.Print(text)

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(diffCmd)
}
