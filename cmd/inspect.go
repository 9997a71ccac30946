package cmd

import (
	"github.com/spf13/cobra"

	m "opaq.dev/pkg/opaq/internal/model"
)

// inspectCmd represents the inspect command.
var inspectCmd = newInspectCmd()

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <module>",
		Short: "Print the instruction listing of a module",
		Long:  "Load a module image and print every type and method body as an IL-style listing.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			listing, err := workflow.Listing(cmd.Context(), m.Path(args[0]))
			if err != nil {
				return err
			}

			cmd.Print(listing)

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
