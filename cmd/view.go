package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"opaq.dev/pkg/opaq/internal/adapter"
	m "opaq.dev/pkg/opaq/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [report]",
		Short: "View a previously saved run report",
		Long: `View the summary of a previous run. The report defaults to
<out>/` + adapter.DefaultReportName + ` when --out is set in the config or environment.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reportPath, err := resolveReportPath(args)
			if err != nil {
				return err
			}

			_, err = workflow.View(cmd.Context(), reportPath)

			return err
		},
	}

	return cmd
}

func resolveReportPath(args []string) (m.Path, error) {
	if len(args) == 1 {
		return m.Path(args[0]), nil
	}

	out := viper.GetString(outFlagName)
	if out == "" {
		return "", errMissingReport
	}

	return artifactFS.JoinPath(out, adapter.DefaultReportName), nil
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
