package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"

	"opaq.dev/pkg/opaq/internal/adapter"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the build version, module image format and Go version used to build opaq.",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println("image format\t", adapter.ModuleImageFormat)

			info, ok := debug.ReadBuildInfo()
			if !ok || info.Main.Version == "" {
				cmd.Println("version: unknown")
				return
			}

			cmd.Println("tool version\t", info.Main.Version)
			cmd.Println("go version\t", info.GoVersion)
		},
	}
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
