// Package cmd provides the root command and CLI setup for opaq.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"opaq.dev/pkg/opaq/internal/adapter"
	"opaq.dev/pkg/opaq/internal/controller"
	"opaq.dev/pkg/opaq/internal/domain"
	m "opaq.dev/pkg/opaq/internal/model"
)

var artifactFS adapter.ArtifactFS
var commandRunner adapter.CommandRunner
var moduleCodec adapter.ModuleCodec
var projectLister adapter.ProjectLister
var buildTool adapter.BuildTool
var decompiler adapter.Decompiler
var reportStore adapter.ReportStore
var obfuscator domain.Obfuscator
var workflow domain.Workflow
var ui controller.UI

var slnFlag string
var outFlag string
var configurationFlag string
var verboseFlag bool

var (
	// errMissingRequiredFlags is returned when --sln or --out is not provided.
	errMissingRequiredFlags = errors.New("both --sln and --out are required")
	// errMissingReport is returned by view when neither a path nor --out is known.
	errMissingReport = errors.New("report path required: pass it as an argument or set --out")
)

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	artifactFS = adapter.NewLocalArtifactFS()
	commandRunner = adapter.NewLocalCommandRunner(buildTimeout())
	moduleCodec = adapter.NewCBORModuleCodec(artifactFS)
	projectLister = adapter.NewManifestProjectLister(artifactFS)
	buildTool = adapter.NewDotnetBuildTool(commandRunner, viper.GetString(buildToolKey))
	decompiler = adapter.NewListingDecompiler(artifactFS, moduleCodec, viper.GetString(sourcesDirKey))
	reportStore = adapter.NewReportStore(artifactFS)
	obfuscator = domain.NewObfuscator(
		artifactFS,
		moduleCodec,
		domain.NewOpaquePredicateInjector(),
		viper.GetString(assembliesDirKey),
	)
	workflow = domain.NewWorkflow(
		artifactFS,
		projectLister,
		buildTool,
		moduleCodec,
		decompiler,
		reportStore,
		ui,
		obfuscator,
	)
}

const rootLongDescription = `opaq builds a solution, injects an opaque-predicate entry guard into every
method body of each compiled module, and writes the rewritten modules to
<out>/assemblies. A readable listing of every rewritten module is written to
<out>/sources for inspection.

The guard stores false into a fresh boolean local and branches on it, so the
branch is never taken and program behavior is unchanged.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "opaq --sln <solution> --out <dir> [--configuration Release]",
		Short:        "Control-flow obfuscation for compiled modules",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			solution := strings.TrimSpace(viper.GetString(slnFlagName))
			out := strings.TrimSpace(viper.GetString(outFlagName))

			if solution == "" || out == "" {
				_ = cmd.Usage()
				return errMissingRequiredFlags
			}

			_, err := workflow.Run(cmd.Context(), domain.RunArgs{
				Solution:      m.Path(solution),
				Output:        m.Path(out),
				Configuration: viper.GetString(configurationFlagName),
				Decompile:     viper.GetBool(decompileEnabledKey),
				Parallel:      viper.GetInt(decompileParallelKey),
			})

			return err
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&slnFlag, slnFlagName, "", "path to the solution (.sln) or workspace (.toml) manifest")
	bindFlagToConfig(cmd.Flags().Lookup(slnFlagName), slnFlagName)

	cmd.PersistentFlags().StringVar(&outFlag, outFlagName, "", "output directory for obfuscated modules, listings and the run report")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outFlagName), outFlagName)

	cmd.Flags().StringVar(&configurationFlag, configurationFlagName, viper.GetString(configurationFlagName), "build configuration")
	bindFlagToConfig(cmd.Flags().Lookup(configurationFlagName), configurationFlagName)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
