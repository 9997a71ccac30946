package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"opaq.dev/pkg/opaq/internal/adapter"
	"opaq.dev/pkg/opaq/internal/domain"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "opaq"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	slnFlagName           = "sln"
	outFlagName           = "out"
	configurationFlagName = "configuration"
	verboseFlagName       = "verbose"

	buildToolKey         = "build.tool"
	buildTimeoutKey      = "build.timeout"
	assembliesDirKey     = "output.assemblies_dir"
	sourcesDirKey        = "output.sources_dir"
	decompileEnabledKey  = "decompile.enabled"
	decompileParallelKey = "decompile.parallel"

	defaultBuildTimeout      = 10 * time.Minute
	defaultDecompileEnabled  = true
	defaultDecompileParallel = 1

	envPrefix = "OPAQ"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".opaq.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(configurationFlagName, domain.DefaultConfiguration)
	viper.SetDefault(buildToolKey, adapter.DefaultBuildTool)
	viper.SetDefault(buildTimeoutKey, int64(defaultBuildTimeout.Seconds()))
	viper.SetDefault(assembliesDirKey, domain.DefaultAssembliesDir)
	viper.SetDefault(sourcesDirKey, adapter.DefaultSourcesDir)
	viper.SetDefault(decompileEnabledKey, defaultDecompileEnabled)
	viper.SetDefault(decompileParallelKey, defaultDecompileParallel)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	cobra.CheckErr(readConfig(filepath.Join(configFolderPath, configFileName)))
}

// readConfig loads the config file at path. A missing file is not an error;
// a file that exists but cannot be parsed is.
func readConfig(path string) error {
	viper.SetConfigFile(path)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return fmt.Errorf("read config %s: %w", path, err)
	}

	return nil
}

// buildTimeout returns the configured per-command timeout.
func buildTimeout() time.Duration {
	seconds := viper.GetInt64(buildTimeoutKey)
	if seconds <= 0 {
		return defaultBuildTimeout
	}

	return time.Duration(seconds) * time.Second
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
