package cmd

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "opaq", configBaseName)
	assert.Equal(t, "opaq.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "sln", slnFlagName)
	assert.Equal(t, "out", outFlagName)
	assert.Equal(t, "configuration", configurationFlagName)
	assert.Equal(t, "build.tool", buildToolKey)
	assert.Equal(t, "decompile.parallel", decompileParallelKey)
	assert.Equal(t, ".opaq.log", defaultLogFilename)
	assert.Equal(t, "OPAQ", envPrefix)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestConfigDefaults(t *testing.T) {
	assert.Equal(t, "Release", viper.GetString(configurationFlagName))
	assert.Equal(t, "dotnet", viper.GetString(buildToolKey))
	assert.Equal(t, "assemblies", viper.GetString(assembliesDirKey))
	assert.Equal(t, "sources", viper.GetString(sourcesDirKey))
	assert.True(t, viper.GetBool(decompileEnabledKey))
}

func TestBuildTimeout(t *testing.T) {
	previous := viper.Get(buildTimeoutKey)
	t.Cleanup(func() { viper.Set(buildTimeoutKey, previous) })

	viper.Set(buildTimeoutKey, 90)
	assert.Equal(t, 90*time.Second, buildTimeout())

	viper.Set(buildTimeoutKey, 0)
	assert.Equal(t, defaultBuildTimeout, buildTimeout())
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{" WARN ", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"loud", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelInfo))
		})
	}
}

func TestReadConfig(t *testing.T) {
	t.Cleanup(func() {
		viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	})

	t.Run("missing file is ignored", func(t *testing.T) {
		assert.NoError(t, readConfig(filepath.Join(t.TempDir(), configFileName)))
	})

	t.Run("malformed file is reported", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), configFileName)
		require.NoError(t, os.WriteFile(path, []byte("build:\n  tool: [dotnet\n"), 0o600))

		err := readConfig(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), path)
	})
}
