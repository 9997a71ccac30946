package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "opaq.dev/pkg/opaq/internal/model"
)

func TestYAMLReportStore_SaveAndLoad(t *testing.T) {
	store := NewReportStore(NewLocalArtifactFS())
	path := m.Path(filepath.Join(t.TempDir(), DefaultReportName))

	report := m.RunReport{
		Solution:      "/src/App.sln",
		Configuration: "Release",
		Output:        "/obf",
		Modules: []m.ModuleResult{
			{Input: "/src/App/bin/App.dll", Output: "/obf/assemblies/App.dll", Status: m.StatusObfuscated, Types: 2, Methods: 5, Skipped: 1},
			{Input: "/src/Lib/bin/Lib.dll", Status: m.StatusMissing, Error: "module not found: /src/Lib/bin/Lib.dll"},
		},
		Decompiled: []m.DecompileResult{{Module: "/obf/assemblies/App.dll", Output: "/obf/sources/App"}},
	}

	require.NoError(t, store.SaveReport(path, report))

	data, err := os.ReadFile(string(path))
	require.NoError(t, err)
	assert.Contains(t, string(data), "status: obfuscated")
	assert.Contains(t, string(data), "configuration: Release")

	loaded, err := store.LoadReport(path)
	require.NoError(t, err)
	assert.Equal(t, report, loaded)
	assert.Equal(t, []m.Path{"/obf/assemblies/App.dll"}, loaded.Outputs())
}

func TestYAMLReportStore_LoadErrors(t *testing.T) {
	store := NewReportStore(NewLocalArtifactFS())
	dir := t.TempDir()

	_, err := store.LoadReport(m.Path(filepath.Join(dir, "missing.yaml")))
	assert.ErrorContains(t, err, "read report")

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("modules: [unterminated"), 0o644))

	_, err = store.LoadReport(m.Path(broken))
	assert.ErrorContains(t, err, "parse report")
}
