package adapter

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	m "opaq.dev/pkg/opaq/internal/model"
)

const (
	solutionProjectPrefix = "Project("
	projectFileExtension  = ".csproj"
)

// ErrUnsupportedManifest is returned for manifests that are neither a
// solution file nor a TOML workspace.
var ErrUnsupportedManifest = errors.New("unsupported project manifest")

// ProjectLister lists the member projects of a project-group manifest. Paths
// are returned as written in the manifest, relative to its directory, using
// the host path separator.
type ProjectLister interface {
	Projects(manifest m.Path) ([]m.Path, error)
}

// ManifestProjectLister dispatches on the manifest extension: .sln files are
// scanned line by line, .toml files are decoded as a workspace.
type ManifestProjectLister struct {
	fs ArtifactFS
}

// NewManifestProjectLister constructs a ManifestProjectLister reading through fs.
func NewManifestProjectLister(fs ArtifactFS) *ManifestProjectLister {
	return &ManifestProjectLister{fs: fs}
}

// Projects reads the manifest and returns its member project paths.
func (l *ManifestProjectLister) Projects(manifest m.Path) ([]m.Path, error) {
	data, err := l.fs.ReadFile(manifest)
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", manifest, err)
	}

	switch strings.ToLower(filepath.Ext(string(manifest))) {
	case ".sln":
		return ParseSolution(data)
	case ".toml":
		return ParseWorkspace(data)
	}

	return nil, fmt.Errorf("%w: %s", ErrUnsupportedManifest, manifest)
}

// ParseSolution extracts C# project paths from solution file content. Only
// lines starting with `Project(` whose second comma-separated field names a
// .csproj file are considered.
func ParseSolution(data []byte) ([]m.Path, error) {
	var projects []m.Path

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, solutionProjectPrefix) {
			continue
		}

		parts := strings.Split(line, ",")
		if len(parts) < 2 {
			continue
		}

		path := strings.Trim(strings.TrimSpace(parts[1]), `"`)
		if !strings.HasSuffix(strings.ToLower(path), projectFileExtension) {
			continue
		}

		projects = append(projects, m.Path(filepath.FromSlash(strings.ReplaceAll(path, `\`, "/"))))
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan solution: %w", err)
	}

	return projects, nil
}

type workspaceManifest struct {
	Projects []workspaceProject `toml:"project"`
}

type workspaceProject struct {
	Path string `toml:"path"`
	Skip bool   `toml:"skip"`
}

// ParseWorkspace decodes an opaq.toml workspace:
//
//	[[project]]
//	path = "src/App/App.csproj"
func ParseWorkspace(data []byte) ([]m.Path, error) {
	var manifest workspaceManifest
	if err := toml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("parse workspace: %w", err)
	}

	var projects []m.Path

	for _, project := range manifest.Projects {
		path := strings.TrimSpace(project.Path)
		if project.Skip || path == "" {
			continue
		}

		projects = append(projects, m.Path(filepath.FromSlash(path)))
	}

	return projects, nil
}
