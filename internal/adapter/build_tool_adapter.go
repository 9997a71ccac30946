package adapter

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	m "opaq.dev/pkg/opaq/internal/model"
)

// DefaultBuildTool is the executable used to build solutions and query
// project properties.
const DefaultBuildTool = "dotnet"

// BuildTool is the upstream collaborator that compiles a project group and
// locates the compiled module of each project.
type BuildTool interface {
	// Build compiles every project of the solution in the given configuration.
	Build(ctx context.Context, solution m.Path, configuration string) error

	// TargetPath returns the compiled module path of a project, or an empty
	// path when the tool reports none.
	TargetPath(ctx context.Context, project m.Path, configuration string) (m.Path, error)
}

// DotnetBuildTool drives the dotnet CLI through a CommandRunner.
type DotnetBuildTool struct {
	runner CommandRunner
	tool   string
}

// NewDotnetBuildTool constructs a build tool. An empty tool name falls back
// to DefaultBuildTool.
func NewDotnetBuildTool(runner CommandRunner, tool string) *DotnetBuildTool {
	if strings.TrimSpace(tool) == "" {
		tool = DefaultBuildTool
	}

	return &DotnetBuildTool{runner: runner, tool: tool}
}

// Build runs `<tool> build <solution> -c <configuration>`.
func (b *DotnetBuildTool) Build(ctx context.Context, solution m.Path, configuration string) error {
	dir := filepath.Dir(string(solution))

	if _, err := b.runner.Run(ctx, dir, b.tool, "build", string(solution), "-c", configuration); err != nil {
		return fmt.Errorf("build %s: %w", solution, err)
	}

	return nil
}

// TargetPath asks msbuild for the TargetPath property and returns the last
// non-blank line of its output.
func (b *DotnetBuildTool) TargetPath(ctx context.Context, project m.Path, configuration string) (m.Path, error) {
	dir := filepath.Dir(string(project))

	output, err := b.runner.Run(ctx, dir, b.tool,
		"msbuild", string(project),
		"-getProperty:TargetPath",
		"-property:Configuration="+configuration,
	)
	if err != nil {
		return "", fmt.Errorf("query target path of %s: %w", project, err)
	}

	return m.Path(lastNonBlankLine(output)), nil
}

func lastNonBlankLine(output string) string {
	lines := strings.FieldsFunc(output, func(r rune) bool {
		return r == '\r' || r == '\n'
	})

	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}

	return ""
}
