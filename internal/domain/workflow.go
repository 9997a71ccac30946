package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/sync/errgroup"

	"opaq.dev/pkg/opaq/internal/adapter"
	"opaq.dev/pkg/opaq/internal/controller"
	m "opaq.dev/pkg/opaq/internal/model"
)

// DefaultConfiguration is the build configuration used when none is given.
const DefaultConfiguration = "Release"

// ErrNoProjects is returned when the manifest lists no member projects.
var ErrNoProjects = errors.New("no C# projects found in solution")

// UpstreamError wraps a failure of the build tool. It is fatal for the run.
type UpstreamError struct {
	Stage string
	Err   error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Stage, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// RunArgs contains the arguments of a pipeline run.
type RunArgs struct {
	Solution      m.Path
	Output        m.Path
	Configuration string
	// Decompile enables the inspection listing stage.
	Decompile bool
	// Parallel bounds concurrent decompilation; values below 1 mean 1.
	Parallel int
}

// Workflow sequences build, discovery, transform and decompilation.
type Workflow interface {
	Run(ctx context.Context, args RunArgs) (m.RunReport, error)
	Listing(ctx context.Context, module m.Path) (string, error)
	Diff(ctx context.Context, before, after m.Path) (string, error)
	View(ctx context.Context, report m.Path) (m.RunReport, error)
}

type workflow struct {
	adapter.ArtifactFS
	adapter.ProjectLister
	adapter.BuildTool
	adapter.Decompiler
	adapter.ReportStore
	codec adapter.ModuleCodec
	controller.UI
	Obfuscator
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fs adapter.ArtifactFS,
	lister adapter.ProjectLister,
	buildTool adapter.BuildTool,
	codec adapter.ModuleCodec,
	decompiler adapter.Decompiler,
	reportStore adapter.ReportStore,
	ui controller.UI,
	obfuscator Obfuscator,
) Workflow {
	return &workflow{
		ArtifactFS:    fs,
		ProjectLister: lister,
		BuildTool:     buildTool,
		Decompiler:    decompiler,
		ReportStore:   reportStore,
		codec:         codec,
		UI:            ui,
		Obfuscator:    obfuscator,
	}
}

// Run executes the whole pipeline. Per-project and per-module problems are
// reported and skipped; build failures and an empty output set fail the run.
func (w *workflow) Run(ctx context.Context, args RunArgs) (m.RunReport, error) {
	if args.Configuration == "" {
		args.Configuration = DefaultConfiguration
	}

	solution, outRoot, err := w.prepare(args)
	if err != nil {
		return m.RunReport{}, err
	}

	report := m.RunReport{Solution: solution, Configuration: args.Configuration, Output: outRoot}

	w.DisplayStage(ctx, "Building solution...")

	if err := w.Build(ctx, solution, args.Configuration); err != nil {
		slog.Error("Build failed", "solution", solution, "error", err)
		return report, &UpstreamError{Stage: "build", Err: err}
	}

	modules, err := w.locateModules(ctx, solution, args.Configuration)
	if err != nil {
		return report, err
	}

	w.DisplayStage(ctx, "Obfuscating modules...")

	batch, batchErr := w.ObfuscateModules(ctx, modules, outRoot)
	report.Modules = batch.Results

	for _, result := range batch.Results {
		w.DisplayModuleResult(ctx, result)
	}

	if batchErr != nil {
		slog.Error("Transform stage failed", "error", batchErr, "modules", len(modules))
		w.saveReport(ctx, report)

		return report, batchErr
	}

	if args.Decompile {
		w.DisplayStage(ctx, "Decompiling obfuscated modules...")
		report.Decompiled = w.decompileAll(ctx, batch.Outputs(), outRoot, args.Parallel)

		for _, result := range report.Decompiled {
			w.DisplayDecompileResult(ctx, result)
		}
	}

	w.saveReport(ctx, report)
	w.DisplaySummary(ctx, report)

	return report, nil
}

func (w *workflow) prepare(args RunArgs) (m.Path, m.Path, error) {
	solution, err := w.Abs(args.Solution)
	if err != nil {
		return "", "", fmt.Errorf("resolve solution path: %w", err)
	}

	exists, err := w.Exists(solution)
	if err != nil {
		return "", "", fmt.Errorf("stat solution: %w", err)
	}

	if !exists {
		return "", "", fmt.Errorf("solution not found: %s", solution)
	}

	outRoot, err := w.Abs(args.Output)
	if err != nil {
		return "", "", fmt.Errorf("resolve output path: %w", err)
	}

	if err := w.MkdirAll(outRoot); err != nil {
		return "", "", fmt.Errorf("create output directory: %w", err)
	}

	return solution, outRoot, nil
}

// locateModules resolves the compiled module of every member project.
// Missing projects and projects without a target are skipped.
func (w *workflow) locateModules(ctx context.Context, solution m.Path, configuration string) ([]m.Path, error) {
	projects, err := w.Projects(solution)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	if len(projects) == 0 {
		return nil, ErrNoProjects
	}

	solutionDir := filepath.Dir(string(solution))
	modules := make([]m.Path, 0, len(projects))

	for _, project := range projects {
		projectPath, err := w.Abs(w.JoinPath(solutionDir, string(project)))
		if err != nil {
			return nil, fmt.Errorf("resolve project path: %w", err)
		}

		exists, err := w.Exists(projectPath)
		if err != nil || !exists {
			slog.Warn("Project not found", "project", projectPath, "error", err)
			w.DisplayWarning(ctx, fmt.Sprintf("project not found: %s", projectPath), err)

			continue
		}

		target, err := w.TargetPath(ctx, projectPath, configuration)
		if err != nil {
			slog.Error("Target path query failed", "project", projectPath, "error", err)
			return nil, &UpstreamError{Stage: "target path query", Err: err}
		}

		if target == "" {
			w.DisplayWarning(ctx, fmt.Sprintf("target module not found for project: %s", projectPath), nil)
			continue
		}

		modules = append(modules, target)
	}

	return modules, nil
}

// decompileAll renders listings with bounded parallelism. Failures are
// recorded per module and never abort the others.
func (w *workflow) decompileAll(ctx context.Context, modules []m.Path, outRoot m.Path, parallel int) []m.DecompileResult {
	if parallel < 1 {
		parallel = 1
	}

	results := make([]m.DecompileResult, len(modules))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(parallel)

	for i, module := range modules {
		group.Go(func() error {
			result := m.DecompileResult{Module: module}

			dir, err := w.Decompile(groupCtx, module, outRoot)
			if err != nil {
				slog.Error("Decompilation failed", "module", module, "error", err)
				result.Error = err.Error()
			} else {
				result.Output = dir
			}

			results[i] = result

			return nil
		})
	}

	_ = group.Wait()

	return results
}

func (w *workflow) saveReport(ctx context.Context, report m.RunReport) {
	path := w.JoinPath(string(report.Output), adapter.DefaultReportName)

	if err := w.SaveReport(path, report); err != nil {
		slog.Error("Failed to save report", "path", path, "error", err)
		w.DisplayWarning(ctx, "could not save run report", err)
	}
}

// Listing renders the module at path as text.
func (w *workflow) Listing(ctx context.Context, module m.Path) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	loaded, err := w.codec.Load(module)
	if err != nil {
		return "", err
	}

	return adapter.RenderModule(loaded), nil
}

// Diff returns a unified diff between the listings of two modules.
func (w *workflow) Diff(ctx context.Context, before, after m.Path) (string, error) {
	a, err := w.Listing(ctx, before)
	if err != nil {
		return "", err
	}

	b, err := w.Listing(ctx, after)
	if err != nil {
		return "", err
	}

	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(a),
		B:        difflib.SplitLines(b),
		FromFile: string(before),
		ToFile:   string(after),
		Context:  3,
	}

	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", fmt.Errorf("diff listings: %w", err)
	}

	return text, nil
}

// View loads a saved run report and displays its summary.
func (w *workflow) View(ctx context.Context, path m.Path) (m.RunReport, error) {
	report, err := w.LoadReport(path)
	if err != nil {
		return m.RunReport{}, err
	}

	w.DisplaySummary(ctx, report)

	return report, nil
}
