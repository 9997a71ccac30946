package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"

	"opaq.dev/pkg/opaq/internal/adapter"
	m "opaq.dev/pkg/opaq/internal/model"
)

// DefaultAssembliesDir is the subdirectory of the output root that receives
// rewritten modules.
const DefaultAssembliesDir = "assemblies"

// ErrNoModulesObfuscated is returned when a batch produced no output at all.
var ErrNoModulesObfuscated = errors.New("no modules were obfuscated")

// MissingInputError reports an input module that does not exist.
type MissingInputError struct {
	Path m.Path
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("module not found: %s", e.Path)
}

// BatchResult is the outcome of transforming a set of modules.
type BatchResult struct {
	Results []m.ModuleResult
	// Errors aggregates every per-module error; nil when all modules succeeded.
	Errors *multierror.Error
}

// Outputs returns the rewritten module paths in input order.
func (r BatchResult) Outputs() []m.Path {
	var outputs []m.Path

	for _, result := range r.Results {
		if result.Status == m.StatusObfuscated {
			outputs = append(outputs, result.Output)
		}
	}

	return outputs
}

// Obfuscator is the transform stage: load, rewrite every eligible method,
// write the result.
type Obfuscator interface {
	ObfuscateModule(ctx context.Context, input, outRoot m.Path) (m.ModuleResult, error)
	ObfuscateModules(ctx context.Context, inputs []m.Path, outRoot m.Path) (BatchResult, error)
}

type obfuscator struct {
	fs            adapter.ArtifactFS
	codec         adapter.ModuleCodec
	injector      Injector
	assembliesDir string
}

// NewObfuscator constructs an Obfuscator. An empty assembliesDir falls back
// to DefaultAssembliesDir.
func NewObfuscator(fs adapter.ArtifactFS, codec adapter.ModuleCodec, injector Injector, assembliesDir string) Obfuscator {
	if strings.TrimSpace(assembliesDir) == "" {
		assembliesDir = DefaultAssembliesDir
	}

	return &obfuscator{
		fs:            fs,
		codec:         codec,
		injector:      injector,
		assembliesDir: assembliesDir,
	}
}

// ObfuscateModules processes each input independently. A missing or broken
// module is recorded and skipped; only an empty output set fails the batch.
func (o *obfuscator) ObfuscateModules(ctx context.Context, inputs []m.Path, outRoot m.Path) (BatchResult, error) {
	var batch BatchResult

	for _, input := range inputs {
		if err := ctx.Err(); err != nil {
			return batch, err
		}

		result, err := o.ObfuscateModule(ctx, input, outRoot)
		batch.Results = append(batch.Results, result)

		if err != nil {
			batch.Errors = multierror.Append(batch.Errors, err)
			continue
		}

		slog.Info("Obfuscated module", "input", input, "output", result.Output, "methods", result.Methods)
	}

	if len(batch.Outputs()) == 0 {
		return batch, ErrNoModulesObfuscated
	}

	return batch, nil
}

// ObfuscateModule rewrites one module. Nothing is written unless every
// eligible method passed validation and was transformed.
func (o *obfuscator) ObfuscateModule(ctx context.Context, input, outRoot m.Path) (m.ModuleResult, error) {
	result := m.ModuleResult{Input: input, Status: m.StatusFailed}

	if err := ctx.Err(); err != nil {
		result.Error = err.Error()
		return result, err
	}

	exists, err := o.fs.Exists(input)
	if err != nil {
		slog.Error("Failed to stat module", "input", input, "error", err)
		return o.fail(result, fmt.Errorf("stat %s: %w", input, err))
	}

	if !exists {
		slog.Warn("Module not found, skipping", "input", input)

		result.Status = m.StatusMissing

		return o.fail(result, &MissingInputError{Path: input})
	}

	module, err := o.codec.Load(input)
	if err != nil {
		slog.Error("Failed to load module", "input", input, "error", err)
		return o.fail(result, err)
	}

	types := Types(module)
	methods := EligibleMethods(module)

	result.Types = len(types)
	result.Methods = len(methods)
	result.Skipped = countMethods(types) - len(methods)

	if err := o.transform(methods); err != nil {
		slog.Error("Refusing to write module with malformed method", "input", input, "error", err)
		return o.fail(result, fmt.Errorf("%s: %w", input, err))
	}

	output := o.fs.JoinPath(string(outRoot), o.assembliesDir, filepath.Base(string(input)))

	if err := o.codec.Save(output, module); err != nil {
		slog.Error("Failed to write module", "output", output, "error", err)
		return o.fail(result, err)
	}

	result.Output = output
	result.Status = m.StatusObfuscated

	if sum, err := o.fs.HashFile(output); err == nil {
		result.SHA256 = sum
	} else {
		slog.Warn("Failed to hash module", "output", output, "error", err)
	}

	return result, nil
}

// transform validates every method before mutating any of them.
func (o *obfuscator) transform(methods []*m.Method) error {
	for _, method := range methods {
		if err := Validate(method); err != nil {
			return err
		}
	}

	for _, method := range methods {
		if err := o.injector.Inject(method); err != nil {
			return err
		}

		slog.Debug("Inserted entry guard", "method", method.FullName(), "instructions", len(method.Body.Instructions))
	}

	return nil
}

func (o *obfuscator) fail(result m.ModuleResult, err error) (m.ModuleResult, error) {
	if result.Status != m.StatusMissing {
		result.Status = m.StatusFailed
	}

	result.Error = err.Error()

	return result, err
}

func countMethods(types []*m.TypeDef) int {
	count := 0
	for _, typ := range types {
		count += len(typ.Methods)
	}

	return count
}
