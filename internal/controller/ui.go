// Package controller provides operator-facing output for opaq runs.
package controller

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "opaq.dev/pkg/opaq/internal/model"
)

// UI defines how the pipeline reports progress to the operator.
// Implementations must be safe to call from a single goroutine only.
type UI interface {
	DisplayStage(ctx context.Context, message string)
	DisplayWarning(ctx context.Context, message string, err error)
	DisplayModuleResult(ctx context.Context, result m.ModuleResult)
	DisplayDecompileResult(ctx context.Context, result m.DecompileResult)
	DisplaySummary(ctx context.Context, report m.RunReport)
}

// NewUI returns the UI matching the output: styled when writing to a terminal.
func NewUI(cmd *cobra.Command, styled bool) UI {
	return NewSimpleUI(cmd, styled)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
