package controller

import (
	"bytes"
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "opaq.dev/pkg/opaq/internal/model"
)

// SimpleUI implements UI using the cobra command's writers. Progress goes to
// stdout, warnings to stderr.
type SimpleUI struct {
	cmd    *cobra.Command
	styled bool
}

//nolint:gochecknoglobals // Styles are immutable.
var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command, styled bool) *SimpleUI {
	return &SimpleUI{cmd: cmd, styled: styled}
}

// DisplayStage announces a pipeline stage.
func (s *SimpleUI) DisplayStage(ctx context.Context, message string) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s\n", message)
}

// DisplayWarning reports a recoverable problem on stderr.
func (s *SimpleUI) DisplayWarning(ctx context.Context, message string, err error) {
	if ctx.Err() != nil {
		return
	}

	if err != nil {
		s.errorf("%s %s: %v\n", s.style(warnStyle, "warning:"), message, err)
		return
	}

	s.errorf("%s %s\n", s.style(warnStyle, "warning:"), message)
}

// DisplayModuleResult prints the outcome of one module.
func (s *SimpleUI) DisplayModuleResult(ctx context.Context, result m.ModuleResult) {
	if err := ctx.Err(); err != nil {
		return
	}

	switch result.Status {
	case m.StatusObfuscated:
		s.printf("%s %s -> %s (%d methods)\n", s.style(okStyle, "obfuscated"), result.Input, result.Output, result.Methods)
	case m.StatusMissing:
		s.errorf("%s %s\n", s.style(warnStyle, "missing"), result.Input)
	case m.StatusFailed:
		s.errorf("%s %s: %s\n", s.style(failStyle, "failed"), result.Input, result.Error)
	}
}

// DisplayDecompileResult prints where a listing was written, or why not.
func (s *SimpleUI) DisplayDecompileResult(ctx context.Context, result m.DecompileResult) {
	if err := ctx.Err(); err != nil {
		return
	}

	if result.Error != "" {
		s.errorf("%s %s: %s\n", s.style(failStyle, "decompile failed"), result.Module, result.Error)
		return
	}

	s.printf("%s %s -> %s\n", s.style(okStyle, "decompiled"), result.Module, result.Output)
}

// DisplaySummary prints a per-module table for the run.
func (s *SimpleUI) DisplaySummary(ctx context.Context, report m.RunReport) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("\n%s", renderSummaryTable(report))

	if report.Output != "" {
		s.printf("Obfuscated sources saved to: %s\n", report.Output)
	}
}

func renderSummaryTable(report m.RunReport) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Module", "Status", "Types", "Methods", "Skipped"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
	})

	methods := 0
	obfuscated := 0

	for _, result := range report.Modules {
		table.Append([]string{
			string(result.Input),
			string(result.Status),
			fmt.Sprintf("%d", result.Types),
			fmt.Sprintf("%d", result.Methods),
			fmt.Sprintf("%d", result.Skipped),
		})

		if result.Status == m.StatusObfuscated {
			obfuscated++
			methods += result.Methods
		}
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Modules %d", len(report.Modules)),
		fmt.Sprintf("%d obfuscated", obfuscated),
		"",
		fmt.Sprintf("%d", methods),
		"",
	})

	table.Render()

	return tableBuffer.String()
}

func (s *SimpleUI) style(style lipgloss.Style, text string) string {
	if !s.styled {
		return text
	}

	return style.Render(text)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func (s *SimpleUI) errorf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), format, args...)
}
