package controller

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	m "github.com/mouse-blink/covall/internal/model"
)

var (
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	summaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

// TUI implements UI with styled output and a Bubble Tea report viewer.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// DisplayCoverageMissing prints the degraded-mode notice.
func (t *TUI) DisplayCoverageMissing(path m.Path) {
	_, _ = fmt.Fprintf(t.output, "%s File not found: %s\n", warnStyle.Render("Error:"), pathStyle.Render(string(path)))
}

// DisplayOutputWritten prints the success line.
func (t *TUI) DisplayOutputWritten(path m.Path) {
	_, _ = fmt.Fprintf(t.output, "%s File created: %s\n", doneStyle.Render("Done:"), pathStyle.Render(string(path)))
}

// DisplayOutputFailed prints the failure line for the coverage literal.
func (t *TUI) DisplayOutputFailed(path m.Path, err error) {
	_, _ = fmt.Fprintf(t.output, "%s File not created: %s: %v\n", errorStyle.Render("Error:"), pathStyle.Render(string(path)), err)
}

// DisplayAssetFailed prints one line per asset that could not be staged.
func (t *TUI) DisplayAssetFailed(name string, err error) {
	_, _ = fmt.Fprintf(t.output, "%s report file not staged: %s: %v\n", errorStyle.Render("Error:"), pathStyle.Render(name), err)
}

// DisplaySummary prints the coverage table followed by a one-line total.
func (t *TUI) DisplaySummary(coverage m.MergedCoverage) error {
	if len(coverage) == 0 {
		_, _ = fmt.Fprintln(t.output, warnStyle.Render("No source files found"))
		return nil
	}

	totals := coverage.Totals()

	_, _ = fmt.Fprintf(t.output, "\n%s", renderCoverageTable(coverage))
	_, _ = fmt.Fprintln(t.output, summaryStyle.Render(fmt.Sprintf(
		"Lines %.1f%% • Branches %.1f%% • Functions %.1f%%",
		totals.LinesPercent(), totals.BranchesPercent(), totals.FunctionsPercent(),
	)))

	return nil
}

// DisplayCoverage opens the interactive viewer when the report does not fit
// on screen and prints the table otherwise.
func (t *TUI) DisplayCoverage(coverage m.MergedCoverage) error {
	model := newCoverageModel(coverage)

	if f, ok := t.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model.width = width
			model.height = height
		}
	}

	if !model.needsPagination() {
		return t.DisplaySummary(coverage)
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run coverage viewer: %w", err)
	}

	return nil
}
