package controller

import (
	"fmt"

	m "github.com/mouse-blink/covall/internal/model"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI with plain text on the command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayCoverageMissing prints the degraded-mode notice.
func (s *SimpleUI) DisplayCoverageMissing(path m.Path) {
	s.printf("Error: File not found: %s\n", path)
}

// DisplayOutputWritten prints the success line.
func (s *SimpleUI) DisplayOutputWritten(path m.Path) {
	s.printf("Done: File created: %s\n", path)
}

// DisplayOutputFailed prints the failure line for the coverage literal.
func (s *SimpleUI) DisplayOutputFailed(path m.Path, err error) {
	s.printf("Error: File not created: %s: %v\n", path, err)
}

// DisplayAssetFailed prints one line per asset that could not be staged.
func (s *SimpleUI) DisplayAssetFailed(name string, err error) {
	s.printf("Error: report file not staged: %s: %v\n", name, err)
}

// DisplaySummary prints the coverage table.
func (s *SimpleUI) DisplaySummary(coverage m.MergedCoverage) error {
	if len(coverage) == 0 {
		s.printf("No source files found\n")
		return nil
	}

	s.printf("\n%s", renderCoverageTable(coverage))

	return nil
}

// DisplayCoverage prints a stored report the same way as a fresh summary.
func (s *SimpleUI) DisplayCoverage(coverage m.MergedCoverage) error {
	return s.DisplaySummary(coverage)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
