// Package controller provides output adapters for displaying coverage results.
package controller

import (
	m "github.com/mouse-blink/covall/internal/model"
)

// UI defines how the workflow reports progress and results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// DisplayCoverageMissing reports that the LCOV file was absent or empty.
	DisplayCoverageMissing(path m.Path)
	// DisplayOutputWritten confirms the coverage literal was written.
	DisplayOutputWritten(path m.Path)
	// DisplayOutputFailed reports that the coverage literal was not written.
	DisplayOutputFailed(path m.Path, err error)
	// DisplayAssetFailed reports a single report asset that was not staged.
	DisplayAssetFailed(name string, err error)
	// DisplaySummary prints the per-file table after a build.
	DisplaySummary(coverage m.MergedCoverage) error
	// DisplayCoverage shows a previously generated report.
	DisplayCoverage(coverage m.MergedCoverage) error
}
