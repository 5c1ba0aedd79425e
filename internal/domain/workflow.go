// Package domain holds the coverage pipeline: parsing, merging and the
// workflow that sequences the adapters.
package domain

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/mouse-blink/covall/internal/adapter"
	"github.com/mouse-blink/covall/internal/apperrors"
	"github.com/mouse-blink/covall/internal/controller"
	m "github.com/mouse-blink/covall/internal/model"
)

// BuildArgs describes one build run.
type BuildArgs struct {
	SourceRoot   m.Path
	Exclude      []string
	CoverageFile m.Path
	OutputFile   m.Path
	OutputDir    m.Path
	Identifier   string
	Templates    fs.FS
	Assets       []string
}

// ViewArgs describes which generated report to display.
type ViewArgs struct {
	OutputFile m.Path
	Identifier string
}

// Workflow defines the interface for coverage report operations.
type Workflow interface {
	Build(args BuildArgs) error
	View(args ViewArgs) error
}

type workflow struct {
	fsAdapter   adapter.SourceFSAdapter
	reportStore adapter.ReportStore
	stager      adapter.AssetStager
	ui          controller.UI
	log         *slog.Logger
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	reportStore adapter.ReportStore,
	stager adapter.AssetStager,
	ui controller.UI,
	log *slog.Logger,
) Workflow {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	return &workflow{
		fsAdapter:   fsAdapter,
		reportStore: reportStore,
		stager:      stager,
		ui:          ui,
		log:         log,
	}
}

// Build enumerates sources, merges them with the LCOV report, writes the
// coverage literal and stages the report assets.
//
// A missing source root or an unreadable coverage file is fatal and nothing
// is written. A missing coverage file only degrades the run to zero coverage.
// A failed output write still stages the assets before the error is returned.
// Asset failures are reported one by one and never fail the run.
func (w *workflow) Build(args BuildArgs) error {
	log := w.log.With(slog.String("op", "build"))

	inventory, err := w.fsAdapter.Enumerate(args.SourceRoot, args.Exclude)
	if err != nil {
		return fmt.Errorf("enumerate %s: %w", args.SourceRoot, err)
	}

	log.Debug("sources enumerated", slog.String("root", string(args.SourceRoot)), slog.Int("files", len(inventory)))

	text, err := w.readCoverage(args.CoverageFile)
	if err != nil {
		return err
	}

	report := ParseLCOV(text)
	log.Debug("coverage parsed", slog.String("file", string(args.CoverageFile)), slog.Int("records", len(report)))

	merged := Merge(inventory, report)

	saveErr := w.reportStore.SaveCoverage(args.OutputFile, args.Identifier, merged)

	w.stageAssets(log, args)

	if saveErr != nil {
		w.ui.DisplayOutputFailed(args.OutputFile, saveErr)

		return fmt.Errorf("write %s: %w", args.OutputFile, saveErr)
	}

	log.Info("coverage written", slog.String("file", string(args.OutputFile)), slog.Int("records", len(merged)))
	w.ui.DisplayOutputWritten(args.OutputFile)

	return w.ui.DisplaySummary(merged)
}

// View loads a previously written coverage literal and displays it.
func (w *workflow) View(args ViewArgs) error {
	coverage, err := w.reportStore.LoadCoverage(args.OutputFile, args.Identifier)
	if err != nil {
		return fmt.Errorf("load %s: %w", args.OutputFile, err)
	}

	return w.ui.DisplayCoverage(coverage)
}

// readCoverage returns the slash-normalized report text. Absence is not an
// error: the caller continues with empty coverage.
func (w *workflow) readCoverage(path m.Path) (string, error) {
	data, err := w.fsAdapter.ReadFile(path)

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		data = nil
	case err != nil:
		return "", fmt.Errorf("read coverage %s: %w", path, err)
	}

	if len(data) == 0 {
		w.log.Warn("coverage report missing, assuming no coverage", slog.String("file", string(path)))
		w.ui.DisplayCoverageMissing(path)

		return "", nil
	}

	return m.NormalizeSlashes(string(data)), nil
}

func (w *workflow) stageAssets(log *slog.Logger, args BuildArgs) {
	results := w.stager.Stage(args.Templates, args.Assets, args.OutputDir)

	for _, result := range results {
		if result.Err == nil {
			continue
		}

		log.Warn("asset not staged", slog.String("asset", result.Name), slog.Any("error", result.Err))
		w.ui.DisplayAssetFailed(result.Name, result.Err)
	}
}
