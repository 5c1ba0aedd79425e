package controller

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestTUI_StatusLines(t *testing.T) {
	var buf bytes.Buffer
	ui := NewTUI(&buf)
	boom := errors.New("boom")

	ui.DisplayCoverageMissing("coverage/lcov.info")
	ui.DisplayOutputWritten("coverage/coverageFiles.js")
	ui.DisplayOutputFailed("coverage/coverageFiles.js", boom)
	ui.DisplayAssetFailed("js/app.js", boom)

	output := buf.String()

	for _, want := range []string{
		"File not found:",
		"coverage/lcov.info",
		"Done:",
		"File created:",
		"File not created:",
		"report file not staged:",
		"js/app.js",
		"boom",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}

	if lines := strings.Count(output, "\n"); lines != 4 {
		t.Fatalf("got %d lines, want 4\n%s", lines, output)
	}
}

func TestTUI_DisplaySummary(t *testing.T) {
	var buf bytes.Buffer
	ui := NewTUI(&buf)

	if err := ui.DisplaySummary(sampleCoverage()); err != nil {
		t.Fatalf("DisplaySummary() error = %v", err)
	}

	output := buf.String()

	for _, want := range []string{"src/a.js", "src/lib/b.js", "TOTAL FILES 2", "Lines 50.0%", "Branches 50.0%", "Functions 100.0%"} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestTUI_DisplaySummary_Empty(t *testing.T) {
	var buf bytes.Buffer

	if err := NewTUI(&buf).DisplaySummary(nil); err != nil {
		t.Fatalf("DisplaySummary() error = %v", err)
	}

	if !strings.Contains(buf.String(), "No source files found") {
		t.Fatalf("output = %q", buf.String())
	}
}

func TestTUI_DisplayCoverage_NonTerminalPrintsTable(t *testing.T) {
	var buf bytes.Buffer

	if err := NewTUI(&buf).DisplayCoverage(sampleCoverage()); err != nil {
		t.Fatalf("DisplayCoverage() error = %v", err)
	}

	if !strings.Contains(buf.String(), "TOTAL FILES 2") {
		t.Fatalf("output missing table\n%s", buf.String())
	}
}
