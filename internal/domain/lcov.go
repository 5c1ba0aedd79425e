package domain

import (
	"strconv"
	"strings"

	m "github.com/mouse-blink/covall/internal/model"
)

const sourceFileTag = "SF:"

// counterFields maps LCOV summary tags to the record field they fill.
var counterFields = map[string]func(*m.CoverageRecord, int){
	"LH":  func(r *m.CoverageRecord, v int) { r.LinesCovered = v },
	"LF":  func(r *m.CoverageRecord, v int) { r.LinesTotal = v },
	"BRH": func(r *m.CoverageRecord, v int) { r.BranchesCovered = v },
	"BRF": func(r *m.CoverageRecord, v int) { r.BranchesTotal = v },
	"FNH": func(r *m.CoverageRecord, v int) { r.FunctionsCovered = v },
	"FNF": func(r *m.CoverageRecord, v int) { r.FunctionsTotal = v },
}

// ParseLCOV reads the per-file summary counters out of an LCOV tracefile.
//
// A record starts at an "SF:<filename>" line and runs until the next SF line.
// Only the first LH/LF/BRH/BRF/FNH/FNF line of a record counts; a value line
// without a terminating newline, or a value that is not a non-negative
// integer, counts as 0. A later record for the same file replaces the earlier
// one. An SF line without a newline ends parsing.
func ParseLCOV(text string) m.CoverageReport {
	report := make(m.CoverageReport)

	var (
		current *m.CoverageRecord
		seen    map[string]bool
	)

	flush := func() {
		if current != nil {
			report[current.Filename] = *current
		}

		current = nil
	}

	for len(text) > 0 {
		line, rest, terminated := strings.Cut(text, "\n")
		text = rest
		line = strings.TrimSuffix(line, "\r")

		if filename, ok := strings.CutPrefix(line, sourceFileTag); ok {
			flush()

			if !terminated {
				break
			}

			current = &m.CoverageRecord{Filename: filename}
			seen = make(map[string]bool, len(counterFields))

			continue
		}

		if current == nil || !terminated {
			continue
		}

		tag, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}

		set, known := counterFields[tag]
		if !known || seen[tag] {
			continue
		}

		seen[tag] = true
		set(current, parseCounter(value))
	}

	flush()

	return report
}

// parseCounter takes the whole value or nothing: "12abc" is 0, not 12.
func parseCounter(value string) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 0 {
		return 0
	}

	return n
}
