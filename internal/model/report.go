package model

// CoverageRecord holds the LCOV counters for a single source file.
// Field order is the serialized order.
type CoverageRecord struct {
	Filename         string `json:"filename"`
	LinesCovered     int    `json:"linesCovered"`
	LinesTotal       int    `json:"linesTotal"`
	BranchesCovered  int    `json:"branchesCovered"`
	BranchesTotal    int    `json:"branchesTotal"`
	FunctionsCovered int    `json:"functionsCovered"`
	FunctionsTotal   int    `json:"functionsTotal"`
}

// CoverageReport maps a filename to its parsed counters.
type CoverageReport map[string]CoverageRecord

// MergedCoverage is one record per inventory entry, in inventory order.
type MergedCoverage []CoverageRecord

// CoverageTotals sums counters across a MergedCoverage.
type CoverageTotals struct {
	Files            int
	LinesCovered     int
	LinesTotal       int
	BranchesCovered  int
	BranchesTotal    int
	FunctionsCovered int
	FunctionsTotal   int
}

// Totals adds up every record.
func (mc MergedCoverage) Totals() CoverageTotals {
	totals := CoverageTotals{Files: len(mc)}

	for _, r := range mc {
		totals.LinesCovered += r.LinesCovered
		totals.LinesTotal += r.LinesTotal
		totals.BranchesCovered += r.BranchesCovered
		totals.BranchesTotal += r.BranchesTotal
		totals.FunctionsCovered += r.FunctionsCovered
		totals.FunctionsTotal += r.FunctionsTotal
	}

	return totals
}

// LinesPercent returns line coverage in percent, 0 when nothing is instrumented.
func (t CoverageTotals) LinesPercent() float64 { return percent(t.LinesCovered, t.LinesTotal) }

// BranchesPercent returns branch coverage in percent.
func (t CoverageTotals) BranchesPercent() float64 { return percent(t.BranchesCovered, t.BranchesTotal) }

// FunctionsPercent returns function coverage in percent.
func (t CoverageTotals) FunctionsPercent() float64 {
	return percent(t.FunctionsCovered, t.FunctionsTotal)
}

// Percent formats covered/total the same way for a single record.
func Percent(covered, total int) float64 { return percent(covered, total) }

func percent(covered, total int) float64 {
	if total <= 0 {
		return 0
	}

	return float64(covered) * 100 / float64(total)
}

// StageResult is the outcome of copying one report asset.
type StageResult struct {
	Name string
	Err  error
}
