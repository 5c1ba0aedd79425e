package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergedCoverage_Totals(t *testing.T) {
	mc := MergedCoverage{
		{Filename: "src/a.js", LinesCovered: 5, LinesTotal: 10, BranchesCovered: 1, BranchesTotal: 2, FunctionsCovered: 1, FunctionsTotal: 1},
		{Filename: "src/b.js", LinesCovered: 3, LinesTotal: 10, BranchesTotal: 2, FunctionsTotal: 3},
	}

	totals := mc.Totals()

	assert.Equal(t, CoverageTotals{
		Files:            2,
		LinesCovered:     8,
		LinesTotal:       20,
		BranchesCovered:  1,
		BranchesTotal:    4,
		FunctionsCovered: 1,
		FunctionsTotal:   4,
	}, totals)
	assert.InDelta(t, 40.0, totals.LinesPercent(), 0.001)
	assert.InDelta(t, 25.0, totals.BranchesPercent(), 0.001)
	assert.InDelta(t, 25.0, totals.FunctionsPercent(), 0.001)
}

func TestPercent_ZeroTotal(t *testing.T) {
	assert.Zero(t, Percent(3, 0))
	assert.Zero(t, MergedCoverage{}.Totals().LinesPercent())
}

func TestNormalizeSlashes(t *testing.T) {
	assert.Equal(t, "src/a/b.js", NormalizeSlashes(`src\a\b.js`))
	assert.Equal(t, "src/a/b.js", NormalizeSlashes("src/a/b.js"))
}
