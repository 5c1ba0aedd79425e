package domain

import (
	"testing"

	m "github.com/mouse-blink/covall/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestMerge(t *testing.T) {
	t.Run("unmatched inventory entries get zero counters", func(t *testing.T) {
		report := m.CoverageReport{
			"a.js": {Filename: "a.js", LinesCovered: 5, LinesTotal: 10, BranchesCovered: 1, BranchesTotal: 2, FunctionsCovered: 1, FunctionsTotal: 1},
		}

		got := Merge(m.FileInventory{"a.js", "b.js"}, report)

		assert.Equal(t, m.MergedCoverage{
			{Filename: "a.js", LinesCovered: 5, LinesTotal: 10, BranchesCovered: 1, BranchesTotal: 2, FunctionsCovered: 1, FunctionsTotal: 1},
			{Filename: "b.js"},
		}, got)
	})

	t.Run("report-only files are dropped", func(t *testing.T) {
		report := m.CoverageReport{
			"a.js":     {Filename: "a.js", LinesTotal: 1},
			"other.js": {Filename: "other.js", LinesTotal: 3},
		}

		got := Merge(m.FileInventory{"a.js"}, report)

		assert.Equal(t, m.MergedCoverage{{Filename: "a.js", LinesTotal: 1}}, got)
	})

	t.Run("inventory order is preserved", func(t *testing.T) {
		inventory := m.FileInventory{"src/z.js", "src/a.js", "src/lib/m.js"}

		got := Merge(inventory, m.CoverageReport{})

		assert.Len(t, got, len(inventory))
		for i, record := range got {
			assert.Equal(t, inventory[i], record.Filename)
		}
	})

	t.Run("empty inventory", func(t *testing.T) {
		got := Merge(nil, m.CoverageReport{"a.js": {Filename: "a.js"}})

		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}
