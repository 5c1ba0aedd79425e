package domain

import (
	m "github.com/mouse-blink/covall/internal/model"
)

// Merge left-joins the inventory against the parsed report. The result has
// exactly one record per inventory entry, in inventory order; files without
// coverage get zero counters and report entries outside the inventory are
// dropped.
func Merge(inventory m.FileInventory, report m.CoverageReport) m.MergedCoverage {
	merged := make(m.MergedCoverage, 0, len(inventory))

	for _, filename := range inventory {
		record := report[filename]
		record.Filename = filename
		merged = append(merged, record)
	}

	return merged
}
