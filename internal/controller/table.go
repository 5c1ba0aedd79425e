package controller

import (
	"bytes"
	"fmt"

	m "github.com/mouse-blink/covall/internal/model"
	"github.com/olekukonko/tablewriter"
)

// formatRatio renders "covered/total (pct%)".
func formatRatio(covered, total int) string {
	return fmt.Sprintf("%d/%d (%.1f%%)", covered, total, m.Percent(covered, total))
}

// renderCoverageTable lays out one row per file with a totals footer.
func renderCoverageTable(coverage m.MergedCoverage) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"File", "Lines", "Branches", "Functions"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})

	for _, record := range coverage {
		table.Append([]string{
			record.Filename,
			formatRatio(record.LinesCovered, record.LinesTotal),
			formatRatio(record.BranchesCovered, record.BranchesTotal),
			formatRatio(record.FunctionsCovered, record.FunctionsTotal),
		})
	}

	totals := coverage.Totals()

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", totals.Files),
		formatRatio(totals.LinesCovered, totals.LinesTotal),
		formatRatio(totals.BranchesCovered, totals.BranchesTotal),
		formatRatio(totals.FunctionsCovered, totals.FunctionsTotal),
	})

	table.Render()

	return tableBuffer.String()
}
