package controller

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/covall/internal/model"
)

const (
	percentWidth = 8
	// title, summary, footer, border and headers around the list
	coverageChromeHeight = 9
)

type tickMsg time.Time

type coverageItem struct {
	record m.CoverageRecord
}

func (c coverageItem) FilterValue() string {
	return c.record.Filename
}

// coverageDelegate renders one file per line: three percentages then the path.
type coverageDelegate struct {
	offset int
}

func (d coverageDelegate) Height() int  { return 1 }
func (d coverageDelegate) Spacing() int { return 0 }
func (d coverageDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d coverageDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	file, ok := item.(coverageItem)
	if !ok {
		return
	}

	isSelected := index == lm.Index()

	pathStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	width := lm.Width() - 3*(percentWidth+1) - 1

	var displayPath string

	if isSelected {
		pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		displayPath = animateScroll(file.record.Filename, width, d.offset)
	} else {
		displayPath = truncateToWidth(file.record.Filename, width)
	}

	r := file.record
	line := fmt.Sprintf("%s %s %s  %s",
		percentCell(r.LinesCovered, r.LinesTotal),
		percentCell(r.BranchesCovered, r.BranchesTotal),
		percentCell(r.FunctionsCovered, r.FunctionsTotal),
		pathStyle.Render(displayPath),
	)
	_, _ = fmt.Fprint(w, line)
}

// percentCell colors a ratio by how well it is covered; nothing instrumented
// renders as a faint dash.
func percentCell(covered, total int) string {
	style := lipgloss.NewStyle().Width(percentWidth).Align(lipgloss.Right)

	if total <= 0 {
		return style.Foreground(lipgloss.Color("8")).Render("-")
	}

	pct := m.Percent(covered, total)

	switch {
	case pct >= 80:
		style = style.Foreground(lipgloss.Color("10"))
	case pct >= 50:
		style = style.Foreground(lipgloss.Color("11"))
	default:
		style = style.Foreground(lipgloss.Color("9"))
	}

	return style.Render(fmt.Sprintf("%.1f%%", pct))
}

func animateScroll(text string, width int, offset int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	gap := "   "

	// ticks to hold still before scrolling
	pause := 5

	if offset < pause {
		return truncateToWidth(text, width)
	}

	runes := []rune(text + gap)
	n := len(runes)
	start := (offset - pause) % n

	res := make([]rune, 0, width)
	for i := range width {
		res = append(res, runes[(start+i)%n])
	}

	return string(res)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// coverageModel is the interactive browser for a merged coverage report.
type coverageModel struct {
	width        int
	height       int
	fileList     list.Model
	delegate     coverageDelegate
	totals       m.CoverageTotals
	animOffset   int
	lastSelected int
}

func newCoverageModel(coverage m.MergedCoverage) coverageModel {
	items := make([]list.Item, 0, len(coverage))
	for _, record := range coverage {
		items = append(items, coverageItem{record: record})
	}

	delegate := coverageDelegate{}
	fileList := list.New(items, delegate, 80, 20)
	fileList.SetShowPagination(false)
	fileList.SetShowFilter(true)
	fileList.SetShowHelp(false)
	fileList.SetShowTitle(false)
	fileList.SetShowStatusBar(false)
	fileList.FilterInput.Placeholder = "Filter by path…"

	lastSelected := -1
	if len(items) > 0 {
		lastSelected = 0
	}

	return coverageModel{
		fileList:     fileList,
		delegate:     delegate,
		totals:       coverage.Totals(),
		lastSelected: lastSelected,
	}
}

// needsPagination reports whether the report is taller than the terminal.
// An unknown height never paginates.
func (cm coverageModel) needsPagination() bool {
	if cm.height <= 0 {
		return false
	}

	return len(cm.fileList.Items())+coverageChromeHeight > cm.height
}

func (cm coverageModel) Init() tea.Cmd {
	return tea.Tick(time.Second/2, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (cm coverageModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		cm.width = msg.Width
		cm.height = msg.Height
		cm.fileList.SetWidth(cm.width)

	case tickMsg:
		if cm.fileList.FilterState() == list.Filtering {
			return cm, nil
		}

		cm.animOffset++
		cm.delegate.offset = cm.animOffset
		cm.fileList.SetDelegate(cm.delegate)

		return cm, tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case tea.KeyMsg:
		filtering := cm.fileList.FilterState() == list.Filtering

		switch {
		case msg.String() == "ctrl+c", msg.String() == "q" && !filtering:
			return cm, tea.Quit
		default:
			cm.fileList, cmd = cm.fileList.Update(msg)

			if cm.fileList.Index() != cm.lastSelected {
				cm.lastSelected = cm.fileList.Index()
				cm.animOffset = 0
				cm.delegate.offset = 0
				cm.fileList.SetDelegate(cm.delegate)
			}

			return cm, cmd
		}
	}

	return cm, cmd
}

func (cm coverageModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	title := titleStyle.Render("Coverage Report")

	summary := summaryStyle.Render(fmt.Sprintf(
		"Files: %s   Lines: %s   Branches: %s   Functions: %s",
		accentStyle.Render(fmt.Sprintf("%d", cm.totals.Files)),
		accentStyle.Render(formatRatio(cm.totals.LinesCovered, cm.totals.LinesTotal)),
		accentStyle.Render(formatRatio(cm.totals.BranchesCovered, cm.totals.BranchesTotal)),
		accentStyle.Render(formatRatio(cm.totals.FunctionsCovered, cm.totals.FunctionsTotal)),
	))

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(cm.width)

	footer := footerStyle.Render("↑/k up • ↓/j down • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		cm.renderTable(),
		footer,
	)
}

func (cm coverageModel) renderTable() string {
	listHeight := cm.height - coverageChromeHeight
	if listHeight < 5 {
		listHeight = 5
	}

	// margin, border and padding take six columns
	listWidth := cm.width - 6
	if listWidth < 40 {
		listWidth = 40
	}

	cm.fileList.SetHeight(listHeight)
	cm.fileList.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("%*s %*s %*s  %s",
		percentWidth, "Lines",
		percentWidth, "Branches",
		percentWidth, "Funcs",
		"File Path",
	))

	tableContainer := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	return tableContainer.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headers,
			cm.fileList.View(),
		),
	)
}
