// Package scoresui provides the Bubble Tea score browser.
package scoresui

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"letterfall/internal/letters"
	"letterfall/internal/score"
	"letterfall/internal/stats"
)

const (
	tabOverview = iota
	tabGames
	tabLetters
)

const (
	plotHeight    = 10
	gamesTableCap = 100
)

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	cardStyle   = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	tableMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))
)

// Model implements the Bubble Tea score browser.
type Model struct {
	store *score.Store

	limit  int
	window int

	games    []score.GameRecord
	topGames []score.GameRecord
	letters  []score.LetterAggregate
	errMsg   string

	tabs        []string
	activeTab   int
	viewports   []viewport.Model
	gamesTable  table.Model
	gamesLayout tableLayout

	width  int
	height int

	filterMode   bool
	filterInputs []textinput.Model
	filterIndex  int
	filterError  string
}

type tableLayout struct {
	width  int
	height int
}

// NewModel constructs a score browser over the store. limit bounds the
// games considered (0 means all); window smooths the curves.
func NewModel(st *score.Store, limit, window int) *Model {
	m := &Model{
		store:  st,
		limit:  limit,
		window: window,
		tabs:   []string{"Overview", "Games", "Letters"},
	}
	m.initInputs()
	m.initGamesTable()
	m.initViewports()
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.renderTabContents()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.String() == "q" {
			return m, tea.Quit
		}
		if m.activeTab == tabGames {
			m.gamesTable.Focus()
		} else {
			m.gamesTable.Blur()
		}
		if m.filterMode {
			return m.updateFilter(msg)
		}
		switch msg.String() {
		case "left", "h":
			m.moveTab(-1)
			return m, tea.ClearScreen
		case "right", "l":
			m.moveTab(1)
			return m, tea.ClearScreen
		case "=":
			m.window = nextWindow(m.window)
			m.renderTabContents()
			return m, nil
		case "-":
			m.window = prevWindow(m.window)
			m.renderTabContents()
			return m, nil
		case "/":
			return m.startFilter()
		case "g", "home":
			if m.activeTab == tabGames {
				m.gamesTable.GotoTop()
			} else {
				m.viewports[m.activeTab].GotoTop()
			}
			return m, nil
		case "G", "end":
			if m.activeTab == tabGames {
				m.gamesTable.GotoBottom()
			} else {
				m.viewports[m.activeTab].GotoBottom()
			}
			return m, nil
		default:
			if m.activeTab == tabGames {
				var cmd tea.Cmd
				m.gamesTable, cmd = m.gamesTable.Update(msg)
				return m, cmd
			}
			vp := m.viewports[m.activeTab]
			var cmd tea.Cmd
			vp, cmd = vp.Update(msg)
			m.viewports[m.activeTab] = vp
			return m, cmd
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	headerHeight, bodyHeight, footerHeight := m.layoutHeights()
	header := fitLines(m.renderHeader(), m.width, headerHeight)
	body := fitLines(m.renderBody(bodyHeight), m.width, bodyHeight)
	footer := fitLines(m.renderFooter(), m.width, footerHeight)
	return strings.Join([]string{header, body, footer}, "\n")
}

func (m *Model) initViewports() {
	m.viewports = make([]viewport.Model, len(m.tabs))
	for i := range m.viewports {
		m.viewports[i] = viewport.New(0, 0)
	}
}

func (m *Model) initInputs() {
	m.filterInputs = []textinput.Model{
		newFilterInput("Last games: "),
		newFilterInput("Curve window: "),
	}
	m.setInputsFromConfig()
}

func (m *Model) initGamesTable() {
	cols, _ := gamesTableData(nil)
	m.gamesTable = table.New(
		table.WithColumns(cols),
		table.WithHeight(1),
	)
	m.gamesTable.SetStyles(gamesTableStyles())
}

func newFilterInput(prompt string) textinput.Model {
	input := textinput.New()
	input.Prompt = prompt
	input.CharLimit = 0
	input.Cursor.SetMode(cursor.CursorBlink)
	return input
}

func (m *Model) setInputsFromConfig() {
	if len(m.filterInputs) == 0 {
		return
	}
	if m.limit > 0 {
		m.filterInputs[0].SetValue(strconv.Itoa(m.limit))
	} else {
		m.filterInputs[0].SetValue("")
	}
	m.filterInputs[1].SetValue(strconv.Itoa(m.window))
}

func (m *Model) layoutHeights() (headerHeight, bodyHeight, footerHeight int) {
	tabsHeight := lipgloss.Height(activeNavStyle.Render("X"))
	if tabsHeight < 1 {
		tabsHeight = 1
	}
	headerHeight = tabsHeight + 1
	footerHeight = 1
	if !m.filterMode && m.errMsg != "" {
		footerHeight++
	}
	bodyHeight = m.height - headerHeight - footerHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	return headerHeight, bodyHeight, footerHeight
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	_, vpHeight, _ := m.layoutHeights()
	for i := range m.viewports {
		m.viewports[i].Width = m.width
		m.viewports[i].Height = vpHeight
	}
	m.setGamesTableSize(m.width, vpHeight)
	for i := range m.filterInputs {
		promptWidth := lipgloss.Width(m.filterInputs[i].Prompt)
		m.filterInputs[i].Width = maxInt(10, m.width-promptWidth-2)
	}
}

func (m *Model) moveTab(delta int) {
	count := len(m.tabs)
	if count == 0 {
		return
	}
	next := m.activeTab + delta
	if next < 0 {
		next = count - 1
	}
	if next >= count {
		next = 0
	}
	m.activeTab = next
	if m.activeTab == tabGames {
		m.gamesTable.Focus()
	} else {
		m.gamesTable.Blur()
	}
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.activeTab {
			parts = append(parts, activeNavStyle.Render(tab))
		} else {
			parts = append(parts, inactiveNavStyle.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderHeader() string {
	tabs := padLines(m.renderTabs(), m.width)
	summary := padLines(m.renderFilterSummary(), m.width)
	return tabs + "\n" + summary
}

func (m *Model) renderFilterSummary() string {
	last := "all"
	if m.limit > 0 {
		last = strconv.Itoa(m.limit)
	}
	summary := fmt.Sprintf("Settings: last=%s  window=%d", last, m.window)
	summary = truncateLine(summary, m.width)
	return headerStyle.Render(summary)
}

func (m *Model) renderHelp() string {
	help := "Nav: left/right  Scroll: up/down/pgup/pgdn  Window: -/=  Settings: /  Quit: q"
	return headerStyle.Render(help)
}

func (m *Model) renderFilterHelp() string {
	return headerStyle.Render("tab/shift+tab: next field  enter: apply  esc: cancel  quit: q")
}

func (m *Model) renderFooter() string {
	if m.filterMode {
		return m.renderFilterHelp()
	}
	if m.errMsg != "" {
		return m.renderHelp() + "\n" + errorStyle.Render(m.errMsg)
	}
	return m.renderHelp()
}

func (m *Model) renderFilterForm() string {
	lines := []string{"Settings (enter to apply, esc to cancel)"}
	for _, input := range m.filterInputs {
		lines = append(lines, input.View())
	}
	if m.filterError != "" {
		lines = append(lines, errorStyle.Render(m.filterError))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderBody(height int) string {
	if m.filterMode {
		return fitLines(m.renderFilterForm(), m.width, height)
	}
	if m.activeTab == tabGames {
		if len(m.topGames) == 0 {
			return fitLines("No games found.", m.width, height)
		}
		view := tableMutedStyle.Render(m.gamesTable.View())
		return fitLines(view, m.width, height)
	}
	return fitLines(m.viewports[m.activeTab].View(), m.width, height)
}

func (m *Model) refresh() {
	ctx := context.Background()
	games, err := m.store.ListGames(ctx, m.limit)
	if err != nil {
		m.fail(err)
		return
	}
	top, err := m.store.TopGames(ctx, gamesTableCap)
	if err != nil {
		m.fail(err)
		return
	}
	aggs, err := m.store.LetterAggregates(ctx, m.limit)
	if err != nil {
		m.fail(err)
		return
	}
	m.errMsg = ""
	m.games = games
	m.topGames = top
	m.letters = aggs

	width := m.width
	if width <= 0 {
		width = 80
	}
	_, bodyHeight, _ := m.layoutHeights()
	m.applyGamesTable(width, bodyHeight)
	m.renderTabContents()
}

func (m *Model) fail(err error) {
	m.errMsg = err.Error()
	for i := range m.viewports {
		m.viewports[i].SetContent("Failed to load scores.")
	}
}

func (m *Model) renderTabContents() {
	if len(m.viewports) == 0 {
		return
	}
	if m.errMsg != "" {
		for i := range m.viewports {
			m.viewports[i].SetContent("Failed to load scores.")
		}
		return
	}
	width := m.width
	if width <= 0 {
		width = 80
	}
	m.viewports[tabOverview].SetContent(renderOverview(m.games, m.window, width))
	m.viewports[tabLetters].SetContent(renderLetters(m.letters, m.limit))
}

func renderOverview(games []score.GameRecord, window, width int) string {
	if len(games) == 0 {
		return "No games found."
	}
	summary := renderSummaryCards(games, width)
	curves := renderCurves(games, window, width)
	return strings.TrimRight(summary+"\n\n"+curves, "\n")
}

func renderSummaryCards(games []score.GameRecord, width int) string {
	rep := score.BuildReport(games)
	bestScore := 0
	if rep.Best != nil {
		bestScore = rep.Best.Score
	}
	bestWord := "-"
	if rep.BestWord != "" {
		bestWord = fmt.Sprintf("%s (%d)", rep.BestWord, rep.BestWordPoints)
	}
	cards := []string{
		metricCard("Games", humanize.Comma(int64(rep.Games))),
		metricCard("Avg Score", fmt.Sprintf("%.1f", rep.AvgScore)),
		metricCard("Best Score", humanize.Comma(int64(bestScore))),
		metricCard("Best Word", bestWord),
		metricCard("Play Time", formatDuration(rep.TotalPlayMs)),
	}
	if width < 80 {
		return strings.Join(cards, "\n")
	}
	row1 := lipgloss.JoinHorizontal(lipgloss.Top, cards[0], cards[1], cards[2])
	row2 := lipgloss.JoinHorizontal(lipgloss.Top, cards[3], cards[4])
	return lipgloss.JoinVertical(lipgloss.Left, row1, row2)
}

func metricCard(label, value string) string {
	content := fmt.Sprintf("%s\n%s", cardTitleStyle.Render(label), cardValueStyle.Render(value))
	return cardStyle.Render(content)
}

func renderCurves(games []score.GameRecord, window, width int) string {
	var buf bytes.Buffer
	if err := stats.RenderScoreCurves(&buf, games, window, width, plotHeight, true); err != nil {
		return fmt.Sprintf("Failed to render curves: %v", err)
	}
	return strings.TrimRight(buf.String(), "\n")
}

func renderLetters(aggs []score.LetterAggregate, limit int) string {
	if len(aggs) == 0 {
		return "No letter stats found."
	}
	scope := "all games"
	if limit > 0 {
		scope = fmt.Sprintf("last %d games", limit)
	}
	header := headerStyle.Render("Window: " + scope)

	var buf bytes.Buffer
	if err := stats.RenderLetterTable(&buf, aggs); err != nil {
		return fmt.Sprintf("Failed to render letter table: %v", err)
	}
	spark := headerStyle.Render("Use ratio A-Z: " + stats.Sparkline(useRatioSeries(aggs)))

	lines := []string{header, buf.String() + spark}
	if top := score.TopLettersByUse(aggs, 3); len(top) > 0 {
		lines = append(lines, "", "Workhorses: "+describeAggs(top))
	}
	if sticky := score.StickiestLetters(aggs, 3, 10); len(sticky) > 0 {
		lines = append(lines, "Stickiest: "+describeAggs(sticky))
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

func describeAggs(aggs []score.LetterAggregate) string {
	parts := make([]string, 0, len(aggs))
	for _, a := range aggs {
		parts = append(parts, fmt.Sprintf("%s (%.0f%% of %s)", a.Letter, a.UseRatio()*100, humanize.Comma(a.Spawned)))
	}
	return strings.Join(parts, ", ")
}

// useRatioSeries lays the ratios out alphabetically so the sparkline
// always reads in the same order.
func useRatioSeries(aggs []score.LetterAggregate) []float64 {
	byLetter := make(map[string]score.LetterAggregate, len(aggs))
	for _, a := range aggs {
		byLetter[a.Letter] = a
	}
	out := make([]float64, 0, letters.Count)
	for _, l := range letters.All() {
		out = append(out, byLetter[string(rune(l))].UseRatio())
	}
	return out
}

func gamesTableData(games []score.GameRecord) ([]table.Column, []table.Row) {
	columns := []table.Column{
		{Title: "When", Width: 14},
		{Title: "Score", Width: 7},
		{Title: "Words", Width: 6},
		{Title: "Best Word", Width: 14},
		{Title: "Length", Width: 8},
		{Title: "Mode", Width: 8},
	}
	rows := make([]table.Row, 0, len(games))
	for _, g := range games {
		best := "-"
		if g.BestWord != "" {
			best = fmt.Sprintf("%s (%d)", g.BestWord, g.BestWordPoints)
		}
		rows = append(rows, table.Row{
			humanize.Time(g.EndedAt),
			strconv.Itoa(g.Score),
			strconv.Itoa(g.Words),
			best,
			formatDuration(g.DurationMs),
			g.Strategy,
		})
	}
	return columns, rows
}

func (m *Model) applyGamesTable(width, height int) {
	cols, rows := gamesTableData(m.topGames)
	m.gamesTable.SetColumns(cols)
	m.gamesTable.SetRows(rows)
	m.setGamesTableSize(width, height)
}

func (m *Model) setGamesTableSize(width, height int) {
	viewportHeight := maxInt(1, height-1)
	if m.gamesLayout.width == width && m.gamesLayout.height == viewportHeight {
		return
	}
	m.gamesLayout.width = width
	m.gamesLayout.height = viewportHeight
	m.gamesTable.SetWidth(width)
	m.gamesTable.SetHeight(viewportHeight)
}

func gamesTableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	return styles
}

func (m *Model) startFilter() (tea.Model, tea.Cmd) {
	m.filterMode = true
	m.filterError = ""
	m.setInputsFromConfig()
	return m, m.setFilterIndex(0)
}

func (m *Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.filterMode = false
		m.filterError = ""
		return m, nil
	case tea.KeyEnter:
		if err := m.applyFilter(); err != nil {
			m.filterError = err.Error()
			return m, nil
		}
		m.filterMode = false
		m.filterError = ""
		m.refresh()
		m.updateLayout()
		return m, nil
	case tea.KeyTab:
		return m, m.setFilterIndex(m.filterIndex + 1)
	case tea.KeyShiftTab:
		return m, m.setFilterIndex(m.filterIndex - 1)
	}
	var cmd tea.Cmd
	m.filterInputs[m.filterIndex], cmd = m.filterInputs[m.filterIndex].Update(msg)
	return m, cmd
}

func (m *Model) setFilterIndex(idx int) tea.Cmd {
	count := len(m.filterInputs)
	if count == 0 {
		return nil
	}
	if idx < 0 {
		idx = count - 1
	}
	if idx >= count {
		idx = 0
	}
	m.filterIndex = idx
	var cmd tea.Cmd
	for i := range m.filterInputs {
		if i == m.filterIndex {
			cmd = m.filterInputs[i].Focus()
		} else {
			m.filterInputs[i].Blur()
		}
	}
	return cmd
}

func (m *Model) applyFilter() error {
	lastInput := strings.TrimSpace(m.filterInputs[0].Value())
	last := 0
	if lastInput != "" {
		parsed, err := strconv.Atoi(lastInput)
		if err != nil || parsed < 0 {
			return fmt.Errorf("invalid last value (use 0 or positive integer)")
		}
		last = parsed
	}

	windowInput := strings.TrimSpace(m.filterInputs[1].Value())
	window := 1
	if windowInput != "" {
		parsed, err := strconv.Atoi(windowInput)
		if err != nil {
			return fmt.Errorf("invalid curve window (use integer)")
		}
		if parsed < 1 {
			return fmt.Errorf("invalid curve window (use integer >= 1)")
		}
		window = parsed
	}

	m.limit = last
	m.window = window
	return nil
}

func formatDuration(ms int64) string {
	if ms <= 0 {
		return "-"
	}
	d := time.Duration(ms) * time.Millisecond
	return d.Round(time.Second).String()
}

func nextWindow(n int) int {
	if n < 5 {
		return 5
	}
	if n%5 == 0 {
		return n + 5
	}
	return ((n / 5) + 1) * 5
}

func prevWindow(n int) int {
	if n <= 5 {
		return 1
	}
	if n%5 == 0 {
		return n - 5
	}
	return (n / 5) * 5
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func padLines(s string, width int) string {
	if width <= 0 || s == "" {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	return strings.Join(lines, "\n")
}

func padLine(line string, width int) string {
	lineWidth := lipgloss.Width(line)
	if lineWidth < width {
		return line + strings.Repeat(" ", width-lineWidth)
	}
	return line
}

func fitLines(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}

func truncateLine(s string, width int) string {
	if width <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}
