// Package tui provides the Bubble Tea play screen: the arena with its
// falling discs, mouse-drag word building and the game HUD.
package tui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"letterfall/internal/geom"
	"letterfall/internal/letters"
	"letterfall/internal/score"
	"letterfall/internal/session"
	"letterfall/internal/sound"
)

// A terminal cell covers this many arena units. The 1:2 ratio matches
// typical glyph aspect, so the physics reads roughly round on screen.
const (
	cellWidth  = 8.0
	cellHeight = 16.0
	frameRate  = 30
	flashFor   = 2500 * time.Millisecond
)

type tickMsg time.Time

// Model implements the Bubble Tea play UI.
type Model struct {
	ctrl   *session.Controller
	store  *score.Store // nil disables saving
	sounds *sound.Player

	width  int
	height int

	cols int
	rows int

	dragging   bool
	flash      string
	flashUntil time.Time
	saved      bool
}

var (
	borderStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#555555"))
	vowelStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#7AA2F7"))
	consonantStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	rareStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	shellStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#3A3A3A"))
	selectedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#0A0A0A")).Background(lipgloss.Color("#C89A3A")).Bold(true)
	dangerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	hudStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	wordStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	overStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Bold(true)
)

// NewModel constructs the play model and starts the session clock.
func NewModel(ctrl *session.Controller, st *score.Store, sounds *sound.Player) *Model {
	w, h := ctrl.ArenaSize()
	m := &Model{
		ctrl:   ctrl,
		store:  st,
		sounds: sounds,
		cols:   int(w / cellWidth),
		rows:   int(h / cellHeight),
	}
	m.ctrl.Start(time.Now())
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		m.advance(time.Time(msg))
		return m, tick()
	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "r":
			m.restart()
			return m, nil
		default:
			return m, nil
		}
	default:
		return m, nil
	}
}

func (m *Model) advance(now time.Time) {
	wasRunning := m.ctrl.State() == session.StateRunning
	m.ctrl.Advance(now)
	if wasRunning && m.ctrl.State() == session.StateOver {
		m.sounds.GameOver()
		m.saveGame()
	}
	if m.flash != "" && now.After(m.flashUntil) {
		m.flash = ""
	}
}

func (m *Model) restart() {
	m.ctrl.Reset(time.Now())
	m.dragging = false
	m.flash = ""
	m.saved = false
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		pos, ok := m.arenaPos(msg.X, msg.Y)
		if !ok {
			return
		}
		m.dragging = true
		if m.ctrl.PointerDown(pos) {
			m.sounds.Link(m.ctrl.Path().Len())
		}
	case tea.MouseActionMotion:
		if !m.dragging {
			return
		}
		pos, ok := m.arenaPos(msg.X, msg.Y)
		if !ok {
			return
		}
		if m.ctrl.PointerMove(pos) {
			m.sounds.Link(m.ctrl.Path().Len())
		}
	case tea.MouseActionRelease:
		if !m.dragging {
			return
		}
		m.dragging = false
		m.finishDrag()
	}
}

func (m *Model) finishDrag() {
	res := m.ctrl.PointerUp(time.Now())
	switch res.Outcome {
	case session.OutcomeCommitted:
		m.sounds.Commit()
		m.setFlash(fmt.Sprintf("%s +%d", res.Word, res.Points))
	case session.OutcomeInvalid:
		m.sounds.Reject()
		if res.Suggestion != "" {
			m.setFlash(fmt.Sprintf("%s is not a word (try %s)", res.Word, res.Suggestion))
		} else {
			m.setFlash(fmt.Sprintf("%s is not a word", res.Word))
		}
	case session.OutcomeTooShort:
		m.setFlash(fmt.Sprintf("%s is too short", res.Word))
	case session.OutcomeUnknown:
		m.setFlash("dictionary still loading, try again")
	}
}

func (m *Model) setFlash(s string) {
	m.flash = s
	m.flashUntil = time.Now().Add(flashFor)
}

// arenaPos maps a terminal cell to the center of the matching arena
// patch. The arena's inner top-left sits at cell (1,1) because of the
// border.
func (m *Model) arenaPos(x, y int) (geom.Vec2, bool) {
	cx := x - 1
	cy := y - 1
	if cx < 0 || cx >= m.cols || cy < 0 || cy >= m.rows {
		return geom.Vec2{}, false
	}
	return geom.Vec2{
		X: (float64(cx) + 0.5) * cellWidth,
		Y: (float64(cy) + 0.5) * cellHeight,
	}, true
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width > 0 && (m.width < m.cols+2 || m.height < m.rows+4) {
		return fmt.Sprintf("Terminal too small: need at least %dx%d cells.\n", m.cols+2, m.rows+4)
	}
	arena := m.renderArena()
	hud := m.renderHUD()
	return borderStyle.Render(arena) + "\n" + hud
}

type cell struct {
	r     rune
	style lipgloss.Style
}

func (m *Model) renderArena() string {
	grid := make([][]cell, m.rows)
	for y := range grid {
		grid[y] = make([]cell, m.cols)
		for x := range grid[y] {
			grid[y][x] = cell{r: ' ', style: hudStyle}
		}
	}

	// Danger line, overdrawn by discs.
	dy := int(m.ctrl.DangerLineY() / cellHeight)
	if dy >= 0 && dy < m.rows {
		for x := 0; x < m.cols; x++ {
			grid[dy][x] = cell{r: '┄', style: dangerStyle}
		}
	}

	path := m.ctrl.Path()
	for _, d := range m.ctrl.Discs() {
		cx := int(d.Pos.X / cellWidth)
		cy := int(d.Pos.Y / cellHeight)
		if cx < 0 || cx >= m.cols || cy < 0 || cy >= m.rows {
			continue
		}
		style := consonantStyle
		switch {
		case path.Contains(d.ID):
			style = selectedStyle
		case letters.IsRare(d.Letter):
			style = rareStyle
		case letters.VowelUnits(d.Letter) >= 1:
			style = vowelStyle
		}
		grid[cy][cx] = cell{r: rune(d.Letter), style: style}
		// Wide discs get shell marks so size still reads on a grid.
		if d.Radius >= 22 {
			if cx > 0 && grid[cy][cx-1].r == ' ' {
				grid[cy][cx-1] = cell{r: '(', style: shellStyle}
			}
			if cx < m.cols-1 && grid[cy][cx+1].r == ' ' {
				grid[cy][cx+1] = cell{r: ')', style: shellStyle}
			}
		}
	}

	var b strings.Builder
	for y := 0; y < m.rows; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < m.cols; x++ {
			c := grid[y][x]
			if c.r == ' ' {
				b.WriteByte(' ')
				continue
			}
			b.WriteString(c.style.Render(string(c.r)))
		}
	}
	return b.String()
}

func (m *Model) renderHUD() string {
	best, bestPoints := m.ctrl.BestWord()
	bestLabel := "-"
	if best != "" {
		bestLabel = fmt.Sprintf("%s (%d)", best, bestPoints)
	}
	top := hudStyle.Render(fmt.Sprintf("Score %d  Words %d  Best %s", m.ctrl.Score(), m.ctrl.Words(), bestLabel))

	if m.ctrl.State() == session.StateOver {
		over := overStyle.Render(fmt.Sprintf("Game over. Final score %d.", m.ctrl.Score()))
		hint := hudStyle.Render("Press r to play again, q to quit.")
		return top + "\n" + over + "\n" + hint
	}

	var second string
	switch {
	case m.ctrl.Path().Active():
		second = wordStyle.Render("Word: " + m.ctrl.Path().Word())
	case m.flash != "":
		second = hudStyle.Render(m.flash)
	case len(m.ctrl.RecentWords()) > 0:
		recent := m.ctrl.RecentWords()
		second = hudStyle.Render("Recent: " + strings.Join(recent, " "))
	default:
		second = hudStyle.Render("Drag across discs to spell a word.")
	}
	if m.ctrl.Snapshot().DangerActive {
		second += "  " + dangerStyle.Render("DANGER")
	}
	return top + "\n" + second
}

func (m *Model) saveGame() {
	if m.saved || m.store == nil {
		return
	}
	rec, counts := m.ctrl.Result(time.Now())
	if _, err := m.store.InsertGame(context.Background(), rec, counts); err != nil {
		logErrf("failed to save game: %v\n", err)
	}
	m.saved = true
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
