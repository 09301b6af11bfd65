package watch

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"tscpgo/internal/display"
	"tscpgo/internal/engine"
)

// tickMsg drives one ply of playback, ported from the teacher's
// internal/ui BvBTickMsg / bvbTickCmd pattern.
type tickMsg struct{}

// Model is a bubbletea program that narrates a Game to the terminal.
// The move list is rendered through a bubbles/viewport so a long
// self-play game scrolls instead of filling the terminal.
type Model struct {
	game     *Game
	renderer *display.Renderer
	speed    time.Duration
	paused   bool
	moveStr  func(engine.Move) string
	history  viewport.Model
}

// NewModel builds a spectator Model. speed is the delay between plies;
// a speed of 0 or less uses a 10ms delay.
func NewModel(game *Game, renderer *display.Renderer, speed time.Duration, moveStr func(engine.Move) string) Model {
	history := viewport.New(24, 8)
	return Model{game: game, renderer: renderer, speed: speed, moveStr: moveStr, history: history}
}

func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

func (m Model) tickCmd() tea.Cmd {
	delay := m.speed
	if delay <= 0 {
		delay = 10 * time.Millisecond
	}
	return tea.Tick(delay, func(time.Time) tea.Msg { return tickMsg{} })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.history.Width = msg.Width
		if m.history.Width > 40 {
			m.history.Width = 40
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ", "p":
			m.paused = !m.paused
			return m, nil
		case "up", "down", "pgup", "pgdown":
			var cmd tea.Cmd
			m.history, cmd = m.history.Update(msg)
			return m, cmd
		}
	case tickMsg:
		if m.paused {
			return m, m.tickCmd()
		}
		if !m.game.Step() {
			m.syncHistory()
			return m, tea.Quit
		}
		m.syncHistory()
		return m, m.tickCmd()
	}
	return m, nil
}

// syncHistory rebuilds the viewport's content from the game's move list
// and keeps it scrolled to the newest ply.
func (m *Model) syncHistory() {
	var b strings.Builder
	for i, mv := range m.game.History {
		if i%2 == 0 {
			fmt.Fprintf(&b, "%d. %s", i/2+1, m.moveStr(mv))
		} else {
			fmt.Fprintf(&b, " %s\n", m.moveStr(mv))
		}
	}
	m.history.SetContent(b.String())
	m.history.GotoBottom()
}

func (m Model) View() string {
	var out string
	out += m.renderer.Render(m.game.Pos)
	out += "\n"
	if m.game.Outcome != Ongoing {
		out += m.game.ResultText() + "\n"
	} else {
		out += fmt.Sprintf("%s to move, ply %d\n", display.Side(m.game.Pos.Side), len(m.game.History))
	}
	out += m.history.View() + "\n"
	out += "(space to pause, arrows to scroll history, q to quit)\n"
	return out
}
