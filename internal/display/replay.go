package display

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lox/liarsgame/internal/game"
)

type replayKeys struct {
	Prev  key.Binding
	Next  key.Binding
	First key.Binding
	Last  key.Binding
	Quit  key.Binding
}

func (k replayKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Quit}
}

func (k replayKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Prev, k.Next}, {k.First, k.Last, k.Quit}}
}

func defaultReplayKeys() replayKeys {
	return replayKeys{
		Prev: key.NewBinding(
			key.WithKeys("left", "h", "p"),
			key.WithHelp("←/h", "previous round"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l", "n", " "),
			key.WithHelp("→/l", "next round"),
		),
		First: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "first round"),
		),
		Last: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "final standings"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ReplayModel is a Bubble Tea model stepping through a finished game one
// round at a time. The step after the last round shows the final standings.
type ReplayModel struct {
	result *game.Result
	styles *Styles
	keys   replayKeys
	help   help.Model

	step     int
	width    int
	quitting bool
}

// NewReplayModel creates a replay positioned at the first round
func NewReplayModel(result *game.Result) *ReplayModel {
	return &ReplayModel{
		result: result,
		styles: NewStyles(),
		keys:   defaultReplayKeys(),
		help:   help.New(),
	}
}

// RunReplay shows the replay viewer until the user quits
func RunReplay(result *game.Result, opts ...tea.ProgramOption) error {
	_, err := tea.NewProgram(NewReplayModel(result), opts...).Run()
	return err
}

// Step returns the current position, where len(Rounds) is the final standings
func (m *ReplayModel) Step() int {
	return m.step
}

func (m *ReplayModel) lastStep() int {
	return len(m.result.Rounds)
}

// Init initializes the replay model
func (m *ReplayModel) Init() tea.Cmd {
	return nil
}

// Update handles key presses and resizes
func (m *ReplayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Prev):
			m.step = max(0, m.step-1)
		case key.Matches(msg, m.keys.Next):
			m.step = min(m.lastStep(), m.step+1)
		case key.Matches(msg, m.keys.First):
			m.step = 0
		case key.Matches(msg, m.keys.Last):
			m.step = m.lastStep()
		}
	}

	return m, nil
}

// View renders the current round
func (m *ReplayModel) View() string {
	if m.quitting {
		return ""
	}

	header := m.styles.Header.Render(fmt.Sprintf("Game %s  round %d/%d",
		m.result.GameID, min(m.step+1, m.lastStep()), m.lastStep()))

	var body string
	if m.step < m.lastStep() {
		body = RenderRound(m.result.Rounds[m.step], m.styles)
	} else {
		body = RenderEliminations(m.result, m.styles)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		m.standings(),
		body,
		m.styles.Help.Render(m.help.View(m.keys)),
	)
}

// standings lists balances at the start of the current step, richest first.
func (m *ReplayModel) standings() string {
	if m.step >= len(m.result.History) {
		return ""
	}
	snap := m.result.History[m.step]

	names := make([]string, 0, len(snap.Funds))
	for name := range snap.Funds {
		names = append(names, name)
	}
	slices.SortFunc(names, func(a, b string) int {
		if snap.Funds[a] != snap.Funds[b] {
			if snap.Funds[a] > snap.Funds[b] {
				return -1
			}
			return 1
		}
		return strings.Compare(a, b)
	})

	var total float64
	for _, f := range snap.Funds {
		total += f
	}
	average := total / float64(max(1, len(names)))

	var b strings.Builder
	for _, name := range names {
		b.WriteString(m.styles.heat(snap.Funds[name], average).Render(
			fmt.Sprintf("%s %s", name, formatFunds(snap.Funds[name]))))
		b.WriteString("\n")
	}
	return b.String()
}
