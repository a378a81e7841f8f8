package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"calcpad/internal/domain"
	"calcpad/internal/input"
	"calcpad/internal/services/editor"
)

const (
	displayWidth = 24
	keyWidth     = 6
)

var keypad = [][]string{
	{"AC", "DEL", "%", "/"},
	{"7", "8", "9", "*"},
	{"4", "5", "6", "-"},
	{"1", "2", "3", "+"},
	{"±", "0", ".", "="},
}

// screen receives renders from the editor. The model holds it by pointer so
// the value-typed Model copies bubbletea makes all see the latest display.
type screen struct {
	display domain.DisplayState
	renders int
}

// Model is the bubbletea model of the calculator.
type Model struct {
	ed     *editor.Service
	screen *screen
	styles Styles
	log    *zap.Logger
}

// New returns a Model with a fresh editor. snap, if non-nil, seeds it.
func New(snap *domain.Snapshot, log *zap.Logger, opts ...editor.Option) (Model, error) {
	if log == nil {
		log = zap.NewNop()
	}
	sc := &screen{}
	ed := editor.New(func(d domain.DisplayState) {
		sc.display = d
		sc.renders++
	}, append([]editor.Option{editor.WithLogger(log)}, opts...)...)
	sc.display = ed.Display()

	if snap != nil {
		if err := ed.Restore(*snap); err != nil {
			return Model{}, err
		}
	}
	return Model{ed: ed, screen: sc, styles: DefaultStyles(), log: log}, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key := km.String(); key {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "n":
		_ = m.ed.Apply(domain.Action{Kind: domain.ActionSign})
	default:
		a, ok := input.FromKey(key)
		if !ok {
			return m, nil
		}
		if err := m.ed.Apply(a); err != nil {
			m.log.Debug("evaluate", zap.Error(err))
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	d := m.screen.display

	result := m.styles.Result.Render(d.Result)
	if d.Error {
		result = m.styles.Error.Render(d.Result)
	}

	rows := make([]string, 0, len(keypad))
	for _, row := range keypad {
		cells := make([]string, len(row))
		for i, k := range row {
			cells[i] = m.styles.Key.Render(k)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Expression.Render(d.Expression),
		result,
		"",
		strings.Join(rows, "\n"),
	)
	help := m.styles.Help.Render("enter/= evaluate · n sign · backspace delete · esc clear · q quit")
	return m.styles.Frame.Render(body) + "\n" + help + "\n"
}

// Snapshot returns the editor state, for persisting after the program exits.
func (m Model) Snapshot() domain.Snapshot { return m.ed.Snapshot() }

// Display returns what the screen currently shows.
func (m Model) Display() domain.DisplayState { return m.screen.display }

// Run starts the program on the terminal and returns the final model.
func Run(m Model) (Model, error) {
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return m, err
	}
	if fm, ok := final.(Model); ok {
		return fm, nil
	}
	return m, nil
}
