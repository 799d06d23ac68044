package ui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// Model is the review screen: a scrollable viewport holding the
// rendered markdown report for one input file. The caller reads the
// decision flags after the program exits.
type Model struct {
	viewport  viewport.Model
	Quit      bool
	Apply     bool
	Skip      bool
	Overwrite bool
}

func NewModel(content string) (*Model, error) {

	const width = 100

	vp := viewport.New(width, 32)
	vp.Style = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		PaddingRight(2)

	// Adjust the glamour render width for the viewport border, padding
	// and the gutter glamour applies to the left side of the content.
	const glamourGutter = 2
	glamourRenderWidth := width - vp.Style.GetHorizontalFrameSize() - glamourGutter

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(glamourRenderWidth),
	)
	if err != nil {
		return nil, err
	}

	str, err := renderer.Render(content)
	if err != nil {
		return nil, err
	}

	vp.SetContent(str)

	return &Model{
		viewport: vp,
	}, nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.MouseMsg:
		// Pass mouse events to the viewport component
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		switch msg.String() {

		case "q", "x", "ctrl+c":
			m.Quit = true
			return m, tea.Quit
		case "n", "esc":
			m.Skip = true
			return m, tea.Quit
		case "s", "a", "enter":
			m.Apply = true
			return m, tea.Quit
		case "o", "w":
			m.Apply = true
			m.Overwrite = true
			return m, tea.Quit
		default:
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m Model) View() string {
	return m.viewport.View() + helpView.Render("\n  ↑/↓: Navigate • q/x: Quit • esc/n: Skip • s/a: Apply • o/w: Overwrite\n")
}

var helpView = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")).Italic(true)
