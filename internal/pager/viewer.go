package pager

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var statusStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("0")).
	Background(lipgloss.Color("250"))

// runViewer shows text in a full-screen scrollable view until the user quits.
func runViewer(text string, out io.Writer) error {
	program := tea.NewProgram(newViewer(text), tea.WithAltScreen(), tea.WithOutput(out), tea.WithInput(os.Stdin))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running built-in pager: %w", err)
	}
	return nil
}

type viewer struct {
	content  string
	viewport viewport.Model
	ready    bool
}

func newViewer(content string) viewer {
	return viewer{content: content}
}

func (m viewer) Init() tea.Cmd {
	return nil
}

func (m viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "g", "home":
			m.viewport.GotoTop()
			return m, nil
		case "G", "end":
			m.viewport.GotoBottom()
			return m, nil
		}
	case tea.WindowSizeMsg:
		// One row for the status line.
		height := msg.Height - 1
		if height < 1 {
			height = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m viewer) View() string {
	if !m.ready {
		return ""
	}
	status := fmt.Sprintf(" %3.f%%  q to quit ", m.viewport.ScrollPercent()*100)
	return m.viewport.View() + "\n" + statusStyle.Render(status)
}
