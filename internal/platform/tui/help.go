package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/grido/internal/core"
	"github.com/vovakirdan/grido/internal/games/grido"
)

// HelpModel pages through the help screens. Any key advances; the last
// page returns to the caller.
type HelpModel struct {
	page   int
	screen *core.Screen
	done   bool
}

// NewHelpModel creates a help viewer sized for the terminal, never smaller
// than the 80×24 page layout.
func NewHelpModel(width, height int) HelpModel {
	return HelpModel{screen: core.NewScreen(max(width, 80), max(height, 24))}
}

// Init initializes the help model.
func (m HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help viewer.
func (m HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q", "ctrl+c":
			m.done = true
			return m, tea.Quit
		case "left", "h", "backspace":
			if m.page > 0 {
				m.page--
			}
			return m, nil
		}
		m.page++
		if m.page >= grido.HelpPages {
			m.done = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.screen.Resize(max(msg.Width, 80), max(msg.Height, 24))
	}

	return m, nil
}

// View renders the current page.
func (m HelpModel) View() string {
	if m.done {
		return ""
	}

	grido.RenderHelp(m.screen, m.page)
	hint := fmt.Sprintf("Page %d/%d  any key: next  ←: back  esc: menu", m.page+1, grido.HelpPages)
	m.screen.DrawTextColor(1, 23, hint, core.ColorGray)
	return RenderScreen(m.screen)
}

// Page returns the page being shown.
func (m HelpModel) Page() int {
	return m.page
}

// RunHelp shows the help pages until the user leaves them.
func RunHelp(width, height int) error {
	p := tea.NewProgram(NewHelpModel(width, height), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
