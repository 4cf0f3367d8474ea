package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/grido/internal/core"
	"github.com/vovakirdan/grido/internal/games/grido"
	"github.com/vovakirdan/grido/internal/storage"
)

// MenuChoice is what a menu entry does when selected.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceHelp
	ChoiceScores
	ChoiceQuit
)

// MenuItem is one menu entry. Hotkey selects it directly.
type MenuItem struct {
	Label  string
	Hotkey string
	Choice MenuChoice
	GameID string // for ChoicePlay
}

// DefaultMenuItems returns the main menu entries.
func DefaultMenuItems() []MenuItem {
	return []MenuItem{
		{Label: "Play", Hotkey: "p", Choice: ChoicePlay, GameID: grido.Classic.ID},
		{Label: "Play small", Hotkey: "m", Choice: ChoicePlay, GameID: grido.Small.ID},
		{Label: "Help", Hotkey: "h", Choice: ChoiceHelp},
		{Label: "Scores", Hotkey: "s", Choice: ChoiceScores},
		{Label: "Quit", Hotkey: "q", Choice: ChoiceQuit},
	}
}

// MenuKeyMap defines the key bindings of the main menu.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var (
	logoStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)
	hotkeyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	bestStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
	menuHelpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	store     *storage.Store
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	keys      MenuKeyMap
	help      help.Model
	chosen    *MenuItem
}

// NewMenuModel creates a new menu model.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	h := help.New()
	h.Width = cfg.ScreenW

	return MenuModel{
		items:     DefaultMenuItems(),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		keys:      DefaultMenuKeyMap(),
		help:      h,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	for i, item := range m.items {
		if msg.String() == item.Hotkey {
			m.cursor = i
			return m.choose()
		}
	}

	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.chosen = &MenuItem{Choice: ChoiceQuit}
		return m, tea.Quit

	case MenuActionUp:
		m.cursor = (m.cursor + len(m.items) - 1) % len(m.items)

	case MenuActionDown:
		m.cursor = (m.cursor + 1) % len(m.items)

	case MenuActionSelect:
		return m.choose()
	}

	return m, nil
}

func (m MenuModel) choose() (tea.Model, tea.Cmd) {
	item := m.items[m.cursor]
	m.chosen = &item
	return m, tea.Quit
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.chosen != nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(logoStyle.Render(strings.Join(grido.Logo, "\n")))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		label := item.Label
		if i == m.cursor {
			cursor = cursorStyle.Render("➤ ")
			label = cursorStyle.Render(label)
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, label, hotkeyStyle.Render("("+item.Hotkey+")")))
	}

	if best := m.sessionBest(); best > 0 {
		b.WriteString("\n")
		b.WriteString(bestStyle.Render(fmt.Sprintf("Best this session: %d", best)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(menuHelpStyle.Render(m.help.View(m.keys)))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}

// sessionBest is the best classic score recorded by this process.
func (m MenuModel) sessionBest() int {
	if m.store == nil {
		return 0
	}
	best, err := m.store.HighScore(grido.Classic.ID)
	if err != nil {
		return 0
	}
	return best
}

// Chosen returns the selected entry, or nil if the menu is still open.
func (m MenuModel) Chosen() *MenuItem {
	return m.chosen
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice MenuChoice
	GameID string
	Config core.RuntimeConfig
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.Chosen() == nil {
		return MenuResult{Choice: ChoiceQuit, Config: cfg}, nil
	}

	return MenuResult{
		Choice: m.Chosen().Choice,
		GameID: m.Chosen().GameID,
		Config: m.Config(),
	}, nil
}
