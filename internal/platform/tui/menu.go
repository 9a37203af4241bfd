package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/typejump/internal/config"
	"github.com/vovakirdan/typejump/internal/core"
)

// MenuItem represents a selectable difficulty in the menu.
type MenuItem struct {
	Difficulty config.Difficulty
	Title      string
	Detail     string
}

// MenuOptions describes what the menu shows.
type MenuOptions struct {
	Runtime  core.RuntimeConfig
	Config   config.TypeJumpConfig
	Selected config.Difficulty // Initially highlighted
}

// MenuModel is the Bubble Tea model for the difficulty picker.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	config    core.RuntimeConfig
	source    string
	minutes   int
	keyMapper *KeyMapper
	quitting  bool
	selected  *MenuItem
}

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	menuActive     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuDim        = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// NewMenuModel creates a new menu model.
func NewMenuModel(opts MenuOptions) MenuModel {
	diffs := config.Difficulties()
	items := make([]MenuItem, 0, len(diffs))
	cursor := 0

	for i, d := range diffs {
		if d == opts.Selected {
			cursor = i
		}
		items = append(items, MenuItem{
			Difficulty: d,
			Title:      d.String(),
			Detail:     describe(d, opts.Config.Difficulty.ScrollSpeed(d)),
		})
	}

	return MenuModel{
		items:     items,
		cursor:    cursor,
		width:     opts.Runtime.ScreenW,
		height:    opts.Runtime.ScreenH,
		config:    opts.Runtime,
		source:    opts.Config.Words.Source,
		minutes:   opts.Config.Session.DurationSecs / 60,
		keyMapper: NewKeyMapper(""),
	}
}

func describe(d config.Difficulty, speed float64) string {
	var words string
	switch d {
	case config.Beginner:
		words = "short words"
	case config.Intermediate:
		words = "mid-length words"
	default:
		words = "long words"
	}
	return fmt.Sprintf("%s, scroll %.1f", words, speed)
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
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("T Y P E   J U M P"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("%d-minute cyber-winter trial", m.minutes), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := fmt.Sprintf("  %-13s %s", item.Title, menuDim.Render(item.Detail))
		if i == m.cursor {
			line = menuActive.Render("> "+fmt.Sprintf("%-13s", item.Title)) + " " + menuDim.Render(item.Detail)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuDim.Render("words: "+m.source), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Up/Down: Navigate  |  Enter: Play  |  Q: Quit", m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width. Width is measured in
// terminal cells, ignoring ANSI styling.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// truncate cuts s to at most width cells.
func truncate(s string, width int) string {
	return runewidth.Truncate(s, width, "…")
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Difficulty config.Difficulty
	Config     core.RuntimeConfig
	Quit       bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(opts MenuOptions) (MenuResult, error) {
	model := NewMenuModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: opts.Runtime}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: opts.Runtime, Quit: true}, nil
	}

	result := MenuResult{
		Config: m.Config(),
	}

	if m.IsQuitting() || m.Selected() == nil {
		result.Quit = true
		return result, nil
	}

	result.Difficulty = m.Selected().Difficulty
	return result, nil
}
