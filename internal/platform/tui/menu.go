package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PromptText is the line the menu shows under the title.
const PromptText = "Press Enter to Begin"

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
)

// MenuModel is the Bubble Tea model for the start screen.
type MenuModel struct {
	title    string
	keys     KeyMap
	help     help.Model
	width    int
	height   int
	started  bool // Set when the player pressed Start
	quitting bool
}

// NewMenuModel creates a new menu model.
func NewMenuModel(title string, width, height int) MenuModel {
	h := help.New()
	h.ShowAll = false

	return MenuModel{
		title:  title,
		keys:   DefaultKeyMap(),
		help:   h,
		width:  width,
		height: height,
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
		switch {
		case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.ForceQuit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Start):
			m.started = true
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	top := (m.height - 6) / 2
	if top > 0 {
		b.WriteString(strings.Repeat("\n", top))
	}

	b.WriteString(centerText(titleStyle.Render(spaced(m.title)), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(promptStyle.Render(PromptText), m.width))
	b.WriteString("\n\n\n")
	b.WriteString(centerText(m.help.ShortHelpView(m.keys.MenuHelp()), m.width))
	b.WriteString("\n")

	return b.String()
}

// Started returns true once the player asked for a run.
func (m MenuModel) Started() bool {
	return m.started
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width, measuring printable cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// spaced upper-cases a title and puts a space between its letters.
func spaced(title string) string {
	runes := []rune(strings.ToUpper(title))
	parts := make([]string, len(runes))
	for i, r := range runes {
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}
