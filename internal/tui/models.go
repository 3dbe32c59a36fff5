package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true)

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#5F5F87")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)
)

// menuModel picks one option. chosen is -1 when the menu was dismissed.
type menuModel struct {
	title   string
	options []string
	cursor  int
	chosen  int
	done    bool
	quit    bool
}

func newMenu(title string, options []string, cursor int) menuModel {
	if cursor < 0 || cursor >= len(options) {
		cursor = 0
	}
	return menuModel{title: title, options: options, cursor: cursor, chosen: -1}
}

func (m menuModel) Init() tea.Cmd { return nil }

func (m menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.Type {
	case tea.KeyCtrlC:
		m.quit, m.done = true, true
		return m, tea.Quit
	case tea.KeyEsc:
		m.done = true
		return m, tea.Quit
	case tea.KeyEnter:
		m.chosen, m.done = m.cursor, true
		return m, tea.Quit
	case tea.KeyUp:
		m.cursor = (m.cursor + len(m.options) - 1) % len(m.options)
	case tea.KeyDown, tea.KeyTab:
		m.cursor = (m.cursor + 1) % len(m.options)
	case tea.KeyRunes:
		switch s := string(key.Runes); s {
		case "k":
			m.cursor = (m.cursor + len(m.options) - 1) % len(m.options)
		case "j":
			m.cursor = (m.cursor + 1) % len(m.options)
		default:
			// digits jump straight to the option
			var n int
			if _, err := fmt.Sscanf(s, "%d", &n); err == nil && n >= 1 && n <= len(m.options) {
				m.cursor, m.chosen, m.done = n-1, n-1, true
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m menuModel) View() string {
	if m.done {
		if m.chosen >= 0 {
			return fmt.Sprintf("%s %s\n", titleStyle.Render(m.title), m.options[m.chosen])
		}
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title) + "\n")
	for i, opt := range m.options {
		line := fmt.Sprintf("%d. %s", i+1, opt)
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> "+line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}
	b.WriteString(helpStyle.Render("↑/↓ to move, enter or a number to choose, esc to skip"))
	return b.String()
}

// textModel reads one line of free text.
type textModel struct {
	title string
	input textinput.Model
	done  bool
	quit  bool
}

func newTextPrompt(title, placeholder string) textModel {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	ti.CharLimit = 40
	ti.Width = 30
	return textModel{title: title, input: ti}
}

func (m textModel) Init() tea.Cmd { return textinput.Blink }

func (m textModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC:
			m.quit, m.done = true, true
			return m, tea.Quit
		case tea.KeyEnter, tea.KeyEsc:
			m.done = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m textModel) View() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("%s\n%s\n%s", titleStyle.Render(m.title), m.input.View(), helpStyle.Render("enter to confirm"))
}

func (m textModel) Value() string { return m.input.Value() }
