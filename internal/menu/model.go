package menu

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Item is one selectable menu row: a display label and the zero-argument
// action invoked when the row is chosen. Exit marks the designated entry
// that leaves the menu instead of running anything.
type Item struct {
	Label  string
	Action func()
	Exit   bool
}

// keyMap declares the keys the menu answers to.
type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc", "q", "ctrl+c"),
		key.WithHelp("esc", "quit"),
	),
}

// helpLine renders the footer from the declared bindings.
func helpLine() string {
	entries := []key.Binding{keys.Up, keys.Down, keys.Select, keys.Quit}
	parts := make([]string, len(entries))
	for i, b := range entries {
		h := b.Help()
		parts[i] = h.Key + " " + h.Desc
	}
	return helpStyle.Render(strings.Join(parts, " • "))
}

// Model is the state machine for one browse of the menu: the fixed item
// list, the bounded selection index, and the terminal size for centering.
// Selecting a row or quitting ends the program; the session loop in Run
// decides what happens next.
type Model struct {
	items    []Item
	cursor   int
	choice   *Item
	quitting bool
	width    int
	height   int
}

// NewModel returns a model showing items with the first row selected.
func NewModel(items []Item) Model {
	return Model{items: items}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}

		case key.Matches(msg, keys.Select):
			if len(m.items) == 0 {
				return m, nil
			}
			item := m.items[m.cursor]
			if item.Exit {
				m.quitting = true
				return m, tea.Quit
			}
			m.choice = &item
			return m, tea.Quit

		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// View implements tea.Model. The list is centered in the terminal, each
// label centered on its own row, with the selected row highlighted.
func (m Model) View() string {
	if m.quitting || m.choice != nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(strings.Repeat("\n", m.topPadding()))
	for i, item := range m.items {
		var line string
		if i == m.cursor {
			line = cursor() + selectedStyle.Render(item.Label)
		} else {
			line = noCursor() + itemStyle.Render(item.Label)
		}
		b.WriteString(centerLine(line, m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(centerLine(helpLine(), m.width))
	return b.String()
}

// topPadding computes the blank rows above the list so the block sits in
// the vertical middle of the terminal.
func (m Model) topPadding() int {
	pad := m.height/2 - len(m.items)/2
	if pad < 0 {
		return 0
	}
	return pad
}
