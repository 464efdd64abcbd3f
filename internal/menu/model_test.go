package menu

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testItems returns a small menu whose actions record their label into
// invoked, with the Exit row last like the real catalog.
func testItems(invoked *[]string) []Item {
	record := func(label string) func() {
		return func() { *invoked = append(*invoked, label) }
	}
	return []Item{
		{Label: "Generate TLS certificates", Action: record("Generate TLS certificates")},
		{Label: "Start Langfuse container", Action: record("Start Langfuse container")},
		{Label: "Start Neo4j container", Action: record("Start Neo4j container")},
		{Label: "Exit", Exit: true},
	}
}

func press(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	next, ok := updated.(Model)
	require.True(t, ok, "Update should return a menu Model")
	return next
}

func TestCursorStaysInBounds(t *testing.T) {
	var invoked []string
	m := NewModel(testItems(&invoked))

	m = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.cursor, "Up at the first row should not move the cursor")

	for i := 0; i < 10; i++ {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, len(m.items)-1, m.cursor, "Down at the last row should not move the cursor")

	for i := 0; i < 10; i++ {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	}
	assert.Equal(t, 0, m.cursor)
	assert.Empty(t, invoked, "navigation alone should not invoke any action")
}

func TestDownTwiceThenUpOnce(t *testing.T) {
	m := NewModel(testItems(new([]string)))

	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, m.cursor, "two Down presses from the top should land on the third row")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 1, m.cursor, "one Up press should move back to the second row")
}

func TestVimStyleNavigation(t *testing.T) {
	m := NewModel(testItems(new([]string)))

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	assert.Equal(t, 1, m.cursor)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
	assert.Equal(t, 0, m.cursor)
}

func TestEnterRecordsChoiceWithoutInvoking(t *testing.T) {
	var invoked []string
	m := NewModel(testItems(&invoked))

	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	require.NotNil(t, cmd, "Enter should end the program")
	require.NotNil(t, m.choice)
	assert.Equal(t, "Start Langfuse container", m.choice.Label)
	assert.False(t, m.quitting)
	assert.Empty(t, invoked, "the model records the choice; the session loop invokes it")
}

func TestExitRowQuitsWithoutChoice(t *testing.T) {
	var invoked []string
	m := NewModel(testItems(&invoked))

	for i := 0; i < 3; i++ {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	require.NotNil(t, cmd, "selecting Exit should end the program")
	assert.True(t, m.quitting)
	assert.Nil(t, m.choice)
	assert.Empty(t, invoked, "selecting Exit must not invoke any action")
}

func TestEscapeQuitsFromAnySelection(t *testing.T) {
	tests := []struct {
		name  string
		downs int
	}{
		{name: "from the first row", downs: 0},
		{name: "from a middle row", downs: 1},
		{name: "from the last row", downs: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var invoked []string
			m := NewModel(testItems(&invoked))
			for i := 0; i < tt.downs; i++ {
				m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
			}

			updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
			m = updated.(Model)

			require.NotNil(t, cmd, "Escape should end the program")
			assert.True(t, m.quitting)
			assert.Nil(t, m.choice)
			assert.Empty(t, invoked)
		})
	}
}

func TestViewListsEveryLabelOnce(t *testing.T) {
	m := NewModel(testItems(new([]string)))
	m = press(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	view := m.View()
	for _, item := range m.items {
		assert.Contains(t, view, item.Label)
	}
	assert.Equal(t, 1, strings.Count(view, "›"), "exactly one row should carry the selection marker")
}

func TestViewChangesWhenSelectionMoves(t *testing.T) {
	m := NewModel(testItems(new([]string)))
	m = press(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	first := m.View()
	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	second := m.View()

	assert.NotEqual(t, first, second, "moving the selection should change the frame")
}

func TestViewIsEmptyAfterQuit(t *testing.T) {
	m := NewModel(testItems(new([]string)))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Empty(t, m.View(), "a quit frame should leave nothing behind on the alt screen")
}

func TestCenterLine(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		width int
		want  string
	}{
		{name: "pads to the middle", line: "abcd", width: 10, want: "   abcd"},
		{name: "wider than the terminal", line: "abcdefgh", width: 4, want: "abcdefgh"},
		{name: "zero width", line: "abcd", width: 0, want: "abcd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, centerLine(tt.line, tt.width))
		})
	}
}

func TestTopPadding(t *testing.T) {
	m := NewModel(testItems(new([]string)))

	m = press(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Equal(t, 10, m.topPadding(), "four rows on a 24-line terminal start at line 10")

	m = press(t, m, tea.WindowSizeMsg{Width: 80, Height: 0})
	assert.Equal(t, 0, m.topPadding(), "an unknown height should not produce negative padding")
}
