package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ordinalab/lexindex/pkg/lexindex"
)

var playIndexer = lexindex.MustNew(lexindex.StandardAlphabet)

// press sends a single key to the model and returns the updated model.
func press(t *testing.T, m *PlayModel, key string) *PlayModel {
	t.Helper()

	var msg tea.KeyMsg
	switch key {
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		msg = tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}

	updated, _ := m.Update(msg)
	pm, ok := updated.(*PlayModel)
	require.True(t, ok)
	return pm
}

// keys extracts the key column for assertions.
func keys(m *PlayModel) []string {
	out := make([]string, len(m.items))
	for i, it := range m.items {
		out[i] = it.key
	}
	return out
}

func TestPlayModel_SeedsInitialItems(t *testing.T) {
	// Given/When: a playground seeded with four items
	m := NewPlayModel(playIndexer, 4, true)

	// Then: keys follow the First/After chain and stay ordered
	assert.Equal(t, []string{"B", "C", "D", "E"}, keys(m))
	assert.Equal(t, "item 1", m.items[0].name)
	assert.Equal(t, 0, m.cursor)
	assert.Contains(t, m.status, "seeded 4 items")
}

func TestPlayModel_InitialView(t *testing.T) {
	// Given: a seeded playground
	m := NewPlayModel(playIndexer, 2, true)

	// When: rendering
	view := m.View()

	// Then: title, items, and help are all shown
	assert.Contains(t, view, "lexindex playground")
	assert.Contains(t, view, "item 1")
	assert.Contains(t, view, "item 2")
	assert.Contains(t, view, "q quit")
}

func TestPlayModel_EmptyView(t *testing.T) {
	// Given: an empty playground
	m := NewPlayModel(playIndexer, 0, true)

	// When: rendering
	view := m.View()

	// Then: shows the empty hint
	assert.Contains(t, view, "press i to insert the first item")
}

func TestPlayModel_CursorMovement(t *testing.T) {
	// Given: four items
	m := NewPlayModel(playIndexer, 4, true)

	// When/Then: j and down move the cursor, clamped at the end
	m = press(t, m, "j")
	assert.Equal(t, 1, m.cursor)
	m = press(t, m, "down")
	assert.Equal(t, 2, m.cursor)
	m = press(t, m, "j")
	m = press(t, m, "j")
	assert.Equal(t, 3, m.cursor)

	// When/Then: k and up move back, clamped at the start
	m = press(t, m, "k")
	assert.Equal(t, 2, m.cursor)
	m = press(t, m, "up")
	m = press(t, m, "up")
	m = press(t, m, "up")
	assert.Equal(t, 0, m.cursor)
}

func TestPlayModel_InsertBelow(t *testing.T) {
	// Given: four items with the cursor on the first
	m := NewPlayModel(playIndexer, 4, true)

	// When: inserting below with a typed name
	m = press(t, m, "o")
	assert.True(t, m.editing)
	m = press(t, m, "task")
	m = press(t, m, "enter")

	// Then: the new item got the midpoint key and the cursor
	assert.Equal(t, []string{"B", "BM", "C", "D", "E"}, keys(m))
	assert.Equal(t, "task", m.items[1].name)
	assert.Equal(t, 1, m.cursor)
	assert.False(t, m.editing)
	assert.Contains(t, m.status, `Between("B", "C") = "BM"`)
}

func TestPlayModel_InsertAbove(t *testing.T) {
	// Given: four items with the cursor on the first
	m := NewPlayModel(playIndexer, 4, true)

	// When: inserting above the head
	m = press(t, m, "i")
	m = press(t, m, "enter")

	// Then: the new head key sorts before everything
	assert.Equal(t, []string{"AZ", "B", "C", "D", "E"}, keys(m))
	assert.Equal(t, 0, m.cursor)
	assert.Contains(t, m.status, `Before("B") = "AZ"`)
}

func TestPlayModel_InsertAtEnd(t *testing.T) {
	// Given: the cursor on the last item
	m := NewPlayModel(playIndexer, 4, true)
	m.cursor = 3

	// When: inserting below the tail
	m = press(t, m, "o")
	m = press(t, m, "enter")

	// Then: the tail key comes from the successor operation
	assert.Equal(t, []string{"B", "C", "D", "E", "F"}, keys(m))
	assert.Contains(t, m.status, `After("E") = "F"`)
}

func TestPlayModel_InsertIntoEmptyList(t *testing.T) {
	// Given: an empty playground
	m := NewPlayModel(playIndexer, 0, true)

	// When: inserting the first item
	m = press(t, m, "i")
	m = press(t, m, "first")
	m = press(t, m, "enter")

	// Then: it gets the initial key
	assert.Equal(t, []string{"B"}, keys(m))
	assert.Equal(t, "first", m.items[0].name)
	assert.Contains(t, m.status, `First() = "B"`)
}

func TestPlayModel_InsertDefaultName(t *testing.T) {
	// Given: four items
	m := NewPlayModel(playIndexer, 4, true)

	// When: confirming the insert without typing a name
	m = press(t, m, "o")
	m = press(t, m, "enter")

	// Then: a placeholder name is assigned
	assert.Equal(t, "item 5", m.items[1].name)
}

func TestPlayModel_EscCancelsInsert(t *testing.T) {
	// Given: an insert in progress
	m := NewPlayModel(playIndexer, 4, true)
	m = press(t, m, "o")
	m = press(t, m, "half-typed")

	// When: pressing esc
	m = press(t, m, "esc")

	// Then: nothing was added
	assert.False(t, m.editing)
	assert.Equal(t, []string{"B", "C", "D", "E"}, keys(m))
	assert.Equal(t, "insert cancelled", m.status)
}

func TestPlayModel_StatusSeverity(t *testing.T) {
	// Given: a seeded playground
	m := NewPlayModel(playIndexer, 2, true)
	assert.Equal(t, statusInfo, m.statusKind)

	// When/Then: a successful insert marks the status as a success
	m = press(t, m, "o")
	m = press(t, m, "enter")
	assert.Equal(t, statusOK, m.statusKind)

	// When/Then: cancelling an insert marks it as a warning
	m = press(t, m, "i")
	m = press(t, m, "esc")
	assert.Equal(t, statusWarn, m.statusKind)
}

func TestPlayModel_MoveDown(t *testing.T) {
	// Given: four items with the cursor on the first
	m := NewPlayModel(playIndexer, 4, true)

	// When: moving it down one slot
	m = press(t, m, "J")

	// Then: the item re-keys into the next gap, neighbors untouched
	assert.Equal(t, []string{"C", "CM", "D", "E"}, keys(m))
	assert.Equal(t, "item 1", m.items[1].name)
	assert.Equal(t, 1, m.cursor)
	assert.Contains(t, m.status, `Between("C", "D") = "CM"`)
}

func TestPlayModel_MoveUp(t *testing.T) {
	// Given: the cursor on the second item
	m := NewPlayModel(playIndexer, 4, true)
	m = press(t, m, "j")

	// When: moving it up past the head
	m = press(t, m, "K")

	// Then: it becomes the new head via the predecessor operation
	assert.Equal(t, []string{"AZ", "B", "D", "E"}, keys(m))
	assert.Equal(t, "item 2", m.items[0].name)
	assert.Equal(t, 0, m.cursor)
}

func TestPlayModel_MoveClampsAtEdges(t *testing.T) {
	// Given: four items
	m := NewPlayModel(playIndexer, 4, true)

	// When: moving the head up and the tail down
	m = press(t, m, "K")
	m.cursor = 3
	m = press(t, m, "J")

	// Then: nothing changed
	assert.Equal(t, []string{"B", "C", "D", "E"}, keys(m))
}

func TestPlayModel_DeleteKeepsNeighborKeys(t *testing.T) {
	// Given: the cursor on the second item
	m := NewPlayModel(playIndexer, 4, true)
	m = press(t, m, "j")

	// When: deleting it
	m = press(t, m, "d")

	// Then: neighbors keep their keys
	assert.Equal(t, []string{"B", "D", "E"}, keys(m))
	assert.Equal(t, 1, m.cursor)
	assert.Contains(t, m.status, `removed "C"`)
}

func TestPlayModel_DeleteLastItemClampsCursor(t *testing.T) {
	// Given: the cursor on the tail
	m := NewPlayModel(playIndexer, 2, true)
	m = press(t, m, "j")

	// When: deleting it
	m = press(t, m, "d")

	// Then: the cursor moves back onto the new tail
	assert.Equal(t, []string{"B"}, keys(m))
	assert.Equal(t, 0, m.cursor)
}

func TestPlayModel_DeleteOnEmptyList(t *testing.T) {
	// Given: an empty playground
	m := NewPlayModel(playIndexer, 0, true)

	// When: pressing delete
	m = press(t, m, "d")

	// Then: reports there is nothing to do
	assert.Equal(t, "nothing to delete", m.status)
}

func TestPlayModel_KeysStayOrderedThroughEdits(t *testing.T) {
	// Given: a playground put through inserts, moves, and deletes
	m := NewPlayModel(playIndexer, 5, true)
	m = press(t, m, "o")
	m = press(t, m, "enter")
	m = press(t, m, "J")
	m = press(t, m, "d")
	m = press(t, m, "i")
	m = press(t, m, "enter")
	m = press(t, m, "K")

	// Then: the key column is still strictly ascending
	ks := keys(m)
	require.NotEmpty(t, ks)
	for i := 1; i < len(ks); i++ {
		assert.Negative(t, lexindex.Compare(ks[i-1], ks[i]),
			"keys[%d]=%q should sort before keys[%d]=%q", i-1, ks[i-1], i, ks[i])
	}
}

func TestPlayModel_QuitClearsView(t *testing.T) {
	// Given: a seeded playground
	m := NewPlayModel(playIndexer, 2, true)

	// When: quitting
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = updated.(*PlayModel)

	// Then: the view goes blank and the quit command fires
	assert.True(t, m.quitting)
	assert.Empty(t, m.View())
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestPlayModel_WindowResize(t *testing.T) {
	// Given: a playground at the default size
	m := NewPlayModel(playIndexer, 2, true)

	// When: the terminal resizes
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(*PlayModel)

	// Then: dimensions are tracked
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
}

func TestPlayModel_EditingViewShowsPrompt(t *testing.T) {
	// Given: an insert in progress
	m := NewPlayModel(playIndexer, 2, true)
	m = press(t, m, "o")

	// When: rendering
	view := m.View()

	// Then: the inline prompt and editing help are shown
	assert.Contains(t, view, "+ ")
	assert.Contains(t, view, "enter confirm")
}

func TestPlayModel_InterfaceCompliance(t *testing.T) {
	// Ensure PlayModel implements tea.Model
	var _ tea.Model = (*PlayModel)(nil)
}
