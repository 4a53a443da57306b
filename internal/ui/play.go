package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ordinalab/lexindex/pkg/lexindex"
)

// playItem is one row of the playground list.
type playItem struct {
	key  string
	name string
}

// Status severity, drives the style of the status line.
type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusWarn
	statusErr
)

// PlayModel is the bubbletea model for the interactive playground: a
// reorderable list where every insert, move, and delete shows the key
// operation it cost. Items stay sorted by key at all times - that is
// the whole point.
type PlayModel struct {
	ix     *lexindex.Indexer
	items  []playItem
	cursor int

	input    textinput.Model
	editing  bool
	insertAt int

	status     string
	statusKind statusKind
	styles     Styles
	width      int
	height     int

	quitting bool
}

// NewPlayModel seeds a playground with initial items keyed by a
// First/After chain.
func NewPlayModel(ix *lexindex.Indexer, initial int, noColor bool) *PlayModel {
	ti := textinput.New()
	ti.Placeholder = "item name"
	ti.CharLimit = 40
	ti.Width = 30

	m := &PlayModel{
		ix:     ix,
		input:  ti,
		styles: GetStyles(noColor),
		width:  80,
		height: 24,
	}

	key := ix.First()
	for i := 0; i < initial; i++ {
		m.items = append(m.items, playItem{key: key, name: fmt.Sprintf("item %d", i+1)})
		next, err := ix.After(key)
		if err != nil {
			break
		}
		key = next
	}
	m.setStatus(statusInfo, fmt.Sprintf("seeded %d items with First/After", len(m.items)))

	return m
}

// setStatus records the status line and its severity.
func (m *PlayModel) setStatus(kind statusKind, status string) {
	m.status = status
	m.statusKind = kind
}

// Init implements tea.Model.
func (m *PlayModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.updateBrowsing(msg)
	}

	if m.editing {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// updateBrowsing handles keys while navigating the list.
func (m *PlayModel) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case "i":
		return m, m.startInsert(m.cursor)

	case "o":
		at := m.cursor + 1
		if len(m.items) == 0 {
			at = 0
		}
		return m, m.startInsert(at)

	case "K":
		m.moveItem(m.cursor, m.cursor-1)

	case "J":
		m.moveItem(m.cursor, m.cursor+1)

	case "d":
		m.deleteItem()
	}

	return m, nil
}

// updateEditing handles keys while the name input is open.
func (m *PlayModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		name := strings.TrimSpace(m.input.Value())
		if name == "" {
			name = fmt.Sprintf("item %d", len(m.items)+1)
		}
		m.editing = false
		m.input.Blur()
		m.insertItem(m.insertAt, name)
		return m, nil

	case "esc":
		m.editing = false
		m.input.Blur()
		m.setStatus(statusWarn, "insert cancelled")
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// startInsert opens the name input for a new item at position at.
func (m *PlayModel) startInsert(at int) tea.Cmd {
	m.editing = true
	m.insertAt = at
	m.input.SetValue("")
	return m.input.Focus()
}

// keyFor computes the key for an item landing at position at, and
// describes the operation that produced it.
func (m *PlayModel) keyFor(at int) (key, op string, err error) {
	switch {
	case len(m.items) == 0:
		return m.ix.First(), "First()", nil

	case at <= 0:
		key, err = m.ix.Before(m.items[0].key)
		return key, fmt.Sprintf("Before(%q)", m.items[0].key), err

	case at >= len(m.items):
		last := m.items[len(m.items)-1].key
		key, err = m.ix.After(last)
		return key, fmt.Sprintf("After(%q)", last), err

	default:
		lo, hi := m.items[at-1].key, m.items[at].key
		key, err = m.ix.Between(lo, hi)
		return key, fmt.Sprintf("Between(%q, %q)", lo, hi), err
	}
}

// insertItem computes a key for position at and places a new item there.
func (m *PlayModel) insertItem(at int, name string) {
	key, op, err := m.keyFor(at)
	if err != nil {
		m.setStatus(statusErr, op+" failed: "+err.Error())
		return
	}

	m.items = append(m.items, playItem{})
	copy(m.items[at+1:], m.items[at:])
	m.items[at] = playItem{key: key, name: name}
	m.cursor = at
	m.setStatus(statusOK, fmt.Sprintf("%s = %q", op, key))
}

// moveItem reorders one item by a single position, recomputing its key
// for the destination gap.
func (m *PlayModel) moveItem(from, to int) {
	if from < 0 || from >= len(m.items) || to < 0 || to >= len(m.items) || from == to {
		return
	}

	it := m.items[from]
	m.items = append(m.items[:from], m.items[from+1:]...)

	key, op, err := m.keyFor(to)
	if err != nil {
		// Put it back where it was
		m.items = append(m.items, playItem{})
		copy(m.items[from+1:], m.items[from:])
		m.items[from] = it
		m.setStatus(statusErr, op+" failed: "+err.Error())
		return
	}

	it.key = key
	m.items = append(m.items, playItem{})
	copy(m.items[to+1:], m.items[to:])
	m.items[to] = it
	m.cursor = to
	m.setStatus(statusOK, fmt.Sprintf("%s = %q", op, key))
}

// deleteItem removes the item under the cursor. Neighbors keep their
// keys - removal never requires renumbering.
func (m *PlayModel) deleteItem() {
	if len(m.items) == 0 {
		m.setStatus(statusWarn, "nothing to delete")
		return
	}

	removed := m.items[m.cursor]
	m.items = append(m.items[:m.cursor], m.items[m.cursor+1:]...)
	if m.cursor >= len(m.items) && m.cursor > 0 {
		m.cursor--
	}
	m.setStatus(statusInfo, fmt.Sprintf("removed %q - neighbors keep their keys", removed.key))
}

// View implements tea.Model.
func (m *PlayModel) View() string {
	if m.quitting {
		return ""
	}

	contentWidth := m.width - 4
	if contentWidth < 40 {
		contentWidth = 40
	}

	var sections []string

	keyWidth := 0
	for _, it := range m.items {
		if len(it.key) > keyWidth {
			keyWidth = len(it.key)
		}
	}

	if len(m.items) == 0 && !m.editing {
		sections = append(sections, m.styles.Dim.Render("empty - press i to insert the first item"))
	}

	for i, it := range m.items {
		if m.editing && i == m.insertAt {
			sections = append(sections, m.renderInputLine())
		}

		line := fmt.Sprintf("%-*s  %s", keyWidth, it.key, it.name)
		if i == m.cursor && !m.editing {
			sections = append(sections, m.styles.Active.Render("> "+line))
		} else {
			sections = append(sections, "  "+m.styles.Label.Render(line))
		}
	}
	if m.editing && m.insertAt >= len(m.items) {
		sections = append(sections, m.renderInputLine())
	}

	content := strings.Join(sections, "\n")

	title := m.styles.Header.Render("lexindex playground")
	panel := m.styles.Panel.Width(contentWidth)
	body := lipgloss.JoinVertical(lipgloss.Left, title, panel.Render(content))

	statusStyle := m.styles.Label
	switch m.statusKind {
	case statusOK:
		statusStyle = m.styles.Success
	case statusWarn:
		statusStyle = m.styles.Warning
	case statusErr:
		statusStyle = m.styles.Error
	}
	statusLine := statusStyle.Render(m.status)

	help := "i insert above  •  o insert below  •  J/K move  •  d delete  •  q quit"
	if m.editing {
		help = "enter confirm  •  esc cancel"
	}
	helpLine := m.styles.Dim.Render(help)

	return body + "\n" + statusLine + "\n" + helpLine
}

// renderInputLine renders the in-place name prompt for a pending insert.
func (m *PlayModel) renderInputLine() string {
	return m.styles.Active.Render("+ ") + m.input.View()
}

// RunPlay runs the playground to completion on an interactive terminal.
func RunPlay(m *PlayModel, out io.Writer) error {
	var opts []tea.ProgramOption
	if f, ok := out.(*os.File); ok {
		opts = append(opts, tea.WithOutput(f))
	}
	opts = append(opts, tea.WithAltScreen())

	_, err := tea.NewProgram(m, opts...).Run()
	return err
}

// Ensure PlayModel implements tea.Model
var _ tea.Model = (*PlayModel)(nil)
