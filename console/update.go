package console

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/undotext/buffer"
	"github.com/iw2rmb/undotext/internal/grapheme"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	// Paste events always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		m.insert(string(msg.Runes))
		m.followCursor()
		return m, nil
	}

	km := m.cfg.KeyMap
	line := m.buf.String()
	before := m.buf.Version()

	switch {
	case key.Matches(msg, km.Quit):
		return m, tea.Quit
	case key.Matches(msg, km.Submit):
		cmd := m.submit()
		return m, cmd

	case key.Matches(msg, km.Left):
		m.cursor = grapheme.PrevBoundary(grapheme.Boundaries(line), m.cursor)
	case key.Matches(msg, km.Right):
		m.cursor = grapheme.NextBoundary(grapheme.Boundaries(line), m.cursor)
	case key.Matches(msg, km.WordLeft):
		m.cursor = wordLeft(line, m.cursor)
	case key.Matches(msg, km.WordRight):
		m.cursor = wordRight(line, m.cursor)
	case key.Matches(msg, km.Home):
		m.cursor = 0
	case key.Matches(msg, km.End):
		m.cursor = m.buf.Len()

	case key.Matches(msg, km.Backspace):
		m.deleteRange(grapheme.PrevBoundary(grapheme.Boundaries(line), m.cursor), m.cursor)
	case key.Matches(msg, km.Delete):
		m.deleteRange(m.cursor, grapheme.NextBoundary(grapheme.Boundaries(line), m.cursor))
	case key.Matches(msg, km.DeleteWord):
		m.deleteRange(wordLeft(line, m.cursor), m.cursor)
	case key.Matches(msg, km.ClearLine):
		m.buf.Clear()
		m.cursor = 0

	case key.Matches(msg, km.Undo):
		if m.buf.Undo() {
			m.cursor = snapCursor(m.buf.String(), m.cursor)
			m.cfg.Logger.Debug("undo", "len", m.buf.Len(), "history", m.buf.History().Len())
		}

	default:
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			m.insert(string(msg.Runes))
		} else if msg.Type == tea.KeySpace {
			m.insert(" ")
		}
	}

	m.logEdit(before)
	m.followCursor()
	return m, nil
}

func (m *Model) insert(s string) {
	if _, err := m.buf.Insert(m.cursor, s); err != nil {
		m.cfg.Logger.Error("insert failed", "cursor", m.cursor, "err", err)
		return
	}
	m.cursor += len([]rune(s))
}

// deleteRange removes [start, end). An empty range records nothing.
func (m *Model) deleteRange(start, end int) {
	if _, err := m.buf.Delete(start, end); err != nil {
		m.cfg.Logger.Error("delete failed", "start", start, "end", end, "err", err)
		return
	}
	m.cursor = start
}

// submit moves the line to the scrollback and starts a fresh history. The
// returned command prints the line above the program.
func (m *Model) submit() tea.Cmd {
	line := m.buf.String()
	m.scrollback = append(m.scrollback, line)
	m.cfg.Logger.Debug("submit", "line", line)

	m.buf.Clear()
	m.buf.ClearHistory()
	m.cursor = 0
	m.xOffset = 0

	if m.cfg.OnSubmit != nil {
		m.cfg.OnSubmit(line)
	}
	return tea.Println(m.cfg.Style.Scrollback.Render(m.cfg.Prompt + line))
}

func (m *Model) logEdit(before uint64) {
	c, ok := m.buf.LastChange()
	if !ok || c.VersionBefore != before || c.Op == buffer.OpUndo {
		return
	}
	m.cfg.Logger.Debug("edit", "op", c.Op.String(), "len", m.buf.Len(), "history", m.buf.History().Len())
}

// snapCursor clamps off into line and moves it back onto a cluster boundary.
func snapCursor(line string, off int) int {
	bounds := grapheme.Boundaries(line)
	return bounds[clusterIndex(bounds, off)]
}
