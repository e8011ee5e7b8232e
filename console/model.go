package console

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/undotext/buffer"
)

// Model is a Bubble Tea component that edits one line in a buffer.
type Model struct {
	cfg Config
	buf *buffer.Buffer

	// cursor is a rune offset into the line, always on a cluster boundary.
	cursor int

	width int
	// xOffset is the rune offset of the first visible cluster.
	xOffset int

	scrollback []string

	lastBufVersion uint64
}

// New returns a console editing cfg.Text with the cursor at the end.
func New(cfg Config) Model {
	cfg = normalizeConfig(cfg)
	m := Model{
		cfg: cfg,
		buf: buffer.NewString(cfg.Text),
	}
	m.cursor = m.buf.Len()
	m.lastBufVersion = m.buf.Version()
	return m
}

// Buffer returns the underlying buffer. Hosts may edit it directly.
func (m Model) Buffer() *buffer.Buffer { return m.buf }

// Cursor returns the cursor as a rune offset into the line.
func (m Model) Cursor() int { return m.cursor }

// Scrollback returns the submitted lines, oldest first.
func (m Model) Scrollback() []string {
	return append([]string(nil), m.scrollback...)
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// SetWidth sets the line width in cells. Zero means unlimited.
func (m Model) SetWidth(width int) Model {
	if width < 0 {
		width = 0
	}
	m.width = width
	m.followCursor()
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	// Pick up host edits before applying a key at a possibly stale cursor.
	m.syncFromBuffer()

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetWidth(msg.Width), nil
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
	}

	m.syncFromBuffer()
	return m, cmd
}

func (m *Model) syncFromBuffer() {
	ver := m.buf.Version()
	if ver == m.lastBufVersion {
		return
	}
	m.lastBufVersion = ver
	m.cursor = snapCursor(m.buf.String(), m.cursor)
	m.followCursor()
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.buf, m.cursor))
	}
}
