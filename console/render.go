package console

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/iw2rmb/undotext/internal/grapheme"
)

func (m Model) View() string {
	return m.renderLine() + "\n" + m.cfg.Style.Status.Render(m.statusLine())
}

func (m Model) renderLine() string {
	st := m.cfg.Style
	line := m.buf.String()
	clusters := grapheme.Split(line)
	bounds := grapheme.Boundaries(line)
	avail := m.contentWidth()

	var sb strings.Builder
	sb.WriteString(st.Prompt.Render(m.cfg.Prompt))

	used := 0
	for i := clusterIndex(bounds, m.xOffset); i < len(clusters); i++ {
		c := clusters[i]
		w := cellWidth(c)
		if avail > 0 && used+w > avail {
			break
		}
		used += w
		if c == "\t" {
			c = " "
		}
		if bounds[i] == m.cursor {
			sb.WriteString(st.Cursor.Render(c))
		} else {
			sb.WriteString(st.Text.Render(c))
		}
	}
	if m.cursor == len([]rune(line)) && (avail <= 0 || used < avail) {
		sb.WriteString(st.Cursor.Render(" "))
	}
	return sb.String()
}

func (m Model) statusLine() string {
	return fmt.Sprintf("undo: %d  len: %d", m.buf.History().Len(), m.buf.Len())
}

// contentWidth is the number of cells left for the line after the prompt.
// Zero means the width is unknown and nothing is clipped.
func (m Model) contentWidth() int {
	if m.width <= 0 {
		return 0
	}
	w := m.width - runewidth.StringWidth(m.cfg.Prompt)
	if w < 1 {
		w = 1
	}
	return w
}

// followCursor scrolls horizontally so the cursor cell is visible.
func (m *Model) followCursor() {
	if m.xOffset > m.cursor {
		m.xOffset = m.cursor
	}
	avail := m.contentWidth()
	if avail <= 0 {
		m.xOffset = 0
		return
	}

	line := m.buf.String()
	clusters := grapheme.Split(line)
	bounds := grapheme.Boundaries(line)
	start := clusterIndex(bounds, m.xOffset)
	cur := clusterIndex(bounds, m.cursor)

	cursorCell := 1
	if cur < len(clusters) {
		cursorCell = cellWidth(clusters[cur])
	}
	span := cursorCell
	for i := start; i < cur; i++ {
		span += cellWidth(clusters[i])
	}
	for start < cur && span > avail {
		span -= cellWidth(clusters[start])
		start++
	}
	m.xOffset = bounds[start]
}

// cellWidth returns the terminal-cell width of one grapheme cluster.
func cellWidth(cluster string) int {
	if cluster == "\t" {
		return 1
	}
	w := runewidth.StringWidth(cluster)
	if w <= 0 {
		w = uniseg.StringWidth(cluster)
	}
	if w <= 0 {
		w = 1
	}
	return w
}
