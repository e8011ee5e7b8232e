package buffer

// Snapshot is an immutable copy of a buffer's content at one instant.
// It never shares storage with a live Buffer.
type Snapshot struct {
	data []rune
}

// Len returns the number of runes captured.
func (s Snapshot) Len() int { return len(s.data) }

func (s Snapshot) String() string { return string(s.data) }

// History is a LIFO stack of pre-mutation snapshots. The zero value is an
// empty history. It grows without bound until Clear.
type History struct {
	undo []Snapshot
}

// Len returns the number of recorded snapshots.
func (h *History) Len() int { return len(h.undo) }

// CanUndo reports whether at least one snapshot is recorded.
func (h *History) CanUndo() bool { return len(h.undo) > 0 }

// Record pushes a snapshot of b's current content.
func (h *History) Record(b *Buffer) {
	h.undo = append(h.undo, b.Snapshot())
}

// Undo pops the newest snapshot and restores b to it. It reports false, and
// leaves b untouched, when there is nothing to undo.
func (h *History) Undo(b *Buffer) bool {
	if len(h.undo) == 0 {
		return false
	}

	i := len(h.undo) - 1
	prev := h.undo[i]
	h.undo[i] = Snapshot{}
	h.undo = h.undo[:i]

	cb := b.beginChange(OpUndo)
	b.setContent(prev.data, DefaultCapacity)
	b.version++
	b.commitChange(cb)
	return true
}

// Clear drops every recorded snapshot. The buffer is not affected.
func (h *History) Clear() {
	h.undo = nil
}

// Snapshot captures the used portion of the buffer.
func (b *Buffer) Snapshot() Snapshot {
	return Snapshot{data: b.Runes()}
}

// Restore replaces the content with s. Unlike Undo it is an ordinary
// mutation: it is recorded, so it can itself be undone.
func (b *Buffer) Restore(s Snapshot) *Buffer {
	cb := b.record(OpRestore)
	b.setContent(s.data, len(b.value))
	b.commit(cb)
	return b
}

// Undo reverts the most recent recorded mutation. See History.Undo.
func (b *Buffer) Undo() bool { return b.hist.Undo(b) }

// CanUndo reports whether Undo would change the buffer.
func (b *Buffer) CanUndo() bool { return b.hist.CanUndo() }

// ClearHistory forgets every recorded mutation; the current content becomes
// the oldest state Undo can reach.
func (b *Buffer) ClearHistory() { b.hist.Clear() }

// record snapshots the pre-mutation state and opens a change. Callers must
// have validated arguments and ruled out no-ops first.
func (b *Buffer) record(op Op) changeBuilder {
	b.hist.Record(b)
	return b.beginChange(op)
}

func (b *Buffer) commit(cb changeBuilder) {
	b.version++
	b.commitChange(cb)
}
