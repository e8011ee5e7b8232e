package buffer

import (
	"fmt"
	"unicode/utf8"
)

// DefaultCapacity is the storage reserved by New, and the minimum capacity
// re-derived when Undo restores a snapshot.
const DefaultCapacity = 16

// Buffer is a mutable rune sequence with a linear undo history.
//
// The zero value is not usable; construct with New, NewWithCapacity,
// NewString, or NewValue.
type Buffer struct {
	// len(value) is the allocated capacity; value[:count] is the content.
	value []rune
	count int

	version uint64
	hist    History

	lastChange    Change
	hasLastChange bool
}

// New returns an empty buffer with DefaultCapacity.
func New() *Buffer {
	return &Buffer{value: make([]rune, DefaultCapacity)}
}

// NewWithCapacity returns an empty buffer with exactly n runes of storage.
func NewWithCapacity(n int) (*Buffer, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: capacity=%d < 0", ErrInvalidArgument, n)
	}
	return &Buffer{value: make([]rune, n)}, nil
}

// NewString returns a buffer seeded with s. The seed is not undoable: the
// history starts empty and Version starts at 0.
func NewString(s string) *Buffer {
	b := &Buffer{value: make([]rune, max(DefaultCapacity, utf8.RuneCountInString(s)))}
	b.Append(s)
	b.hist.Clear()
	b.version = 0
	b.lastChange = Change{}
	b.hasLastChange = false
	return b
}

// NewValue is like NewString but renders v with the same rules as
// AppendValue, so a nil v seeds the buffer with "null".
func NewValue(v any) *Buffer {
	return NewString(textOf(v))
}

// Len returns the number of runes in the buffer.
func (b *Buffer) Len() int { return b.count }

// Cap returns the allocated storage in runes. It is informational only.
func (b *Buffer) Cap() int { return len(b.value) }

// Version is bumped by every effective mutation and every successful Undo.
func (b *Buffer) Version() uint64 { return b.version }

// String renders the logical content.
func (b *Buffer) String() string {
	return string(b.value[:b.count])
}

// Runes returns a copy of the logical content.
func (b *Buffer) Runes() []rune {
	return append([]rune(nil), b.value[:b.count]...)
}

// History returns the buffer's undo history.
func (b *Buffer) History() *History { return &b.hist }

// EnsureCapacity grows storage so that Cap() >= min. Content, length and
// history are unaffected.
func (b *Buffer) EnsureCapacity(min int) *Buffer {
	b.ensureCapacity(min)
	return b
}

func (b *Buffer) ensureCapacity(min int) {
	if min > len(b.value) {
		b.grow(min)
	}
}

func (b *Buffer) grow(min int) {
	n := len(b.value)*2 + 2
	if n < min {
		n = min
	}
	next := make([]rune, n)
	copy(next, b.value[:b.count])
	b.value = next
}

// setContent replaces storage with a fresh copy of rs, reserving at least
// minCap runes.
func (b *Buffer) setContent(rs []rune, minCap int) {
	b.value = make([]rune, max(len(rs), minCap))
	copy(b.value, rs)
	b.count = len(rs)
}
