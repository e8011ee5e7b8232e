// Package buffer implements an undoable text buffer.
//
// A Buffer stores runes with amortized growth. Every effective mutation first
// records a Snapshot of the pre-mutation content on the buffer's History, and
// Undo restores the most recent one. There is no redo.
//
// Offsets are 0-based rune indices. Ranges are half-open: [start, end).
package buffer
