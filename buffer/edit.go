package buffer

import "unicode/utf8"

// Append appends s to the end of the buffer.
func (b *Buffer) Append(s string) *Buffer {
	b.insertRunes(OpAppend, b.count, []rune(s))
	return b
}

// AppendRune appends a single rune.
func (b *Buffer) AppendRune(r rune) *Buffer {
	cb := b.record(OpAppend)
	b.ensureCapacity(b.count + 1)
	b.value[b.count] = r
	b.count++
	b.commit(cb)
	return b
}

// AppendValue appends the text form of v. A nil v (including typed nil
// pointers) appends "null"; a rune appends that rune; a fmt.Stringer or
// error appends its text; anything else is formatted with fmt.Sprint.
//
// rune is int32, so any int32 appends as a character: AppendValue(int32(65))
// appends "A" while AppendValue(65) appends "65".
func (b *Buffer) AppendValue(v any) *Buffer {
	return b.Append(textOf(v))
}

// Insert inserts s at offset, shifting everything at or after offset right.
// offset must satisfy 0 <= offset <= Len().
func (b *Buffer) Insert(offset int, s string) (*Buffer, error) {
	if offset < 0 || offset > b.count {
		return b, indexError(offset, b.count)
	}
	b.insertRunes(OpInsert, offset, []rune(s))
	return b, nil
}

// InsertValue is Insert with the null handling of AppendValue.
func (b *Buffer) InsertValue(offset int, v any) (*Buffer, error) {
	return b.Insert(offset, textOf(v))
}

// Delete removes the runes in [start, end). An empty range changes nothing
// and is not recorded in history.
func (b *Buffer) Delete(start, end int) (*Buffer, error) {
	if start < 0 || start > end || end > b.count {
		return b, rangeError(start, end, b.count)
	}
	if start == end {
		return b, nil
	}

	cb := b.record(OpDelete)
	copy(b.value[start:], b.value[end:b.count])
	b.count -= end - start
	b.commit(cb)
	return b, nil
}

// SetLength truncates or extends the content to n runes. Extension pads
// with '0'.
func (b *Buffer) SetLength(n int) (*Buffer, error) {
	if n < 0 {
		return b, indexError(n, b.count)
	}

	cb := b.record(OpSetLength)
	b.ensureCapacity(n)
	for i := b.count; i < n; i++ {
		b.value[i] = '0'
	}
	b.count = n
	b.commit(cb)
	return b, nil
}

// Clear empties the buffer. Clearing an empty buffer is not recorded.
func (b *Buffer) Clear() *Buffer {
	if b.count == 0 {
		return b
	}
	cb := b.record(OpClear)
	b.count = 0
	b.commit(cb)
	return b
}

// Write appends p as UTF-8 text. Each call is one undo step.
func (b *Buffer) Write(p []byte) (int, error) {
	b.Append(string(p))
	return len(p), nil
}

// WriteString appends s. Each call is one undo step.
func (b *Buffer) WriteString(s string) (int, error) {
	b.Append(s)
	return len(s), nil
}

// WriteRune appends r and reports its UTF-8 size.
func (b *Buffer) WriteRune(r rune) (int, error) {
	b.AppendRune(r)
	return utf8.RuneLen(r), nil
}

func (b *Buffer) insertRunes(op Op, offset int, rs []rune) {
	cb := b.record(op)
	b.ensureCapacity(b.count + len(rs))
	copy(b.value[offset+len(rs):], b.value[offset:b.count])
	copy(b.value[offset:], rs)
	b.count += len(rs)
	b.commit(cb)
}
