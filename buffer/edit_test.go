package buffer

import (
	"errors"
	"fmt"
	"testing"
)

func TestAppend_Chaining(t *testing.T) {
	b := NewString("Hello")
	b.AppendRune(' ').Append("world")
	if got, want := b.String(), "Hello world"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if got := b.History().Len(); got != 2 {
		t.Fatalf("history len: got %d, want 2", got)
	}
}

func TestAppendValue(t *testing.T) {
	var sp *string
	var st fmt.Stringer
	cases := []struct {
		name string
		v    any
		want string
	}{
		{name: "nil", v: nil, want: "null"},
		{name: "nil string pointer", v: sp, want: "null"},
		{name: "nil stringer", v: st, want: "null"},
		{name: "nil rune slice", v: []rune(nil), want: "null"},
		{name: "string", v: "xy", want: "xy"},
		{name: "rune", v: 'π', want: "π"},
		{name: "error", v: errors.New("boom"), want: "boom"},
		{name: "int", v: 42, want: "42"},
		{name: "int32 is a rune", v: int32(65), want: "A"},
		{name: "bool", v: true, want: "true"},
	}
	for _, tc := range cases {
		b := New()
		b.AppendValue(tc.v)
		if got := b.String(); got != tc.want {
			t.Fatalf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestInsert(t *testing.T) {
	cases := []struct {
		seed   string
		offset int
		text   string
		want   string
	}{
		{seed: "Helloworld", offset: 5, text: ", ", want: "Hello, world"},
		{seed: "abc", offset: 0, text: "X", want: "Xabc"},
		{seed: "abc", offset: 3, text: "X", want: "abcX"},
		{seed: "", offset: 0, text: "π", want: "π"},
		{seed: "aπc", offset: 2, text: "テ", want: "aπテc"},
	}
	for _, tc := range cases {
		b := NewString(tc.seed)
		if _, err := b.Insert(tc.offset, tc.text); err != nil {
			t.Fatalf("insert(%d, %q) into %q: %v", tc.offset, tc.text, tc.seed, err)
		}
		if got := b.String(); got != tc.want {
			t.Fatalf("insert(%d, %q) into %q: got %q, want %q", tc.offset, tc.text, tc.seed, got, tc.want)
		}
	}
}

func TestInsert_GrowsPastCapacity(t *testing.T) {
	b := NewString("0123456789abcdef")
	if _, err := b.Insert(8, "--"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := b.String(), "01234567--89abcdef"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if got, want := b.Cap(), DefaultCapacity*2+2; got != want {
		t.Fatalf("cap: got %d, want %d", got, want)
	}
}

func TestInsertValue_NilInsertsNull(t *testing.T) {
	b := NewString("ab")
	if _, err := b.InsertValue(1, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := b.String(), "anullb"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
}

func TestDelete(t *testing.T) {
	cases := []struct {
		seed       string
		start, end int
		want       string
	}{
		{seed: "Hello world", start: 5, end: 6, want: "Helloworld"},
		{seed: "abc", start: 0, end: 3, want: ""},
		{seed: "abc", start: 0, end: 1, want: "bc"},
		{seed: "abc", start: 2, end: 3, want: "ab"},
		{seed: "aπテc", start: 1, end: 3, want: "ac"},
	}
	for _, tc := range cases {
		b := NewString(tc.seed)
		if _, err := b.Delete(tc.start, tc.end); err != nil {
			t.Fatalf("delete(%d, %d) from %q: %v", tc.start, tc.end, tc.seed, err)
		}
		if got := b.String(); got != tc.want {
			t.Fatalf("delete(%d, %d) from %q: got %q, want %q", tc.start, tc.end, tc.seed, got, tc.want)
		}
	}
}

func TestOutOfBounds_LeavesStateUnchanged(t *testing.T) {
	cases := []struct {
		name string
		fn   func(b *Buffer) error
	}{
		{name: "insert negative", fn: func(b *Buffer) error { _, err := b.Insert(-1, "x"); return err }},
		{name: "insert past end", fn: func(b *Buffer) error { _, err := b.Insert(5, "x"); return err }},
		{name: "insert value past end", fn: func(b *Buffer) error { _, err := b.InsertValue(9, nil); return err }},
		{name: "delete negative start", fn: func(b *Buffer) error { _, err := b.Delete(-1, 1); return err }},
		{name: "delete start after end", fn: func(b *Buffer) error { _, err := b.Delete(2, 1); return err }},
		{name: "delete end past length", fn: func(b *Buffer) error { _, err := b.Delete(0, 5); return err }},
		{name: "set length negative", fn: func(b *Buffer) error { _, err := b.SetLength(-1); return err }},
	}
	for _, tc := range cases {
		b := NewString("abc")
		b.Append("d")
		text, n, depth, v := b.String(), b.Len(), b.History().Len(), b.Version()

		err := tc.fn(b)
		if !errors.Is(err, ErrIndexOutOfBounds) {
			t.Fatalf("%s: err got %v, want ErrIndexOutOfBounds", tc.name, err)
		}
		if got := b.String(); got != text {
			t.Fatalf("%s: text got %q, want %q", tc.name, got, text)
		}
		if got := b.Len(); got != n {
			t.Fatalf("%s: len got %d, want %d", tc.name, got, n)
		}
		if got := b.History().Len(); got != depth {
			t.Fatalf("%s: history len got %d, want %d", tc.name, got, depth)
		}
		if got := b.Version(); got != v {
			t.Fatalf("%s: version got %d, want %d", tc.name, got, v)
		}
	}
}

func TestSetLength(t *testing.T) {
	cases := []struct {
		seed string
		n    int
		want string
	}{
		{seed: "ab", n: 4, want: "ab00"},
		{seed: "abcd", n: 2, want: "ab"},
		{seed: "abc", n: 0, want: ""},
		{seed: "", n: 3, want: "000"},
		{seed: "abc", n: 3, want: "abc"},
	}
	for _, tc := range cases {
		b := NewString(tc.seed)
		if _, err := b.SetLength(tc.n); err != nil {
			t.Fatalf("set length %d on %q: %v", tc.n, tc.seed, err)
		}
		if got := b.String(); got != tc.want {
			t.Fatalf("set length %d on %q: got %q, want %q", tc.n, tc.seed, got, tc.want)
		}
		if b.Len() > b.Cap() {
			t.Fatalf("len %d exceeds cap %d", b.Len(), b.Cap())
		}
	}
}

func TestSetLength_TruncateThenExtendPadsZeros(t *testing.T) {
	b := NewString("abcdef")
	if _, err := b.SetLength(2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := b.SetLength(5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := b.String(), "ab000"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
}

func TestClear(t *testing.T) {
	b := NewString("abc")
	b.Clear()
	if got := b.String(); got != "" {
		t.Fatalf("text: got %q, want empty", got)
	}
	if got := b.History().Len(); got != 1 {
		t.Fatalf("history len: got %d, want 1", got)
	}

	b.Clear()
	if got := b.History().Len(); got != 1 {
		t.Fatalf("clearing an empty buffer must not record: history len %d", got)
	}
}

func TestWriter_EachWriteIsOneStep(t *testing.T) {
	b := New()
	fmt.Fprintf(b, "%d+%d", 1, 2)
	if _, err := b.WriteString("=3"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	n, err := b.WriteRune('π')
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 2 {
		t.Fatalf("rune size: got %d, want 2", n)
	}
	if got, want := b.String(), "1+2=3π"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}

	b.Undo()
	b.Undo()
	if got, want := b.String(), "1+2"; got != want {
		t.Fatalf("text after two undos: got %q, want %q", got, want)
	}
	b.Undo()
	if got := b.String(); got != "" {
		t.Fatalf("text after three undos: got %q, want empty", got)
	}
}
