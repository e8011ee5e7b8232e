package console

import "github.com/iw2rmb/undotext/buffer"

// ChangeEvent describes the line after an update that changed the buffer.
type ChangeEvent struct {
	Version uint64
	Cursor  int

	// Change is the buffer's last effective change.
	Change buffer.Change

	Text string
}

func buildChangeEvent(b *buffer.Buffer, cursor int) ChangeEvent {
	ev := ChangeEvent{
		Version: b.Version(),
		Cursor:  cursor,
		Text:    b.String(),
	}
	if c, ok := b.LastChange(); ok {
		ev.Change = c
	}
	return ev
}
