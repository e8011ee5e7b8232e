package buffer

// Op identifies the operation that produced a Change.
type Op uint8

const (
	OpNone Op = iota
	OpAppend
	OpInsert
	OpDelete
	OpSetLength
	OpClear
	OpRestore
	OpUndo
)

func (o Op) String() string {
	switch o {
	case OpAppend:
		return "append"
	case OpInsert:
		return "insert"
	case OpDelete:
		return "delete"
	case OpSetLength:
		return "set-length"
	case OpClear:
		return "clear"
	case OpRestore:
		return "restore"
	case OpUndo:
		return "undo"
	default:
		return "none"
	}
}

// Change describes one effective mutation.
type Change struct {
	Op            Op
	VersionBefore uint64
	VersionAfter  uint64
	LenBefore     int
	LenAfter      int
}

type changeBuilder struct {
	op            Op
	versionBefore uint64
	lenBefore     int
}

// LastChange returns the most recent effective change.
func (b *Buffer) LastChange() (Change, bool) {
	if !b.hasLastChange {
		return Change{}, false
	}
	return b.lastChange, true
}

func (b *Buffer) beginChange(op Op) changeBuilder {
	return changeBuilder{
		op:            op,
		versionBefore: b.version,
		lenBefore:     b.count,
	}
}

func (b *Buffer) commitChange(cb changeBuilder) {
	if b.version == cb.versionBefore {
		return
	}
	b.lastChange = Change{
		Op:            cb.op,
		VersionBefore: cb.versionBefore,
		VersionAfter:  b.version,
		LenBefore:     cb.lenBefore,
		LenAfter:      b.count,
	}
	b.hasLastChange = true
}
