package reply

import (
	"github.com/burrowfs/burrow/internal/fuse"
	"github.com/burrowfs/burrow/internal/fuse/wire"
)

// DirBuffer packs directory records into a capacity-bounded buffer for a
// single listing reply.
//
// Each record is the fixed dirent fields, the raw name bytes (no NUL
// terminator), then zero padding so the next record starts on an 8-byte
// boundary. A record is committed whole or not at all.
type DirBuffer struct {
	buf []byte
	cap int
}

// NewDirBuffer creates a DirBuffer holding at most capacity bytes.
func NewDirBuffer(capacity int) *DirBuffer {
	return &DirBuffer{
		buf: make([]byte, 0, capacity),
		cap: capacity,
	}
}

// Append adds one record. next is the opaque cursor the kernel echoes back
// to resume the listing after this entry; it is chosen by the caller and not
// interpreted here. Append reports true when the padded record doesn't fit,
// leaving the buffer untouched. A record bigger than the whole capacity can
// therefore never be appended; size buffers to fit at least one maximal
// name.
func (b *DirBuffer) Append(ino uint64, next uint64, typ fuse.EntryType, name string) bool {
	rawLen := wire.DirentSize + len(name)
	paddedLen := int(wire.Align64(uint64(rawLen)))
	if len(b.buf)+paddedLen > b.cap {
		return true
	}

	b.buf = wire.Dirent{
		Ino:     ino,
		Off:     next,
		NameLen: uint32(len(name)),
		Type:    uint32(typ),
	}.Append(b.buf)
	b.buf = append(b.buf, name...)
	for i := rawLen; i < paddedLen; i++ {
		b.buf = append(b.buf, 0)
	}
	return false
}

// Bytes returns the packed records.
func (b *DirBuffer) Bytes() []byte { return b.buf }

// Len returns the number of committed bytes.
func (b *DirBuffer) Len() int { return len(b.buf) }
