// Package wire defines the binary layout of every reply the kernel accepts.
//
// Layouts must match Linux's definitions verbatim, including padding fields.
// Rather than reinterpreting struct memory, each record appends itself field
// by field in host byte order, so the encoded bytes never depend on Go's
// struct layout rules.
package wire

import "encoding/binary"

var native = binary.NativeEndian

// Payload is an operation-specific reply body. A reply transmits either one
// Payload after its header or nothing at all.
type Payload interface {
	// Size returns the encoded length in bytes.
	Size() int

	// Append appends the host-order encoding to buf and returns the extended
	// slice. Append must write exactly Size bytes.
	Append(buf []byte) []byte
}

// Fixed encoded sizes. Init replies are the only layout whose size varies;
// see InitOut.
const (
	OutHeaderSize = 16
	AttrSize      = 88
	EntryOutSize  = 40 + AttrSize
	DirentSize    = 24
)

// OutHeader begins every reply. Len covers the header itself plus the
// payload. Error is zero on success and a negated POSIX errno on failure.
type OutHeader struct {
	Len    uint32
	Error  int32
	Unique uint64
}

func (h OutHeader) Size() int { return OutHeaderSize }

func (h OutHeader) Append(buf []byte) []byte {
	buf = native.AppendUint32(buf, h.Len)
	buf = native.AppendUint32(buf, uint32(h.Error))
	return native.AppendUint64(buf, h.Unique)
}

// Bytes is an already-serialized payload: read data, extended attribute
// contents, or a packed directory listing.
type Bytes []byte

func (b Bytes) Size() int                { return len(b) }
func (b Bytes) Append(buf []byte) []byte { return append(buf, b...) }

// Attr mirrors fuse_attr. It only ever appears embedded in EntryOut and
// AttrOut, so it is not a Payload of its own; its encoded length is the
// AttrSize constant.
type Attr struct {
	Ino       uint64
	Size      uint64
	Blocks    uint64
	Atime     uint64
	Mtime     uint64
	Ctime     uint64
	AtimeNsec uint32
	MtimeNsec uint32
	CtimeNsec uint32
	Mode      uint32
	Nlink     uint32
	UID       uint32
	GID       uint32
	Rdev      uint32
	BlockSize uint32
	// 4 bytes of trailing padding
}

func (a Attr) Append(buf []byte) []byte {
	buf = native.AppendUint64(buf, a.Ino)
	buf = native.AppendUint64(buf, a.Size)
	buf = native.AppendUint64(buf, a.Blocks)
	buf = native.AppendUint64(buf, a.Atime)
	buf = native.AppendUint64(buf, a.Mtime)
	buf = native.AppendUint64(buf, a.Ctime)
	buf = native.AppendUint32(buf, a.AtimeNsec)
	buf = native.AppendUint32(buf, a.MtimeNsec)
	buf = native.AppendUint32(buf, a.CtimeNsec)
	buf = native.AppendUint32(buf, a.Mode)
	buf = native.AppendUint32(buf, a.Nlink)
	buf = native.AppendUint32(buf, a.UID)
	buf = native.AppendUint32(buf, a.GID)
	buf = native.AppendUint32(buf, a.Rdev)
	buf = native.AppendUint32(buf, a.BlockSize)
	return pad(buf, 4)
}

// EntryOut mirrors fuse_entry_out: validity timestamps for the entry and its
// attributes, split into whole seconds and nanoseconds, followed by the
// attributes themselves.
type EntryOut struct {
	NodeID         uint64
	Generation     uint64
	EntryValid     uint64
	AttrValid      uint64
	EntryValidNsec uint32
	AttrValidNsec  uint32
	Attr           Attr
}

func (o EntryOut) Size() int { return EntryOutSize }

func (o EntryOut) Append(buf []byte) []byte {
	buf = native.AppendUint64(buf, o.NodeID)
	buf = native.AppendUint64(buf, o.Generation)
	buf = native.AppendUint64(buf, o.EntryValid)
	buf = native.AppendUint64(buf, o.AttrValid)
	buf = native.AppendUint32(buf, o.EntryValidNsec)
	buf = native.AppendUint32(buf, o.AttrValidNsec)
	return o.Attr.Append(buf)
}

// AttrOut mirrors fuse_attr_out.
type AttrOut struct {
	AttrValid     uint64
	AttrValidNsec uint32
	// 4 bytes of padding
	Attr Attr
}

func (o AttrOut) Size() int { return 16 + AttrSize }

func (o AttrOut) Append(buf []byte) []byte {
	buf = native.AppendUint64(buf, o.AttrValid)
	buf = native.AppendUint32(buf, o.AttrValidNsec)
	buf = pad(buf, 4)
	return o.Attr.Append(buf)
}

// OpenOut mirrors fuse_open_out.
type OpenOut struct {
	Fh        uint64
	OpenFlags uint32
	// 4 bytes of padding
}

func (o OpenOut) Size() int { return 16 }

func (o OpenOut) Append(buf []byte) []byte {
	buf = native.AppendUint64(buf, o.Fh)
	buf = native.AppendUint32(buf, o.OpenFlags)
	return pad(buf, 4)
}

// CreateOut is the payload for a create reply: an entry immediately followed
// by an open result, in that order.
type CreateOut struct {
	Entry EntryOut
	Open  OpenOut
}

func (o CreateOut) Size() int { return o.Entry.Size() + o.Open.Size() }

func (o CreateOut) Append(buf []byte) []byte {
	buf = o.Entry.Append(buf)
	return o.Open.Append(buf)
}

// WriteOut mirrors fuse_write_out.
type WriteOut struct {
	Written uint32
	// 4 bytes of padding
}

func (o WriteOut) Size() int { return 8 }

func (o WriteOut) Append(buf []byte) []byte {
	buf = native.AppendUint32(buf, o.Written)
	return pad(buf, 4)
}

// StatfsOut mirrors fuse_statfs_out. The padding word and the six spare
// words are always zero on the wire.
type StatfsOut struct {
	Blocks  uint64
	Bfree   uint64
	Bavail  uint64
	Files   uint64
	Ffree   uint64
	Bsize   uint32
	Namelen uint32
	Frsize  uint32
	// padding uint32 + spare [6]uint32
}

func (o StatfsOut) Size() int { return 80 }

func (o StatfsOut) Append(buf []byte) []byte {
	buf = native.AppendUint64(buf, o.Blocks)
	buf = native.AppendUint64(buf, o.Bfree)
	buf = native.AppendUint64(buf, o.Bavail)
	buf = native.AppendUint64(buf, o.Files)
	buf = native.AppendUint64(buf, o.Ffree)
	buf = native.AppendUint32(buf, o.Bsize)
	buf = native.AppendUint32(buf, o.Namelen)
	buf = native.AppendUint32(buf, o.Frsize)
	return pad(buf, 4+6*4)
}

// LockOut mirrors fuse_lk_out.
type LockOut struct {
	Start uint64
	End   uint64
	Type  uint32
	PID   uint32
}

func (o LockOut) Size() int { return 24 }

func (o LockOut) Append(buf []byte) []byte {
	buf = native.AppendUint64(buf, o.Start)
	buf = native.AppendUint64(buf, o.End)
	buf = native.AppendUint32(buf, o.Type)
	return native.AppendUint32(buf, o.PID)
}

// BmapOut mirrors fuse_bmap_out.
type BmapOut struct {
	Block uint64
}

func (o BmapOut) Size() int { return 8 }

func (o BmapOut) Append(buf []byte) []byte {
	return native.AppendUint64(buf, o.Block)
}

// GetxattrOut mirrors fuse_getxattr_out, the size-query form of a getxattr
// reply.
type GetxattrOut struct {
	XattrSize uint32
	// 4 bytes of padding
}

func (o GetxattrOut) Size() int { return 8 }

func (o GetxattrOut) Append(buf []byte) []byte {
	buf = native.AppendUint32(buf, o.XattrSize)
	return pad(buf, 4)
}

// XTimesOut mirrors fuse_getxtimes_out (macOS only): backup time and
// creation time, each split into seconds and nanoseconds.
type XTimesOut struct {
	Bkuptime     uint64
	Crtime       uint64
	BkuptimeNsec uint32
	CrtimeNsec   uint32
}

func (o XTimesOut) Size() int { return 24 }

func (o XTimesOut) Append(buf []byte) []byte {
	buf = native.AppendUint64(buf, o.Bkuptime)
	buf = native.AppendUint64(buf, o.Crtime)
	buf = native.AppendUint32(buf, o.BkuptimeNsec)
	return native.AppendUint32(buf, o.CrtimeNsec)
}

// InitOut mirrors fuse_init_out. The layout is the only version-gated one:
// minors before 13 carry an unused word where the background fields now
// live, minors before 23 end right after MaxWrite (24 bytes, the kernel's
// compat-22 size), and the MaxPages pair only exists from minor 28 up.
// Omitted fields shrink the payload; they are never zero-filled.
type InitOut struct {
	Major               uint32
	Minor               uint32
	MaxReadahead        uint32
	Flags               uint32
	MaxBackground       uint16
	CongestionThreshold uint16
	MaxWrite            uint32
	TimeGran            uint32
	MaxPages            uint16
}

// atLeast reports whether the negotiated version carries fields introduced
// at 7.m. It applies the same rule as the domain package's Version.AtLeast;
// it is restated here so wire stays free of imports.
func (o InitOut) atLeast(m uint32) bool {
	if o.Major != 7 {
		return o.Major > 7
	}
	return o.Minor >= m
}

func (o InitOut) Size() int {
	if !o.atLeast(23) {
		return 24
	}
	return 64
}

func (o InitOut) Append(buf []byte) []byte {
	buf = native.AppendUint32(buf, o.Major)
	buf = native.AppendUint32(buf, o.Minor)
	buf = native.AppendUint32(buf, o.MaxReadahead)
	buf = native.AppendUint32(buf, o.Flags)
	if o.atLeast(13) {
		buf = native.AppendUint16(buf, o.MaxBackground)
		buf = native.AppendUint16(buf, o.CongestionThreshold)
	} else {
		buf = pad(buf, 4)
	}
	buf = native.AppendUint32(buf, o.MaxWrite)
	if !o.atLeast(23) {
		return buf
	}
	buf = native.AppendUint32(buf, o.TimeGran)
	if o.atLeast(28) {
		buf = native.AppendUint16(buf, o.MaxPages)
		buf = pad(buf, 2+8*4)
	} else {
		buf = pad(buf, 9*4)
	}
	return buf
}

// Dirent mirrors fuse_dirent, minus the name bytes and padding that follow
// it on the wire. See the reply package for the full record format.
type Dirent struct {
	Ino     uint64
	Off     uint64
	NameLen uint32
	Type    uint32
}

func (d Dirent) Size() int { return DirentSize }

func (d Dirent) Append(buf []byte) []byte {
	buf = native.AppendUint64(buf, d.Ino)
	buf = native.AppendUint64(buf, d.Off)
	buf = native.AppendUint32(buf, d.NameLen)
	return native.AppendUint32(buf, d.Type)
}

var zeros [64]byte

// pad appends n zero bytes.
func pad(buf []byte, n int) []byte {
	return append(buf, zeros[:n]...)
}
