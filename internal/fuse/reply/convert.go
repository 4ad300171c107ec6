package reply

import (
	"os"
	"time"

	"github.com/burrowfs/burrow/internal/fuse"
	"github.com/burrowfs/burrow/internal/fuse/wire"
	"golang.org/x/sys/unix"
)

// Conversions from domain values to wire records. Timestamps and validity
// durations are split into whole seconds and sub-second nanoseconds.

func toSecondFrag(d time.Duration) uint64 {
	return uint64(d / time.Second)
}

func toNanosecondFrag(d time.Duration) uint32 {
	rem := d - d.Truncate(time.Second)
	return uint32(rem.Nanoseconds())
}

func toUnix(t time.Time) uint64 {
	if t.IsZero() {
		return 0
	}
	return uint64(t.Unix())
}

func toUnixNsOffset(t time.Time) uint32 {
	if t.IsZero() {
		return 0
	}
	return uint32(t.Nanosecond())
}

// toEntryOut flattens attr into an entry record. The node id comes from the
// attribute's own inode; there is no separate identifier source.
func toEntryOut(ttl time.Duration, attr fuse.Attrib, generation uint64) wire.EntryOut {
	return wire.EntryOut{
		NodeID:         attr.Inode,
		Generation:     generation,
		EntryValid:     toSecondFrag(ttl),
		AttrValid:      toSecondFrag(ttl),
		EntryValidNsec: toNanosecondFrag(ttl),
		AttrValidNsec:  toNanosecondFrag(ttl),
		Attr:           toWireAttr(attr),
	}
}

func toWireAttr(in fuse.Attrib) wire.Attr {
	return wire.Attr{
		Ino:       in.Inode,
		Size:      in.Size,
		Blocks:    in.Blocks,
		Atime:     toUnix(in.LastAccess),
		Mtime:     toUnix(in.LastModify),
		Ctime:     toUnix(in.LastChange),
		AtimeNsec: toUnixNsOffset(in.LastAccess),
		MtimeNsec: toUnixNsOffset(in.LastModify),
		CtimeNsec: toUnixNsOffset(in.LastChange),
		Mode:      toKernelMode(in.Mode),
		Nlink:     in.HardLinks,
		UID:       in.UID,
		GID:       in.GID,
		Rdev:      in.DeviceID,
		BlockSize: in.BlockSize,
	}
}

// toKernelMode converts a native os.FileMode into S_IF* type bits plus
// permissions.
func toKernelMode(in os.FileMode) uint32 {
	out := uint32(in) & 0o777
	switch {
	case in&os.ModeType == 0:
		out |= unix.S_IFREG
	case in&os.ModeDir != 0:
		out |= unix.S_IFDIR
	case in&os.ModeDevice != 0 && in&os.ModeCharDevice != 0:
		out |= unix.S_IFCHR
	case in&os.ModeDevice != 0:
		out |= unix.S_IFBLK
	case in&os.ModeNamedPipe != 0:
		out |= unix.S_IFIFO
	case in&os.ModeSymlink != 0:
		out |= unix.S_IFLNK
	case in&os.ModeSocket != 0:
		out |= unix.S_IFSOCK
	}
	if in&os.ModeSetuid != 0 {
		out |= unix.S_ISUID
	}
	if in&os.ModeSetgid != 0 {
		out |= unix.S_ISGID
	}
	if in&os.ModeSticky != 0 {
		out |= unix.S_ISVTX
	}
	return out
}
