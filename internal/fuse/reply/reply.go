package reply

import (
	"time"

	"github.com/burrowfs/burrow/internal/fuse"
	"github.com/burrowfs/burrow/internal/fuse/wire"
)

// Each builder below answers one family of kernel requests. Builders are
// single use: exactly one terminal call (a success method or Error) must be
// made, and making a second one panics. Terminal calls return after the
// write attempt finishes, success or not.

// Init answers the capability negotiation request that starts a session.
type Init struct{ raw }

func NewInit(requestID uint64, conn *Conn) *Init {
	return &Init{raw: newRaw(requestID, conn)}
}

// Ok grants cfg to the kernel. The layout written depends on cfg.Version:
// fields the negotiated minor doesn't know about are omitted entirely.
func (r *Init) Ok(cfg fuse.InitConfig) {
	r.send(wire.InitOut{
		Major:               cfg.Version.Major,
		Minor:               cfg.Version.Minor,
		MaxReadahead:        cfg.MaxReadahead,
		Flags:               uint32(cfg.Flags),
		MaxBackground:       cfg.MaxBackground,
		CongestionThreshold: cfg.CongestionThreshold,
		MaxWrite:            cfg.MaxWrite,
		TimeGran:            cfg.TimeGran,
		MaxPages:            cfg.MaxPages,
	}, 0)
}

// Error answers the request with a POSIX error number.
func (r *Init) Error(errno fuse.Errno) { r.sendError(errno) }

// Empty acknowledges requests that have no response body, such as unlink,
// rename and flush.
type Empty struct{ raw }

func NewEmpty(requestID uint64, conn *Conn) *Empty {
	return &Empty{raw: newRaw(requestID, conn)}
}

// Ok acknowledges the request.
func (r *Empty) Ok() { r.send(nil, 0) }

// Error answers the request with a POSIX error number.
func (r *Empty) Error(errno fuse.Errno) { r.sendError(errno) }

// Data answers requests whose reply is an untyped byte buffer, such as read
// and readlink.
type Data struct{ raw }

func NewData(requestID uint64, conn *Conn) *Data {
	return &Data{raw: newRaw(requestID, conn)}
}

// Ok sends b verbatim.
func (r *Data) Ok(b []byte) { r.send(wire.Bytes(b), 0) }

// Error answers the request with a POSIX error number.
func (r *Data) Error(errno fuse.Errno) { r.sendError(errno) }

// Entry answers lookup, symlink, mknod, mkdir and link requests.
type Entry struct{ raw }

func NewEntry(requestID uint64, conn *Conn) *Entry {
	return &Entry{raw: newRaw(requestID, conn)}
}

// Ok describes the resolved file. ttl bounds how long the kernel may cache
// both the entry and its attributes; generation disambiguates reuse of
// attr.Inode.
func (r *Entry) Ok(ttl time.Duration, attr fuse.Attrib, generation uint64) {
	r.send(toEntryOut(ttl, attr, generation), 0)
}

// Error answers the request with a POSIX error number.
func (r *Entry) Error(errno fuse.Errno) { r.sendError(errno) }

// Attr answers getattr and setattr requests.
type Attr struct{ raw }

func NewAttr(requestID uint64, conn *Conn) *Attr {
	return &Attr{raw: newRaw(requestID, conn)}
}

// Ok sends attr with its cache validity duration.
func (r *Attr) Ok(ttl time.Duration, attr fuse.Attrib) {
	r.send(wire.AttrOut{
		AttrValid:     toSecondFrag(ttl),
		AttrValidNsec: toNanosecondFrag(ttl),
		Attr:          toWireAttr(attr),
	}, 0)
}

// Error answers the request with a POSIX error number.
func (r *Attr) Error(errno fuse.Errno) { r.sendError(errno) }

// Open answers open and opendir requests.
type Open struct{ raw }

func NewOpen(requestID uint64, conn *Conn) *Open {
	return &Open{raw: newRaw(requestID, conn)}
}

// Ok sends the handle the kernel should use for subsequent operations.
func (r *Open) Ok(handle fuse.Handle, flags fuse.OpenedFlags) {
	r.send(wire.OpenOut{
		Fh:        uint64(handle),
		OpenFlags: uint32(flags),
	}, 0)
}

// Error answers the request with a POSIX error number.
func (r *Open) Error(errno fuse.Errno) { r.sendError(errno) }

// Write answers write requests.
type Write struct{ raw }

func NewWrite(requestID uint64, conn *Conn) *Write {
	return &Write{raw: newRaw(requestID, conn)}
}

// Ok reports how many bytes were written.
func (r *Write) Ok(written uint32) {
	r.send(wire.WriteOut{Written: written}, 0)
}

// Error answers the request with a POSIX error number.
func (r *Write) Error(errno fuse.Errno) { r.sendError(errno) }

// Create answers create requests, which resolve an entry and open it in one
// step. The payload is the entry record immediately followed by the open
// record.
type Create struct{ raw }

func NewCreate(requestID uint64, conn *Conn) *Create {
	return &Create{raw: newRaw(requestID, conn)}
}

// Ok describes the created file and its open handle.
func (r *Create) Ok(ttl time.Duration, attr fuse.Attrib, generation uint64, handle fuse.Handle, flags fuse.OpenedFlags) {
	r.send(wire.CreateOut{
		Entry: toEntryOut(ttl, attr, generation),
		Open: wire.OpenOut{
			Fh:        uint64(handle),
			OpenFlags: uint32(flags),
		},
	}, 0)
}

// Error answers the request with a POSIX error number.
func (r *Create) Error(errno fuse.Errno) { r.sendError(errno) }

// Lock answers getlk requests.
type Lock struct{ raw }

func NewLock(requestID uint64, conn *Conn) *Lock {
	return &Lock{raw: newRaw(requestID, conn)}
}

// Ok describes the lock that would conflict, or an unlock record when the
// range is free.
func (r *Lock) Ok(lk fuse.Lock) {
	r.send(wire.LockOut{
		Start: lk.Start,
		End:   lk.End,
		Type:  uint32(lk.Type),
		PID:   lk.PID,
	}, 0)
}

// Error answers the request with a POSIX error number.
func (r *Lock) Error(errno fuse.Errno) { r.sendError(errno) }

// Bmap answers block-map requests from filesystems backed by block devices.
type Bmap struct{ raw }

func NewBmap(requestID uint64, conn *Conn) *Bmap {
	return &Bmap{raw: newRaw(requestID, conn)}
}

// Ok reports the physical block number.
func (r *Bmap) Ok(block uint64) {
	r.send(wire.BmapOut{Block: block}, 0)
}

// Error answers the request with a POSIX error number.
func (r *Bmap) Error(errno fuse.Errno) { r.sendError(errno) }

// Statfs answers statfs requests.
type Statfs struct{ raw }

func NewStatfs(requestID uint64, conn *Conn) *Statfs {
	return &Statfs{raw: newRaw(requestID, conn)}
}

// Ok sends filesystem-wide statistics. Reserved fields go out zeroed.
func (r *Statfs) Ok(st fuse.Statfs) {
	r.send(wire.StatfsOut{
		Blocks:  st.Blocks,
		Bfree:   st.BlocksFree,
		Bavail:  st.BlocksAvail,
		Files:   st.Files,
		Ffree:   st.FilesFree,
		Bsize:   st.BlockSize,
		Namelen: st.NameLen,
		Frsize:  st.FragmentSize,
	}, 0)
}

// Error answers the request with a POSIX error number.
func (r *Statfs) Error(errno fuse.Errno) { r.sendError(errno) }

// XAttr answers getxattr and listxattr requests, which come in two forms:
// a size query answered with Size, and a content read answered with Data.
type XAttr struct{ raw }

func NewXAttr(requestID uint64, conn *Conn) *XAttr {
	return &XAttr{raw: newRaw(requestID, conn)}
}

// Size reports how many bytes the attribute value occupies.
func (r *XAttr) Size(size uint32) {
	r.send(wire.GetxattrOut{XattrSize: size}, 0)
}

// Data sends the attribute value itself.
func (r *XAttr) Data(b []byte) { r.send(wire.Bytes(b), 0) }

// Error answers the request with a POSIX error number.
func (r *XAttr) Error(errno fuse.Errno) { r.sendError(errno) }

// Directory answers readdir requests. Records accumulate in a DirBuffer
// sized to the kernel's read request; Ok sends whatever fit.
type Directory struct {
	raw
	buf *DirBuffer
}

// NewDirectory creates a Directory whose buffer holds at most size bytes of
// packed records.
func NewDirectory(requestID uint64, conn *Conn, size int) *Directory {
	return &Directory{
		raw: newRaw(requestID, conn),
		buf: NewDirBuffer(size),
	}
}

// Append adds one record to the listing. It reports true when the record
// doesn't fit, in which case nothing was added and the caller should finish
// with Ok; the kernel resumes from next on its next readdir.
func (r *Directory) Append(ino uint64, next uint64, typ fuse.EntryType, name string) bool {
	return r.buf.Append(ino, next, typ, name)
}

// Ok sends the records accumulated so far. An empty buffer tells the kernel
// the listing is finished.
func (r *Directory) Ok() {
	r.send(wire.Bytes(r.buf.Bytes()), 0)
}

// Error answers the request with a POSIX error number.
func (r *Directory) Error(errno fuse.Errno) { r.sendError(errno) }
