// Package reply encodes and transmits answers to kernel filesystem
// requests. The dispatch loop creates one builder per request, fills in the
// filesystem's result, and finishes it with exactly one terminal call; the
// builder flattens the result into its wire layout and writes the header and
// payload to the kernel device in a single vectored write.
//
// Terminal calls return nothing: once a request has been processed there is
// no channel left to resend on, so write failures are logged and counted but
// never surfaced to the caller.
package reply

import (
	"sync"

	"github.com/burrowfs/burrow/internal/fuse"
	"github.com/burrowfs/burrow/internal/fuse/wire"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"go.uber.org/atomic"
	"golang.org/x/sys/unix"
)

// Device is the writable side of the kernel connection. It is implemented by
// FD for the real character device and by in-memory fakes in tests.
type Device interface {
	// Writev writes bufs in one vectored write and returns the number of
	// bytes written.
	Writev(bufs [][]byte) (int, error)
}

// FD is a Device backed by a raw file descriptor, typically the /dev/fuse
// descriptor owned by the session layer.
type FD int

func (fd FD) Writev(bufs [][]byte) (int, error) {
	return unix.Writev(int(fd), bufs)
}

// ConnOptions configure optional Conn behavior.
type ConnOptions struct {
	// Metrics, if set, is updated after every write attempt.
	Metrics *Metrics

	// OnWriteError, if set, is invoked after a failed write. The reply path
	// itself never retries and never returns the error; deciding that the
	// connection is dead belongs to the session layer.
	OnWriteError func(error)
}

// Conn is the kernel-facing side of the connection, shared by every
// in-flight reply. Conn does not own the descriptor; opening and closing it
// is the session layer's job.
type Conn struct {
	log  log.Logger
	dev  Device
	o    ConnOptions
	wmut sync.Mutex
}

// NewConn wraps dev for use by reply builders.
func NewConn(l log.Logger, dev Device, o ConnOptions) *Conn {
	if l == nil {
		l = log.NewNopLogger()
	}
	return &Conn{log: l, dev: dev, o: o}
}

// raw addresses one reply to one request. Every typed builder embeds a raw
// and sends through it exactly once.
type raw struct {
	unique uint64
	conn   *Conn
	done   atomic.Bool
}

func newRaw(requestID uint64, conn *Conn) raw {
	return raw{unique: requestID, conn: conn}
}

// send encodes the header for p and writes both to the device. p may be nil
// for replies without a body. A non-empty payload combined with a non-zero
// errno means a typed builder mis-encoded its own contract, so send panics
// rather than guessing which half to trust.
func (r *raw) send(p wire.Payload, errno fuse.Errno) {
	if !r.done.CompareAndSwap(false, true) {
		panic("reply: reply already sent")
	}

	var size int
	if p != nil {
		size = p.Size()
	}
	if size > 0 && errno != 0 {
		panic("reply: non-empty payload with non-zero errno")
	}

	hdr := wire.OutHeader{
		Len:    uint32(wire.OutHeaderSize + size),
		Error:  -int32(errno), // the kernel wants the errno negated
		Unique: r.unique,
	}

	bufs := make([][]byte, 1, 2)
	bufs[0] = hdr.Append(make([]byte, 0, wire.OutHeaderSize))
	if size > 0 {
		bufs = append(bufs, p.Append(make([]byte, 0, size)))
	}

	c := r.conn
	c.wmut.Lock()
	n, err := c.dev.Writev(bufs)
	c.wmut.Unlock()

	if err != nil {
		level.Error(c.log).Log("msg", "failed to write reply", "id", r.unique, "err", err)
		c.o.Metrics.writeFailed()
		if c.o.OnWriteError != nil {
			c.o.OnWriteError(err)
		}
		return
	}
	level.Debug(c.log).Log("msg", "wrote reply", "id", r.unique, "len", n)
	c.o.Metrics.wrote(n)
}

func (r *raw) sendError(errno fuse.Errno) {
	r.send(nil, errno)
}
