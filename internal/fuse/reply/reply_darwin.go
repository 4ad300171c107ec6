//go:build darwin

package reply

import (
	"time"

	"github.com/burrowfs/burrow/internal/fuse"
	"github.com/burrowfs/burrow/internal/fuse/wire"
)

// XTimes answers getxtimes requests, a macOS extension reporting a file's
// backup and creation times.
type XTimes struct{ raw }

func NewXTimes(requestID uint64, conn *Conn) *XTimes {
	return &XTimes{raw: newRaw(requestID, conn)}
}

// Ok sends the backup and creation timestamps.
func (r *XTimes) Ok(bkuptime, crtime time.Time) {
	r.send(wire.XTimesOut{
		Bkuptime:     toUnix(bkuptime),
		Crtime:       toUnix(crtime),
		BkuptimeNsec: toUnixNsOffset(bkuptime),
		CrtimeNsec:   toUnixNsOffset(crtime),
	}, 0)
}

// Error answers the request with a POSIX error number.
func (r *XTimes) Error(errno fuse.Errno) { r.sendError(errno) }
