package fuse

import "strconv"

// Errno is a POSIX error number for a failed operation. The kernel expects
// the number negated in the reply header; builders take the positive value
// and the sender flips the sign.
//
// The most common numbers are re-defined here for cross-platform
// compatibility. Custom values may be used as long as Linux understands them.
type Errno int32

const (
	ErrNotPermitted  = Errno(0x01) // EPERM
	ErrNotExist      = Errno(0x02) // ENOENT
	ErrInterrupted   = Errno(0x04) // EINTR
	ErrIO            = Errno(0x05) // EIO
	ErrUnavailable   = Errno(0x0b) // EAGAIN
	ErrNoMemory      = Errno(0x0c) // ENOMEM
	ErrUnauthorized  = Errno(0x0d) // EACCES
	ErrExists        = Errno(0x11) // EEXIST
	ErrNotDirectory  = Errno(0x14) // ENOTDIR
	ErrIsDirectory   = Errno(0x15) // EISDIR
	ErrInvalid       = Errno(0x16) // EINVAL
	ErrNoSpace       = Errno(0x1c) // ENOSPC
	ErrRange         = Errno(0x22) // ERANGE
	ErrNameTooLong   = Errno(0x24) // ENAMETOOLONG
	ErrNoLock        = Errno(0x25) // ENOLCK
	ErrUnimplemented = Errno(0x26) // ENOSYS
	ErrNotEmpty      = Errno(0x27) // ENOTEMPTY
	ErrNoData        = Errno(0x3d) // ENODATA
	ErrStale         = Errno(0x74) // ESTALE
)

// Errno description table
var errnoDescriptions = map[Errno]string{
	ErrNotPermitted:  "operation not permitted",
	ErrNotExist:      "no such file or directory",
	ErrInterrupted:   "interrupted system call",
	ErrIO:            "input/output error",
	ErrUnavailable:   "resource temporarily unavailable",
	ErrNoMemory:      "cannot allocate memory",
	ErrUnauthorized:  "permission denied",
	ErrExists:        "file exists",
	ErrNotDirectory:  "not a directory",
	ErrIsDirectory:   "is a directory",
	ErrInvalid:       "invalid argument",
	ErrNoSpace:       "no space left on device",
	ErrRange:         "result too large",
	ErrNameTooLong:   "file name too long",
	ErrNoLock:        "no locks available",
	ErrUnimplemented: "function not implemented",
	ErrNotEmpty:      "directory not empty",
	ErrNoData:        "no data available",
	ErrStale:         "stale file handle",
}

// Error prints the description of the error number.
func (e Errno) Error() string {
	desc := errnoDescriptions[e]
	if desc != "" {
		return desc
	}
	return "errno " + strconv.Itoa(int(e))
}
