package fuse

import (
	"os"
	"time"
)

// Common data types. These describe filesystem entities as the driver sees
// them; the wire subpackage flattens them into the kernel's fixed layouts.
type (
	// Attrib is the set of attributes for a Node.
	Attrib struct {
		Inode      uint64      // Real inode number.
		Size       uint64      // Size in bytes.
		Blocks     uint64      // Size in blocks (512-byte units).
		LastAccess time.Time   // Last time file was accessed.
		LastModify time.Time   // Last time contents were modified.
		LastChange time.Time   // Last time inode was updated.
		Mode       os.FileMode // File type and permissions.
		HardLinks  uint32      // Number of hard links to the file (usually 1).
		UID        uint32      // Owner UID.
		GID        uint32      // Owner GID.
		DeviceID   uint32      // Device ID (if special file).
		BlockSize  uint32      // Block size for filesystem I/O.
	}

	// Lock is a POSIX advisory lock.
	Lock struct {
		Start uint64   // Absolute starting byte offset of the lock.
		End   uint64   // Last byte offset of the lock.
		Type  LockType // Type of lock.
		PID   uint32   // PID of the holding process.
	}

	// Statfs describes filesystem-wide statistics.
	Statfs struct {
		Blocks       uint64 // Total data blocks.
		BlocksFree   uint64 // Free blocks.
		BlocksAvail  uint64 // Free blocks available to unprivileged users.
		Files        uint64 // Total file nodes.
		FilesFree    uint64 // Free file nodes.
		BlockSize    uint32 // Block size.
		NameLen      uint32 // Maximum length of a file name.
		FragmentSize uint32 // Fragment size.
	}

	// InitConfig is the driver's side of the capability negotiation: the
	// version it settles on plus the limits and features it grants. The
	// negotiated Version decides which trailing fields reach the wire at all.
	InitConfig struct {
		Version             Version
		MaxReadahead        uint32    // Length of data that can be prefetched.
		Flags               InitFlags // Feature flags granted to the kernel.
		MaxBackground       uint16    // Max queued background requests (7.13+).
		CongestionThreshold uint16    // Background congestion mark (7.13+).
		MaxWrite            uint32    // Largest write the driver accepts.
		TimeGran            uint32    // Timestamp granularity in ns (7.23+).
		MaxPages            uint16    // Max pages per request (7.28+).
	}
)

// Enum types.
type (
	// EntryType is the coarse file-type classification of a directory entry,
	// in the kernel's d_type numbering. It is distinct from permission bits.
	EntryType uint32

	// LockType indicates the type of file lock.
	LockType uint32
)

// Enum values.
const (
	EntryUnknown    EntryType = 0x0 // Entry type isn't known
	EntryPipe       EntryType = 0x1 // Entry is a named FIFO pipe
	EntryCharacter  EntryType = 0x2 // Entry is a character device
	EntryDirectory  EntryType = 0x4 // Entry is another directory
	EntryBlock      EntryType = 0x6 // Entry is a block device
	EntryRegular    EntryType = 0x8 // Entry is a regular file
	EntryLink       EntryType = 0xa // Entry is a symbolic link
	EntryUnixSocket EntryType = 0xc // Entry is a UNIX domain socket

	LockTypeRead   LockType = 0x0 // Read lock
	LockTypeWrite  LockType = 0x1 // Write lock
	LockTypeUnlock LockType = 0x2 // Used to release locks
)

// Flag types. Every flag type here is a bitmask of options.
type (
	// OpenedFlags are returned for an opened file.
	OpenedFlags uint32
	// InitFlags are granted during capability negotiation.
	InitFlags uint32
)

const (
	OpenedDirectIO    OpenedFlags = 1 << 0 // Page cache should be bypassed
	OpenedKeepCache   OpenedFlags = 1 << 1 // Existing page cache should be kept intact
	OpenedNonSeekable OpenedFlags = 1 << 2 // File does not support seeking
	OpenedCacheDir    OpenedFlags = 1 << 3 // Allow caching directory
	OpenedStream      OpenedFlags = 1 << 4 // The file is stream-like (it has no position)

	InitAsyncRead           InitFlags = 1 << 0  // Use asynchronous read requests
	InitPOSIXLocks          InitFlags = 1 << 1  // Use POSIX file locks
	InitAtomicTruncate      InitFlags = 1 << 3  // Truncate-on-open is handled in the filesystem
	InitExportSupport       InitFlags = 1 << 4  // Filesystem can handle "." and ".."
	InitBigWrites           InitFlags = 1 << 5  // Filesystem can handle writes larger than 4K
	InitDontMask            InitFlags = 1 << 6  // Don't apply umask to file mode on create
	InitAutoInvalidateCache InitFlags = 1 << 12 // Automatically invalidate cached pages
	InitAsyncDIO            InitFlags = 1 << 15 // Asynchronous direct I/O submission
	InitWritebackCache      InitFlags = 1 << 16 // Use writeback cache for buffered writes
	InitParallelDirOps      InitFlags = 1 << 18 // Allow parallel operations on directories
	InitMaxPages            InitFlags = 1 << 22 // Kernel reads MaxPages from the init reply
	InitCacheSymlinks       InitFlags = 1 << 23 // Cache responses for symbolic links
)
