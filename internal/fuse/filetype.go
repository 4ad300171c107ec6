package fuse

import "os"

// EntryTypeOf classifies m into the kernel's d_type numbering. Permission
// bits in m are ignored; only the type bits matter.
func EntryTypeOf(m os.FileMode) EntryType {
	switch {
	case m&os.ModeType == 0:
		return EntryRegular
	case m&os.ModeDir != 0:
		return EntryDirectory
	case m&os.ModeSymlink != 0:
		return EntryLink
	case m&os.ModeDevice != 0 && m&os.ModeCharDevice != 0:
		return EntryCharacter
	case m&os.ModeDevice != 0:
		return EntryBlock
	case m&os.ModeNamedPipe != 0:
		return EntryPipe
	case m&os.ModeSocket != 0:
		return EntryUnixSocket
	default:
		return EntryUnknown
	}
}
