// Package fuse holds the domain model shared by the burrow filesystem
// driver: protocol versions, node and handle identifiers, file attributes,
// and the POSIX error numbers the kernel understands.
//
// The exact binary layout of replies lives in the wire subpackage; the
// builders that encode and transmit them live in the reply subpackage.
//
// burrow was initially written against FUSE 7.31.
package fuse

import "fmt"

var (
	// MinVersion supported by the package. Earlier minors degrade to compat
	// reply layouts; see the wire subpackage.
	MinVersion = Version{Major: 7, Minor: 8}

	// RootNode is the root of the mounted filesystem. It always has node ID 1.
	RootNode Node = Node(1)
)

// Version of the protocol, as negotiated during init.
type Version struct{ Major, Minor uint32 }

// String implements fmt.Stringer.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// AtLeast reports whether v is at least major 7, minor m. Reply layouts grew
// new trailing fields at specific minors, so most callers gate on the minor.
func (v Version) AtLeast(m uint32) bool {
	if v.Major != 7 {
		return v.Major > 7
	}
	return v.Minor >= m
}

// ID types. FUSE has a collection of handles that are used during the
// lifetime of a connection.
type (
	// Node is an ID representing a file. 0 is never a valid reference. 1
	// always refers to the root of the mounted filesystem.
	Node uint64

	// Handle is a specific open handle for a Node. Handle IDs may be
	// reassigned to other Nodes once the handle is released.
	Handle uint64
)
