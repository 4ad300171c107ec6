package wire

import (
	"testing"

	"github.com/burrowfs/burrow/internal/fuse"
	"github.com/stretchr/testify/require"
)

func TestOutHeaderAppend(t *testing.T) {
	hdr := OutHeader{Len: 144, Error: -2, Unique: 0xdeadbeef}
	buf := hdr.Append(nil)

	require.Len(t, buf, OutHeaderSize)
	require.Equal(t, uint32(144), native.Uint32(buf[0:4]))
	require.Equal(t, int32(-2), int32(native.Uint32(buf[4:8])))
	require.Equal(t, uint64(0xdeadbeef), native.Uint64(buf[8:16]))
}

func TestPayloadSizesMatchAppend(t *testing.T) {
	tt := []struct {
		name    string
		payload Payload
		size    int
	}{
		{"entry_out", EntryOut{}, 128},
		{"attr_out", AttrOut{}, 104},
		{"open_out", OpenOut{}, 16},
		{"create_out", CreateOut{}, 144},
		{"write_out", WriteOut{}, 8},
		{"statfs_out", StatfsOut{}, 80},
		{"lock_out", LockOut{}, 24},
		{"bmap_out", BmapOut{}, 8},
		{"getxattr_out", GetxattrOut{}, 8},
		{"xtimes_out", XTimesOut{}, 24},
		{"bytes", Bytes("hello"), 5},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.size, tc.payload.Size())
			require.Len(t, tc.payload.Append(nil), tc.payload.Size())
		})
	}
}

func TestAttrAppendLength(t *testing.T) {
	// Attr is only ever embedded in other records; its Size field must not
	// collide with anything, and its encoding is always AttrSize bytes.
	a := Attr{Ino: 1, Size: 4096, Blocks: 8}
	buf := a.Append(nil)

	require.Len(t, buf, AttrSize)
	require.Equal(t, uint64(4096), native.Uint64(buf[8:16]))
}

func TestEntryOutLayout(t *testing.T) {
	out := EntryOut{
		NodeID:         42,
		Generation:     7,
		EntryValid:     5,
		AttrValid:      5,
		EntryValidNsec: 250000000,
		AttrValidNsec:  250000000,
		Attr: Attr{
			Ino:       42,
			Size:      4096,
			Mode:      0o40755,
			Nlink:     2,
			UID:       1000,
			GID:       1000,
			BlockSize: 4096,
		},
	}
	buf := out.Append(nil)

	require.Len(t, buf, 128)
	require.Equal(t, uint64(42), native.Uint64(buf[0:8]))
	require.Equal(t, uint64(7), native.Uint64(buf[8:16]))
	require.Equal(t, uint64(5), native.Uint64(buf[16:24]))
	require.Equal(t, uint64(5), native.Uint64(buf[24:32]))
	require.Equal(t, uint32(250000000), native.Uint32(buf[32:36]))
	require.Equal(t, uint32(250000000), native.Uint32(buf[36:40]))

	// Embedded attr starts at byte 40; its inode leads and blksize sits just
	// before the trailing padding word.
	require.Equal(t, uint64(42), native.Uint64(buf[40:48]))
	require.Equal(t, uint32(4096), native.Uint32(buf[120:124]))
	require.Equal(t, uint32(0), native.Uint32(buf[124:128]))
}

func TestAttrOutPadding(t *testing.T) {
	buf := AttrOut{AttrValid: 1, AttrValidNsec: 2, Attr: Attr{Ino: 3}}.Append(nil)

	require.Len(t, buf, 104)
	require.Equal(t, uint64(1), native.Uint64(buf[0:8]))
	require.Equal(t, uint32(2), native.Uint32(buf[8:12]))
	require.Equal(t, uint32(0), native.Uint32(buf[12:16]))
	require.Equal(t, uint64(3), native.Uint64(buf[16:24]))
}

func TestStatfsOutReservedZero(t *testing.T) {
	out := StatfsOut{
		Blocks:  100,
		Bfree:   50,
		Bavail:  40,
		Files:   10,
		Ffree:   5,
		Bsize:   4096,
		Namelen: 255,
		Frsize:  4096,
	}
	buf := out.Append(nil)

	require.Len(t, buf, 80)
	require.Equal(t, uint32(4096), native.Uint32(buf[48:52]))
	for i := 52; i < 80; i++ {
		require.Zero(t, buf[i], "reserved byte %d must be zero", i)
	}
}

func TestInitOutVersionGating(t *testing.T) {
	base := InitOut{
		Major:               7,
		MaxReadahead:        128 * 1024,
		Flags:               0x3f,
		MaxBackground:       12,
		CongestionThreshold: 9,
		MaxWrite:            128 * 1024,
		TimeGran:            1,
		MaxPages:            32,
	}

	tt := []struct {
		minor uint32
		size  int
	}{
		{8, 24},
		{12, 24},
		{13, 24},
		{22, 24},
		{23, 64},
		{27, 64},
		{28, 64},
		{31, 64},
	}
	for _, tc := range tt {
		out := base
		out.Minor = tc.minor
		buf := out.Append(nil)
		require.Len(t, buf, tc.size, "minor %d", tc.minor)
		require.Equal(t, out.Size(), len(buf), "minor %d", tc.minor)
	}

	// Before 7.13 the background fields don't exist; an unused zero word
	// takes their place and max_write follows it.
	out := base
	out.Minor = 12
	buf := out.Append(nil)
	require.Equal(t, uint32(0), native.Uint32(buf[16:20]))
	require.Equal(t, uint32(128*1024), native.Uint32(buf[20:24]))

	// From 7.13 the same bytes carry the two background halves.
	out.Minor = 13
	buf = out.Append(nil)
	require.Equal(t, uint16(12), native.Uint16(buf[16:18]))
	require.Equal(t, uint16(9), native.Uint16(buf[18:20]))

	// From 7.28 the max_pages field follows time_gran, then padding.
	out.Minor = 28
	buf = out.Append(nil)
	require.Equal(t, uint32(1), native.Uint32(buf[24:28]))
	require.Equal(t, uint16(32), native.Uint16(buf[28:30]))
	for i := 30; i < 64; i++ {
		require.Zero(t, buf[i], "trailing byte %d must be zero", i)
	}
}

func TestInitOutGateMatchesVersionAtLeast(t *testing.T) {
	// InitOut restates the version-comparison rule to keep this package
	// import-free; it must agree with fuse.Version.AtLeast.
	for _, v := range []fuse.Version{
		{Major: 6, Minor: 99},
		{Major: 7, Minor: 8},
		{Major: 7, Minor: 22},
		{Major: 7, Minor: 23},
		{Major: 7, Minor: 31},
		{Major: 8, Minor: 0},
	} {
		want := 24
		if v.AtLeast(23) {
			want = 64
		}
		require.Equal(t, want, InitOut{Major: v.Major, Minor: v.Minor}.Size(), "version %s", v)
	}
}

func TestDirentAppend(t *testing.T) {
	buf := Dirent{Ino: 42, Off: 1, NameLen: 6, Type: 4}.Append(nil)

	require.Len(t, buf, DirentSize)
	require.Equal(t, uint64(42), native.Uint64(buf[0:8]))
	require.Equal(t, uint64(1), native.Uint64(buf[8:16]))
	require.Equal(t, uint32(6), native.Uint32(buf[16:20]))
	require.Equal(t, uint32(4), native.Uint32(buf[20:24]))
}

func TestAlign64(t *testing.T) {
	require.Equal(t, uint64(0), Align64(0))
	require.Equal(t, uint64(8), Align64(1))
	require.Equal(t, uint64(8), Align64(8))
	require.Equal(t, uint64(16), Align64(9))
	require.Equal(t, uint64(24), Align64(24))
	require.Equal(t, uint64(32), Align64(25))
	require.Equal(t, uint64(32), Align64(30))
}
