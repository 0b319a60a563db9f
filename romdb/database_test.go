package romdb

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moffa90/go-kickrom/kickstart"
)

func TestDigest(t *testing.T) {
	assert.Equal(t, "da39a3ee5e6b4b0d3255bfef95601890afd80709", HexDigest(nil))
	assert.Equal(t, "a9993e364706816aba3e25717850c26c9cd0d89d", HexDigest([]byte("abc")))

	d := Digest([]byte("abc"))
	assert.Equal(t, byte(0xa9), d[0])
	assert.Equal(t, byte(0x9d), d[DigestSize-1])
}

func TestDefault(t *testing.T) {
	db := Default()
	require.NotNil(t, db)
	assert.Greater(t, db.Len(), 50)
	assert.Same(t, db, Default(), "parsed once and shared")

	for _, e := range db.Entries() {
		assert.NotEmpty(t, e.Name)
		assert.NotEqual(t, kickstart.ClassUnknown, e.Class)
		assert.NotEqual(t, kickstart.OrientationUnknown, e.Orientation)
		assert.True(t, e.Size > 0 && e.Size&(e.Size-1) == 0, "%s: size %d", e.Name, e.Size)
	}
}

func TestDefaultLookup(t *testing.T) {
	var digest [DigestSize]byte
	copy(digest[:], mustHex(t, "891e9a547772fe0c6c19b610baf8bc4ea7fcb785"))

	e, ok := Default().Lookup(digest)
	require.True(t, ok)
	assert.Equal(t, "AmigaOS 1.3", e.Name)
	assert.Equal(t, kickstart.Size256K, e.Size)
	assert.Equal(t, kickstart.ClassMerged, e.Class)
	assert.Equal(t, kickstart.OrientationEmulator, e.Orientation)
	assert.Equal(t, "891e9a547772fe0c6c19b610baf8bc4ea7fcb785", e.HexDigest())
}

func TestIdentifyUnknown(t *testing.T) {
	_, ok := Default().Identify(make([]byte, kickstart.Size512K))
	assert.False(t, ok)

	var nilDB *Database
	_, ok = nilDB.Identify([]byte("abc"))
	assert.False(t, ok)
	assert.Equal(t, 0, nilDB.Len())
}

func TestLookupFirstMatchWins(t *testing.T) {
	// Reordering these lines changes which name is reported.
	input := "a9993e364706816aba3e25717850c26c9cd0d89d|4|E|0|First revision\n" +
		"a9993e364706816aba3e25717850c26c9cd0d89d|4|E|1|Second revision\n"

	db, err := ParseReader(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 2, db.Len())

	e, ok := db.Identify([]byte("abc"))
	require.True(t, ok)
	assert.Equal(t, "First revision", e.Name)
	assert.Equal(t, kickstart.OrientationEmulator, e.Orientation)
}

func TestMerge(t *testing.T) {
	user, err := ParseReader(strings.NewReader(
		"891e9a547772fe0c6c19b610baf8bc4ea7fcb785|262144|M|0|My 1.3\n"))
	require.NoError(t, err)

	merged := user.Merge(Default())
	assert.Equal(t, Default().Len()+1, merged.Len())
	assert.Equal(t, 1, user.Len(), "inputs are not modified")

	var digest [DigestSize]byte
	copy(digest[:], mustHex(t, "891e9a547772fe0c6c19b610baf8bc4ea7fcb785"))
	e, ok := merged.Lookup(digest)
	require.True(t, ok)
	assert.Equal(t, "My 1.3", e.Name)

	e, ok = Default().Merge(user).Lookup(digest)
	require.True(t, ok)
	assert.Equal(t, "AmigaOS 1.3", e.Name)
}

func TestNewDatabaseCopiesEntries(t *testing.T) {
	entries := []Entry{{Name: "one", Size: 16}}
	db := NewDatabase(entries...)
	entries[0].Name = "changed"

	assert.Equal(t, "one", db.Entries()[0].Name)
}
