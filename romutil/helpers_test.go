package romutil

import (
	"encoding/binary"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/moffa90/go-kickrom/kickstart"
	"github.com/moffa90/go-kickrom/romdb"
)

// buildROM returns a structurally valid Kickstart image of the given size
// with header version 40.63 and a correct checksum.
func buildROM(tb testing.TB, size int, magic uint32) []byte {
	tb.Helper()

	rom := make([]byte, size)
	for i := 0x100; i < size-64; i += 2 {
		rom[i] = byte(i >> 3)
		rom[i+1] = byte(i >> 11)
	}
	binary.BigEndian.PutUint32(rom, magic)
	binary.BigEndian.PutUint16(rom[kickstart.MajorVersionOffset:], 40)
	binary.BigEndian.PutUint16(rom[kickstart.MinorVersionOffset:], 63)
	binary.BigEndian.PutUint16(rom[kickstart.ResetVectorOffset:], kickstart.ResetInstruction)
	binary.BigEndian.PutUint32(rom[size-kickstart.EmbeddedSizeOffsetFromEnd:], uint32(size))
	for i := 0; i < kickstart.FooterWords; i++ {
		binary.BigEndian.PutUint16(rom[size-kickstart.FooterWords*2+i*2:], uint16(kickstart.FooterStart+i))
	}

	_, err := kickstart.CorrectChecksum(rom)
	require.NoError(tb, err)
	return rom
}

func kick256(tb testing.TB) []byte {
	return buildROM(tb, kickstart.Size256K, kickstart.Magic256K)
}

// dbFor returns a database that knows each image under the given class.
func dbFor(class kickstart.Class, images ...[]byte) *romdb.Database {
	entries := make([]romdb.Entry, 0, len(images))
	for i, img := range images {
		entries = append(entries, romdb.Entry{
			Digest:      romdb.Digest(img),
			Size:        len(img),
			Class:       class,
			Orientation: kickstart.OrientationEmulator,
			Name:        fmt.Sprintf("Test ROM %d", i+1),
		})
	}
	return romdb.NewDatabase(entries...)
}

// recordLogger keeps every message it receives.
type recordLogger struct {
	lines []string
}

func (l *recordLogger) Debug(msg string, kv ...interface{}) { l.add("DEBUG", msg, kv) }
func (l *recordLogger) Info(msg string, kv ...interface{})  { l.add("INFO", msg, kv) }
func (l *recordLogger) Error(msg string, kv ...interface{}) { l.add("ERROR", msg, kv) }

func (l *recordLogger) add(level, msg string, kv []interface{}) {
	l.lines = append(l.lines, fmt.Sprintf("%s %s %v", level, msg, kv))
}

func (l *recordLogger) has(level, msg string) bool {
	prefix := level + " " + msg
	for _, line := range l.lines {
		if len(line) >= len(prefix) && line[:len(prefix)] == prefix {
			return true
		}
	}
	return false
}
