package kickstart

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestROM builds a structurally valid image of the given size with magic
// in its header, version 40.63, a reset vector, footer, embedded size and a
// corrected checksum. size must be at least 1024.
func newTestROM(tb testing.TB, size int, magic uint32) []byte {
	tb.Helper()

	rom := make([]byte, size)
	for i := 0x100; i < size-64; i += 4 {
		rom[i] = byte(i >> 2)
		rom[i+1] = byte(i >> 10)
	}
	binary.BigEndian.PutUint32(rom, magic)
	binary.BigEndian.PutUint16(rom[MajorVersionOffset:], 40)
	binary.BigEndian.PutUint16(rom[MinorVersionOffset:], 63)
	binary.BigEndian.PutUint16(rom[ResetVectorOffset:], ResetInstruction)
	binary.BigEndian.PutUint32(rom[size-EmbeddedSizeOffsetFromEnd:], uint32(size))
	for i := 0; i < FooterWords; i++ {
		binary.BigEndian.PutUint16(rom[size-FooterWords*2+i*2:], uint16(FooterStart+i))
	}

	_, err := CorrectChecksum(rom)
	require.NoError(tb, err)
	return rom
}

func clone(b []byte) []byte {
	return append([]byte(nil), b...)
}
