package kickstart

import "encoding/binary"

// Multi-byte fields in a ROM are big-endian regardless of the host. Every
// read and write in this package goes through these helpers so that an
// out-of-range offset reports !ok instead of panicking.

func word16(b []byte, off int) (uint16, bool) {
	if off < 0 || off+2 > len(b) {
		return 0, false
	}
	return binary.BigEndian.Uint16(b[off:]), true
}

func word32(b []byte, off int) (uint32, bool) {
	if off < 0 || off+4 > len(b) {
		return 0, false
	}
	return binary.BigEndian.Uint32(b[off:]), true
}

func putWord32(b []byte, off int, v uint32) bool {
	if off < 0 || off+4 > len(b) {
		return false
	}
	binary.BigEndian.PutUint32(b[off:], v)
	return true
}

// swap16 exchanges the two bytes of a 16-bit word.
func swap16(v uint16) uint16 {
	return v<<8 | v>>8
}

// swapPairs32 applies the pairwise byte swap to a longword, giving the value
// the same four bytes would read as after SwapBytes.
func swapPairs32(v uint32) uint32 {
	return (v&0x00FF00FF)<<8 | (v&0xFF00FF00)>>8
}
