package kickstart

import "bytes"

// IsEncrypted reports whether b starts with the full obfuscation marker.
func IsEncrypted(b []byte) bool {
	return len(b) >= MarkerSize && bytes.Equal(b[:MarkerSize], []byte(Marker))
}

// PlainSize returns the image size with any obfuscation marker removed.
func PlainSize(b []byte) int {
	if IsEncrypted(b) {
		return len(b) - MarkerSize
	}
	return len(b)
}

// ValidSize reports whether the plain size of b is larger than MinImageSize
// and an exact power of two. ROM chips only come in power-of-two capacities.
func ValidSize(b []byte) bool {
	n := PlainSize(b)
	return n > MinImageSize && n&(n-1) == 0
}

// CheckSize returns a *SizeError when ValidSize(b) is false.
func CheckSize(b []byte) error {
	if !ValidSize(b) {
		return &SizeError{Size: PlainSize(b)}
	}
	return nil
}

// HasResetVector reports whether the RESET instruction sits at
// ResetVectorOffset.
func HasResetVector(b []byte) bool {
	w, ok := word16(b, ResetVectorOffset)
	return ok && w == ResetInstruction
}

// ValidFooter reports whether the last FooterWords words of b form the
// ascending run FooterStart, FooterStart+1, ...
func ValidFooter(b []byte) bool {
	start := len(b) - FooterWords*2
	if start < 0 || len(b)%2 != 0 {
		return false
	}
	want := uint16(FooterStart)
	for off := start; off < len(b); off += 2 {
		w, _ := word16(b, off)
		if w != want {
			return false
		}
		want++
	}
	return true
}

// ValidEmbeddedSize reports whether the longword EmbeddedSizeOffsetFromEnd
// bytes before the end of b equals len(b). Only Kickstart images carry this
// field.
func ValidEmbeddedSize(b []byte) bool {
	v, ok := word32(b, len(b)-EmbeddedSizeOffsetFromEnd)
	return ok && int64(v) == int64(len(b))
}
