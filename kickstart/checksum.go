package kickstart

// ChecksumOffset returns the offset of the checksum longword in an image of
// the given size, or -1 when the image is too short to hold one.
func ChecksumOffset(size int) int {
	if size < ChecksumOffsetFromEnd {
		return -1
	}
	return (size - ChecksumOffsetFromEnd) &^ 3
}

// ChecksumSum adds every big-endian longword of b with end-around carry:
// whenever an addition wraps, the accumulator gets one extra. When
// skipChecksum is true the checksum longword is treated as zero.
// Trailing bytes that do not fill a longword are ignored.
func ChecksumSum(b []byte, skipChecksum bool) uint32 {
	skip := -1
	if skipChecksum {
		skip = ChecksumOffset(len(b))
	}

	var sum uint32
	for off := 0; off+4 <= len(b); off += 4 {
		if off == skip {
			continue
		}
		w, _ := word32(b, off)
		next := sum + w
		if next < sum {
			next++
		}
		sum = next
	}
	return sum
}

// CalculateChecksum returns the complement of the sum of b. With
// forNew false the result is zero for an image whose checksum is valid.
// With forNew true the stored checksum is ignored and the result is the
// value that would make the image valid.
func CalculateChecksum(b []byte, forNew bool) uint32 {
	return ^ChecksumSum(b, forNew)
}

// EmbeddedChecksum returns the checksum stored in b.
func EmbeddedChecksum(b []byte) (uint32, bool) {
	return word32(b, ChecksumOffset(len(b)))
}

// ValidateChecksum reports whether the sum over the unmodified image
// complements to zero.
func ValidateChecksum(b []byte) bool {
	if len(b) < ChecksumOffsetFromEnd {
		return false
	}
	return CalculateChecksum(b, false) == 0
}

// CorrectChecksum stores a checksum that makes b valid. It reports whether
// b was changed; an image that already validates is left untouched.
//
// The new value is written to a scratch copy and verified there first, so b
// is either fully updated or not modified at all. A computed checksum of
// zero is refused with ErrZeroChecksum.
func CorrectChecksum(b []byte) (bool, error) {
	if len(b) == 0 {
		return false, ErrEmptyImage
	}
	if len(b) < ChecksumOffsetFromEnd {
		return false, ErrImageTooShort
	}
	if len(b)%4 != 0 {
		return false, ErrNotWordAligned
	}
	if ValidateChecksum(b) {
		return false, nil
	}

	sum := CalculateChecksum(b, true)
	if sum == 0 {
		return false, ErrZeroChecksum
	}

	scratch := make([]byte, len(b))
	copy(scratch, b)
	putWord32(scratch, ChecksumOffset(len(scratch)), sum)
	if !ValidateChecksum(scratch) {
		return false, ErrChecksumUnverified
	}

	copy(b, scratch)
	return true, nil
}
