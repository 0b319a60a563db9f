package kickstart

// Split deinterleaves a merged image into the high and low chip images.
//
// For every longword of merged, the first 16 bits go to high and the second
// 16 bits go to low. Each output is len(merged) bytes long: the deinterleaved
// half fills the first part and is then repeated in the second part, which is
// the layout burnable chip images use.
func Split(merged []byte) (high, low []byte, err error) {
	if len(merged) == 0 {
		return nil, nil, ErrEmptyImage
	}
	if len(merged)%4 != 0 {
		return nil, nil, ErrNotWordAligned
	}

	n := len(merged)
	high = make([]byte, n)
	low = make([]byte, n)
	for i := 0; i < n; i += 4 {
		copy(high[i/2:i/2+2], merged[i:i+2])
		copy(low[i/2:i/2+2], merged[i+2:i+4])
	}
	copy(high[n/2:], high[:n/2])
	copy(low[n/2:], low[:n/2])

	return high, low, nil
}

// Merge interleaves high and low chip images into a merged image of the same
// length. Only the first half of each input is consumed, so feeding back the
// repeated halves produced by Split yields the original merged image.
func Merge(high, low []byte) ([]byte, error) {
	if len(high) == 0 || len(low) == 0 {
		return nil, ErrEmptyImage
	}
	if len(high) != len(low) {
		return nil, &LengthMismatchError{High: len(high), Low: len(low)}
	}
	if len(high)%4 != 0 {
		return nil, ErrNotWordAligned
	}

	n := len(high)
	merged := make([]byte, n)
	for i := 0; i < n/4; i++ {
		copy(merged[i*4:i*4+2], high[i*2:i*2+2])
		copy(merged[i*4+2:i*4+4], low[i*2:i*2+2])
	}
	return merged, nil
}
