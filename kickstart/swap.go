package kickstart

// SwapBytes exchanges every adjacent byte pair of b in place.
// Applying it twice restores the original image.
func SwapBytes(b []byte) error {
	if len(b)%2 != 0 {
		return ErrOddLength
	}
	for i := 0; i < len(b); i += 2 {
		b[i], b[i+1] = b[i+1], b[i]
	}
	return nil
}

// SwapOptions selects the orientation an image should end up in.
type SwapOptions struct {
	// ToChip requests chip (byte-swapped) order
	ToChip bool

	// ToEmulator requests emulator (natural) order
	ToEmulator bool

	// Unconditional swaps regardless of the current orientation,
	// and is the only way to swap an image whose orientation is unknown
	Unconditional bool
}

// Requested reports whether any swap was asked for.
func (o SwapOptions) Requested() bool {
	return o.ToChip || o.ToEmulator || o.Unconditional
}

// ApplyByteSwap swaps b in place when that moves it from the current
// orientation toward the requested one. It reports whether b was swapped.
//
// Errors leave b untouched:
//   - ErrContradictorySwap when both ToChip and ToEmulator are set without Unconditional
//   - ErrUnknownOrientation when current is unknown and Unconditional is not set
//   - ErrOddLength when b cannot be swapped pairwise
func ApplyByteSwap(b []byte, current Orientation, opts SwapOptions) (bool, error) {
	if !opts.Requested() {
		return false, nil
	}
	if opts.ToChip && opts.ToEmulator && !opts.Unconditional {
		return false, ErrContradictorySwap
	}
	if len(b)%2 != 0 {
		return false, ErrOddLength
	}

	if !opts.Unconditional {
		switch current {
		case OrientationEmulator:
			if !opts.ToChip {
				return false, nil
			}
		case OrientationChip:
			if !opts.ToEmulator {
				return false, nil
			}
		default:
			return false, ErrUnknownOrientation
		}
	}

	if err := SwapBytes(b); err != nil {
		return false, err
	}
	return true, nil
}
