package kickstart

import (
	"errors"
	"fmt"
)

// Precondition errors. The image is never modified when one of these is returned.
var (
	ErrEmptyImage         = errors.New("image is empty")
	ErrOddLength          = errors.New("image length is not a multiple of 2")
	ErrNotWordAligned     = errors.New("image length is not a multiple of 4")
	ErrImageTooShort      = errors.New("image too short to hold a checksum")
	ErrAlreadyEncrypted   = errors.New("image is already encrypted")
	ErrNotEncrypted       = errors.New("image is not encrypted")
	ErrEmptyKey           = errors.New("key is empty")
	ErrContradictorySwap  = errors.New("swap and unswap both requested without unconditional swap")
	ErrUnknownOrientation = errors.New("byte order is undetermined; an unconditional swap is required")
	ErrZeroChecksum       = errors.New("computed checksum is zero")
	ErrChecksumUnverified = errors.New("corrected checksum failed verification")
)

// SizeError reports an image whose size is not a valid ROM size.
// It is fatal to the identification pipeline.
type SizeError struct {
	// Size is the plain image size (without the obfuscation marker)
	Size int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("invalid ROM size: %d bytes (must be a power of two larger than %d)",
		e.Size, MinImageSize)
}

// LengthMismatchError reports high and low halves of different lengths.
type LengthMismatchError struct {
	High int
	Low  int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("length mismatch: high half is %d bytes, low half is %d bytes", e.High, e.Low)
}

// IsSizeError returns true if err is or wraps a SizeError.
func IsSizeError(err error) bool {
	var se *SizeError
	return errors.As(err, &se)
}
