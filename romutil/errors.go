package romutil

import (
	"errors"
	"fmt"
)

var (
	// ErrKeyRequired is returned when an operation needs a key and none was configured
	ErrKeyRequired = errors.New("obfuscation key required")

	// ErrStale is returned when a ROM was modified after it was parsed and
	// must be reparsed before its classification can be relied on
	ErrStale = errors.New("ROM modified since last parse; call Reparse")

	// ErrReleased is returned for operations on a released ROM
	ErrReleased = errors.New("ROM has been released")
)

// ChecksumError indicates that an image failed checksum validation.
type ChecksumError struct {
	Path     string
	Stored   uint32
	Expected uint32
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("invalid checksum in %s: stored 0x%08X, expected 0x%08X",
		e.Path, e.Stored, e.Expected)
}
