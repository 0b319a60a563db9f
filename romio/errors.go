package romio

import (
	"errors"
	"fmt"
)

var (
	// ErrFileTooLarge is returned for inputs larger than MaxFileSize
	ErrFileTooLarge = errors.New("file too large")

	// ErrEmptyArchive is returned for archives without a regular file
	ErrEmptyArchive = errors.New("archive contains no files")
)

// ShortWriteError indicates that fewer bytes than requested reached the
// destination. The destination file has been removed.
type ShortWriteError struct {
	Path     string
	Written  int
	Expected int
}

func (e *ShortWriteError) Error() string {
	return fmt.Sprintf("short write to %s: wrote %d of %d bytes", e.Path, e.Written, e.Expected)
}
