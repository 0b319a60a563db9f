package romio

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"

	"github.com/moffa90/go-kickrom/kickstart"
)

// MaxFileSize is the largest ROM, key or archive member that will be read.
// The largest Amiga ROMs are 1MB; anything past this is not a ROM.
const MaxFileSize = 16 << 20

// Store reads and writes ROM and key files on a filesystem.
//
// Store is safe for concurrent use if the underlying filesystem is.
type Store struct {
	fs afero.Fs
}

// NewStore returns a Store backed by fs.
//
// Example:
//
//	store := romio.NewStore(afero.NewMemMapFs())
func NewStore(fs afero.Fs) *Store {
	if fs == nil {
		panic("fs cannot be nil")
	}
	return &Store{fs: fs}
}

// OS returns a Store backed by the host filesystem.
func OS() *Store {
	return NewStore(afero.NewOsFs())
}

// Fs returns the underlying filesystem.
func (s *Store) Fs() afero.Fs {
	return s.fs
}

// ReadROM reads a ROM image. Files in a zip, gzip, xz or 7z container are
// unpacked and the first regular file in the container is returned.
//
// Example:
//
//	rom, err := romio.OS().ReadROM("kick31.rom.gz")
func (s *Store) ReadROM(path string) ([]byte, error) {
	data, err := s.readFile(path)
	if err != nil {
		return nil, err
	}

	rom, err := extract(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rom, nil
}

// ReadKey reads an obfuscation key. An empty key file is an error.
func (s *Store) ReadKey(path string) ([]byte, error) {
	key, err := s.readFile(path)
	if err != nil {
		return nil, err
	}
	if len(key) == 0 {
		return nil, fmt.Errorf("key file %s: %w", path, kickstart.ErrEmptyKey)
	}
	return key, nil
}

// WriteROM writes data to path, replacing any existing file. If the full
// buffer could not be written the partial file is removed and the error is
// returned; a short write is reported as *ShortWriteError.
func (s *Store) WriteROM(path string, data []byte) error {
	f, err := s.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	n, werr := f.Write(data)
	cerr := f.Close()

	switch {
	case werr != nil:
		err = fmt.Errorf("failed to write %s: %w", path, werr)
	case n != len(data):
		err = &ShortWriteError{Path: path, Written: n, Expected: len(data)}
	case cerr != nil:
		err = fmt.Errorf("failed to close %s: %w", path, cerr)
	}
	if err != nil {
		_ = s.fs.Remove(path)
		return err
	}
	return nil
}

func (s *Store) readFile(path string) ([]byte, error) {
	f, err := s.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	if info.Size() > MaxFileSize {
		return nil, fmt.Errorf("%s: %w (%d bytes)", path, ErrFileTooLarge, info.Size())
	}

	data, err := readLimited(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// readLimited reads r to the end, failing once more than MaxFileSize bytes
// have been seen.
func readLimited(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxFileSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > MaxFileSize {
		return nil, ErrFileTooLarge
	}
	return data, nil
}
