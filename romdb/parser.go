package romdb

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/moffa90/go-kickrom/kickstart"
)

// Constants for the signature database format.
const (
	// FieldSeparator separates the fields of an entry line
	FieldSeparator = "|"

	// CommentPrefix starts a comment line
	CommentPrefix = "#"

	// entryFields is the number of fields in an entry line
	entryFields = 5

	// defaultEntryCapacity is the initial capacity of the entries slice
	defaultEntryCapacity = 64
)

// Parse parses a signature database from the given file path.
//
// Example:
//
//	db, err := romdb.Parse("extra-roms.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	db = db.Merge(romdb.Default())
func Parse(path string) (*Database, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return ParseReader(f)
}

// ParseReader parses a signature database from any io.Reader.
//
// Each non-blank line that does not start with '#' is one entry:
//
//	sha1|size|class|swapped|name
//
// For example:
//
//	891e9a547772fe0c6c19b610baf8bc4ea7fcb785|262144|M|0|AmigaOS 1.3
func ParseReader(r io.Reader) (*Database, error) {
	scanner := bufio.NewScanner(r)
	db := &Database{entries: make([]Entry, 0, defaultEntryCapacity)}

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Skip blank lines and comments
		if line == "" || strings.HasPrefix(line, CommentPrefix) {
			continue
		}

		entry, err := parseEntry(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		db.entries = append(db.entries, entry)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read database: %w", err)
	}

	return db, nil
}

// parseEntry parses one entry line. The name is the last field, so it may
// itself contain the separator.
func parseEntry(line string) (Entry, error) {
	fields := strings.SplitN(line, FieldSeparator, entryFields)
	if len(fields) != entryFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", entryFields, len(fields))
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	var e Entry

	if len(fields[0]) != DigestSize*2 {
		return Entry{}, fmt.Errorf("invalid digest length: got %d characters, expected %d",
			len(fields[0]), DigestSize*2)
	}
	if _, err := hex.Decode(e.Digest[:], []byte(fields[0])); err != nil {
		return Entry{}, fmt.Errorf("invalid digest: %w", err)
	}

	size, err := strconv.Atoi(fields[1])
	if err != nil {
		return Entry{}, fmt.Errorf("invalid size %q: %w", fields[1], err)
	}
	if size <= 0 {
		return Entry{}, fmt.Errorf("invalid size %d: must be positive", size)
	}
	e.Size = size

	if len(fields[2]) != 1 {
		return Entry{}, fmt.Errorf("invalid class %q: must be a single letter", fields[2])
	}
	class, err := kickstart.ParseClass(fields[2][0])
	if err != nil {
		return Entry{}, err
	}
	if class == kickstart.ClassUnknown {
		return Entry{}, fmt.Errorf("invalid class %q: unknown is not a table class", fields[2])
	}
	e.Class = class

	switch fields[3] {
	case "0":
		e.Orientation = kickstart.OrientationEmulator
	case "1":
		e.Orientation = kickstart.OrientationChip
	default:
		return Entry{}, fmt.Errorf("invalid swapped flag %q: must be 0 or 1", fields[3])
	}

	if fields[4] == "" {
		return Entry{}, fmt.Errorf("missing name")
	}
	e.Name = fields[4]

	return e, nil
}
