package romdb

import (
	"encoding/hex"

	"github.com/moffa90/go-kickrom/kickstart"
)

// Entry is one known ROM image.
type Entry struct {
	// Digest is the SHA-1 of the plain (unobfuscated) image
	Digest [DigestSize]byte

	// Size is the image size in bytes
	Size int

	// Class is the signature class (Hi/Lo half, merged, extended, other)
	Class kickstart.Class

	// Orientation is the byte order the image is stored in
	Orientation kickstart.Orientation

	// Name is the display name, e.g. "AmigaOS 3.1 (A1200)"
	Name string
}

// HexDigest returns the entry digest as lowercase hex.
func (e Entry) HexDigest() string {
	return hex.EncodeToString(e.Digest[:])
}

// Database is an ordered, read-only list of known ROMs.
//
// Lookups scan the entries in order and the first entry with a matching
// digest wins. Some tables list the same digest under different names, so
// the order of entries is significant.
//
// Database is safe for concurrent use.
type Database struct {
	entries []Entry
}

// NewDatabase returns a database holding a copy of entries, in order.
func NewDatabase(entries ...Entry) *Database {
	db := &Database{entries: make([]Entry, len(entries))}
	copy(db.entries, entries)
	return db
}

// Len returns the number of entries.
func (db *Database) Len() int {
	if db == nil {
		return 0
	}
	return len(db.entries)
}

// Entries returns a copy of all entries in lookup order.
func (db *Database) Entries() []Entry {
	if db == nil {
		return nil
	}
	out := make([]Entry, len(db.entries))
	copy(out, db.entries)
	return out
}

// Lookup returns the first entry whose digest equals digest.
func (db *Database) Lookup(digest [DigestSize]byte) (Entry, bool) {
	if db == nil {
		return Entry{}, false
	}
	for _, e := range db.entries {
		if e.Digest == digest {
			return e, true
		}
	}
	return Entry{}, false
}

// Identify hashes data and looks the digest up.
//
// Example:
//
//	entry, ok := romdb.Default().Identify(rom)
//	if ok {
//	    fmt.Println(entry.Name)
//	}
func (db *Database) Identify(data []byte) (Entry, bool) {
	return db.Lookup(Digest(data))
}

// Merge returns a new database that scans db first and then other.
// Neither input is modified.
func (db *Database) Merge(other *Database) *Database {
	merged := &Database{entries: make([]Entry, 0, db.Len()+other.Len())}
	merged.entries = append(merged.entries, db.Entries()...)
	merged.entries = append(merged.entries, other.Entries()...)
	return merged
}
