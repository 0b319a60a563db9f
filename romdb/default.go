package romdb

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"
)

//go:embed signatures.txt
var builtinSignatures string

var (
	defaultOnce sync.Once
	defaultDB   *Database
)

// Default returns the built-in signature database. It is parsed on first
// use and shared afterwards; callers must not modify it.
func Default() *Database {
	defaultOnce.Do(func() {
		db, err := ParseReader(strings.NewReader(builtinSignatures))
		if err != nil {
			panic(fmt.Sprintf("romdb: built-in signature table: %v", err))
		}
		defaultDB = db
	})
	return defaultDB
}
