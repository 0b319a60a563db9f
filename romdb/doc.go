// Package romdb identifies Amiga ROM images by content digest and by the
// version words in their header.
//
// # Signature Database
//
// A Database is an ordered list of known images. The built-in one is
// embedded in the package and returned by Default; more can be loaded from
// text files with Parse or ParseReader. Each line is one entry:
//
//	sha1|size|class|swapped|name
//
// Blank lines and lines starting with '#' are ignored.
//
// Lookups are a linear scan where the first matching digest wins, so
// merging a user database in front of the default one lets it override
// names:
//
//	extra, err := romdb.Parse("my-roms.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	db := extra.Merge(romdb.Default())
//	entry, ok := db.Identify(rom)
//
// # Version Table
//
// LookupVersion maps the header major/minor version to a release name,
// which also names images that are not in any signature database:
//
//	name, ok := romdb.LookupVersion(40, 68) // AmigaOS 3.1 (...)
package romdb
