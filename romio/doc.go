// Package romio loads and stores ROM images and key files.
//
// All access goes through an afero.Fs, so the same code runs against the
// host filesystem (OS) or an in-memory one in tests:
//
//	store := romio.OS()
//	rom, err := store.ReadROM("roms/kick31.zip")
//	key, err := store.ReadKey("rom.key")
//	err = store.WriteROM("kick31.rom", rom)
//
// ReadROM recognises zip, gzip, xz and 7z containers by content and returns
// the first regular file inside them. Everything else is returned as is.
//
// WriteROM never leaves a partial file behind: when the full buffer cannot
// be written the destination is removed and a *ShortWriteError (or the
// underlying write error) is returned.
package romio
