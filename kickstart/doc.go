// Package kickstart implements the byte-level rules of Amiga Kickstart ROM
// images: structural validation, header classification, the platform
// checksum and the three image transforms (byte swap, split/merge and
// obfuscation).
//
// Every function works on an in-memory byte slice. Multi-byte fields are
// always decoded big-endian, whatever the host byte order.
//
// # Image Layout
//
// A plain Kickstart image looks like this:
//
//	0x0000  header magic (0x11114EF9 256K, 0x11144EF9 512K/extended, 0x11164EF9 ReKick)
//	0x000C  major version word
//	0x000E  minor version word
//	0x00D0  RESET instruction (0x4E70)
//	...
//	len-24  checksum longword
//	len-20  image size longword
//	len-14  footer words 0x0019 .. 0x001F
//
// An obfuscated image is the 11-byte marker "AMIROMTYPE1" followed by the
// plain image XORed with a repeating key.
//
// # Validation
//
//	if err := kickstart.CheckSize(rom); err != nil {
//	    return err // fatal, nothing else is meaningful
//	}
//	reset := kickstart.HasResetVector(rom)
//	footer := kickstart.ValidFooter(rom)
//	sum := kickstart.ValidateChecksum(rom)
//
// # Transforms
//
// SwapBytes, ApplyByteSwap and CorrectChecksum modify the image in place and
// leave it untouched when they return an error. Split, Merge, Encrypt and
// Decrypt always return newly allocated buffers.
//
//	high, low, err := kickstart.Split(rom)
//	merged, err := kickstart.Merge(high, low)
//	enc, err := kickstart.Encrypt(rom, key)
//
// # Error Handling
//
// Precondition failures are sentinel errors (ErrContradictorySwap,
// ErrNotEncrypted, ...) to be checked with errors.Is. An invalid size is a
// *SizeError and mismatched halves are a *LengthMismatchError:
//
//	if kickstart.IsSizeError(err) {
//	    // not a ROM image at all
//	}
package kickstart
