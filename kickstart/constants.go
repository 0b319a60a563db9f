package kickstart

// Image sizes of the two Kickstart ROM generations.
const (
	// Size256K is the size of a 256KB Kickstart image (1.x and earlier)
	Size256K = 262144

	// Size512K is the size of a 512KB Kickstart image (2.x and later)
	Size512K = 524288

	// MinImageSize is the exclusive lower bound on a plain image size.
	// A valid image must be larger than this and a power of two.
	MinImageSize = 10
)

// Header magic words found in the first longword of a Kickstart image,
// stored big-endian.
const (
	// Magic256K identifies a 256KB Kickstart ROM
	Magic256K = 0x11114EF9

	// Magic512K identifies a 512KB Kickstart ROM
	Magic512K = 0x11144EF9

	// MagicExtended identifies an extended ROM. It shares its value with
	// Magic512K; the image size tells them apart.
	MagicExtended = 0x11144EF9

	// MagicReKick identifies a "ReKick" loader ROM
	MagicReKick = 0x11164EF9
)

// Fixed offsets and markers inside a plain image.
const (
	// ResetVectorOffset is where the RESET instruction is expected
	ResetVectorOffset = 0xD0

	// ResetInstruction is the 68000 RESET opcode
	ResetInstruction = 0x4E70

	// MajorVersionOffset is the offset of the 16-bit firmware version word
	MajorVersionOffset = 12

	// MinorVersionOffset is the offset of the 16-bit firmware revision word
	MinorVersionOffset = 14

	// ChecksumOffsetFromEnd is how far before the end of the image the
	// checksum longword lives
	ChecksumOffsetFromEnd = 24

	// EmbeddedSizeOffsetFromEnd is how far before the end of the image the
	// longword holding the image size lives
	EmbeddedSizeOffsetFromEnd = 20

	// FooterWords is the number of 16-bit words in the trailer run
	FooterWords = 7

	// FooterStart is the value of the first trailer word; each following
	// word is one larger
	FooterStart = 0x0019
)

// Marker prefixes every obfuscated image.
const Marker = "AMIROMTYPE1"

// MarkerSize is the length of Marker in bytes.
const MarkerSize = len(Marker)
