package kickstart

import "fmt"

// Class is the signature-table classification of an image.
// The values match the single-letter codes used in signature databases.
type Class byte

const (
	// ClassHiHalf is the high (U34 / "A") chip of a split Kickstart
	ClassHiHalf Class = 'A'

	// ClassLoHalf is the low (U35 / "B") chip of a split Kickstart
	ClassLoHalf Class = 'B'

	// ClassMerged is a complete Kickstart image
	ClassMerged Class = 'M'

	// ClassExtended is an extended ROM
	ClassExtended Class = 'E'

	// ClassOther is a known non-Kickstart ROM (boot ROMs, CDTV extensions, ...)
	ClassOther Class = 'O'

	// ClassUnknown means the digest is not in the database
	ClassUnknown Class = 'U'
)

// ParseClass converts a single-letter class code.
func ParseClass(c byte) (Class, error) {
	switch Class(c) {
	case ClassHiHalf, ClassLoHalf, ClassMerged, ClassExtended, ClassOther, ClassUnknown:
		return Class(c), nil
	default:
		return ClassUnknown, fmt.Errorf("invalid class code %q", c)
	}
}

func (c Class) String() string {
	switch c {
	case ClassHiHalf:
		return "Kickstart Hi/U34"
	case ClassLoHalf:
		return "Kickstart Lo/U35"
	case ClassMerged:
		return "Kickstart merged"
	case ClassExtended:
		return "Extended"
	case ClassOther:
		return "Other"
	default:
		return "Unknown"
	}
}

// Orientation is the byte order of an image.
type Orientation int8

const (
	// OrientationUnknown means the byte order could not be determined
	OrientationUnknown Orientation = iota

	// OrientationEmulator is the natural big-endian order used by emulators
	OrientationEmulator

	// OrientationChip is the byte-swapped order used to burn physical chips
	OrientationChip
)

func (o Orientation) String() string {
	switch o {
	case OrientationEmulator:
		return "emulator (not byte-swapped)"
	case OrientationChip:
		return "chip (byte-swapped)"
	default:
		return "undetermined"
	}
}

// HeaderKind is the coarse ROM type derived from the header magic and size.
type HeaderKind uint8

const (
	KindNotROM HeaderKind = iota
	Kind256K
	Kind512K
	KindExtended
	KindReKick
	KindAmbiguous
)

func (k HeaderKind) String() string {
	switch k {
	case Kind256K:
		return "256KB ROM"
	case Kind512K:
		return "512KB ROM"
	case KindExtended:
		return "Extended ROM"
	case KindReKick:
		return "ReKick ROM"
	case KindAmbiguous:
		return "Ambiguous"
	default:
		return "Not a ROM"
	}
}

// HeaderType packs a HeaderKind in the low seven bits and the byte-swap
// flag in the top bit.
type HeaderType uint8

// headerSwappedBit marks a header that only matched after byte swapping.
const headerSwappedBit = 0x80

// Kind returns the ROM kind without the orientation bit.
func (h HeaderType) Kind() HeaderKind {
	return HeaderKind(h &^ headerSwappedBit)
}

// Swapped reports whether the header matched in chip (byte-swapped) order.
func (h HeaderType) Swapped() bool {
	return h&headerSwappedBit != 0
}

// Orientation returns the byte order implied by the header, or
// OrientationUnknown when the header is not a ROM header.
func (h HeaderType) Orientation() Orientation {
	if h.Kind() == KindNotROM {
		return OrientationUnknown
	}
	if h.Swapped() {
		return OrientationChip
	}
	return OrientationEmulator
}

func (h HeaderType) String() string {
	if h.Swapped() {
		return h.Kind().String() + " (byte-swapped)"
	}
	return h.Kind().String()
}
