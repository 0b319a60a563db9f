package kickstart

// Sizes other than 256K and 512K that ROM-like images come in (boot ROMs,
// expansion ROMs, 1MB extended images). A known magic word on one of these
// is reported as KindAmbiguous.
var auxiliarySizes = map[int]bool{
	8192:    true,
	16384:   true,
	32768:   true,
	65536:   true,
	131072:  true,
	1048576: true,
}

// DetectHeaderType classifies b from its first longword and its length,
// independently of any signature database. The header is tried in emulator
// order first and then in chip order; a chip-order match sets the top bit of
// the result.
func DetectHeaderType(b []byte) HeaderType {
	first, ok := word32(b, 0)
	if !ok {
		return HeaderType(KindNotROM)
	}
	if k := headerKind(first, len(b)); k != KindNotROM {
		return HeaderType(k)
	}
	if k := headerKind(swapPairs32(first), len(b)); k != KindNotROM {
		return HeaderType(k) | headerSwappedBit
	}
	return HeaderType(KindNotROM)
}

func headerKind(magic uint32, size int) HeaderKind {
	known := magic == Magic256K || magic == Magic512K || magic == MagicReKick
	if !known {
		return KindNotROM
	}
	switch size {
	case Size512K:
		if magic == Magic512K {
			return Kind512K
		}
		return KindAmbiguous
	case Size256K:
		switch magic {
		case Magic256K:
			return Kind256K
		case MagicExtended:
			return KindExtended
		default:
			return KindReKick
		}
	}
	if auxiliarySizes[size] {
		return KindAmbiguous
	}
	return KindNotROM
}

// VersionWords returns the firmware major and minor version stored in the
// header. ok is false when the header is not a Kickstart header. When the
// header is byte-swapped the words are swapped back before being returned.
func VersionWords(b []byte) (major, minor uint16, ok bool) {
	h := DetectHeaderType(b)
	switch h.Kind() {
	case Kind256K, Kind512K, KindExtended, KindReKick:
	default:
		return 0, 0, false
	}
	major, ok1 := word16(b, MajorVersionOffset)
	minor, ok2 := word16(b, MinorVersionOffset)
	if !ok1 || !ok2 {
		return 0, 0, false
	}
	if h.Swapped() {
		major, minor = swap16(major), swap16(minor)
	}
	return major, minor, true
}

// IsKicketySplit reports whether b is a 512KB image whose upper half begins
// with a 256KB Kickstart header, the layout used by "Kickety-Split" adapters
// that hold two 256KB Kickstarts.
func IsKicketySplit(b []byte) bool {
	if len(b) != Size512K {
		return false
	}
	w, ok := word32(b, Size512K/2)
	return ok && w == Magic256K
}
