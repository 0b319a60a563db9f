package romutil

import (
	"encoding/hex"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/moffa90/go-kickrom/kickstart"
	"github.com/moffa90/go-kickrom/romdb"
)

// Info is the snapshot produced by one pipeline run. It describes the image
// as it was when parsed and is not updated by later transforms.
type Info struct {
	// Size is the plain image size in bytes
	Size int

	// Encrypted reports whether the input carried the obfuscation marker
	Encrypted bool

	// Structural flags. SizeValid is always true in a returned Info
	// because an invalid size aborts the pipeline.
	SizeValid         bool
	ResetVector       bool
	FooterValid       bool
	EmbeddedSizeValid bool

	// ChecksumValid reports whether the stored checksum is correct
	ChecksumValid bool

	// Checksum is the stored checksum longword
	Checksum uint32

	// Digest is the SHA-1 of the plain image
	Digest [romdb.DigestSize]byte

	// Known reports whether the digest is in the signature database;
	// Name and Class come from the matching entry
	Known bool
	Name  string
	Class kickstart.Class

	// Header is the classification from the header magic and size,
	// independent of the database
	Header kickstart.HeaderType

	// Orientation comes from the database entry when known, otherwise
	// from the header
	Orientation kickstart.Orientation

	// Version words from the header, valid when HasVersion is set.
	// VersionName is empty when the version is not in the version table.
	HasVersion  bool
	Major       uint16
	Minor       uint16
	VersionName string

	// KicketySplit reports a 512KB image holding two 256KB Kickstarts
	KicketySplit bool
}

// IsKickstart reports whether the image looks like a genuine Kickstart:
// valid size, a Kickstart header, the reset vector and a valid footer.
func (i Info) IsKickstart() bool {
	switch i.Header.Kind() {
	case kickstart.Kind256K, kickstart.Kind512K, kickstart.KindExtended, kickstart.KindReKick:
	default:
		return false
	}
	return i.SizeValid && i.ResetVector && i.FooterValid
}

// HexDigest returns the digest as lowercase hex.
func (i Info) HexDigest() string {
	return hex.EncodeToString(i.Digest[:])
}

// Write prints a human-readable report of i to w.
//
// Example:
//
//	rom, _ := romutil.New().Parse(data)
//	_ = rom.Info().Write(os.Stdout)
func (i Info) Write(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	name := "Unknown"
	if i.Known {
		name = i.Name
	}
	version := "unavailable"
	if i.HasVersion {
		version = fmt.Sprintf("%d.%d", i.Major, i.Minor)
		if i.VersionName != "" {
			version += " (" + i.VersionName + ")"
		}
	}

	rows := [][2]string{
		{"ROM", name},
		{"Type", i.Class.String()},
		{"SHA-1", i.HexDigest()},
		{"Size", fmt.Sprintf("%d bytes", i.Size)},
		{"Encrypted", yesNo(i.Encrypted)},
		{"Header", i.Header.String()},
		{"Byte order", i.Orientation.String()},
		{"Version", version},
		{"Reset vector", yesNo(i.ResetVector)},
		{"Footer", validInvalid(i.FooterValid)},
		{"Embedded size", validInvalid(i.EmbeddedSizeValid)},
		{"Checksum", fmt.Sprintf("0x%08X (%s)", i.Checksum, validInvalid(i.ChecksumValid))},
		{"Kickety-Split", yesNo(i.KicketySplit)},
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(tw, "%s:\t%s\n", r[0], r[1]); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func validInvalid(b bool) string {
	if b {
		return "valid"
	}
	return "invalid"
}
