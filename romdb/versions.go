package romdb

// AnyMinor in a Version matches every minor version.
const AnyMinor = 0xFFFF

// Version maps a Kickstart header version to a release name.
type Version struct {
	Major uint16
	Minor uint16
	Name  string
}

// Matches reports whether v describes major.minor.
func (v Version) Matches(major, minor uint16) bool {
	return v.Major == major && (v.Minor == AnyMinor || v.Minor == minor)
}

var versions = []Version{
	{23, AnyMinor, `AmigaOS "Velvet" prerelease`},
	{24, AnyMinor, "AmigaOS 0.4 (A1000)"},
	{26, AnyMinor, "AmigaOS 0.6 (A1000)"},
	{27, AnyMinor, "AmigaOS 0.7 (A1000)"},
	{29, AnyMinor, "AmigaOS 0.9 (A1000)"},
	{30, AnyMinor, "AmigaOS 1.0 (A1000)"},
	{31, AnyMinor, "AmigaOS 1.1 (A1000)"},
	{32, AnyMinor, "AmigaOS 1.1 (A1000)"},
	{33, AnyMinor, "AmigaOS 1.2 (A500/A1000/A2000)"},
	{34, AnyMinor, "AmigaOS 1.3 (A500/A1000/A2000/A3000/CDTV)"},
	{35, AnyMinor, "AmigaOS 1.3 (A2024)"},
	{36, AnyMinor, "AmigaOS 2.0 (A500+ ECS/A3000)"},
	{37, 175, "AmigaOS 2.04 (A500+/A2000/A3000)"},
	{37, 210, "AmigaOS 2.05 (A600)"},
	{37, 299, "AmigaOS 2.05 (A600 ECS)"},
	{37, 300, "AmigaOS 2.05 (A600HD)"},
	{37, 350, "AmigaOS 2.05 (A600HD)"},
	{38, AnyMinor, "AmigaOS 2.1"},
	{39, AnyMinor, "AmigaOS 3.0 (A1200/A4000)"},
	{40, AnyMinor, "AmigaOS 3.1 (A500/A600/A1200/A2000/A3000/A4000/A4000T/CD32)"},
	{41, AnyMinor, "AmigaOS 3.1 (Japan localization)"},
	{43, AnyMinor, "AmigaOS 3.1 (patched) / AmigaOS 3.2 (Walker prototype)"},
	{44, AnyMinor, "Haage & Partner AmigaOS 3.5"},
	{45, AnyMinor, "Cloanto AmigaOS 3.x / Haage & Partner AmigaOS 3.9"},
	{46, AnyMinor, "Hyperion Entertainment AmigaOS 3.1.4"},
	{47, AnyMinor, "Hyperion Entertainment AmigaOS 3.2"},
	{50, AnyMinor, "Hyperion Entertainment AmigaOS 4 Beta / MorphOS 1"},
	{51, AnyMinor, "Hyperion Entertainment AmigaOS 4 Beta / MorphOS 2+"},
	{52, AnyMinor, "Hyperion Entertainment AmigaOS 4.0"},
	{53, AnyMinor, "Hyperion Entertainment AmigaOS 4.1"},
}

// LookupVersion returns the release name for a header version. The first
// matching table row wins.
func LookupVersion(major, minor uint16) (string, bool) {
	for _, v := range versions {
		if v.Matches(major, minor) {
			return v.Name, true
		}
	}
	return "", false
}

// Versions returns a copy of the version table.
func Versions() []Version {
	out := make([]Version, len(versions))
	copy(out, versions)
	return out
}
