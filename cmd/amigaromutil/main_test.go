package main

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moffa90/go-kickrom/kickstart"
	"github.com/moffa90/go-kickrom/romdb"
	"github.com/moffa90/go-kickrom/romio"
)

func testROM(t *testing.T) []byte {
	t.Helper()

	const size = 4096
	rom := make([]byte, size)
	binary.BigEndian.PutUint32(rom, kickstart.Magic256K)
	binary.BigEndian.PutUint16(rom[kickstart.ResetVectorOffset:], kickstart.ResetInstruction)
	binary.BigEndian.PutUint32(rom[size-kickstart.EmbeddedSizeOffsetFromEnd:], size)
	for i := 0; i < kickstart.FooterWords; i++ {
		binary.BigEndian.PutUint16(rom[size-kickstart.FooterWords*2+i*2:], uint16(kickstart.FooterStart+i))
	}
	_, err := kickstart.CorrectChecksum(rom)
	require.NoError(t, err)
	return rom
}

func runWith(t *testing.T, fs afero.Fs, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, romio.NewStore(fs), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"no operation", nil, "no operation given"},
		{"info only", []string{"-i", "kick.rom"}, ""},
		{"split and merge", []string{"-s", "-g", "-i", "x", "-a", "a", "-b", "b"}, "mutually exclusive"},
		{"encrypt and decrypt", []string{"-e", "-d", "-i", "x", "-o", "y", "-k", "k"}, "mutually exclusive"},
		{"split missing b", []string{"-s", "-i", "x", "-a", "a"}, "split requires"},
		{"merge missing output", []string{"-g", "-a", "a", "-b", "b"}, "merge requires"},
		{"swap missing output", []string{"-p", "-i", "x"}, "requires -i and -o"},
		{"correct missing input", []string{"-c", "-o", "y"}, "requires -i and -o"},
		{"validate missing input", []string{"-v"}, "validation requires -i"},
		{"validate with merge", []string{"-v", "-g", "-a", "a", "-b", "b", "-o", "m"}, ""},
		{"encrypt missing key", []string{"-e", "-i", "x", "-o", "y"}, "require -k"},
		{"split with swap", []string{"-s", "-p", "-i", "x", "-a", "a", "-b", "b"}, ""},
		{"extra argument", []string{"-i", "x", "stray"}, "unexpected argument"},
		{"unknown flag", []string{"-z"}, "not defined"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseFlags(tt.args, &bytes.Buffer{})
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseFlagsUnconditional(t *testing.T) {
	o, err := parseFlags([]string{"-n", "-u", "-i", "x", "-o", "y"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.True(t, o.swap)
	assert.False(t, o.unswap)

	swap := o.jobOptions().Swap
	assert.True(t, swap.ToChip)
	assert.True(t, swap.Unconditional)
}

func TestParseFlagsExpandsHome(t *testing.T) {
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })
	t.Setenv("HOME", "/home/amiga")

	o, err := parseFlags([]string{"-i", "~/roms/kick.rom"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "/home/amiga/roms/kick.rom", o.input)
}

func TestRunHelp(t *testing.T) {
	code, stdout, _ := runWith(t, afero.NewMemMapFs(), "-h")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "Usage: amigaromutil")
}

func TestRunUsageError(t *testing.T) {
	code, _, stderr := runWith(t, afero.NewMemMapFs())
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "no operation given")
	assert.Contains(t, stderr, "Usage: amigaromutil")
}

func TestRunInfo(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "kick.rom", testROM(t), 0o644))

	code, stdout, _ := runWith(t, fs, "-i", "kick.rom")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "SHA-1:")
	assert.Regexp(t, `Checksum:\s+0x[0-9A-F]{8} \(valid\)`, stdout)
}

func TestRunSplitMerge(t *testing.T) {
	fs := afero.NewMemMapFs()
	rom := testROM(t)
	require.NoError(t, afero.WriteFile(fs, "kick.rom", rom, 0o644))

	code, _, stderr := runWith(t, fs, "-s", "-i", "kick.rom", "-a", "a.rom", "-b", "b.rom")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stderr, "unknown ROM loaded")

	code, _, stderr = runWith(t, fs, "-g", "-a", "a.rom", "-b", "b.rom", "-o", "out.rom")
	require.Equal(t, 0, code, stderr)

	out, err := afero.ReadFile(fs, "out.rom")
	require.NoError(t, err)
	assert.Equal(t, rom, out)
}

func TestRunValidateInvalidChecksum(t *testing.T) {
	fs := afero.NewMemMapFs()
	rom := testROM(t)
	rom[0x400] ^= 0x01
	require.NoError(t, afero.WriteFile(fs, "bad.rom", rom, 0o644))

	code, _, stderr := runWith(t, fs, "-v", "-i", "bad.rom")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "invalid checksum in bad.rom")

	code, _, stderr = runWith(t, fs, "-c", "-i", "bad.rom", "-o", "fixed.rom")
	require.Equal(t, 0, code, stderr)
	fixed, err := afero.ReadFile(fs, "fixed.rom")
	require.NoError(t, err)
	assert.True(t, kickstart.ValidateChecksum(fixed))
}

func TestRunCrypt(t *testing.T) {
	fs := afero.NewMemMapFs()
	rom := testROM(t)
	require.NoError(t, afero.WriteFile(fs, "kick.rom", rom, 0o644))
	require.NoError(t, afero.WriteFile(fs, "rom.key", []byte("secret"), 0o644))

	code, _, stderr := runWith(t, fs, "-e", "-i", "kick.rom", "-o", "enc.rom", "-k", "rom.key")
	require.Equal(t, 0, code, stderr)
	code, _, stderr = runWith(t, fs, "-d", "-i", "enc.rom", "-o", "dec.rom", "-k", "rom.key")
	require.Equal(t, 0, code, stderr)

	dec, err := afero.ReadFile(fs, "dec.rom")
	require.NoError(t, err)
	assert.Equal(t, rom, dec)

	code, _, _ = runWith(t, fs, "-e", "-i", "kick.rom", "-o", "x.rom", "-k", "missing.key")
	assert.Equal(t, 1, code)
}

func TestRunDatabase(t *testing.T) {
	fs := afero.NewMemMapFs()
	rom := testROM(t)
	require.NoError(t, afero.WriteFile(fs, "kick.rom", rom, 0o644))
	line := romdb.HexDigest(rom) + "|4096|M|0|Custom Kickstart\n"
	require.NoError(t, afero.WriteFile(fs, "extra.txt", []byte("# extra\n"+line), 0o644))

	code, stdout, stderr := runWith(t, fs, "-db", "extra.txt", "-i", "kick.rom")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "Custom Kickstart")

	require.NoError(t, afero.WriteFile(fs, "broken.txt", []byte("nonsense\n"), 0o644))
	code, _, stderr = runWith(t, fs, "-db", "broken.txt", "-i", "kick.rom")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "line 1")
}

func TestLoggerFields(t *testing.T) {
	base, hook := test.NewNullLogger()
	base.SetLevel(logrus.DebugLevel)
	l := &logrusLogger{log: base}

	l.Info("wrote ROM", "path", "out.rom", "size", 4096)
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "wrote ROM", entry.Message)
	assert.Equal(t, "out.rom", entry.Data["path"])
	assert.Equal(t, 4096, entry.Data["size"])

	l.Debug("odd", "lonely")
	assert.Equal(t, "lonely", hook.LastEntry().Data["extra"])

	l.Error("failed", "error", "boom")
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
}

func TestNewLoggerLevel(t *testing.T) {
	assert.Equal(t, logrus.InfoLevel, newLogger(&bytes.Buffer{}, false).log.GetLevel())
	assert.Equal(t, logrus.DebugLevel, newLogger(&bytes.Buffer{}, true).log.GetLevel())
}
