package romutil

import (
	"fmt"

	"github.com/moffa90/go-kickrom/kickstart"
	"github.com/moffa90/go-kickrom/romdb"
)

// Parser runs the identification pipeline over ROM images and hosts the
// file-level jobs.
//
// Parser is safe for concurrent use after initialization. The ROMs it
// returns are not.
type Parser struct {
	config Config
}

// New creates a new Parser with the given options.
//
// Example:
//
//	p := romutil.New(
//	    romutil.WithKey(key),
//	    romutil.WithLogger(myLogger),
//	)
func New(opts ...Option) *Parser {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Parser{
		config: cfg,
	}
}

// Parse identifies and validates data and returns a ROM owning a private
// copy of the plain image. The pipeline runs in a fixed order:
//  1. Remove the obfuscation marker (requires a configured key)
//  2. Check the size; an invalid size aborts with *kickstart.SizeError
//  3. Check reset vector, footer and embedded size
//  4. Look up the digest, decode the header and version words
//  5. Validate the checksum
//
// Only steps 1 and 2 can fail. Everything else is reported in the Info.
//
// Example:
//
//	rom, err := p.Parse(data)
//	if err != nil {
//	    return err
//	}
//	defer rom.Release()
//	fmt.Println(rom.Info().Name)
func (p *Parser) Parse(data []byte) (*ROM, error) {
	plain, encrypted, err := p.decrypt(data)
	if err != nil {
		return nil, err
	}

	info, err := p.analyze(plain)
	if err != nil {
		return nil, err
	}
	info.Encrypted = encrypted

	return &ROM{parser: p, data: plain, info: info}, nil
}

// Merge interleaves a Hi (A) and Lo (B) half into a new merged ROM. The
// halves must have the same size and are not modified.
func (p *Parser) Merge(high, low *ROM) (*ROM, error) {
	if high.released() || low.released() {
		return nil, ErrReleased
	}
	if high.Len() != low.Len() {
		return nil, &kickstart.LengthMismatchError{High: high.Len(), Low: low.Len()}
	}

	merged, err := kickstart.Merge(high.data, low.data)
	if err != nil {
		return nil, fmt.Errorf("merge: %w", err)
	}

	info, err := p.analyze(merged)
	if err != nil {
		return nil, err
	}
	return &ROM{parser: p, data: merged, info: info}, nil
}

// decrypt returns a private plain copy of data.
func (p *Parser) decrypt(data []byte) ([]byte, bool, error) {
	if len(data) == 0 {
		return nil, false, fmt.Errorf("%w: %w", kickstart.ErrEmptyImage, &kickstart.SizeError{Size: 0})
	}

	p.reportStage(StageDecrypt)
	if !kickstart.IsEncrypted(data) {
		plain := make([]byte, len(data))
		copy(plain, data)
		return plain, false, nil
	}

	if len(p.config.Key) == 0 {
		return nil, true, ErrKeyRequired
	}
	plain, err := kickstart.Decrypt(data, p.config.Key)
	if err != nil {
		return nil, true, fmt.Errorf("decrypt: %w", err)
	}

	p.logDebug("decrypted image", "size", len(plain))
	return plain, true, nil
}

// analyze runs the validate, classify and checksum stages over plain.
func (p *Parser) analyze(plain []byte) (Info, error) {
	p.reportStage(StageValidate)
	if err := kickstart.CheckSize(plain); err != nil {
		return Info{}, err
	}

	info := Info{
		Size:              len(plain),
		SizeValid:         true,
		ResetVector:       kickstart.HasResetVector(plain),
		FooterValid:       kickstart.ValidFooter(plain),
		EmbeddedSizeValid: kickstart.ValidEmbeddedSize(plain),
	}

	p.reportStage(StageClassify)
	info.Digest = romdb.Digest(plain)
	info.Header = kickstart.DetectHeaderType(plain)
	info.Class = kickstart.ClassUnknown
	info.Orientation = info.Header.Orientation()

	if entry, ok := p.config.Database.Lookup(info.Digest); ok {
		info.Known = true
		info.Name = entry.Name
		info.Class = entry.Class
		info.Orientation = entry.Orientation
	}

	if major, minor, ok := kickstart.VersionWords(plain); ok {
		info.HasVersion = true
		info.Major = major
		info.Minor = minor
		info.VersionName, _ = romdb.LookupVersion(major, minor)
	}
	info.KicketySplit = kickstart.IsKicketySplit(plain)

	p.reportStage(StageChecksum)
	info.Checksum, _ = kickstart.EmbeddedChecksum(plain)
	info.ChecksumValid = kickstart.ValidateChecksum(plain)

	p.reportStage(StageComplete)
	p.logDebug("parsed image",
		"size", info.Size,
		"known", info.Known,
		"header", info.Header.String(),
		"orientation", info.Orientation.String(),
		"checksum_valid", info.ChecksumValid,
	)

	return info, nil
}

// reportStage calls the stage callback if one is configured.
func (p *Parser) reportStage(s Stage) {
	if p.config.StageCallback != nil {
		p.config.StageCallback(s)
	}
}

// logDebug logs a debug message if a logger is configured.
func (p *Parser) logDebug(msg string, keysAndValues ...interface{}) {
	if p.config.Logger != nil {
		p.config.Logger.Debug(msg, keysAndValues...)
	}
}

// logInfo logs an info message if a logger is configured.
func (p *Parser) logInfo(msg string, keysAndValues ...interface{}) {
	if p.config.Logger != nil {
		p.config.Logger.Info(msg, keysAndValues...)
	}
}

// logError logs an error message if a logger is configured.
func (p *Parser) logError(msg string, keysAndValues ...interface{}) {
	if p.config.Logger != nil {
		p.config.Logger.Error(msg, keysAndValues...)
	}
}
