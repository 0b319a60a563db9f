package romutil

import (
	"errors"
	"fmt"

	"github.com/moffa90/go-kickrom/kickstart"
	"github.com/moffa90/go-kickrom/romio"
)

// The file-level jobs below read their input through the configured
// romio.Store and always apply their steps in the same order:
// decrypt, swap, checksum, transform, encrypt, write.
// Advisory findings (unknown ROM, invalid checksum that was not corrected,
// halves from different sets) are logged at Info level and do not fail the
// job.

// Info parses the ROM at path and returns its snapshot.
//
// Example:
//
//	info, err := romutil.New().Info("kick.rom")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = info.Write(os.Stdout)
func (p *Parser) Info(path string) (Info, error) {
	rom, err := p.load(path)
	if err != nil {
		return Info{}, err
	}
	defer rom.Release()
	return rom.Info(), nil
}

// SplitFile splits the merged ROM at in into Hi (A) and Lo (B) halves
// written to outHigh and outLow.
func (p *Parser) SplitFile(in, outHigh, outLow string, opts JobOptions) error {
	rom, err := p.load(in)
	if err != nil {
		return err
	}
	defer rom.Release()

	p.reportIdentity(in, rom.Info())
	if c := rom.Info().Class; c != kickstart.ClassMerged {
		p.logInfo("ROM is not detected as a known merged ROM", "path", in, "class", string(c))
	}

	if err := p.swap(rom, in, opts.Swap); err != nil {
		return err
	}
	if err := p.checksum(rom, in, opts.CorrectChecksum); err != nil {
		return err
	}

	high, low, err := rom.Split()
	if err != nil {
		return fmt.Errorf("split %s: %w", in, err)
	}
	defer high.Release()
	defer low.Release()

	if err := p.store().WriteROM(outHigh, high.data); err != nil {
		return err
	}
	if err := p.store().WriteROM(outLow, low.data); err != nil {
		return err
	}

	p.logInfo("wrote A and B ROMs", "high", outHigh, "low", outLow, "size", high.Len())
	return nil
}

// MergeFile merges the Hi (A) half at inHigh and the Lo (B) half at inLow
// into out.
func (p *Parser) MergeFile(inHigh, inLow, out string, opts JobOptions) error {
	high, err := p.load(inHigh)
	if err != nil {
		return err
	}
	defer high.Release()

	low, err := p.load(inLow)
	if err != nil {
		return err
	}
	defer low.Release()

	if high.Len() != low.Len() {
		return &kickstart.LengthMismatchError{High: high.Len(), Low: low.Len()}
	}

	hi, lo := high.Info(), low.Info()
	p.reportIdentity(inHigh, hi)
	p.reportIdentity(inLow, lo)
	switch {
	case hi.Known && !lo.Known:
		p.logInfo("known A ROM and unknown B ROM detected")
	case lo.Known && !hi.Known:
		p.logInfo("known B ROM and unknown A ROM detected")
	case hi.Known && lo.Known && hi.Name != lo.Name:
		p.logInfo("A and B ROMs are not from the same set", "a", hi.Name, "b", lo.Name)
	}
	if hi.Class != kickstart.ClassHiHalf {
		p.logInfo("A ROM is not detected as a known A ROM", "path", inHigh)
	}
	if lo.Class != kickstart.ClassLoHalf {
		p.logInfo("B ROM is not detected as a known B ROM", "path", inLow)
	}

	if err := p.swap(high, inHigh, opts.Swap); err != nil {
		return err
	}
	if err := p.swap(low, inLow, opts.Swap); err != nil {
		return err
	}

	merged, err := p.Merge(high, low)
	if err != nil {
		return err
	}
	defer merged.Release()

	if err := p.checksum(merged, out, opts.CorrectChecksum); err != nil {
		return err
	}
	return p.write(merged, out, opts.Encrypt)
}

// SwapFile byte-swaps the ROM at in toward the requested orientation and
// writes it to out.
func (p *Parser) SwapFile(in, out string, opts JobOptions) error {
	rom, err := p.load(in)
	if err != nil {
		return err
	}
	defer rom.Release()

	p.reportIdentity(in, rom.Info())
	if err := p.swap(rom, in, opts.Swap); err != nil {
		return err
	}
	if opts.CorrectChecksum {
		if err := p.checksum(rom, in, true); err != nil {
			return err
		}
	}
	return p.write(rom, out, opts.Encrypt)
}

// CryptFile obfuscates (encrypt) or recovers (!encrypt) the ROM at in and
// writes the result to out. Encrypting an obfuscated image or decrypting a
// plain one fails without writing anything.
func (p *Parser) CryptFile(in, out string, encrypt bool) error {
	if len(p.config.Key) == 0 {
		return ErrKeyRequired
	}

	data, err := p.store().ReadROM(in)
	if err != nil {
		return err
	}

	switch {
	case encrypt && kickstart.IsEncrypted(data):
		return fmt.Errorf("%s: %w", in, kickstart.ErrAlreadyEncrypted)
	case !encrypt && !kickstart.IsEncrypted(data):
		return fmt.Errorf("%s: %w", in, kickstart.ErrNotEncrypted)
	}

	rom, err := p.Parse(data)
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}
	defer rom.Release()

	p.reportIdentity(in, rom.Info())
	return p.write(rom, out, encrypt)
}

// ChecksumFile validates the checksum of the ROM at in. With correct set,
// an invalid checksum is rewritten and the image is written to out;
// otherwise an invalid checksum is returned as *ChecksumError and out is
// not used.
func (p *Parser) ChecksumFile(in, out string, correct bool) error {
	rom, err := p.load(in)
	if err != nil {
		return err
	}
	defer rom.Release()

	p.reportIdentity(in, rom.Info())
	if !correct {
		if !rom.ValidChecksum() {
			return p.checksumError(rom, in)
		}
		p.logInfo("ROM checksum is valid", "path", in)
		return nil
	}

	if err := p.checksum(rom, in, true); err != nil {
		return err
	}
	return p.write(rom, out, false)
}

// load reads and parses the ROM at path.
func (p *Parser) load(path string) (*ROM, error) {
	data, err := p.store().ReadROM(path)
	if err != nil {
		return nil, err
	}

	rom, err := p.Parse(data)
	if err != nil {
		if errors.Is(err, ErrKeyRequired) {
			return nil, fmt.Errorf("%s is encrypted: %w", path, err)
		}
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rom, nil
}

// swap applies a requested byte swap to rom.
func (p *Parser) swap(rom *ROM, path string, opts kickstart.SwapOptions) error {
	if !opts.Requested() {
		return nil
	}
	swapped, err := rom.Swap(opts)
	if err != nil {
		return fmt.Errorf("swap %s: %w", path, err)
	}
	if !swapped {
		p.logInfo("ROM already in requested byte order", "path", path,
			"orientation", rom.Info().Orientation.String())
	}
	return nil
}

// checksum validates the checksum of rom, correcting it when correct is
// set. An invalid checksum that is not corrected is only logged.
func (p *Parser) checksum(rom *ROM, path string, correct bool) error {
	if rom.ValidChecksum() {
		p.logInfo("ROM checksum is valid", "path", path)
		return nil
	}
	if !correct {
		p.logInfo("ROM checksum is invalid", "path", path)
		return nil
	}

	if _, err := rom.CorrectChecksum(); err != nil {
		p.logError("unable to correct ROM checksum", "path", path, "error", err)
		return fmt.Errorf("correct checksum of %s: %w", path, err)
	}
	p.logInfo("corrected ROM checksum", "path", path)
	return nil
}

func (p *Parser) checksumError(rom *ROM, path string) error {
	stored, _ := kickstart.EmbeddedChecksum(rom.data)
	return &ChecksumError{
		Path:     path,
		Stored:   stored,
		Expected: kickstart.CalculateChecksum(rom.data, true),
	}
}

// write stores rom at path, obfuscating it first when encrypt is set.
func (p *Parser) write(rom *ROM, path string, encrypt bool) error {
	data := rom.data
	if encrypt {
		enc, err := rom.Encrypt()
		if err != nil {
			return fmt.Errorf("encrypt: %w", err)
		}
		data = enc
	}

	if err := p.store().WriteROM(path, data); err != nil {
		return err
	}
	p.logInfo("wrote ROM", "path", path, "size", len(data), "encrypted", encrypt)
	return nil
}

func (p *Parser) reportIdentity(path string, info Info) {
	if info.Known {
		p.logInfo("detected ROM", "path", path, "name", info.Name)
		return
	}
	p.logInfo("unknown ROM loaded", "path", path, "header", info.Header.String())
}

func (p *Parser) store() *romio.Store {
	if p.config.Store == nil {
		return romio.OS()
	}
	return p.config.Store
}
