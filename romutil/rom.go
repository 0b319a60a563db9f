package romutil

import (
	"fmt"

	"github.com/moffa90/go-kickrom/kickstart"
)

// ROM is a parsed image. It owns its buffer, which always holds the plain
// (unobfuscated) image.
//
// Transforms change the buffer but not the Info snapshot; after one that
// modified the image, Stale reports true until Reparse is called.
// A ROM is not safe for concurrent use.
type ROM struct {
	parser *Parser
	data   []byte
	info   Info
	stale  bool
}

// Info returns the snapshot taken by the last pipeline run.
func (r *ROM) Info() Info {
	return r.info
}

// Bytes returns a copy of the current plain image.
func (r *ROM) Bytes() []byte {
	out := make([]byte, len(r.data))
	copy(out, r.data)
	return out
}

// Len returns the current image size, or 0 after Release.
func (r *ROM) Len() int {
	return len(r.data)
}

// Stale reports whether the image changed since the last pipeline run.
func (r *ROM) Stale() bool {
	return r.stale
}

// Reparse reruns the pipeline over the current image and replaces the
// snapshot. The Encrypted flag of the original input is kept.
func (r *ROM) Reparse() error {
	if r.released() {
		return ErrReleased
	}
	info, err := r.parser.analyze(r.data)
	if err != nil {
		return err
	}
	info.Encrypted = r.info.Encrypted
	r.info = info
	r.stale = false
	return nil
}

// Release drops the image buffer. Every later operation except Info
// returns ErrReleased.
func (r *ROM) Release() {
	r.data = nil
	r.stale = true
}

// Swap byte-swaps the image toward the orientation requested in opts,
// using the orientation from the current snapshot. It reports whether the
// image was changed. A stale ROM must be reparsed first unless the swap
// is unconditional.
func (r *ROM) Swap(opts kickstart.SwapOptions) (bool, error) {
	if r.released() {
		return false, ErrReleased
	}
	if r.stale && !opts.Unconditional {
		return false, ErrStale
	}

	swapped, err := kickstart.ApplyByteSwap(r.data, r.info.Orientation, opts)
	if err != nil {
		return false, err
	}
	if swapped {
		r.stale = true
		r.parser.logDebug("byte-swapped image", "from", r.info.Orientation.String())
	}
	return swapped, nil
}

// CorrectChecksum rewrites the checksum if it is invalid and reports
// whether the image was changed.
func (r *ROM) CorrectChecksum() (bool, error) {
	if r.released() {
		return false, ErrReleased
	}
	changed, err := kickstart.CorrectChecksum(r.data)
	if err != nil {
		return false, err
	}
	if changed {
		r.stale = true
	}
	return changed, nil
}

// ValidChecksum validates the checksum of the current image, which may
// differ from the snapshot after a transform.
func (r *ROM) ValidChecksum() bool {
	return kickstart.ValidateChecksum(r.data)
}

// Split deinterleaves the image into its Hi (A) and Lo (B) halves, each
// parsed as a ROM of its own. r is not modified.
func (r *ROM) Split() (high, low *ROM, err error) {
	if r.released() {
		return nil, nil, ErrReleased
	}

	hi, lo, err := kickstart.Split(r.data)
	if err != nil {
		return nil, nil, fmt.Errorf("split: %w", err)
	}

	hiInfo, err := r.parser.analyze(hi)
	if err != nil {
		return nil, nil, fmt.Errorf("high half: %w", err)
	}
	loInfo, err := r.parser.analyze(lo)
	if err != nil {
		return nil, nil, fmt.Errorf("low half: %w", err)
	}

	return &ROM{parser: r.parser, data: hi, info: hiInfo},
		&ROM{parser: r.parser, data: lo, info: loInfo},
		nil
}

// Encrypt returns the image obfuscated with the parser's key. r is not
// modified and stays plain.
func (r *ROM) Encrypt() ([]byte, error) {
	if r.released() {
		return nil, ErrReleased
	}
	if len(r.parser.config.Key) == 0 {
		return nil, ErrKeyRequired
	}
	return kickstart.Encrypt(r.data, r.parser.config.Key)
}

func (r *ROM) released() bool {
	return r.data == nil
}
