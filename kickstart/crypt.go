package kickstart

import "crypto/cipher"

// keyStream XORs data with a repeating key. XOR is its own inverse, so the
// same stream both obfuscates and recovers an image.
type keyStream struct {
	key []byte
	pos int
}

// NewKeyStream returns a cipher.Stream that cycles through key.
func NewKeyStream(key []byte) (cipher.Stream, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}
	k := make([]byte, len(key))
	copy(k, key)
	return &keyStream{key: k}, nil
}

func (s *keyStream) XORKeyStream(dst, src []byte) {
	if len(dst) < len(src) {
		panic("kickstart: output smaller than input")
	}
	for i, c := range src {
		dst[i] = c ^ s.key[s.pos]
		s.pos++
		if s.pos == len(s.key) {
			s.pos = 0
		}
	}
}

// Encrypt returns a new buffer holding Marker followed by plain XORed with
// key. plain is not modified.
func Encrypt(plain, key []byte) ([]byte, error) {
	if len(plain) == 0 {
		return nil, ErrEmptyImage
	}
	if IsEncrypted(plain) {
		return nil, ErrAlreadyEncrypted
	}
	stream, err := NewKeyStream(key)
	if err != nil {
		return nil, err
	}

	out := make([]byte, MarkerSize+len(plain))
	copy(out, Marker)
	stream.XORKeyStream(out[MarkerSize:], plain)
	return out, nil
}

// Decrypt verifies the marker on enc, strips it and returns a new buffer
// with the recovered image. enc is not modified.
func Decrypt(enc, key []byte) ([]byte, error) {
	if len(enc) == 0 {
		return nil, ErrEmptyImage
	}
	if !IsEncrypted(enc) {
		return nil, ErrNotEncrypted
	}
	stream, err := NewKeyStream(key)
	if err != nil {
		return nil, err
	}

	out := make([]byte, len(enc)-MarkerSize)
	stream.XORKeyStream(out, enc[MarkerSize:])
	return out, nil
}
