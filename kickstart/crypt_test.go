package kickstart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncrypt(t *testing.T) {
	plain := []byte{0x00, 0x01, 0x02}
	key := []byte{0xFF, 0x0F}

	enc, err := Encrypt(plain, key)
	require.NoError(t, err)
	assert.Equal(t, append([]byte(Marker), 0xFF, 0x0E, 0xFD), enc)
	assert.Equal(t, []byte{0x00, 0x01, 0x02}, plain, "input is not modified")
}

func TestCryptRoundTrip(t *testing.T) {
	keys := map[string][]byte{
		"single byte":       {0x5A},
		"short":             []byte("kick"),
		"odd length":        []byte("seven!!"),
		"longer than image": sequence(5000),
	}

	for name, key := range keys {
		t.Run(name, func(t *testing.T) {
			rom := newTestROM(t, 4096, Magic256K)
			original := clone(rom)

			enc, err := Encrypt(rom, key)
			require.NoError(t, err)
			assert.Len(t, enc, len(rom)+MarkerSize)
			assert.True(t, IsEncrypted(enc))
			assert.True(t, ValidSize(enc))

			dec, err := Decrypt(enc, key)
			require.NoError(t, err)
			assert.Equal(t, original, dec)
			assert.Equal(t, original, rom)
		})
	}
}

func TestCryptPreconditions(t *testing.T) {
	key := []byte("key")

	t.Run("encrypt marked image", func(t *testing.T) {
		enc := append([]byte(Marker), 1, 2, 3, 4)
		before := clone(enc)

		out, err := Encrypt(enc, key)
		assert.ErrorIs(t, err, ErrAlreadyEncrypted)
		assert.Nil(t, out)
		assert.Equal(t, before, enc)
	})

	t.Run("decrypt unmarked image", func(t *testing.T) {
		plain := []byte("AMIROMTYPE2 payload")
		before := clone(plain)

		out, err := Decrypt(plain, key)
		assert.ErrorIs(t, err, ErrNotEncrypted)
		assert.Nil(t, out)
		assert.Equal(t, before, plain)
	})

	t.Run("empty key", func(t *testing.T) {
		_, err := Encrypt([]byte{1, 2}, nil)
		assert.ErrorIs(t, err, ErrEmptyKey)

		_, err = Decrypt(append([]byte(Marker), 1), []byte{})
		assert.ErrorIs(t, err, ErrEmptyKey)
	})

	t.Run("empty image", func(t *testing.T) {
		_, err := Encrypt(nil, key)
		assert.ErrorIs(t, err, ErrEmptyImage)

		_, err = Decrypt(nil, key)
		assert.ErrorIs(t, err, ErrEmptyImage)
	})

	t.Run("marker only", func(t *testing.T) {
		dec, err := Decrypt([]byte(Marker), key)
		require.NoError(t, err)
		assert.Empty(t, dec)
	})
}

func TestKeyStreamContinues(t *testing.T) {
	key := []byte{1, 2, 3}
	src := sequence(10)

	whole, err := NewKeyStream(key)
	require.NoError(t, err)
	want := make([]byte, len(src))
	whole.XORKeyStream(want, src)

	parts, err := NewKeyStream(key)
	require.NoError(t, err)
	got := make([]byte, len(src))
	parts.XORKeyStream(got[:4], src[:4])
	parts.XORKeyStream(got[4:], src[4:])

	assert.Equal(t, want, got)
}

func TestKeyStreamCopiesKey(t *testing.T) {
	key := []byte{0xFF}
	s, err := NewKeyStream(key)
	require.NoError(t, err)
	key[0] = 0x00

	out := make([]byte, 1)
	s.XORKeyStream(out, []byte{0x00})
	assert.Equal(t, byte(0xFF), out[0])
}
