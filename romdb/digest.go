package romdb

import (
	"crypto/sha1"
	"encoding/hex"
)

// DigestSize is the size of a content digest in bytes.
const DigestSize = sha1.Size

// Digest returns the SHA-1 of data.
func Digest(data []byte) [DigestSize]byte {
	return sha1.Sum(data)
}

// HexDigest returns the SHA-1 of data as 40 lowercase hex characters.
func HexDigest(data []byte) string {
	d := Digest(data)
	return hex.EncodeToString(d[:])
}
