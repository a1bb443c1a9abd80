package common

import "crypto/rand"

// GenerateRandByteArray returns size bytes read from crypto/rand, such as the
// salt for a PIN-derived key. It panics if the system randomness source fails.
func GenerateRandByteArray(size int) []byte {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return b
}

// WipeByteArray overwrites b with zeros. Passwords, PINs, derived keys and
// vault tokens go through it once they are no longer needed.
func WipeByteArray(b []byte) {
	clear(b)
}
