package util

import (
	"crypto/rand"
	"math/big"
)

// codeChars is safe in a URL path segment, no escaping needed.
const codeChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const CodeLength = 6

// GenerateCode returns a random short code. Collisions are possible and are
// the caller's responsibility to detect on insert.
func GenerateCode() string {
	b := make([]byte, CodeLength)
	max := big.NewInt(int64(len(codeChars)))

	for i := range b {
		rn, _ := rand.Int(rand.Reader, max)
		b[i] = codeChars[rn.Int64()]
	}

	return string(b)
}
