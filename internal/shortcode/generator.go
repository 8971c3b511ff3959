// Package shortcode generates random short codes and allocates codes
// not yet present in the store.
package shortcode

import (
	"crypto/rand"
	"math/big"
)

// Alphabet is the full base62 set: 62 symbols, ~35.8 bits of entropy
// for a 6-character code.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// DefaultLength is the length of generated codes.
const DefaultLength = 6

// Generator produces uniformly random short codes.
type Generator struct {
	alphabet string
	length   int
}

// NewGenerator creates a generator producing 6-character base62 codes.
func NewGenerator() *Generator {
	return NewGeneratorWithLength(DefaultLength)
}

// NewGeneratorWithLength creates a generator producing codes of the
// given length. Non-positive lengths fall back to DefaultLength.
func NewGeneratorWithLength(length int) *Generator {
	if length <= 0 {
		length = DefaultLength
	}
	return &Generator{
		alphabet: Alphabet,
		length:   length,
	}
}

// Generate creates a new random short code. Each character is drawn
// independently and uniformly from the alphabet using crypto/rand; the
// big.Int draw avoids modulo bias.
func (g *Generator) Generate() string {
	b := make([]byte, g.length)
	alphabetLen := big.NewInt(int64(len(g.alphabet)))

	for i := range b {
		n, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			// crypto/rand reads the OS entropy source; if that fails
			// nothing sensible can continue.
			panic("crypto/rand failed: " + err.Error())
		}
		b[i] = g.alphabet[n.Int64()]
	}

	return string(b)
}
