// Package pickupcode issues the short codes a buyer shows the seller at
// handoff.
package pickupcode

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"io"
	"strings"
)

const (
	// Length of every issued code
	Length = 6
	// Alphabet drops 0/O and 1/I so codes survive being read aloud
	Alphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"
)

// Generator produces pickup codes from a random source
type Generator struct {
	rand io.Reader
}

// NewGenerator returns a generator backed by crypto/rand
func NewGenerator() *Generator {
	return &Generator{rand: rand.Reader}
}

// NewGeneratorWithSource is used by tests that need deterministic codes
func NewGeneratorWithSource(r io.Reader) *Generator {
	return &Generator{rand: r}
}

// Generate returns a new code of Length characters
func (g *Generator) Generate() (string, error) {
	buf := make([]byte, Length)
	if _, err := io.ReadFull(g.rand, buf); err != nil {
		return "", fmt.Errorf("failed to generate pickup code: %w", err)
	}

	// len(Alphabet) is 32 so the modulo keeps the distribution uniform
	code := make([]byte, Length)
	for i, b := range buf {
		code[i] = Alphabet[int(b)%len(Alphabet)]
	}
	return string(code), nil
}

// Normalize trims and upper-cases user input
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Valid reports whether code has the issued shape after normalization
func Valid(code string) bool {
	code = Normalize(code)
	if len(code) != Length {
		return false
	}
	for i := 0; i < len(code); i++ {
		if strings.IndexByte(Alphabet, code[i]) < 0 {
			return false
		}
	}
	return true
}

// Equal compares a stored code with a presented one, case-insensitively
func Equal(stored, presented string) bool {
	a := Normalize(stored)
	b := Normalize(presented)
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
