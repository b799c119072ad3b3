package idgen

import (
	"crypto/rand"
	"io"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Generator produces fixed-length uppercase alphanumeric record ids. It owns
// its entropy source so no package-level randomness is shared.
type Generator struct {
	rand io.Reader
}

func NewGenerator() *Generator {
	return &Generator{rand: rand.Reader}
}

func NewGeneratorWithSource(source io.Reader) *Generator {
	return &Generator{rand: source}
}

func (g *Generator) Generate(length int) string {
	if length < 1 {
		return ""
	}

	buf := make([]byte, length)
	if _, err := io.ReadFull(g.rand, buf); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}

	for i, b := range buf {
		buf[i] = alphabet[int(b)%len(alphabet)]
	}

	return string(buf)
}
