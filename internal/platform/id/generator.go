package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// Generator creates opaque record ids.
type Generator interface {
	NewID() (string, error)
}

// RandomGenerator returns 128-bit hex ids, optionally prefixed ("pt_", "note_").
type RandomGenerator struct {
	prefix string
}

func NewRandomGenerator(prefix string) *RandomGenerator {
	return &RandomGenerator{prefix: prefix}
}

func (g *RandomGenerator) NewID() (string, error) {
	var buf [16]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return g.prefix + hex.EncodeToString(buf[:]), nil
}
