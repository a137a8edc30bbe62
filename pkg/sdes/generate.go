package sdes

import (
	"crypto/rand"
	"io"
)

// GenerateKey samples a uniformly random 10-bit master key from the given
// reader. A nil reader falls back to crypto/rand.
func GenerateKey(random io.Reader) (Bits, error) {
	if random == nil {
		random = rand.Reader
	}

	raw := make([]byte, 2)
	if _, err := io.ReadFull(random, raw); err != nil {
		return nil, err
	}

	value := uint(raw[0])<<8 | uint(raw[1])
	return BitsFromUint(value, KeySize), nil
}
