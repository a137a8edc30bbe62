// Package avalanche measures how single-bit input changes ripple through the
// cipher. A healthy block cipher flips several ciphertext bits whenever one
// plaintext or key bit changes, and the flip tables built here make that
// visible per position.
package avalanche

import "github.com/jesseduffield/lazysdes/pkg/sdes"

// FlipResult records the effect of flipping a single input bit.
type FlipResult struct {
	// Position is the 1-based position of the bit that was flipped
	Position int

	// Ciphertext is the encryption of the flipped input
	Ciphertext sdes.Bits

	// Distance is the hamming distance to the base ciphertext
	Distance int
}

// Analysis holds the avalanche behaviour of a single key/block pair.
type Analysis struct {
	Key            sdes.Bits
	Block          sdes.Bits
	BaseCiphertext sdes.Bits

	// PlaintextFlips holds one result per flipped plaintext bit
	PlaintextFlips []FlipResult

	// KeyFlips holds one result per flipped key bit
	KeyFlips []FlipResult
}

// Analyze encrypts the block under the key, then re-encrypts once per flipped
// plaintext bit and once per flipped key bit, recording how far each
// ciphertext lands from the base one.
func Analyze(key sdes.Bits, block sdes.Bits) (*Analysis, error) {
	cipher, err := sdes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	base, err := cipher.EncryptBlock(block)
	if err != nil {
		return nil, err
	}

	analysis := &Analysis{
		Key:            key.Clone(),
		Block:          block.Clone(),
		BaseCiphertext: base,
		PlaintextFlips: make([]FlipResult, 0, len(block)),
		KeyFlips:       make([]FlipResult, 0, len(key)),
	}

	for i := range block {
		ciphertext, err := cipher.EncryptBlock(flipBit(block, i))
		if err != nil {
			return nil, err
		}

		analysis.PlaintextFlips = append(analysis.PlaintextFlips, FlipResult{
			Position:   i + 1,
			Ciphertext: ciphertext,
			Distance:   hammingDistance(base, ciphertext),
		})
	}

	for i := range key {
		flippedCipher, err := sdes.NewCipher(flipBit(key, i))
		if err != nil {
			return nil, err
		}

		ciphertext, err := flippedCipher.EncryptBlock(block)
		if err != nil {
			return nil, err
		}

		analysis.KeyFlips = append(analysis.KeyFlips, FlipResult{
			Position:   i + 1,
			Ciphertext: ciphertext,
			Distance:   hammingDistance(base, ciphertext),
		})
	}

	return analysis, nil
}

// Mean returns the mean hamming distance across the given flips.
func Mean(flips []FlipResult) float64 {
	if len(flips) == 0 {
		return 0
	}

	total := 0
	for _, flip := range flips {
		total += flip.Distance
	}

	return float64(total) / float64(len(flips))
}

func flipBit(bits sdes.Bits, index int) sdes.Bits {
	flipped := bits.Clone()
	flipped[index] ^= 1
	return flipped
}

func hammingDistance(a, b sdes.Bits) int {
	distance := 0
	for i := range a {
		if a[i] != b[i] {
			distance++
		}
	}
	return distance
}
