// Package sdes implements Simplified DES, the teaching cipher: 8-bit blocks,
// a 10-bit key, two Feistel rounds. Tiny key, tiny block, zero security; the
// point is that you can watch every bit move.
package sdes

// Cipher encrypts and decrypts single 8-bit blocks under a fixed 10-bit key.
// The subkeys are derived once at construction and never change afterwards,
// so a Cipher is safe for concurrent use.
type Cipher struct {
	k1 Bits
	k2 Bits
}

// NewCipher derives the round subkeys from key and returns a ready cipher.
// The key must be exactly 10 bits, each 0 or 1; anything else is rejected
// rather than truncated or padded.
func NewCipher(key Bits) (*Cipher, error) {
	schedule, err := NewKeySchedule(key)
	if err != nil {
		return nil, err
	}
	return &Cipher{k1: schedule.K1, k2: schedule.K2}, nil
}

// Subkeys returns copies of the two round subkeys
func (c *Cipher) Subkeys() (Bits, Bits) {
	return c.k1.Clone(), c.k2.Clone()
}

// EncryptBlock encrypts one 8-bit block
func (c *Cipher) EncryptBlock(plaintext Bits) (Bits, error) {
	if err := validateBlock(plaintext); err != nil {
		return nil, err
	}
	return c.crypt(plaintext, c.k1, c.k2), nil
}

// DecryptBlock decrypts one 8-bit block. Decryption is the same pipeline as
// encryption with the subkeys applied in the opposite order.
func (c *Cipher) DecryptBlock(ciphertext Bits) (Bits, error) {
	if err := validateBlock(ciphertext); err != nil {
		return nil, err
	}
	return c.crypt(ciphertext, c.k2, c.k1), nil
}

// crypt runs the two-round Feistel pipeline: initial permutation, a round
// with the first subkey followed by the half swap, a round with the second
// subkey without the swap, then the final permutation.
func (c *Cipher) crypt(block, first, second Bits) Bits {
	permuted := Permute(block, IP)
	left, right := permuted[:4], permuted[4:]

	// round 1: the untouched right half crosses over to the left, the XOR
	// result becomes the new right
	left, right = right, xorBits(left, roundFunction(right, first))

	// round 2: no swap
	left = xorBits(left, roundFunction(right, second))

	return Permute(concatBits(left, right), IPInverse)
}
