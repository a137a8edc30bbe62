package sdes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestCipherGoldenVector pins the textbook key and plaintext to the exact
// ciphertext and subkeys a trusted reference run produced.
func TestCipherGoldenVector(t *testing.T) {
	key, err := ParseBits("1010000010")
	assert.NoError(t, err)
	plaintext, err := ParseBits("11010111")
	assert.NoError(t, err)

	cipher, err := NewCipher(key)
	assert.NoError(t, err)

	k1, k2 := cipher.Subkeys()
	assert.EqualValues(t, "10100100", k1.String())
	assert.EqualValues(t, "01000011", k2.String())

	ciphertext, err := cipher.EncryptBlock(plaintext)
	assert.NoError(t, err)
	assert.EqualValues(t, "10101000", ciphertext.String())

	decrypted, err := cipher.DecryptBlock(ciphertext)
	assert.NoError(t, err)
	assert.EqualValues(t, "11010111", decrypted.String())
}

// TestCipherKnownAnswers is a function.
func TestCipherKnownAnswers(t *testing.T) {
	type scenario struct {
		key        string
		plaintext  string
		ciphertext string
	}

	scenarios := []scenario{
		{"1010000010", "11010111", "10101000"},
		{"1010000010", "01010111", "00001010"},
		{"0000000000", "00000000", "11110000"},
		{"1111111111", "11111111", "00001111"},
	}

	for _, s := range scenarios {
		key, err := ParseBits(s.key)
		assert.NoError(t, err)
		plaintext, err := ParseBits(s.plaintext)
		assert.NoError(t, err)

		cipher, err := NewCipher(key)
		assert.NoError(t, err)

		ciphertext, err := cipher.EncryptBlock(plaintext)
		assert.NoError(t, err)
		assert.EqualValues(t, s.ciphertext, ciphertext.String(), "key %s plaintext %s", s.key, s.plaintext)

		decrypted, err := cipher.DecryptBlock(ciphertext)
		assert.NoError(t, err)
		assert.EqualValues(t, s.plaintext, decrypted.String(), "key %s ciphertext %s", s.key, s.ciphertext)
	}
}

// TestCipherRoundTrip runs every block under a sweep of keys and checks that
// decryption undoes encryption. The full 1024x256 sweep lives in the verify
// package; this keeps the unit test quick.
func TestCipherRoundTrip(t *testing.T) {
	for keyValue := uint(0); keyValue < 1024; keyValue += 7 {
		cipher, err := NewCipher(BitsFromUint(keyValue, KeySize))
		assert.NoError(t, err)

		for blockValue := uint(0); blockValue < 256; blockValue += 17 {
			block := BitsFromUint(blockValue, BlockSize)

			ciphertext, err := cipher.EncryptBlock(block)
			assert.NoError(t, err)
			decrypted, err := cipher.DecryptBlock(ciphertext)
			assert.NoError(t, err)

			assert.True(t, block.Equal(decrypted), "key %d block %d", keyValue, blockValue)
		}
	}
}

// TestCipherBijective checks that a fixed key maps the 256 possible blocks
// onto 256 distinct ciphertexts.
func TestCipherBijective(t *testing.T) {
	key, err := ParseBits("1010000010")
	assert.NoError(t, err)
	cipher, err := NewCipher(key)
	assert.NoError(t, err)

	seen := make(map[uint]bool, 256)
	for blockValue := uint(0); blockValue < 256; blockValue++ {
		ciphertext, err := cipher.EncryptBlock(BitsFromUint(blockValue, BlockSize))
		assert.NoError(t, err)

		value := ciphertext.Uint()
		assert.False(t, seen[value], "ciphertext %s repeated", ciphertext)
		seen[value] = true
	}
}

// TestCipherDeterminism checks that two independently constructed instances
// agree on subkeys and ciphertext.
func TestCipherDeterminism(t *testing.T) {
	key := Bits{0, 1, 1, 0, 1, 0, 1, 1, 0, 1}
	block := Bits{1, 0, 0, 1, 1, 0, 1, 0}

	first, err := NewCipher(key)
	assert.NoError(t, err)
	second, err := NewCipher(key)
	assert.NoError(t, err)

	firstK1, firstK2 := first.Subkeys()
	secondK1, secondK2 := second.Subkeys()
	assert.EqualValues(t, firstK1, secondK1)
	assert.EqualValues(t, firstK2, secondK2)

	firstOut, err := first.EncryptBlock(block)
	assert.NoError(t, err)
	secondOut, err := second.EncryptBlock(block)
	assert.NoError(t, err)
	repeat, err := first.EncryptBlock(block)
	assert.NoError(t, err)

	assert.EqualValues(t, firstOut, secondOut)
	assert.EqualValues(t, firstOut, repeat)
}

// TestCipherAvalancheSmoke flips single plaintext bits and expects more than
// one ciphertext bit to move for the pinned key. Not a hard invariant of the
// cipher, but a decent tripwire for broken diffusion.
func TestCipherAvalancheSmoke(t *testing.T) {
	key, err := ParseBits("1010000010")
	assert.NoError(t, err)
	plaintext, err := ParseBits("11010111")
	assert.NoError(t, err)

	cipher, err := NewCipher(key)
	assert.NoError(t, err)
	base, err := cipher.EncryptBlock(plaintext)
	assert.NoError(t, err)

	flipped := plaintext.Clone()
	flipped[0] ^= 1
	perturbed, err := cipher.EncryptBlock(flipped)
	assert.NoError(t, err)

	distance := 0
	for i := range base {
		if base[i] != perturbed[i] {
			distance++
		}
	}
	assert.EqualValues(t, 3, distance)

	// bijectivity guarantees at least one output bit moves for any flip
	for position := 0; position < BlockSize; position++ {
		flipped := plaintext.Clone()
		flipped[position] ^= 1

		perturbed, err := cipher.EncryptBlock(flipped)
		assert.NoError(t, err)
		assert.False(t, base.Equal(perturbed), "flipping bit %d left the ciphertext unchanged", position+1)
	}
}

// TestCipherValidation is a function.
func TestCipherValidation(t *testing.T) {
	type scenario struct {
		block Bits
		test  func(Bits, error)
	}

	validKey := Bits{1, 0, 1, 0, 0, 0, 0, 0, 1, 0}

	keyScenarios := []struct {
		key  Bits
		test func(*Cipher, error)
	}{
		{
			Bits{1, 0, 1, 0, 0, 0, 0, 0, 1},
			func(cipher *Cipher, err error) {
				assert.Nil(t, cipher)
				assert.EqualError(t, err, "sdes: invalid key size 9")
			},
		},
		{
			Bits{1, 0, 1, 0, 0, 0, 0, 0, 1, 7},
			func(cipher *Cipher, err error) {
				assert.Nil(t, cipher)
				assert.EqualError(t, err, "sdes: bit at position 10 is not 0 or 1")
			},
		},
	}

	for _, s := range keyScenarios {
		s.test(NewCipher(s.key))
	}

	cipher, err := NewCipher(validKey)
	assert.NoError(t, err)

	scenarios := []scenario{
		{
			Bits{1, 1, 0, 1},
			func(out Bits, err error) {
				assert.Nil(t, out)
				assert.EqualError(t, err, "sdes: invalid block size 4")
			},
		},
		{
			Bits{1, 1, 0, 1, 0, 1, 1, 2},
			func(out Bits, err error) {
				assert.Nil(t, out)
				assert.EqualError(t, err, "sdes: bit at position 8 is not 0 or 1")
			},
		},
	}

	for _, s := range scenarios {
		out, err := cipher.EncryptBlock(s.block)
		s.test(out, err)
		out, err = cipher.DecryptBlock(s.block)
		s.test(out, err)
	}
}

// TestSubkeysReturnsCopies is a function.
func TestSubkeysReturnsCopies(t *testing.T) {
	key := Bits{1, 0, 1, 0, 0, 0, 0, 0, 1, 0}
	cipher, err := NewCipher(key)
	assert.NoError(t, err)

	k1, _ := cipher.Subkeys()
	k1[0] ^= 1

	freshK1, _ := cipher.Subkeys()
	assert.EqualValues(t, "10100100", freshK1.String())
}
