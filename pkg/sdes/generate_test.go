package sdes

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("no entropy today")
}

// TestGenerateKey is a function.
func TestGenerateKey(t *testing.T) {
	type scenario struct {
		source []byte
		test   func(Bits, error)
	}

	scenarios := []scenario{
		{
			[]byte{0x02, 0xAA},
			func(key Bits, err error) {
				assert.NoError(t, err)
				assert.EqualValues(t, "1010101010", key.String())
			},
		},
		{
			[]byte{0xFF, 0xFF},
			func(key Bits, err error) {
				assert.NoError(t, err)
				assert.EqualValues(t, "1111111111", key.String())
			},
		},
		{
			[]byte{0x00, 0x00},
			func(key Bits, err error) {
				assert.NoError(t, err)
				assert.EqualValues(t, "0000000000", key.String())
			},
		},
	}

	for _, s := range scenarios {
		s.test(GenerateKey(bytes.NewReader(s.source)))
	}
}

// TestGenerateKeyDefaultsToCryptoRand is a function.
func TestGenerateKeyDefaultsToCryptoRand(t *testing.T) {
	key, err := GenerateKey(nil)
	assert.NoError(t, err)
	assert.Len(t, key, KeySize)

	_, err = NewCipher(key)
	assert.NoError(t, err)
}

// TestGenerateKeyReaderError is a function.
func TestGenerateKeyReaderError(t *testing.T) {
	key, err := GenerateKey(failingReader{})
	assert.Nil(t, key)
	assert.EqualError(t, err, "no entropy today")
}
