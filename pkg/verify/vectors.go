package verify

import (
	"fmt"
	"os"

	yaml "github.com/goccy/go-yaml"
	"github.com/jesseduffield/lazysdes/pkg/sdes"
	"github.com/spkg/bom"
)

// Vector pins a published plaintext/ciphertext pair for a key.
type Vector struct {
	Description string `yaml:"description,omitempty"`
	Key         string `yaml:"key"`
	Plaintext   string `yaml:"plaintext"`
	Ciphertext  string `yaml:"ciphertext"`
}

// BuiltinVectors returns the worked examples every implementation of the
// cipher is expected to reproduce.
func BuiltinVectors() []Vector {
	return []Vector{
		{
			Description: "textbook worked example",
			Key:         "1010000010",
			Plaintext:   "11010111",
			Ciphertext:  "10101000",
		},
		{
			Description: "all zero inputs",
			Key:         "0000000000",
			Plaintext:   "00000000",
			Ciphertext:  "11110000",
		},
		{
			Description: "all one inputs",
			Key:         "1111111111",
			Plaintext:   "11111111",
			Ciphertext:  "00001111",
		},
	}
}

// LoadVectorFile reads extra vectors from a yaml file
func LoadVectorFile(path string) ([]Vector, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	vectors := []Vector{}
	if err := yaml.Unmarshal(bom.Clean(content), &vectors); err != nil {
		return nil, err
	}

	return vectors, nil
}

// CheckVectors encrypts and decrypts each vector, returning a failure for
// every pair that does not reproduce.
func CheckVectors(vectors []Vector) ([]*Failure, error) {
	failures := []*Failure{}

	for i, vector := range vectors {
		key, err := sdes.ParseBits(vector.Key)
		if err != nil {
			return nil, fmt.Errorf("vector %d: %w", i+1, err)
		}

		block, err := sdes.ParseBits(vector.Plaintext)
		if err != nil {
			return nil, fmt.Errorf("vector %d: %w", i+1, err)
		}

		expected, err := sdes.ParseBits(vector.Ciphertext)
		if err != nil {
			return nil, fmt.Errorf("vector %d: %w", i+1, err)
		}

		cipher, err := sdes.NewCipher(key)
		if err != nil {
			return nil, fmt.Errorf("vector %d: %w", i+1, err)
		}

		ciphertext, err := cipher.EncryptBlock(block)
		if err != nil {
			return nil, fmt.Errorf("vector %d: %w", i+1, err)
		}

		decrypted, err := cipher.DecryptBlock(expected)
		if err != nil {
			return nil, fmt.Errorf("vector %d: %w", i+1, err)
		}

		if !ciphertext.Equal(expected) || !decrypted.Equal(block) {
			failures = append(failures, &Failure{
				Key:        key,
				Block:      block,
				Ciphertext: ciphertext,
				Decrypted:  decrypted,
				Reason:     ReasonVector,
			})
		}
	}

	return failures, nil
}
