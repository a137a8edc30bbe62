// Emits a yaml file of random test vectors on stdout, for use with
// `lazysdes verify --file`:
//
//   go run test/genvectors/main.go 20 > vectors.yml

package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"

	"github.com/goccy/go-yaml"
	"github.com/jesseduffield/lazysdes/pkg/sdes"
	"github.com/jesseduffield/lazysdes/pkg/verify"
)

func main() {
	count := 10
	if len(os.Args) > 1 {
		parsed, err := strconv.Atoi(os.Args[1])
		if err != nil {
			log.Fatal(err)
		}
		count = parsed
	}

	vectors := make([]verify.Vector, count)
	for i := range vectors {
		key, err := sdes.GenerateKey(nil)
		if err != nil {
			log.Fatal(err)
		}

		block := sdes.BitsFromUint(uint(rand.Intn(1<<sdes.BlockSize)), sdes.BlockSize)

		cipher, err := sdes.NewCipher(key)
		if err != nil {
			log.Fatal(err)
		}

		ciphertext, err := cipher.EncryptBlock(block)
		if err != nil {
			log.Fatal(err)
		}

		vectors[i] = verify.Vector{
			Description: fmt.Sprintf("random pair %d", i+1),
			Key:         key.String(),
			Plaintext:   block.String(),
			Ciphertext:  ciphertext.String(),
		}
	}

	marshalled, err := yaml.Marshal(vectors)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Print(string(marshalled))
}
