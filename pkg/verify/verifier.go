// Package verify sweeps the entire cipher space. With a 10 bit key and an
// 8 bit block there are only 1024*256 pairs, so instead of sampling we can
// prove the round trip property and per-key bijectivity outright.
package verify

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/boz/go-throttle"
	"github.com/jesseduffield/lazysdes/pkg/sdes"
	"github.com/sasha-s/go-deadlock"
	"github.com/sirupsen/logrus"
)

// Reasons attached to failures.
const (
	// ReasonRoundTrip means decrypting the ciphertext did not give the
	// plaintext back
	ReasonRoundTrip = "round-trip"
	// ReasonCollision means two blocks encrypted to the same ciphertext under
	// one key
	ReasonCollision = "collision"
	// ReasonVector means a published test vector did not reproduce
	ReasonVector = "vector"
)

// Failure records a key/block pair that broke one of the checked properties.
type Failure struct {
	Key        sdes.Bits
	Block      sdes.Bits
	Ciphertext sdes.Bits
	Decrypted  sdes.Bits
	Reason     string
}

// GetDisplayStrings returns the display strings of a failure
func (f *Failure) GetDisplayStrings() []string {
	return []string{f.Key.String(), f.Block.String(), f.Ciphertext.String(), f.Reason}
}

// Progress reports how far through the keyspace a sweep is.
type Progress struct {
	KeysDone  int
	KeysTotal int
}

// Options tunes a sweep.
type Options struct {
	// Workers is the number of goroutines sharing the keyspace. Zero means
	// one per CPU
	Workers int

	// ProgressInterval rate-limits OnProgress. Zero disables progress
	// reporting altogether
	ProgressInterval time.Duration

	// OnProgress is called at most once per ProgressInterval, plus once when
	// the sweep finishes
	OnProgress func(Progress)
}

// Result is the outcome of a full sweep.
type Result struct {
	KeysChecked  int
	PairsChecked int
	Failures     []*Failure
	Elapsed      time.Duration
}

// Ok tells us whether every pair survived both checks
func (r *Result) Ok() bool {
	return len(r.Failures) == 0
}

// Verifier runs sweeps over the keyspace.
type Verifier struct {
	Log *logrus.Entry

	mutex    deadlock.Mutex
	keysDone int
	failures []*Failure
}

// NewVerifier returns a new verifier
func NewVerifier(log *logrus.Entry) *Verifier {
	return &Verifier{Log: log}
}

// Run checks every key against every block: each pair must decrypt back to
// its plaintext, and each key's encryption must visit every block exactly
// once
func (v *Verifier) Run(ctx context.Context, options Options) (*Result, error) {
	workers := options.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	keyCount := 1 << sdes.KeySize
	blockCount := 1 << sdes.BlockSize

	v.mutex.Lock()
	v.keysDone = 0
	v.failures = nil
	v.mutex.Unlock()

	// progress callbacks run on the throttle's goroutine, so they hold the
	// mutex for the whole call: once progressDone is set no callback can fire
	// after Run returns
	progressDone := false
	var progressDriver throttle.ThrottleDriver
	if options.OnProgress != nil && options.ProgressInterval > 0 {
		progressDriver = throttle.ThrottleFunc(options.ProgressInterval, true, func() {
			v.mutex.Lock()
			defer v.mutex.Unlock()

			if progressDone {
				return
			}

			options.OnProgress(Progress{KeysDone: v.keysDone, KeysTotal: keyCount})
		})
		defer progressDriver.Stop()
	}

	before := time.Now()

	keyValues := make(chan uint)
	go func() {
		defer close(keyValues)
		for value := uint(0); value < uint(keyCount); value++ {
			select {
			case keyValues <- value:
			case <-ctx.Done():
				return
			}
		}
	}()

	wg := sync.WaitGroup{}
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()

			for value := range keyValues {
				v.checkKey(value, blockCount)

				v.mutex.Lock()
				v.keysDone++
				v.mutex.Unlock()

				if progressDriver != nil {
					progressDriver.Trigger()
				}
			}
		}()
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		v.mutex.Lock()
		progressDone = true
		v.mutex.Unlock()

		return nil, err
	}

	v.mutex.Lock()
	result := &Result{
		KeysChecked:  v.keysDone,
		PairsChecked: v.keysDone * blockCount,
		Failures:     v.failures,
		Elapsed:      time.Since(before),
	}
	v.mutex.Unlock()

	if progressDriver != nil {
		progressDriver.Stop()

		v.mutex.Lock()
		progressDone = true
		options.OnProgress(Progress{KeysDone: result.KeysChecked, KeysTotal: keyCount})
		v.mutex.Unlock()
	}

	v.Log.Info(fmt.Sprintf("verified %d keys in %s", result.KeysChecked, result.Elapsed))

	return result, nil
}

// checkKey checks every block under one key
func (v *Verifier) checkKey(value uint, blockCount int) {
	key := sdes.BitsFromUint(value, sdes.KeySize)

	cipher, err := sdes.NewCipher(key)
	if err != nil {
		v.Log.Error(err)
		return
	}

	seen := make([]bool, blockCount)

	for blockValue := 0; blockValue < blockCount; blockValue++ {
		block := sdes.BitsFromUint(uint(blockValue), sdes.BlockSize)

		ciphertext, err := cipher.EncryptBlock(block)
		if err != nil {
			v.Log.Error(err)
			continue
		}

		decrypted, err := cipher.DecryptBlock(ciphertext)
		if err != nil {
			v.Log.Error(err)
			continue
		}

		if !decrypted.Equal(block) {
			v.addFailure(&Failure{
				Key:        key,
				Block:      block,
				Ciphertext: ciphertext,
				Decrypted:  decrypted,
				Reason:     ReasonRoundTrip,
			})
		}

		ciphertextValue := ciphertext.Uint()
		if seen[ciphertextValue] {
			v.addFailure(&Failure{
				Key:        key,
				Block:      block,
				Ciphertext: ciphertext,
				Decrypted:  decrypted,
				Reason:     ReasonCollision,
			})
		}
		seen[ciphertextValue] = true
	}
}

func (v *Verifier) addFailure(failure *Failure) {
	v.mutex.Lock()
	defer v.mutex.Unlock()

	v.failures = append(v.failures, failure)
}
