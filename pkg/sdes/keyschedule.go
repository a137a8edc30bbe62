package sdes

// KeySchedule holds the two round subkeys derived from a 10-bit master key,
// along with the intermediate values produced on the way. The intermediates
// are kept around so the derivation can be rendered step by step.
type KeySchedule struct {
	// Permuted is the master key after P10
	Permuted Bits

	// LeftOne and RightOne are the 5-bit halves after the first left
	// rotation by 1
	LeftOne  Bits
	RightOne Bits

	// LeftThree and RightThree are the same halves rotated 2 further
	// positions, a cumulative rotation of 3 from the P10 output
	LeftThree  Bits
	RightThree Bits

	// K1 and K2 are the round subkeys
	K1 Bits
	K2 Bits
}

// NewKeySchedule derives both subkeys from the master key. The second
// rotation is applied on top of the first rather than starting over from the
// P10 output; that cumulative structure is what makes this the S-DES key
// schedule.
func NewKeySchedule(master Bits) (*KeySchedule, error) {
	if err := validateKey(master); err != nil {
		return nil, err
	}

	schedule := &KeySchedule{}
	schedule.Permuted = Permute(master, P10)

	schedule.LeftOne = rotateLeft(schedule.Permuted[:5], 1)
	schedule.RightOne = rotateLeft(schedule.Permuted[5:], 1)
	schedule.K1 = Permute(concatBits(schedule.LeftOne, schedule.RightOne), P8)

	schedule.LeftThree = rotateLeft(schedule.LeftOne, 2)
	schedule.RightThree = rotateLeft(schedule.RightOne, 2)
	schedule.K2 = Permute(concatBits(schedule.LeftThree, schedule.RightThree), P8)

	return schedule, nil
}

// rotateLeft circularly shifts the sequence left by r positions, wrapping
// around the end.
func rotateLeft(bits Bits, r int) Bits {
	r = r % len(bits)
	return concatBits(bits[r:], bits[:r])
}
