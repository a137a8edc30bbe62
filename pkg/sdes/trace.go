package sdes

// RoundTrace records every intermediate value of one Feistel round.
type RoundTrace struct {
	Subkey     Bits
	InputLeft  Bits
	InputRight Bits

	// Expanded is the right half after EP, Mixed is after the subkey XOR,
	// Substituted is after the boxes, RoundOutput is after P4
	Expanded    Bits
	Mixed       Bits
	Substituted Bits
	RoundOutput Bits

	// OutputLeft and OutputRight are the halves leaving the round, after
	// the XOR and, in the first round, the swap
	OutputLeft  Bits
	OutputRight Bits
	Swapped     bool
}

// Trace records a full passage of one block through the cipher, from the
// initial permutation to the final one. Every field holds its own copy, so a
// trace stays valid however long you keep it.
type Trace struct {
	Input      Bits
	AfterIP    Bits
	Rounds     [2]RoundTrace
	Preoutput  Bits
	Output     Bits
	Decrypting bool
}

// EncryptBlockTrace encrypts one block and reports every intermediate value
// on the way. The returned block is identical to what EncryptBlock produces.
func (c *Cipher) EncryptBlockTrace(plaintext Bits) (Bits, *Trace, error) {
	if err := validateBlock(plaintext); err != nil {
		return nil, nil, err
	}
	trace := c.cryptTrace(plaintext, c.k1, c.k2)
	return trace.Output, trace, nil
}

// DecryptBlockTrace decrypts one block and reports every intermediate value.
func (c *Cipher) DecryptBlockTrace(ciphertext Bits) (Bits, *Trace, error) {
	if err := validateBlock(ciphertext); err != nil {
		return nil, nil, err
	}
	trace := c.cryptTrace(ciphertext, c.k2, c.k1)
	trace.Decrypting = true
	return trace.Output, trace, nil
}

// cryptTrace mirrors crypt step for step, recording as it goes. Keep the two
// in sync: a trace must describe exactly what the plain path computes.
func (c *Cipher) cryptTrace(block, first, second Bits) *Trace {
	trace := &Trace{Input: block.Clone()}
	trace.AfterIP = Permute(block, IP)

	left, right := trace.AfterIP[:4], trace.AfterIP[4:]

	subkeys := [2]Bits{first, second}
	for i := 0; i < 2; i++ {
		round := RoundTrace{
			Subkey:     subkeys[i].Clone(),
			InputLeft:  left.Clone(),
			InputRight: right.Clone(),
		}

		round.Expanded = Permute(right, EP)
		round.Mixed = xorBits(round.Expanded, subkeys[i])
		round.Substituted = substitute(round.Mixed)
		round.RoundOutput = Permute(round.Substituted, P4)

		xored := xorBits(left, round.RoundOutput)
		if i == 0 {
			left, right = right, xored
			round.Swapped = true
		} else {
			left = xored
		}

		round.OutputLeft = left.Clone()
		round.OutputRight = right.Clone()
		trace.Rounds[i] = round
	}

	trace.Preoutput = concatBits(left, right)
	trace.Output = Permute(trace.Preoutput, IPInverse)
	return trace
}
