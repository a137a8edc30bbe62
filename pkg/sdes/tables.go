package sdes

// Key and block lengths in bits.
const (
	KeySize   = 10
	BlockSize = 8
)

// The permutation tables, straight out of the textbook. Entries are 1-based
// positions into the source sequence. A repeated entry duplicates a source
// bit, which is how EP turns 4 bits into 8.
var (
	// P10 shuffles the master key before the halves are split
	P10 = []int{3, 5, 2, 7, 4, 10, 1, 9, 8, 6}

	// P8 compresses the rotated 10-bit halves into an 8-bit subkey
	P8 = []int{6, 3, 7, 4, 8, 5, 10, 9}

	// IP and IPInverse bracket the two Feistel rounds
	IP        = []int{2, 6, 3, 1, 4, 8, 5, 7}
	IPInverse = []int{4, 1, 3, 5, 7, 2, 8, 6}

	// EP expands a 4-bit half to 8 bits, using every source bit twice
	EP = []int{4, 1, 2, 3, 2, 3, 4, 1}

	// P4 shuffles the joined S-box outputs at the end of the round function
	P4 = []int{2, 4, 3, 1}
)

// S0 and S1 are the substitution boxes. The outer bits of a 4-bit value pick
// the row, the inner bits pick the column, and the cell comes back as 2 bits.
var (
	S0 = [4][4]int{
		{1, 0, 3, 2},
		{3, 2, 1, 0},
		{0, 2, 1, 3},
		{3, 1, 3, 2},
	}

	S1 = [4][4]int{
		{0, 1, 2, 3},
		{2, 0, 1, 3},
		{3, 0, 1, 0},
		{2, 1, 0, 3},
	}
)
