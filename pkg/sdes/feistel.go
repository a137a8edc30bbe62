package sdes

// sboxLookup runs a 4-bit value through one substitution box. The outer bits
// pick the row, the inner bits pick the column, and the cell value comes back
// as 2 bits, most significant first.
func sboxLookup(half Bits, box [4][4]int) Bits {
	row := 2*half[0] + half[3]
	col := 2*half[1] + half[2]
	value := box[row][col]
	return Bits{value >> 1, value & 1}
}

// substitute splits an 8-bit value into nibbles and runs the left one through
// S0 and the right one through S1.
func substitute(mixed Bits) Bits {
	return concatBits(sboxLookup(mixed[:4], S0), sboxLookup(mixed[4:], S1))
}

// roundFunction is the Feistel F: expand the half with EP, mix in the subkey,
// substitute through the boxes, then shuffle with P4. Purely functional, no
// state between calls.
func roundFunction(half, subkey Bits) Bits {
	mixed := xorBits(Permute(half, EP), subkey)
	return Permute(substitute(mixed), P4)
}
