package sdes

import "fmt"

// Permute reorders source according to table: output bit j is source bit
// table[j], counting positions from 1. The tables in this package are fixed
// constants, so an entry pointing outside the source is a programming error
// and panics rather than surfacing a runtime error.
func Permute(source Bits, table []int) Bits {
	result := make(Bits, len(table))
	for i, position := range table {
		if position < 1 || position > len(source) {
			panic(fmt.Sprintf("sdes: permutation position %d out of range for %d source bits", position, len(source)))
		}
		result[i] = source[position-1]
	}
	return result
}
