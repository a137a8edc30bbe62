package sdes

import "strings"

// Bits is an ordered sequence of single bits. Position is meaningful: bit 1
// is the first element, matching the 1-based convention of the textbook
// permutation tables. Well-formed sequences only ever hold 0s and 1s.
type Bits []int

// ParseBits reads a compact bit string like "1010000010" into a Bits
// sequence. Anything other than '0' and '1' is rejected rather than coerced.
func ParseBits(s string) (Bits, error) {
	bits := make(Bits, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			bits[i] = 0
		case '1':
			bits[i] = 1
		default:
			return nil, BitValueError(i + 1)
		}
	}
	return bits, nil
}

// String renders the sequence in the same compact form ParseBits accepts
func (b Bits) String() string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, bit := range b {
		sb.WriteByte(byte('0' + bit))
	}
	return sb.String()
}

// BitsFromUint spreads the low width bits of value into a sequence, most
// significant bit first.
func BitsFromUint(value uint, width int) Bits {
	bits := make(Bits, width)
	for i := 0; i < width; i++ {
		bits[i] = int(value>>(width-1-i)) & 1
	}
	return bits
}

// Uint packs the sequence into an unsigned integer, first bit most
// significant.
func (b Bits) Uint() uint {
	var value uint
	for _, bit := range b {
		value = value<<1 | uint(bit)
	}
	return value
}

// Clone returns an independent copy of the sequence
func (b Bits) Clone() Bits {
	clone := make(Bits, len(b))
	copy(clone, b)
	return clone
}

// Equal reports whether two sequences hold the same bits in the same order
func (b Bits) Equal(other Bits) bool {
	if len(b) != len(other) {
		return false
	}
	for i := range b {
		if b[i] != other[i] {
			return false
		}
	}
	return true
}

func xorBits(a, b Bits) Bits {
	result := make(Bits, len(a))
	for i := range a {
		result[i] = a[i] ^ b[i]
	}
	return result
}

func concatBits(a, b Bits) Bits {
	result := make(Bits, 0, len(a)+len(b))
	result = append(result, a...)
	return append(result, b...)
}
