package sdes

import "strconv"

// KeySizeError reports a master key whose length is not KeySize.
type KeySizeError int

func (k KeySizeError) Error() string {
	return "sdes: invalid key size " + strconv.Itoa(int(k))
}

// BlockSizeError reports a block whose length is not BlockSize.
type BlockSizeError int

func (b BlockSizeError) Error() string {
	return "sdes: invalid block size " + strconv.Itoa(int(b))
}

// BitValueError reports a sequence element outside {0, 1}. The value is the
// 1-based position of the offending element.
type BitValueError int

func (b BitValueError) Error() string {
	return "sdes: bit at position " + strconv.Itoa(int(b)) + " is not 0 or 1"
}

func validateBits(bits Bits) error {
	for i, bit := range bits {
		if bit != 0 && bit != 1 {
			return BitValueError(i + 1)
		}
	}
	return nil
}

func validateKey(key Bits) error {
	if len(key) != KeySize {
		return KeySizeError(len(key))
	}
	return validateBits(key)
}

func validateBlock(block Bits) error {
	if len(block) != BlockSize {
		return BlockSizeError(len(block))
	}
	return validateBits(block)
}
