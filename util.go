package num

type RandSource interface {
	Uint64() uint64
}

// DifferenceU128 subtracts the smaller of a and b from the larger.
func DifferenceU128(a, b U128) U128 {
	if a.hi > b.hi {
		return a.Sub(b)
	} else if a.hi < b.hi {
		return b.Sub(a)
	} else if a.lo > b.lo {
		return a.Sub(b)
	} else if a.lo < b.lo {
		return b.Sub(a)
	}
	return U128{}
}

func LargerU128(a, b U128) U128 {
	if a.hi > b.hi {
		return a
	} else if a.hi < b.hi {
		return b
	} else if a.lo > b.lo {
		return a
	} else if a.lo < b.lo {
		return b
	}
	return a
}

func SmallerU128(a, b U128) U128 {
	if a.hi < b.hi {
		return a
	} else if a.hi > b.hi {
		return b
	} else if a.lo < b.lo {
		return a
	} else if a.lo > b.lo {
		return b
	}
	return a
}

// DifferenceBN subtracts the smaller of a and b from the larger, the BN
// counterpart of DifferenceU128.
func DifferenceBN(a, b BN) BN {
	if a.IsNaN() || b.IsNaN() {
		return NaN
	}
	return a.Sub(b).Abs()
}

// LargerBN returns whichever of a, b has the greater real value.
func LargerBN(a, b BN) BN {
	if a.IsNaN() || b.IsNaN() {
		return NaN
	}
	if a.GreaterOrEqualTo(b) {
		return a
	}
	return b
}

// SmallerBN returns whichever of a, b has the lesser real value.
func SmallerBN(a, b BN) BN {
	if a.IsNaN() || b.IsNaN() {
		return NaN
	}
	if a.LessOrEqualTo(b) {
		return a
	}
	return b
}

// RandBN generates a random BN from an external random source, the BN
// counterpart of RandU128. Unlike U128 (where every 128-bit pattern is a
// valid integer), BN reserves letters 8-62, so RandBN picks a random
// sign, reciprocal flag, and letter 1-7, then fills the operand fields
// with random bits -- bnPack already masks intPart/frac to their field
// widths, so any U128 bit pattern is safe to hand it as the fraction.
func RandBN(source RandSource) BN {
	bits := source.Uint64()
	letter := uint8(1 + bits%7)
	sign := bits&(1<<8) != 0
	recip := bits&(1<<9) != 0
	intPart := uint8(bits>>16) & bnIntMax
	frac := RandU128(source)
	return bnPack(sign, recip, letter, intPart, frac).Normalized()
}
