package num

import "math/big"

// BN is the extended-range numeric type spec.md §3 describes: a 96-bit
// immutable word, value-typed like U128, but carrying a real
// number's sign, an optional reciprocal flag, a 6-bit regime selector
// ("letter"), and an operand in [2, 10) encoded as a 3-bit integer part
// plus an 85-bit Q0.85 fraction.
//
// BN follows U128's "two-word value struct" shape (u128.go), just with a
// 32-bit high word instead of 64: the 96 bits split as hi (32 bits: n, r,
// L, I, and the top 21 bits of F) and lo (64 bits: the bottom 64 bits of
// F).
type BN struct {
	hi uint32
	lo uint64
}

const (
	bnSignBit   = uint32(1) << 31
	bnRecipBit  = uint32(1) << 30
	bnLetterMax = uint8(0x3F) // 6 bits
	bnIntMax    = uint8(0x7)  // 3 bits
	bnFracHiBits = 21
	bnFracHiMask = uint32(1)<<bnFracHiBits - 1

	// letterReserved (0x3F / 63) is the sentinel regime spec.md §3 carves
	// out for the special values: +/-Inf, +/-0, and NaN.
	letterReserved uint8 = 0x3F

	letter1 uint8 = 1
	letter2 uint8 = 2
	letter3 uint8 = 3
	letter4 uint8 = 4
	letter5 uint8 = 5
	letter6 uint8 = 6
	letter7 uint8 = 7
)

// fracBits is the width of the Q0.85 fraction field F.
const fracBits = 85

// bnPack assembles the six logical fields into a BN word. F must be < 2^85;
// callers are expected to have already range-checked it via EncodeOperand.
func bnPack(n, r bool, letter, intPart uint8, frac U128) BN {
	var hi uint32
	if n {
		hi |= bnSignBit
	}
	if r {
		hi |= bnRecipBit
	}
	hi |= uint32(letter&bnLetterMax) << 24
	hi |= uint32(intPart&bnIntMax) << 21

	fHi, fLo := frac.Raw()
	hi |= uint32(fHi) & bnFracHiMask
	return BN{hi: hi, lo: fLo}
}

func (b BN) sign() bool        { return b.hi&bnSignBit != 0 }
func (b BN) recip() bool       { return b.hi&bnRecipBit != 0 }
func (b BN) letter() uint8     { return uint8((b.hi >> 24) & uint32(bnLetterMax)) }
func (b BN) intPart() uint8    { return uint8((b.hi >> 21) & uint32(bnIntMax)) }
func (b BN) frac() U128 {
	return U128{hi: uint64(b.hi & bnFracHiMask), lo: b.lo}
}

// operand decodes (I, F) to the HPF value o = I + 2 + F * 2^-85, which
// spec.md §3 guarantees lies in [2, 10).
func (b BN) operand() hpf {
	i := hpfFromInt64(int64(b.intPart()) + 2)
	f := b.frac()
	fracFloat := hpfFromBigFloat(new(big.Float).SetPrec(hpfPrec).SetInt(f.AsBigInt()))
	fracFloat = fracFloat.ScaleB(-fracBits)
	return i.Add(fracFloat)
}

// EncodeOperand implements spec.md §4.1: given x (expected in [2, 10)),
// snap it to the nearest integer if within 2^-40 of one, then split into
// the 3-bit floored integer part and an 85-bit Q0.85 fraction.
func EncodeOperand(x hpf) (intPart uint8, frac U128) {
	rounded := x.Round()
	if x.Sub(rounded).Abs().Lt(integerSnapTolerance) {
		x = rounded
	}

	floor := x.Floor()
	fraction := x.Sub(floor)
	if fraction.Sign() < 0 {
		fraction = hpfZero
	}

	floorInt := int64(floor.Float64())
	i := floorInt - 2
	if i < 0 {
		i = 0
	} else if i > int64(bnIntMax) {
		i = int64(bnIntMax)
	}

	scale := SafeExp2(hpfFromInt64(fracBits))
	scaled := fraction.Mul(scale).Floor()

	maxScaled := new(big.Float).SetPrec(hpfPrec).SetInt(new(big.Int).Lsh(big1, fracBits))
	if scaled.f.Cmp(maxScaled) >= 0 {
		scaled = hpfZero
		i++
		if i > int64(bnIntMax) {
			i = int64(bnIntMax)
		}
	}

	scaledInt, _ := scaled.f.Int(nil)
	if scaledInt == nil {
		scaledInt = big.NewInt(0)
	}
	fracWord, _ := U128FromBigInt(scaledInt)
	return uint8(i), fracWord
}

// integerSnapTolerance is the 2^-40 bound spec.md §4.1 and §9 specify:
// centralizing it here is the "implementers should centralize this
// constant" guidance from §9.
var integerSnapTolerance = hpfOne.ScaleB(-40)

// isReservedOperand reports whether x's operand is exactly 2 (I=0, F=0),
// the only operand value letter 0x3F assigns a non-NaN meaning to.
func (x BN) isReservedOperand() bool {
	return x.intPart() == 0 && x.frac().IsZero()
}

// isInfinityEncoding reports the +/-Inf encoding: L=0x3F, o=2, r=0.
func (x BN) isInfinityEncoding() bool {
	return x.letter() == letterReserved && x.isReservedOperand() && !x.recip()
}

// isZeroEncoding reports the +/-0 encoding: L=0x3F, o=2, r=1.
func (x BN) isZeroEncoding() bool {
	return x.letter() == letterReserved && x.isReservedOperand() && x.recip()
}

// IsNaN reports whether x is the NaN encoding: L=0x3F and o != 2.
func (x BN) IsNaN() bool {
	return x.letter() == letterReserved && !x.isReservedOperand()
}

// IsQNaN reports whether x is specifically the quiet-NaN encoding (r=1)
// spec.md §3 describes, as opposed to... there being only one NaN
// encoding path in this design, IsQNaN and IsNaN agree whenever r=1; kept
// as a distinct predicate because it's part of the public contract (§6).
func (x BN) IsQNaN() bool { return x.IsNaN() && x.recip() }
