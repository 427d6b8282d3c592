package num

// This file mirrors consts.go's role for U128: a single place for
// the package's precomputed, read-only BN values, initialized eagerly at
// process start so they're safe to read from any goroutine without
// synchronization (spec.md §5).

var (
	// NaN is the canonical quiet-NaN encoding: letter 0x3F, operand != 2,
	// reciprocal bit set per spec.md §3's "r=1 => quiet NaN".
	NaN = bnPack(false, true, letterReserved, bnIntMax, U128{lo: maxUint64, hi: uint64(bnFracHiMask)})

	// Zero and its negative sibling. ±0 round-trip through addition per
	// spec.md §9's signed-zero rule.
	Zero        = bnPack(false, true, letterReserved, 0, U128{})
	negativeZero = bnPack(true, true, letterReserved, 0, U128{})

	PositiveInfinity = bnPack(false, false, letterReserved, 0, U128{})
	NegativeInfinity = bnPack(true, false, letterReserved, 0, U128{})

	One        = bnFromLetter1(false, hpfOne)
	NegativeOne = bnFromLetter1(true, hpfOne)
	Two        = bnPack(false, false, letter2, 0, U128{})
	Ten        = bnFromLetter3(false, hpfTen)
	Hundred    = bnFromLetter5(false, hpfTwo)

	// E, Pi, Tau pass through from the HPF substrate's own constants,
	// per spec.md §6's boundary contract.
	E   = mustBNFromHPF(hpfE)
	Pi  = mustBNFromHPF(hpfPi)
	Tau = mustBNFromHPF(hpfTau)

	Ln10    = mustBNFromHPF(hpfLn10)
	Log2_10 = mustBNFromHPF(log2_10)

	// MaxValue is letter 6 with operand one ULP below 9, i.e. just under
	// 10^10^10^7. Letter-6 values with operands in [9, 10), and every
	// letter-7 value, are larger than MaxValue.
	MaxValue = bnFromLetter6(false, hpfFromInt64(9)).decrementULP()

	// MinValue is MaxValue's negation (the most negative finite value).
	MinValue = MaxValue.Negated()

	// Epsilon is the smallest positive value letter 1 can distinguish
	// from One: One with its fraction field's last bit set. Routing this
	// through bnFromLetter1/EncodeOperand would round-trip the tiny
	// offset straight back to zero (EncodeOperand's integer-snap
	// tolerance is 2^-40, many orders of magnitude coarser than a single
	// ULP of the 85-bit fraction field), so the fields are packed
	// directly instead, the same way decrementULP/MaxValue bypass
	// EncodeOperand to hit an exact bit pattern.
	Epsilon = bnPack(false, false, letter1, 0, U128{lo: 1})
)

// bnFromLetter1 builds a BN directly on letter 1 (operand range [1,2),
// magnitude = 1 + (o-2)/8) from a magnitude already known to lie in
// [1,2). Used only to build constants without going through the general
// BNFromHPF regime search.
func bnFromLetter1(neg bool, m hpf) BN {
	o := m.Sub(hpfOne).Mul(hpfFromInt64(8)).Add(hpfTwo)
	i, f := EncodeOperand(o)
	return bnPack(neg, false, letter1, i, f)
}

func bnFromLetter3(neg bool, m hpf) BN {
	o := m.Quo(hpfTwo)
	i, f := EncodeOperand(o)
	return bnPack(neg, false, letter3, i, f)
}

func bnFromLetter4(neg bool, m hpf) BN {
	o := m.Quo(hpfTen)
	i, f := EncodeOperand(o)
	return bnPack(neg, false, letter4, i, f)
}

func bnFromLetter5(neg bool, exponent hpf) BN {
	i, f := EncodeOperand(exponent)
	return bnPack(neg, false, letter5, i, f)
}

// bnFromLetter6 builds a BN directly on letter 6 from an operand already
// known to lie in [2, 10): magnitude = 10^10^10^(o-2).
func bnFromLetter6(neg bool, o hpf) BN {
	i, f := EncodeOperand(o)
	return bnPack(neg, false, letter6, i, f)
}

func mustBNFromHPF(v hpf) BN {
	bn, err := bnFromHPF(v)
	if err != nil {
		panic(err)
	}
	return bn
}

// decrementULP nudges a positive, letter<=6, non-reserved BN's fraction
// down by one unit in the last place, used only to place MaxValue one
// ULP below letter 6's operand 9.
func (b BN) decrementULP() BN {
	f := b.frac()
	if f.IsZero() {
		i := b.intPart()
		if i == 0 {
			return b
		}
		return bnPack(b.sign(), b.recip(), b.letter(), i-1, U128{hi: uint64(bnFracHiMask), lo: maxUint64})
	}
	return bnPack(b.sign(), b.recip(), b.letter(), b.intPart(), f.Dec())
}
