package num

// This file implements BN's predicates, ordering, equality, and
// normalization (spec.md §4.10), the counterpart to u128.go's
// GreaterThan/LessThan/Equal family -- except BN's comparisons work
// directly off the packed sign/reciprocal/letter/operand fields rather
// than decoding through HPF, the same "stay in the native
// representation" discipline U128.Cmp applies by comparing hi/lo words
// directly instead of routing through big.Int.

// IsZero reports whether b is +0 or -0.
func (b BN) IsZero() bool { return b.isZeroEncoding() }

// IsInfinity reports whether b is +Inf or -Inf.
func (b BN) IsInfinity() bool { return b.isInfinityEncoding() }

// IsPositiveInfinity reports whether b is exactly +Inf.
func (b BN) IsPositiveInfinity() bool { return b.isInfinityEncoding() && !b.sign() }

// IsNegativeInfinity reports whether b is exactly -Inf.
func (b BN) IsNegativeInfinity() bool { return b.isInfinityEncoding() && b.sign() }

// IsNegative reports whether b's sign bit is set and b is not NaN.
func (b BN) IsNegative() bool { return !b.IsNaN() && b.sign() && !b.isZeroEncoding() }

// IsPositive reports whether b's sign bit is clear and b is not NaN or zero.
func (b BN) IsPositive() bool { return !b.IsNaN() && !b.sign() && !b.isZeroEncoding() }

// IsFinite reports whether b is neither NaN nor infinite.
func (b BN) IsFinite() bool { return !b.IsNaN() && !b.isInfinityEncoding() }

// IsInteger reports whether b represents a whole number. NaN and
// infinities are not integers.
func (b BN) IsInteger() bool {
	if !b.IsFinite() {
		return false
	}
	if b.isZeroEncoding() {
		return true
	}
	h := b.toHPF()
	return h.Eq(h.Floor())
}

// IsEvenInteger reports whether b is an integer and divisible by two.
func (b BN) IsEvenInteger() bool {
	if !b.IsInteger() {
		return false
	}
	v, ok := b.AsInt64()
	if !ok {
		// Beyond int64's range parity is read off the decoded HPF value;
		// magnitudes too large for HPF to decode are reported as even.
		h := b.toHPF()
		if h.IsInfinity() {
			return true
		}
		half := h.Quo(hpfTwo)
		return half.Eq(half.Floor())
	}
	return v%2 == 0
}

// IsOddInteger reports whether b is an integer not divisible by two.
func (b BN) IsOddInteger() bool {
	return b.IsInteger() && !b.IsEvenInteger()
}

// IsNormal reports whether b is finite and nonzero, mirroring IEEE-754's
// IsNormal predicate as closely as BN's regime model allows.
func (b BN) IsNormal() bool { return b.IsFinite() && !b.isZeroEncoding() }

// IsSubnormal is always false: spec.md §3's encoding has no subnormal
// regime distinct from its letter-1 reciprocal tail.
func (b BN) IsSubnormal() bool { return false }

// IsRealNumber reports whether b is a real number, i.e. not NaN.
func (b BN) IsRealNumber() bool { return !b.IsNaN() }

// IsComplexNumber is always false: BN has no imaginary component.
func (b BN) IsComplexNumber() bool { return false }

// IsImaginaryNumber is always false, for the same reason.
func (b BN) IsImaginaryNumber() bool { return false }

// IsCanonical reports whether b is already in Normalized form.
func (b BN) IsCanonical() bool { return b == b.Normalized() }

// Normalized resolves the handful of non-canonical encodings spec.md §9
// calls out: reciprocal-of-one and reciprocal-of-negative-one collapse to
// the plain One/NegativeOne encoding. Every other letter/operand
// combination is already injective (EncodeOperand never produces two bit
// patterns for the same magnitude within a single letter, and the
// per-letter magnitude ranges in spec.md §3 are disjoint and half-open),
// so there is nothing else to collapse.
func (b BN) Normalized() BN {
	if b.IsNaN() || b.isZeroEncoding() || b.isInfinityEncoding() {
		return b
	}
	if b.letter() == letter1 && b.recip() && b.intPart() == 0 && b.frac().IsZero() {
		return bnPack(b.sign(), false, letter1, 0, U128{})
	}
	return b
}

// magRank compares the magnitudes (ignoring sign) of two non-special,
// normalized BNs by walking reciprocal, letter, I, and F directly. A
// non-reciprocal BN's magnitude is always >= 1 and strictly increases
// with (letter, I, F); a reciprocal BN's magnitude is always <= 1 and
// strictly *decreases* as (letter, I, F) increases, since it inverts the
// same formula -- so the reciprocal branch compares operand fields in
// reverse.
func magRank(a, b BN) int {
	if a.recip() != b.recip() {
		if a.recip() {
			return -1
		}
		return 1
	}

	c := 0
	switch {
	case a.letter() < b.letter():
		c = -1
	case a.letter() > b.letter():
		c = 1
	case a.intPart() < b.intPart():
		c = -1
	case a.intPart() > b.intPart():
		c = 1
	default:
		c = a.frac().Cmp(b.frac())
	}

	if a.recip() {
		return -c
	}
	return c
}

// CompareAbs compares |a| and |b|, ignoring sign and NaN semantics
// (callers that need NaN-safety should check IsNaN first).
func CompareAbs(a, b BN) int {
	a, b = a.Normalized(), b.Normalized()
	az, bz := a.isZeroEncoding(), b.isZeroEncoding()
	if az && bz {
		return 0
	}
	if az {
		return -1
	}
	if bz {
		return 1
	}
	ai, bi := a.isInfinityEncoding(), b.isInfinityEncoding()
	if ai && bi {
		return 0
	}
	if ai {
		return 1
	}
	if bi {
		return -1
	}
	return magRank(a, b)
}

// Cmp orders a and b, returning -1, 0, or 1. NaN is incomparable: Cmp
// returns 0 for any comparison involving NaN, but callers should prefer
// the dedicated predicate methods (LessThan, Equals, ...) which all
// report false rather than relying on Cmp's NaN fallback directly.
func (a BN) Cmp(b BN) int {
	if a.IsNaN() || b.IsNaN() {
		return 0
	}
	a, b = a.Normalized(), b.Normalized()

	az, bz := a.isZeroEncoding(), b.isZeroEncoding()
	if az && bz {
		return 0
	}
	if az {
		if b.sign() {
			return 1
		}
		return -1
	}
	if bz {
		if a.sign() {
			return -1
		}
		return 1
	}

	if a.sign() != b.sign() {
		if a.sign() {
			return -1
		}
		return 1
	}

	var m int
	switch {
	case a.isInfinityEncoding() && b.isInfinityEncoding():
		m = 0
	case a.isInfinityEncoding():
		m = 1
	case b.isInfinityEncoding():
		m = -1
	default:
		m = magRank(a, b)
	}

	if a.sign() {
		return -m
	}
	return m
}

// Equals reports whether a and b represent the same real number. NaN
// never equals anything, including itself; +0 and -0 always equal each
// other.
func (a BN) Equals(b BN) bool {
	if a.IsNaN() || b.IsNaN() {
		return false
	}
	return a.Cmp(b) == 0
}

func (a BN) LessThan(b BN) bool {
	if a.IsNaN() || b.IsNaN() {
		return false
	}
	return a.Cmp(b) < 0
}

func (a BN) LessOrEqualTo(b BN) bool {
	if a.IsNaN() || b.IsNaN() {
		return false
	}
	return a.Cmp(b) <= 0
}

func (a BN) GreaterThan(b BN) bool {
	if a.IsNaN() || b.IsNaN() {
		return false
	}
	return a.Cmp(b) > 0
}

func (a BN) GreaterOrEqualTo(b BN) bool {
	if a.IsNaN() || b.IsNaN() {
		return false
	}
	return a.Cmp(b) >= 0
}

// MinMagnitudeBN returns whichever of a, b has the smaller absolute
// value, mirroring the generic-numeric-tower MinMagnitudeNumber contract
// spec.md §6 names. NaN propagates, matching Min/Max's usual IEEE-leaning
// convention of "any NaN poisons the result".
func MinMagnitudeBN(a, b BN) BN {
	if a.IsNaN() || b.IsNaN() {
		return NaN
	}
	if CompareAbs(a, b) <= 0 {
		return a
	}
	return b
}

// Hash combines b's three lanes into a single 32-bit value suitable for
// use as a map/set key alongside Equals, per spec.md §4.10's "hashes must
// be equal for all values Equals considers equal" requirement. b is
// normalized first so the reciprocal-of-one collapse and the +0/-0 pair
// hash identically.
func (b BN) Hash() uint32 {
	n := b.Normalized()
	if n.isZeroEncoding() {
		n = Zero
	}
	fLo := uint32(n.lo) ^ uint32(n.lo>>32)
	return n.hi ^ fLo
}

// MaxMagnitudeBN is MinMagnitudeBN's counterpart for the larger magnitude.
func MaxMagnitudeBN(a, b BN) BN {
	if a.IsNaN() || b.IsNaN() {
		return NaN
	}
	if CompareAbs(a, b) >= 0 {
		return a
	}
	return b
}
