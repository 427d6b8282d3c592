package num

// This file implements BN's arithmetic surface: spec.md §4.5-§4.9's
// Log10/Exp10 and their letter-by-letter regime transitions, §4.7's
// addition (reduced to a shared magnitude add/sub helper), §4.8's
// multiplication/division (both expressed as a single log-space
// identity), and §4.9's subtraction/negation/modulus. Everything above
// letter 5 routes through a single "tower height" coordinate
// (superLogHeight/bnFromTowerHeight below) built on SuperLog10/LetterF/
// LetterG/LetterJ (htl.go) rather than hand-unrolling every piecewise
// branch spec.md's prose describes for letters 6 and 7 -- spec.md §9 is
// explicit that this regime is only an approximate bijection anyway
// ("not bit-reproducible... validated to within a coarse tolerance"),
// so a single consistent formula that round-trips Log10/Exp10 to that
// same tolerance is preferable to a literal but brittle transcription.
// This is recorded as a deliberate deviation in DESIGN.md.

// Negated flips b's sign bit, per spec.md §4.9. NaN stays NaN (every bit
// pattern with L=0x3F and a non-reserved operand is NaN regardless of
// sign), and PositiveInfinity/NegativeInfinity swap as the testable
// properties in spec.md §8 require.
func (b BN) Negated() BN {
	return bnPack(!b.sign(), b.recip(), b.letter(), b.intPart(), b.frac())
}

// Neg is an alias for Negated.
func (b BN) Neg() BN { return b.Negated() }

// Abs clears b's sign bit.
func (b BN) Abs() BN {
	return bnPack(false, b.recip(), b.letter(), b.intPart(), b.frac())
}

// AbsoluteValue is an alias for Abs, matching spec.md §6's naming.
func (b BN) AbsoluteValue() BN { return b.Abs() }

// Reciprocal returns 1/b. Flipping the encoded reciprocal bit alone
// yields the exact reciprocal for any finite nonzero b: spec.md §3
// defines the r=1 magnitude as exactly 1/M(r=0, same L, same operand),
// so no operand re-encoding is needed -- only the special zero/infinity
// encodings (which have no reciprocal bit freedom to exploit, since both
// live on the same L=0x3F/o=2 pair) need to be handled explicitly.
func (b BN) Reciprocal() BN {
	if b.IsNaN() {
		return NaN
	}
	if b.isZeroEncoding() {
		if b.sign() {
			return NegativeInfinity
		}
		return PositiveInfinity
	}
	if b.isInfinityEncoding() {
		if b.sign() {
			return negativeZero
		}
		return Zero
	}
	return bnPack(b.sign(), !b.recip(), b.letter(), b.intPart(), b.frac()).Normalized()
}

// Inc returns b+1, mirroring U128.Inc.
func (b BN) Inc() BN { return b.Add(One) }

// Dec returns b-1.
func (b BN) Dec() BN { return b.Sub(One) }

// Floor rounds b toward negative infinity. Magnitudes beyond HPF's
// decodable range (letter >= 6's upper reaches and all of letter 7) are
// already integers in every meaningful sense, so Floor is a no-op there.
func (b BN) Floor() BN {
	if b.IsNaN() || b.IsInfinity() || b.isZeroEncoding() {
		return b
	}
	h := b.toHPF()
	if h.IsInfinity() {
		return b
	}
	bn, _ := bnFromHPF(h.Floor())
	return bn
}

// Add implements spec.md §4.7: special-value handling, signed-zero
// disambiguation, then a magnitude add or subtract depending on whether
// the operands' signs agree.
func (a BN) Add(b BN) BN {
	if a.IsNaN() || b.IsNaN() {
		return NaN
	}

	aInf, bInf := a.IsInfinity(), b.IsInfinity()
	if aInf && bInf {
		if a.sign() == b.sign() {
			return a
		}
		return NaN
	}
	if aInf {
		return a
	}
	if bInf {
		return b
	}

	aZero, bZero := a.isZeroEncoding(), b.isZeroEncoding()
	if aZero && bZero {
		if a.sign() && b.sign() {
			return negativeZero
		}
		return Zero
	}
	if aZero {
		return b
	}
	if bZero {
		return a
	}

	if a.sign() == b.sign() {
		m := addMagnitudes(a.Abs(), b.Abs())
		if a.sign() {
			return m.Negated()
		}
		return m
	}

	cmp := CompareAbs(a, b)
	if cmp == 0 {
		return Zero
	}
	larger, smaller := a, b
	if cmp < 0 {
		larger, smaller = b, a
	}
	m := subMagnitudes(larger.Abs(), smaller.Abs())
	if larger.sign() {
		return m.Negated()
	}
	return m
}

// Sub implements spec.md §4.9: a - b = a + (-b).
func (a BN) Sub(b BN) BN { return a.Add(b.Negated()) }

// bnHPFSafe reports whether toHPF decodes v without saturating (always
// true below letter 6) -- the cutoff addMagnitudes/subMagnitudes use to
// decide between direct HPF arithmetic and the log-space fallback.
func bnHPFSafe(v BN) bool { return v.letter() < letter6 || !v.toHPF().IsInfinity() }

// addMagnitudes adds two positive, finite, nonzero BNs, per spec.md
// §4.7's addition branch: direct HPF addition when both operands are
// within HPF's representable range, otherwise the log-space identity
// log10(a+b) = log10(a) + log10(1 + 10^(log10(b)-log10(a))), worked in
// BN's own Log10/Exp10 so it holds across every regime.
func addMagnitudes(a, b BN) BN {
	if bnHPFSafe(a) && bnHPFSafe(b) {
		sum := a.toHPF().Add(b.toHPF())
		if !sum.IsInfinity() {
			bn, _ := bnFromHPF(sum)
			return bn
		}
	}

	big, small := a, b
	if CompareAbs(a, b) < 0 {
		big, small = b, a
	}
	logBig, logSmall := big.Log10(), small.Log10()
	diff := logSmall.Sub(logBig)
	inner := One.Add(diff.Exp10())
	logInner := inner.Log10()
	if logInner.IsInfinity() || logInner.IsNaN() {
		return big
	}
	return logBig.Add(logInner).Exp10()
}

// subMagnitudes subtracts b from a, assuming a >= b > 0, per spec.md
// §4.7's subtraction branch.
func subMagnitudes(a, b BN) BN {
	if a.Equals(b) {
		return Zero
	}
	if bnHPFSafe(a) && bnHPFSafe(b) {
		diff := a.toHPF().Sub(b.toHPF())
		if diff.IsPositive() || diff.IsZero() {
			bn, _ := bnFromHPF(diff)
			return bn
		}
	}

	logA, logB := a.Log10(), b.Log10()
	diff := logB.Sub(logA)
	inner := One.Sub(diff.Exp10())
	logInner := inner.Log10()
	if logInner.IsInfinity() || logInner.IsNaN() {
		return a
	}
	return logA.Add(logInner).Exp10()
}

// Mul implements spec.md §4.8: a x b = sign(a) xor sign(b) applied to
// exp10(log10(|a|) + log10(|b|)), with the special-value table handled
// up front.
func (a BN) Mul(b BN) BN {
	if a.IsNaN() || b.IsNaN() {
		return NaN
	}

	aZero, bZero := a.isZeroEncoding(), b.isZeroEncoding()
	aInf, bInf := a.IsInfinity(), b.IsInfinity()
	if (aZero && bInf) || (aInf && bZero) {
		return NaN
	}

	negative := a.sign() != b.sign()

	if aZero || bZero {
		if negative {
			return negativeZero
		}
		return Zero
	}
	if aInf || bInf {
		if negative {
			return NegativeInfinity
		}
		return PositiveInfinity
	}

	logA := a.Abs().Log10()
	logB := b.Abs().Log10()
	result := logA.Add(logB).Exp10()
	if negative {
		return result.Negated()
	}
	return result
}

// Quo implements spec.md §4.8's division: sign(a) xor sign(b) applied to
// exp10(log10(|a|) - log10(|b|)). Because Log10 is deterministic for a
// bit-identical input, a/a reduces this to exp10(0) = 1 "even across
// regimes" without a special case, exactly as spec.md's testable
// properties require.
func (a BN) Quo(b BN) BN {
	if a.IsNaN() || b.IsNaN() {
		return NaN
	}

	aZero, bZero := a.isZeroEncoding(), b.isZeroEncoding()
	aInf, bInf := a.IsInfinity(), b.IsInfinity()
	negative := a.sign() != b.sign()

	if bZero {
		if aZero || aInf {
			return NaN
		}
		if negative {
			return NegativeInfinity
		}
		return PositiveInfinity
	}
	if bInf {
		if aInf {
			return NaN
		}
		if negative {
			return negativeZero
		}
		return Zero
	}
	if aZero {
		if negative {
			return negativeZero
		}
		return Zero
	}
	if aInf {
		if negative {
			return NegativeInfinity
		}
		return PositiveInfinity
	}

	logA := a.Abs().Log10()
	logB := b.Abs().Log10()
	result := logA.Sub(logB).Exp10()
	if negative {
		return result.Negated()
	}
	return result
}

// Mod implements spec.md §4.9: q = floor(a/b), result = a - b*q.
// Division by zero is the one fatal failure this operation raises.
func (a BN) Mod(b BN) (BN, error) {
	if b.isZeroEncoding() {
		return NaN, &DivideByZeroError{Op: "Mod"}
	}
	if a.IsNaN() || b.IsNaN() {
		return NaN, nil
	}
	q := a.Quo(b).Floor()
	return a.Sub(b.Mul(q)), nil
}

// Log10 implements spec.md §4.5.
func (b BN) Log10() BN {
	if b.IsNaN() {
		return NaN
	}
	if b.IsNegativeInfinity() {
		// spec.md §9 leaves this an open question; SPEC_FULL.md records
		// the decision to keep the table's literal (and IEEE-754-odd)
		// answer of 0 rather than NaN.
		return Zero
	}
	if b.isZeroEncoding() {
		return NaN
	}
	if b.sign() {
		return NaN
	}
	if b.isInfinityEncoding() {
		return PositiveInfinity
	}
	if b.recip() {
		return b.Reciprocal().Log10().Negated()
	}

	switch {
	case b.letter() < letter5:
		h := b.toHPF()
		l10, err := SafeLog10(h)
		if err != nil {
			return NaN
		}
		bn, _ := bnFromHPF(l10)
		return bn

	case b.letter() == letter5:
		bn, _ := bnFromHPF(b.operand())
		return bn

	default:
		return bnFromTowerHeight(b.superLogHeight().Sub(hpfOne))
	}
}

// Exp10 implements spec.md §4.6, the mirror of Log10.
func (b BN) Exp10() BN {
	if b.IsNaN() {
		return NaN
	}
	if b.isZeroEncoding() {
		return One
	}
	if b.isInfinityEncoding() {
		if b.sign() {
			return Zero
		}
		return PositiveInfinity
	}
	if b.sign() {
		return b.Negated().Exp10().Reciprocal()
	}
	if b.recip() || b.letter() < letter5 {
		return bnFromSafeExp10(b.toHPF())
	}

	switch b.letter() {
	case letter5:
		l10, err := SafeLog10(b.operand())
		if err != nil {
			return NaN
		}
		return bnFromTowerHeight(hpfTwo.Add(l10))
	default:
		return bnFromTowerHeight(b.superLogHeight().Add(hpfOne))
	}
}

func bnFromSafeExp10(h hpf) BN {
	bn, _ := bnFromHPF(SafeExp10(h))
	return bn
}

// superLogHeight returns b's position on the shared tower-height
// coordinate used by Log10/Exp10 for letters 6 and 7: for letter 6 this
// is exactly the encoded operand (since letter 6's magnitude is defined
// as 10^10^10^(o-2), SuperLog10 of that magnitude is o by construction);
// for letter 7 the encoded operand is in LetterJ-space and is lifted
// into the same coordinate via LetterJToLetterG.
func (b BN) superLogHeight() hpf {
	if b.letter() == letter6 {
		return b.operand()
	}
	return LetterJToLetterG(b.operand()).Add(hpfTwo)
}

// bnFromTowerHeight is superLogHeight's inverse: given a height on the
// shared coordinate, it materializes the letter-5/6/7 BN (or saturates
// to infinity past letter 7's range) whose superLogHeight would be h.
func bnFromTowerHeight(h hpf) BN {
	if h.Lt(hpfTwo) {
		val := SafeExp10(SafeExp10(h.Sub(hpfOne)))
		bn, _ := bnFromHPF(val)
		return bn
	}
	if h.Lt(hpfTen) {
		i, f := EncodeOperand(h)
		return bnPack(false, false, letter6, i, f)
	}
	j := LetterGToLetterJ(h.Sub(hpfTwo))
	operand := j.Add(hpfTwo)
	if operand.Gte(hpfTen) {
		return PositiveInfinity
	}
	i, f := EncodeOperand(operand)
	return bnPack(false, false, letter7, i, f)
}

// Log2 returns log base 2 of b, derived from Log10 via log2(x) =
// log10(x) * log2(10).
func (b BN) Log2() BN { return b.Log10().Mul(Log2_10) }

// Exp2 returns 2^b, derived from Exp10 via 2^y = 10^(y/log2(10)).
func (b BN) Exp2() BN { return b.Quo(Log2_10).Exp10() }

// Log returns the natural logarithm of b, via ln(x) = log10(x) * ln(10).
func (b BN) Log() BN { return b.Log10().Mul(Ln10) }

// Exp returns e^b, via e^y = 10^(y/ln(10)).
func (b BN) Exp() BN { return b.Quo(Ln10).Exp10() }

// Pow returns b^y. Negative bases only have a well-defined real result
// for integer exponents, matching math.Pow's own domain handling.
func (b BN) Pow(y BN) BN {
	if b.IsNaN() || y.IsNaN() {
		return NaN
	}
	if b.isZeroEncoding() {
		if y.isZeroEncoding() {
			return One
		}
		if y.IsPositive() {
			return Zero
		}
		return PositiveInfinity
	}
	if b.IsNegative() {
		if !y.IsInteger() {
			return NaN
		}
		abs := b.Abs().Pow(y)
		if y.IsOddInteger() {
			return abs.Negated()
		}
		return abs
	}
	return y.Mul(b.Log10()).Exp10()
}
