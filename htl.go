package num

// This file implements the hyper-transcendentals layer (HTL): the
// piecewise super-logarithm and the LetterF/LetterG/LetterJ growth
// functions spec.md §4.3 defines for letters 6 and 7. It sits directly
// on top of the STL (stl.go), trusting only the primitives that layer
// exposes rather than reaching past it to raw big.Float operations.

// SuperLog10 is the piecewise base-10 super-logarithm of spec.md's table:
// linear near the origin, iterated SafeLog10 as v grows past towers of
// ten. It is the inverse companion to LetterF's exponential towers.
func SuperLog10(v hpf) hpf {
	if v.IsNaN() {
		return hpfNaN
	}
	switch {
	case v.Lt(hpfZero):
		return SafeExp10(v).Sub(hpfTwo)
	case v.Lt(hpfOne):
		return v.Sub(hpfOne)
	case v.Lt(hpfTen):
		return safeLog10Unchecked(v)
	case v.Lt(hpfTenPow10()):
		return hpfOne.Add(safeLog10Unchecked(safeLog10Unchecked(v)))
	default:
		return hpfTwo.Add(safeLog10Unchecked(safeLog10Unchecked(safeLog10Unchecked(v))))
	}
}

var hpfTenPow10Val = SafeExp10(hpfFromInt64(10))

func hpfTenPow10() hpf { return hpfTenPow10Val }

// LetterF is the exponential-tower growth function of spec.md §4.3: it
// grows from a simple logarithm below -1, through linear and single
// exponentials, to triple-iterated exponentials for v >= 2.
func LetterF(v hpf) hpf {
	if v.IsNaN() {
		return hpfNaN
	}
	switch {
	case v.Lt(hpfNegOne()):
		return safeLog10Unchecked(v.Add(hpfTwo))
	case v.Lt(hpfZero):
		return v.Add(hpfOne)
	case v.Lt(hpfOne):
		return SafeExp10(v)
	case v.Lt(hpfTwo):
		return SafeExp10(SafeExp10(v.Sub(hpfOne)))
	default:
		return SafeExp10(SafeExp10(SafeExp10(v.Sub(hpfTwo))))
	}
}

var hpfNegOneVal = hpfFromInt64(-1)

func hpfNegOne() hpf { return hpfNegOneVal }

// LetterG composes LetterF with SuperLog10 for the domain below -1,
// matching spec.md §4.3's table.
func LetterG(v hpf) hpf {
	if v.IsNaN() {
		return hpfNaN
	}
	switch {
	case v.Lt(hpfNegOne()):
		return SuperLog10(v.Add(hpfTwo))
	case v.Lt(hpfZero):
		return v.Add(hpfOne)
	case v.Lt(hpfOne):
		return LetterF(v)
	case v.Lt(hpfTwo):
		return LetterF(LetterF(v.Sub(hpfOne)))
	default:
		return LetterF(LetterF(LetterF(v.Sub(hpfTwo))))
	}
}

// LetterJToLetterG and LetterGToLetterJ are approximate inverse
// bijections used to renormalize operands crossing in and out of letter
// 7. spec.md §4.3 and §9 are explicit that these are NOT exact for large
// arguments -- precision beyond letter 7 is a deliberately coarse budget,
// not a bug, and the 3-nested-Exp10 budget from spec.md §5 bounds how
// far the "compose through an exp-tower expression" branches go.
func LetterJToLetterG(v hpf) hpf {
	if v.IsNaN() {
		return hpfNaN
	}
	switch {
	case v.Lt(hpfTwo):
		return v
	case v.Lte(hpfThree()):
		// 2 * 5^(v-2); covers v==3 too, so the v>3 branch below has a
		// non-recursive base case to compose through.
		exponent := v.Sub(hpfTwo)
		five := hpfFromInt64(5)
		pow, _ := SafePow(five, exponent)
		return hpfTwo.Mul(pow)
	default:
		// Compose through LetterG of an exp-tower expression: treat v-3
		// as an additional super-exponential step on top of the v==3
		// boundary value, then hand off to LetterG for the tower shape.
		base := LetterJToLetterG(hpfThree())
		return LetterG(base.Add(v.Sub(hpfThree())))
	}
}

var hpfThreeVal = hpfFromInt64(3)

func hpfThree() hpf { return hpfThreeVal }

func LetterGToLetterJ(v hpf) hpf {
	if v.IsNaN() {
		return hpfNaN
	}
	switch {
	case v.Lt(hpfTwo):
		return v
	case v.Lt(hpfTen):
		// 2 + log2(v/2)/log2(5)
		half := v.Quo(hpfTwo)
		l2, err := SafeLog2(half)
		if err != nil {
			return hpfNaN
		}
		log2_5 := safeLog2Unchecked(hpfFromInt64(5))
		return hpfTwo.Add(l2.Quo(log2_5))
	default:
		// Compose through the inverse tower: peel one super-exponential
		// layer via SuperLog10 and recurse on the reduced value, mirroring
		// LetterJToLetterG's "v>=3" composition in reverse.
		reduced := SuperLog10(v)
		return LetterGToLetterJ(reduced).Add(hpfOne)
	}
}
