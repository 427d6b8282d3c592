package num

import "fmt"

// This file implements the safe transcendentals layer (STL): domain-checked
// log/exp/pow over hpf with explicit Newton iteration and series expansion,
// the way the teacher hand-rolls its own 128-bit division and multiplication
// primitives in arith.go rather than reaching for a generic bignum op. The
// "safety" is the domain check: these raise a *DomainError instead of
// silently returning a substrate NaN, so callers (BN's Log10/Exp10) can
// choose when a domain violation becomes a value-encoded BN NaN and when it
// is actually a programming error.

// DomainError is returned by STL functions called outside of their
// mathematical domain (log of a non-positive number, etc). It is one of
// the three fatal failure categories spec.md §7.3 enumerates.
type DomainError struct {
	Func string
	Arg  string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("num: domain error in %s(%s)", e.Func, e.Arg)
}

// log2_10 and log2_e are precomputed to hpfPrec-equivalent precision so
// SafeLog10/SafeLog/SafeExp10/SafeExp don't each re-derive them.
var (
	log2_10 = mustHPFParse("3.32192809488736234787031942948939017586483139302458061205475640")
	log2_e  = mustHPFParse("1.44269504088896340735992468100189213742664595415298593413544940")
	hpfLn10 = mustHPFParse("2.30258509299404568401799145468436420760110148862877297603332790")
)

// safeNewtonIterations bounds SafeExp2's Newton loop, matching spec.md
// §4.2 and the "<= ~10 Newton iterations" budget of §5.
const safeNewtonIterations = 10

// safeSeriesTerms bounds SafeLog2's series loop, matching the "<= ~120
// series terms" budget of §5.
const safeSeriesTerms = 120

// hpfExpGuard bounds the magnitude of an exponent SafeExp2 will attempt to
// materialize via ScaleB: big.Float's own exponent is stored in an int32,
// so any y whose |y| exceeds this guard would either overflow HPF's finite
// range outright or risk an undefined float64->int conversion of +Inf
// partway through the Newton loop. Values past the guard saturate
// immediately, consistent with spec.md §3's "arithmetic never yields an
// unencodable value" invariant.
const hpfExpGuard = 1 << 30

var (
	hpfExpGuardPos = hpfFromInt64(hpfExpGuard)
	hpfExpGuardNeg = hpfFromInt64(-hpfExpGuard)
)

// SafeExp2 computes 2^y for finite y via an initial ScaleB estimate
// refined by Newton iteration on f(x) = log2(x) - y, per spec.md §4.2.
func SafeExp2(y hpf) hpf {
	if y.IsNaN() {
		return hpfNaN
	}
	if y.IsInfinity() {
		if y.IsPositive() {
			return hpfPosInf
		}
		return hpfZero
	}
	if y.Gt(hpfExpGuardPos) {
		return hpfPosInf
	}
	if y.Lt(hpfExpGuardNeg) {
		return hpfZero
	}

	yFloor := y.Floor()
	yFloorInt := int(yFloor.Float64())
	x := hpfOne.ScaleB(yFloorInt)

	for i := 0; i < safeNewtonIterations; i++ {
		logx := safeLog2Unchecked(x)
		delta := y.Sub(logx)
		// x_{n+1} = x + x*ln2*(y - log2(x)), via FusedMultiplyAdd.
		coeff := x.Mul(hpfLn2())
		next := coeff.FusedMultiplyAdd(delta, x)
		done := next.Sub(x).Abs().Lt(hpfEpsilonHPF())
		x = next
		if done {
			break
		}
	}
	return x
}

// hpfLn2 is ln(2), precomputed once.
var hpfLn2Val = mustHPFParse("0.69314718055994530941723212145817656807550013436025525412068001")

func hpfLn2() hpf { return hpfLn2Val }

func hpfEpsilonHPF() hpf { return hpf{f: hpfEpsilon} }

// SafeLog2 computes log2(x) for x > 0 by decomposing x = m * 2^e with
// m in [0.5, 1) and summing the Mercator-style series for log2(m), per
// spec.md §4.2. Returns a *DomainError for x <= 0.
func SafeLog2(x hpf) (hpf, error) {
	v, err := safeLog2(x)
	if err != nil {
		return hpfNaN, err
	}
	return v, nil
}

// safeLog2Unchecked is SafeLog2 without the error return, for internal
// call sites that have already range-checked their input (avoiding
// allocation of an error value on the arithmetic hot path).
func safeLog2Unchecked(x hpf) hpf {
	v, _ := safeLog2(x)
	return v
}

func safeLog2(x hpf) (hpf, error) {
	if x.IsNaN() {
		return hpfNaN, nil
	}
	if x.Sign() <= 0 {
		return hpfNaN, &DomainError{Func: "SafeLog2", Arg: x.String()}
	}
	if x.IsInfinity() {
		return hpfPosInf, nil
	}

	e := x.ILogB() + 1
	m := x.ScaleB(-e)

	eps := m.Sub(hpfOne)
	sum := hpfZero
	term := eps
	epsNeg := eps.Neg()
	for k := 1; k <= safeSeriesTerms; k++ {
		denom := hpfFromInt64(int64(k))
		contrib := term.Quo(denom)
		sum = sum.Add(contrib)
		if contrib.Abs().Lt(hpfSeriesTol()) {
			break
		}
		term = term.Mul(epsNeg)
	}
	log2m := sum.Quo(hpfLn2())
	return hpfFromInt64(int64(e)).Add(log2m), nil
}

var hpfSeriesTolVal = hpf{f: hpfEpsilon}.ScaleB(-7) // 2^-113 * 2^-7 = 2^-120, below epsilon

func hpfSeriesTol() hpf { return hpfSeriesTolVal }

// SafeLog10 computes log10(x) = log2(x) / log2(10).
func SafeLog10(x hpf) (hpf, error) {
	l2, err := SafeLog2(x)
	if err != nil {
		return hpfNaN, err
	}
	return l2.Quo(log2_10), nil
}

func safeLog10Unchecked(x hpf) hpf {
	return safeLog2Unchecked(x).Quo(log2_10)
}

// SafeLog computes the natural logarithm ln(x) = log2(x) / log2(e).
func SafeLog(x hpf) (hpf, error) {
	l2, err := SafeLog2(x)
	if err != nil {
		return hpfNaN, err
	}
	return l2.Quo(log2_e), nil
}

func safeLogUnchecked(x hpf) hpf {
	return safeLog2Unchecked(x).Quo(log2_e)
}

// SafeExp10 computes 10^y = 2^(y*log2(10)).
func SafeExp10(y hpf) hpf { return SafeExp2(y.Mul(log2_10)) }

// SafeExp computes e^y = 2^(y*log2(e)).
func SafeExp(y hpf) hpf { return SafeExp2(y.Mul(log2_e)) }

// SafePow computes x^y = 2^(y*log2(x)) for x > 0.
func SafePow(x, y hpf) (hpf, error) {
	if x.IsZero() {
		if y.IsZero() {
			return hpfOne, nil
		}
		if y.IsPositive() {
			return hpfZero, nil
		}
		return hpfPosInf, nil
	}
	l2x, err := SafeLog2(x)
	if err != nil {
		return hpfNaN, err
	}
	return SafeExp2(y.Mul(l2x)), nil
}
