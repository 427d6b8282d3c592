package num

import (
	"math"
	"math/big"
)

// hpfPrec is the mantissa width of the external high-precision float
// substrate BN is built on: 113 bits, matching IEEE-754 binary128.
const hpfPrec = 113

// hpfEpsilon is the machine epsilon of the HPF substrate, 2^-113.
var hpfEpsilon = new(big.Float).SetPrec(hpfPrec).SetMantExp(big.NewFloat(1), -113)

// hpf is the boundary type spec.md calls HPF: a 113-bit-mantissa
// binary128-shaped float. No third-party quad-precision float package
// exists anywhere in the retrieval pack (see DESIGN.md), so this is a
// thin, explicitly-justified wrapper around math/big.Float pinned to
// hpfPrec bits of precision. It exposes exactly the operation set
// spec.md §6 requires of the substrate: arithmetic, ordered compare,
// Abs, Floor, Round, ILogB, ScaleB, FusedMultiplyAdd, the IsNaN/
// IsInfinity/IsZero family, and parse/format.
type hpf struct {
	f *big.Float
}

func newHPF() hpf { return hpf{f: new(big.Float).SetPrec(hpfPrec)} }

func hpfFromFloat64(v float64) hpf {
	return hpf{f: new(big.Float).SetPrec(hpfPrec).SetFloat64(v)}
}

func hpfFromInt64(v int64) hpf {
	return hpf{f: new(big.Float).SetPrec(hpfPrec).SetInt64(v)}
}

func hpfFromBigFloat(v *big.Float) hpf {
	return hpf{f: new(big.Float).SetPrec(hpfPrec).Set(v)}
}

// hpfParse parses a decimal literal the way strconv.ParseFloat does,
// but into hpf precision.
func hpfParse(s string) (hpf, error) {
	f, _, err := big.ParseFloat(s, 10, hpfPrec, big.ToNearestEven)
	if err != nil {
		return hpf{}, err
	}
	return hpf{f: f}, nil
}

var (
	hpfZero = hpfFromFloat64(0)
	hpfOne  = hpfFromFloat64(1)
	hpfTwo  = hpfFromFloat64(2)
	hpfTen  = hpfFromFloat64(10)

	// hpfE, hpfPi, hpfTau are precomputed to hpfPrec bits, matching the
	// boundary contract's E / Pi / Tau constants.
	hpfE   = mustHPFParse("2.71828182845904523536028747135266249775724709369995957496696762772407663")
	hpfPi  = mustHPFParse("3.14159265358979323846264338327950288419716939937510582097494459230781640")
	hpfTau = mustHPFParse("6.28318530717958647692528676655900576839433879875021164194988918461563281")
)

func mustHPFParse(s string) hpf {
	v, err := hpfParse(s)
	if err != nil {
		panic(err)
	}
	return v
}

func (x hpf) Add(y hpf) hpf {
	if x.IsNaN() || y.IsNaN() {
		return hpfNaN
	}
	if x.IsInfinity() && y.IsInfinity() && x.Sign() != y.Sign() {
		return hpfNaN
	}
	return hpf{f: new(big.Float).SetPrec(hpfPrec).Add(x.f, y.f)}
}

func (x hpf) Sub(y hpf) hpf { return x.Add(y.Neg()) }

func (x hpf) Mul(y hpf) hpf {
	if x.IsNaN() || y.IsNaN() {
		return hpfNaN
	}
	if (x.IsZero() && y.IsInfinity()) || (x.IsInfinity() && y.IsZero()) {
		return hpfNaN
	}
	return hpf{f: new(big.Float).SetPrec(hpfPrec).Mul(x.f, y.f)}
}

func (x hpf) Quo(y hpf) hpf {
	if x.IsNaN() || y.IsNaN() {
		return hpfNaN
	}
	if y.IsZero() {
		if x.IsZero() {
			return hpfNaN
		}
		if x.IsPositive() {
			if y.Sign() < 0 {
				return hpfNegInf
			}
			return hpfPosInf
		}
		if y.Sign() < 0 {
			return hpfPosInf
		}
		return hpfNegInf
	}
	if x.IsInfinity() && y.IsInfinity() {
		return hpfNaN
	}
	return hpf{f: new(big.Float).SetPrec(hpfPrec).Quo(x.f, y.f)}
}

func (x hpf) Neg() hpf {
	if x.IsNaN() {
		return hpfNaN
	}
	return hpf{f: new(big.Float).SetPrec(hpfPrec).Neg(x.f)}
}

func (x hpf) Abs() hpf {
	if x.IsNaN() {
		return hpfNaN
	}
	if x.f.Sign() < 0 {
		return x.Neg()
	}
	return x
}

// Cmp orders NaN below everything else and equal only to itself, purely
// so hpf can be used as an internal sort key; BN-level comparisons apply
// spec.md's "NaN compares incomparable" rule on top of this.
func (x hpf) Cmp(y hpf) int {
	switch {
	case x.IsNaN() && y.IsNaN():
		return 0
	case x.IsNaN():
		return -1
	case y.IsNaN():
		return 1
	}
	return x.f.Cmp(y.f)
}

func (x hpf) Sign() int {
	if x.IsNaN() {
		return 0
	}
	return x.f.Sign()
}

func (x hpf) Lt(y hpf) bool  { return x.Cmp(y) < 0 }
func (x hpf) Lte(y hpf) bool { return x.Cmp(y) <= 0 }
func (x hpf) Gt(y hpf) bool  { return x.Cmp(y) > 0 }
func (x hpf) Gte(y hpf) bool { return x.Cmp(y) >= 0 }
func (x hpf) Eq(y hpf) bool  { return x.Cmp(y) == 0 }

// Floor rounds toward negative infinity.
func (x hpf) Floor() hpf {
	if x.IsNaN() {
		return hpfNaN
	}
	if x.f.IsInf() {
		return x
	}
	i, acc := x.f.Int(nil)
	out := new(big.Float).SetPrec(hpfPrec).SetInt(i)
	if acc == big.Exact || x.f.Sign() >= 0 {
		if out.Cmp(x.f) > 0 {
			out.Sub(out, big.NewFloat(1))
		}
		return hpf{f: out}
	}
	if out.Cmp(x.f) > 0 {
		out.Sub(out, big.NewFloat(1))
	}
	return hpf{f: out}
}

// Round rounds to the nearest integer, ties away from zero.
func (x hpf) Round() hpf {
	if x.IsNaN() {
		return hpfNaN
	}
	if x.f.IsInf() {
		return x
	}
	half := big.NewFloat(0.5)
	if x.f.Sign() < 0 {
		half = big.NewFloat(-0.5)
	}
	shifted := new(big.Float).SetPrec(hpfPrec).Add(x.f, half)
	i, _ := shifted.Int(nil)
	return hpf{f: new(big.Float).SetPrec(hpfPrec).SetInt(i)}
}

// ILogB returns the base-2 exponent of x, as math.Frexp/math.Ilogb would.
func (x hpf) ILogB() int {
	if x.IsNaN() || x.f.Sign() == 0 {
		return math.MinInt32
	}
	exp := x.f.MantExp(nil)
	return exp - 1
}

// ScaleB returns x * 2^n.
func (x hpf) ScaleB(n int) hpf {
	if x.IsNaN() {
		return hpfNaN
	}
	out := new(big.Float).SetPrec(hpfPrec)
	out.SetMantExp(x.f, n)
	return hpf{f: out}
}

// FusedMultiplyAdd returns x*y + z computed as a single operation on the
// substrate (big.Float already carries full internal precision, so this
// is exact up to hpfPrec rounding, matching the contract).
func (x hpf) FusedMultiplyAdd(y, z hpf) hpf {
	if x.IsNaN() || y.IsNaN() || z.IsNaN() {
		return hpfNaN
	}
	prod := new(big.Float).SetPrec(hpfPrec * 2).Mul(x.f, y.f)
	sum := new(big.Float).SetPrec(hpfPrec).Add(prod, z.f)
	return hpf{f: sum}
}

func (x hpf) IsZero() bool     { return !x.IsNaN() && x.f.Sign() == 0 }
func (x hpf) IsInfinity() bool { return !x.IsNaN() && x.f.IsInf() }
func (x hpf) IsPositive() bool { return !x.IsNaN() && x.f.Sign() > 0 }
func (x hpf) IsNegative() bool { return !x.IsNaN() && x.f.Sign() < 0 }

// IsNaN reports whether x is the sentinel NaN value. big.Float has no
// native NaN, so hpfNaN is represented out-of-band (see isHPFNaN).
func (x hpf) IsNaN() bool { return x.f == nil }

var hpfNaN = hpf{f: nil}
var hpfPosInf = hpf{f: new(big.Float).SetPrec(hpfPrec).SetInf(false)}
var hpfNegInf = hpf{f: new(big.Float).SetPrec(hpfPrec).SetInf(true)}

func (x hpf) Float64() float64 {
	if x.IsNaN() {
		return math.NaN()
	}
	v, _ := x.f.Float64()
	return v
}

func (x hpf) String() string {
	if x.IsNaN() {
		return "NaN"
	}
	return x.f.Text('g', 40)
}

func (x hpf) BigFloat() *big.Float { return x.f }
