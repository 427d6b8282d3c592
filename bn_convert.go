package num

import "math/big"

// This file is BN's analogue of u128.go's From*/As* family: construction
// from HPF and machine numeric types, and the reverse. bnFromHPF /
// (BN).toHPF are the two functions every other conversion and every
// arithmetic entry/exit point funnels through, regardless of which public
// method called it.

// bnFromHPF implements spec.md §4.4: reduce the absolute value, record
// sign and reciprocal flags, pick the smallest letter whose range
// contains the reduced magnitude, and re-express that magnitude as an
// operand in [2, 10) via the inverse of §3's magnitude table.
func bnFromHPF(x hpf) (BN, error) {
	if x.IsNaN() {
		return NaN, nil
	}
	if x.IsInfinity() {
		if x.IsPositive() {
			return PositiveInfinity, nil
		}
		return NegativeInfinity, nil
	}
	if x.IsZero() {
		return Zero, nil
	}

	neg := x.IsNegative()
	ax := x.Abs()

	recip := ax.Lt(hpfOne)
	if recip {
		ax = hpfOne.Quo(ax)
	}

	switch {
	case ax.Lt(hpfTwo):
		o := ax.Sub(hpfOne).Mul(hpfFromInt64(8)).Add(hpfTwo)
		return bnFinish(neg, recip, letter1, o), nil

	case ax.Lt(hpfFromInt64(4)):
		o := ax.Sub(hpfTwo).Mul(hpfFromInt64(4)).Add(hpfTwo)
		return bnFinish(neg, recip, letter2, o), nil

	case ax.Lt(hpfFromInt64(20)):
		o := ax.Quo(hpfTwo)
		return bnFinish(neg, recip, letter3, o), nil

	case ax.Lt(hpfFromInt64(100)):
		o := ax.Quo(hpfTen)
		return bnFinish(neg, recip, letter4, o), nil

	case ax.Lt(hpfTenPow10()):
		o, err := SafeLog10(ax)
		if err != nil {
			return NaN, err
		}
		return bnFinish(neg, recip, letter5, o), nil

	default:
		o := SuperLog10(ax)
		if o.Gte(hpfTen) {
			// Beyond what letter 6's operand range can name: saturate,
			// per spec.md §3's overflow rule. In practice HPF's own
			// finite exponent range (bounded by big.Float's int32
			// exponent) never actually reaches this branch.
			if neg {
				return NegativeInfinity, nil
			}
			return PositiveInfinity, nil
		}
		return bnFinish(neg, recip, letter6, o), nil
	}
}

func bnFinish(neg, recip bool, letter uint8, o hpf) BN {
	i, f := EncodeOperand(o)
	return bnPack(neg, recip, letter, i, f)
}

// toHPF decodes b's magnitude back to HPF, the inverse of bnFromHPF's
// regime table. Letter 7 (and the unused reserved regimes above it)
// encode magnitudes HPF's finite exponent range cannot hold by
// construction -- spec.md §4.6 only steps BN's Exp10 up into letter 7
// once letter 6 would itself overflow HPF -- so decoding one always
// saturates to a signed infinity.
func (b BN) toHPF() hpf {
	if b.IsNaN() {
		return hpfNaN
	}
	if b.isInfinityEncoding() {
		if b.sign() {
			return hpfNegInf
		}
		return hpfPosInf
	}
	if b.isZeroEncoding() {
		return hpfZero
	}

	o := b.operand()

	var m hpf
	switch b.letter() {
	case letter1:
		m = o.Sub(hpfTwo).Quo(hpfFromInt64(8)).Add(hpfOne)
	case letter2:
		m = o.Sub(hpfTwo).Quo(hpfFromInt64(4)).Add(hpfTwo)
	case letter3:
		m = o.Mul(hpfTwo)
	case letter4:
		m = o.Mul(hpfTen)
	case letter5:
		m = SafeExp10(o)
	case letter6:
		m = SafeExp10(SafeExp10(SafeExp10(o.Sub(hpfTwo))))
	default:
		if b.sign() {
			return hpfNegInf
		}
		return hpfPosInf
	}

	if b.recip() {
		m = hpfOne.Quo(m)
	}
	if b.sign() {
		m = m.Neg()
	}
	return m
}

// BNFromFloat64 constructs a BN from a float64, the same way
// U128FromFloat64 is U128's entry point from the machine float type.
func BNFromFloat64(f float64) BN {
	bn, _ := bnFromHPF(hpfFromFloat64(f))
	return bn
}

// BNFromBigFloat constructs a BN from an arbitrary-precision big.Float,
// BN's closest stand-in for a direct HPF constructor (HPF itself is an
// external boundary type per spec.md §1, not part of the public surface).
func BNFromBigFloat(f *big.Float) BN {
	bn, _ := bnFromHPF(hpfFromBigFloat(f))
	return bn
}

// AsBigFloat decodes b to an arbitrary-precision big.Float at HPF's
// 113-bit working precision, mirroring U128.AsBigFloat.
func (b BN) AsBigFloat() *big.Float {
	return new(big.Float).Copy(b.toHPF().BigFloat())
}

// AsFloat64 decodes b to the nearest float64, saturating to +/-Inf for
// magnitudes float64 cannot represent and collapsing to 0 for magnitudes
// smaller than float64's smallest subnormal.
func (b BN) AsFloat64() float64 {
	return b.toHPF().Float64()
}

// BNFromInt64 constructs a BN from a machine int64.
func BNFromInt64(v int64) BN {
	bn, _ := bnFromHPF(hpfFromInt64(v))
	return bn
}

// BNFromUint64 constructs a BN from a machine uint64.
func BNFromUint64(v uint64) BN {
	bn, _ := bnFromHPF(hpfFromBigFloat(new(big.Float).SetPrec(hpfPrec).SetUint64(v)))
	return bn
}

func BNFromInt32(v int32) BN   { return BNFromInt64(int64(v)) }
func BNFromUint32(v uint32) BN { return BNFromUint64(uint64(v)) }
func BNFromInt(v int) BN       { return BNFromInt64(int64(v)) }

// AsInt64 decodes b to the nearest int64, reporting false if b is
// NaN or outside int64's range.
func (b BN) AsInt64() (v int64, inRange bool) {
	if b.IsNaN() {
		return 0, false
	}
	f := b.toHPF().Round()
	if f.Lt(hpfFromInt64(minInt64)) || f.Gt(hpfFromInt64(maxInt64)) {
		return 0, false
	}
	bi, _ := f.f.Int(nil)
	return bi.Int64(), true
}

// AsUint64 decodes b to the nearest uint64, reporting false if b is NaN,
// negative, or too large.
func (b BN) AsUint64() (v uint64, inRange bool) {
	if b.IsNaN() || b.sign() {
		return 0, false
	}
	f := b.toHPF().Round()
	if f.Gt(hpfFromInt64(0).addBig(maxBigUint64)) {
		return 0, false
	}
	bi, _ := f.f.Int(nil)
	if !bi.IsUint64() {
		return 0, false
	}
	return bi.Uint64(), true
}

func (b BN) AsInt32() (v int32, inRange bool) {
	i, ok := b.AsInt64()
	if !ok || i < minInt32 || i > maxInt32 {
		return 0, false
	}
	return int32(i), true
}

func (b BN) AsUint32() (v uint32, inRange bool) {
	u, ok := b.AsUint64()
	if !ok || u > maxUint32 {
		return 0, false
	}
	return uint32(u), true
}

func (b BN) AsInt() (v int, inRange bool) {
	i, ok := b.AsInt64()
	if !ok || i < minIntPlatform || i > maxIntPlatform {
		return 0, false
	}
	return int(i), true
}

const (
	minInt32  = -1 << 31
	maxInt32  = 1<<31 - 1
	maxUint32 = 1<<32 - 1
)

// minIntPlatform/maxIntPlatform bound AsInt's range check on both 32-bit
// and 64-bit platforms, matching intSize's role in consts.go.
var (
	minIntPlatform int64 = minInt64
	maxIntPlatform int64 = maxInt64
)

func init() {
	if intSize == 32 {
		minIntPlatform = minInt32
		maxIntPlatform = maxInt32
	}
}

// addBig adds a big.Int to an hpf, used only by AsUint64's range check.
func (x hpf) addBig(v *big.Int) hpf {
	return x.Add(hpfFromBigFloat(new(big.Float).SetPrec(hpfPrec).SetInt(v)))
}
