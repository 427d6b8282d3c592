package num

import "math/big"

// This file implements the generic-numeric-tower conversion helpers
// spec.md §6 calls for: TryConvertFrom{Checked,Saturating,Truncating} and
// TryConvertTo{Checked,Saturating,Truncating}, one trio per boundary type
// (float64 stands in for "double", int64 for "long", *big.Float for
// "HPF"). The module targets go 1.12 (the teacher's own go.mod), so these
// are hand-written per-type functions rather than a single generic
// helper -- the same non-generic style u128.go uses for its own From*/As*
// family.
//
// The three-way split itself has no counterpart anywhere in the pack:
// neither db47h-decimal nor avdva-fixed name a checked/saturating/
// truncating distinction, and u128.go's own From*/As* methods only ever
// report a single "did this fit" bool. It's written directly against
// math/big and the machine numeric types spec.md §6 names, because no
// example repo's conversion API was closer to what a checked/saturating/
// truncating trio needs than starting from AsInt64/AsFloat64/AsBigFloat's
// existing shape (bn_convert.go) and layering the trio's three failure
// policies on top by hand.

// TryConvertFromFloat64Checked constructs a BN from f, failing if f is
// NaN (BN's NaN is a distinct value-encoded failure mode, not a silent
// conversion outcome under "Checked" semantics).
func TryConvertFromFloat64Checked(f float64) (BN, error) {
	if f != f { // f is NaN
		return NaN, bnErrorf("cannot convert NaN float64 to BN under Checked semantics")
	}
	return BNFromFloat64(f), nil
}

// TryConvertFromFloat64Saturating constructs a BN from f; f's own
// infinities already saturate through bnFromHPF, so this is equivalent
// to BNFromFloat64 but named to complete the trio.
func TryConvertFromFloat64Saturating(f float64) BN { return BNFromFloat64(f) }

// TryConvertFromFloat64Truncating is identical to Saturating for BN:
// unlike a fixed-width integer type, BN has no fractional truncation
// boundary to apply on the way in.
func TryConvertFromFloat64Truncating(f float64) BN { return BNFromFloat64(f) }

// TryConvertToFloat64Checked decodes b to a float64, failing if b is NaN
// or if the conversion would silently saturate to +/-Inf.
func TryConvertToFloat64Checked(b BN) (float64, error) {
	if b.IsNaN() {
		return 0, bnErrorf("cannot convert NaN BN to float64 under Checked semantics")
	}
	f := b.AsFloat64()
	if (f > maxFloat64Val || f < -maxFloat64Val) && !b.IsInfinity() {
		return 0, bnErrorf("BN %s overflows float64 under Checked semantics", b)
	}
	return f, nil
}

// TryConvertToFloat64Saturating decodes b to a float64, saturating to
// +/-Inf on overflow (AsFloat64 already does exactly this).
func TryConvertToFloat64Saturating(b BN) float64 { return b.AsFloat64() }

// TryConvertToFloat64Truncating is identical to Saturating: float64 has
// no narrower integer truncation step to apply here.
func TryConvertToFloat64Truncating(b BN) float64 { return b.AsFloat64() }

var maxFloat64Val = 1.7976931348623157e+308

// TryConvertFromInt64Checked constructs a BN from an int64; always
// succeeds (every int64 is exactly representable) but keeps the trio's
// shape for symmetry with the float64/BigFloat variants.
func TryConvertFromInt64Checked(v int64) (BN, error) { return BNFromInt64(v), nil }
func TryConvertFromInt64Saturating(v int64) BN        { return BNFromInt64(v) }
func TryConvertFromInt64Truncating(v int64) BN        { return BNFromInt64(v) }

// TryConvertToInt64Checked decodes b to an int64, failing on NaN or
// out-of-range magnitudes instead of silently clamping.
func TryConvertToInt64Checked(b BN) (int64, error) {
	v, ok := b.AsInt64()
	if !ok {
		return 0, bnErrorf("BN %s cannot convert to int64 under Checked semantics", b)
	}
	return v, nil
}

// TryConvertToInt64Saturating decodes b to an int64, clamping to
// [math.MinInt64, math.MaxInt64] (and to 0 for NaN) instead of failing.
func TryConvertToInt64Saturating(b BN) int64 {
	if b.IsNaN() {
		return 0
	}
	if v, ok := b.AsInt64(); ok {
		return v
	}
	if b.sign() {
		return minInt64
	}
	return maxInt64
}

// TryConvertToInt64Truncating behaves like Saturating for BN: there is no
// fractional truncation distinct from Floor's role inside AsInt64, since
// AsInt64 already floors before range-checking.
func TryConvertToInt64Truncating(b BN) int64 { return TryConvertToInt64Saturating(b) }

// TryConvertFromBigFloatChecked constructs a BN from an arbitrary HPF
// value (represented here as *big.Float, BN's boundary stand-in), failing
// on NaN input.
func TryConvertFromBigFloatChecked(f *big.Float) (BN, error) {
	h := hpfFromBigFloat(f)
	if h.IsNaN() {
		return NaN, bnErrorf("cannot convert NaN HPF to BN under Checked semantics")
	}
	return bnFromHPF(h)
}

func TryConvertFromBigFloatSaturating(f *big.Float) BN {
	bn, _ := bnFromHPF(hpfFromBigFloat(f))
	return bn
}

func TryConvertFromBigFloatTruncating(f *big.Float) BN {
	return TryConvertFromBigFloatSaturating(f)
}

// TryConvertToBigFloatChecked decodes b to a *big.Float at HPF precision,
// failing on NaN or infinite b (an infinity is not a finite HPF value).
func TryConvertToBigFloatChecked(b BN) (*big.Float, error) {
	if b.IsNaN() {
		return nil, bnErrorf("cannot convert NaN BN to HPF under Checked semantics")
	}
	if b.IsInfinity() {
		return nil, bnErrorf("BN %s has no finite HPF representation under Checked semantics", b)
	}
	return b.AsBigFloat(), nil
}

func TryConvertToBigFloatSaturating(b BN) *big.Float { return b.AsBigFloat() }
func TryConvertToBigFloatTruncating(b BN) *big.Float  { return b.AsBigFloat() }
