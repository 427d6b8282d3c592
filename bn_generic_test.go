package num

import (
	"math"
	"math/big"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestTryConvertFromFloat64(t *testing.T) {
	tt := assert.WrapTB(t)

	bn, err := TryConvertFromFloat64Checked(3.5)
	tt.MustOK(err)
	tt.MustAssert(BNFromFloat64(3.5).Equals(bn))

	_, err = TryConvertFromFloat64Checked(math.NaN())
	tt.MustAssert(err != nil)

	tt.MustAssert(BNFromFloat64(1.5).Equals(TryConvertFromFloat64Saturating(1.5)))
	tt.MustAssert(BNFromFloat64(1.5).Equals(TryConvertFromFloat64Truncating(1.5)))
}

func TestTryConvertToFloat64(t *testing.T) {
	tt := assert.WrapTB(t)

	f, err := TryConvertToFloat64Checked(Ten)
	tt.MustOK(err)
	tt.MustEqual(10.0, f)

	_, err = TryConvertToFloat64Checked(NaN)
	tt.MustAssert(err != nil)

	_, err = TryConvertToFloat64Checked(MaxValue)
	tt.MustAssert(err != nil)

	tt.MustEqual(Ten.AsFloat64(), TryConvertToFloat64Saturating(Ten))
	tt.MustEqual(Ten.AsFloat64(), TryConvertToFloat64Truncating(Ten))
}

func TestTryConvertFromInt64(t *testing.T) {
	tt := assert.WrapTB(t)

	bn, err := TryConvertFromInt64Checked(42)
	tt.MustOK(err)
	tt.MustAssert(BNFromInt64(42).Equals(bn))

	tt.MustAssert(BNFromInt64(-7).Equals(TryConvertFromInt64Saturating(-7)))
	tt.MustAssert(BNFromInt64(-7).Equals(TryConvertFromInt64Truncating(-7)))
}

func TestTryConvertToInt64(t *testing.T) {
	tt := assert.WrapTB(t)

	v, err := TryConvertToInt64Checked(BNFromInt64(123))
	tt.MustOK(err)
	tt.MustEqual(int64(123), v)

	_, err = TryConvertToInt64Checked(MaxValue)
	tt.MustAssert(err != nil)

	tt.MustEqual(int64(0), TryConvertToInt64Saturating(NaN))
	tt.MustEqual(int64(math.MaxInt64), TryConvertToInt64Saturating(MaxValue))
	tt.MustEqual(int64(math.MinInt64), TryConvertToInt64Saturating(MinValue))
	tt.MustEqual(int64(math.MaxInt64), TryConvertToInt64Truncating(MaxValue))

	tt.MustEqual(int64(123), TryConvertToInt64Saturating(BNFromInt64(123)))
}

func TestTryConvertFromBigFloat(t *testing.T) {
	tt := assert.WrapTB(t)

	f := new(big.Float).SetInt64(9)
	bn, err := TryConvertFromBigFloatChecked(f)
	tt.MustOK(err)
	tt.MustAssert(BNFromInt64(9).Equals(bn))

	tt.MustAssert(BNFromInt64(9).Equals(TryConvertFromBigFloatSaturating(f)))
	tt.MustAssert(BNFromInt64(9).Equals(TryConvertFromBigFloatTruncating(f)))
}

func TestTryConvertToBigFloat(t *testing.T) {
	tt := assert.WrapTB(t)

	bf, err := TryConvertToBigFloatChecked(Ten)
	tt.MustOK(err)
	got, _ := bf.Float64()
	tt.MustEqual(10.0, got)

	_, err = TryConvertToBigFloatChecked(NaN)
	tt.MustAssert(err != nil)

	_, err = TryConvertToBigFloatChecked(PositiveInfinity)
	tt.MustAssert(err != nil)

	sat := TryConvertToBigFloatSaturating(Ten)
	sf, _ := sat.Float64()
	tt.MustEqual(10.0, sf)

	trunc := TryConvertToBigFloatTruncating(Ten)
	tf, _ := trunc.Float64()
	tt.MustEqual(10.0, tf)
}
