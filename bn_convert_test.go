package num

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestBNAsInt64(t *testing.T) {
	for _, tc := range []struct {
		a       BN
		v       int64
		inRange bool
	}{
		{BNFromInt64(0), 0, true},
		{BNFromInt64(42), 42, true},
		{BNFromInt64(-42), -42, true},
		{Ten, 10, true},
		{NaN, 0, false},
		{PositiveInfinity, 0, false},
		{NegativeInfinity, 0, false},
		{MaxValue, 0, false},
	} {
		t.Run(tc.a.String(), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v, ok := tc.a.AsInt64()
			tt.MustEqual(tc.inRange, ok)
			if ok {
				tt.MustEqual(tc.v, v)
			}
		})
	}
}

func TestBNAsUint64(t *testing.T) {
	for _, tc := range []struct {
		a       BN
		v       uint64
		inRange bool
	}{
		{BNFromInt64(0), 0, true},
		{BNFromInt64(42), 42, true},
		{BNFromInt64(-1), 0, false},
		{NaN, 0, false},
		{MaxValue, 0, false},
	} {
		t.Run(tc.a.String(), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v, ok := tc.a.AsUint64()
			tt.MustEqual(tc.inRange, ok)
			if ok {
				tt.MustEqual(tc.v, v)
			}
		})
	}
}

func TestBNAsInt32AsUint32(t *testing.T) {
	tt := assert.WrapTB(t)

	i32, ok := BNFromInt64(1234).AsInt32()
	tt.MustAssert(ok)
	tt.MustEqual(int32(1234), i32)

	_, ok = BNFromInt64(1 << 40).AsInt32()
	tt.MustAssert(!ok)

	u32, ok := BNFromInt64(4321).AsUint32()
	tt.MustAssert(ok)
	tt.MustEqual(uint32(4321), u32)

	_, ok = BNFromInt64(-1).AsUint32()
	tt.MustAssert(!ok)

	_, ok = BNFromInt64(1 << 40).AsUint32()
	tt.MustAssert(!ok)
}

func TestBNAsInt(t *testing.T) {
	tt := assert.WrapTB(t)
	v, ok := BNFromInt64(7).AsInt()
	tt.MustAssert(ok)
	tt.MustEqual(7, v)

	_, ok = NaN.AsInt()
	tt.MustAssert(!ok)
}

func TestBNFromIntegerConstructorsRoundTrip(t *testing.T) {
	tt := assert.WrapTB(t)

	tt.MustAssert(BNFromInt64(-99).Equals(BNFromInt32(-99)))
	tt.MustAssert(BNFromInt64(99).Equals(BNFromInt(99)))

	u := BNFromUint64(18446744073709551615) // math.MaxUint64
	v, ok := u.AsUint64()
	tt.MustAssert(ok)
	tt.MustEqual(uint64(18446744073709551615), v)

	tt.MustAssert(BNFromUint64(500).Equals(BNFromUint32(500)))
}

func TestBNAsBigFloatAsFloat64(t *testing.T) {
	tt := assert.WrapTB(t)

	f := Ten.AsFloat64()
	tt.MustEqual(10.0, f)

	bf := Ten.AsBigFloat()
	got, _ := bf.Float64()
	tt.MustEqual(10.0, got)

	tt.MustAssert(PositiveInfinity.AsFloat64() > 0)
	tt.MustAssert(NegativeInfinity.AsFloat64() < 0)
}

func TestBNFromFloat64FromBigFloatRoundTrip(t *testing.T) {
	for _, f := range []float64{0, 1, -1, 3.5, -3.5, 1e10, -1e10} {
		t.Run(fmt.Sprintf("%v", f), func(t *testing.T) {
			tt := assert.WrapTB(t)
			bn := BNFromFloat64(f)
			tt.MustEqual(f, bn.AsFloat64())
			tt.MustEqual(f, BNFromBigFloat(new(big.Float).SetFloat64(f)).AsFloat64())
		})
	}
}
