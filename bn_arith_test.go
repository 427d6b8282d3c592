package num

import (
	"fmt"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestBNAddBasic(t *testing.T) {
	for _, tc := range []struct {
		a, b, c BN
	}{
		{One, One, Two},
		{Zero, Zero, Zero},
		{One, NegativeOne, Zero},
		{Ten, Ten, BNFromInt64(20)},
		{PositiveInfinity, One, PositiveInfinity},
		{PositiveInfinity, NegativeInfinity, NaN},
	} {
		t.Run(fmt.Sprintf("%s+%s", tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			r := tc.a.Add(tc.b)
			if tc.c.IsNaN() {
				tt.MustAssert(r.IsNaN())
			} else {
				tt.MustAssert(tc.c.Equals(r), "found: %s", r)
			}
		})
	}
}

func TestBNSubBasic(t *testing.T) {
	for _, tc := range []struct {
		a, b, c BN
	}{
		{Ten, One, BNFromInt64(9)},
		{One, One, Zero},
		{Zero, One, NegativeOne},
	} {
		t.Run(fmt.Sprintf("%s-%s", tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			r := tc.a.Sub(tc.b)
			tt.MustAssert(tc.c.Equals(r), "found: %s", r)
		})
	}
}

func TestBNMulBasic(t *testing.T) {
	for _, tc := range []struct {
		a, b, c BN
	}{
		{Two, Ten, BNFromInt64(20)},
		{Zero, Ten, Zero},
		{NegativeOne, Ten, BNFromInt64(-10)},
		{PositiveInfinity, Ten, PositiveInfinity},
		{Zero, PositiveInfinity, NaN},
	} {
		t.Run(fmt.Sprintf("%s*%s", tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			r := tc.a.Mul(tc.b)
			if tc.c.IsNaN() {
				tt.MustAssert(r.IsNaN())
			} else {
				tt.MustAssert(tc.c.Equals(r), "found: %s", r)
			}
		})
	}
}

func TestBNQuoBasic(t *testing.T) {
	for _, tc := range []struct {
		a, b, c BN
	}{
		{Ten, Two, BNFromInt64(5)},
		{Ten, Ten, One},
		{Zero, Ten, Zero},
		{Ten, Zero, PositiveInfinity},
		{Zero, Zero, NaN},
	} {
		t.Run(fmt.Sprintf("%s/%s", tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			r := tc.a.Quo(tc.b)
			if tc.c.IsNaN() {
				tt.MustAssert(r.IsNaN())
			} else {
				tt.MustAssert(tc.c.Equals(r), "found: %s", r)
			}
		})
	}
}

func TestBNReciprocal(t *testing.T) {
	for _, tc := range []struct {
		a BN
	}{
		{One}, {Two}, {Ten}, {BNFromInt64(7)},
	} {
		t.Run(tc.a.String(), func(t *testing.T) {
			tt := assert.WrapTB(t)
			r := tc.a.Reciprocal().Reciprocal()
			tt.MustAssert(tc.a.Equals(r), "found: %s", r)
		})
	}
}

func TestBNNegAbs(t *testing.T) {
	tt := assert.WrapTB(t)
	v := BNFromInt64(-5)
	tt.MustAssert(v.Abs().Equals(BNFromInt64(5)))
	tt.MustAssert(v.Neg().Equals(BNFromInt64(5)))
	tt.MustAssert(BNFromInt64(5).Neg().Equals(v))
}

func TestBNIncDec(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustAssert(One.Inc().Equals(Two))
	tt.MustAssert(Two.Dec().Equals(One))
}

func TestBNLog10Exp10RoundTrip(t *testing.T) {
	for _, tc := range []BN{
		One, Two, Ten, BNFromInt64(100), BNFromInt64(7),
	} {
		t.Run(tc.String(), func(t *testing.T) {
			tt := assert.WrapTB(t)
			r := tc.Log10().Exp10()
			diff := DifferenceBN(tc, r)
			tt.MustAssert(diff.LessThan(BNFromFloat64(1e-6)), "%s -> %s, diff %s", tc, r, diff)
		})
	}
}

func TestBNPow(t *testing.T) {
	for _, tc := range []struct {
		a, y, c BN
	}{
		{Two, BNFromInt64(10), BNFromInt64(1024)},
		{Ten, Two, BNFromInt64(100)},
		{Ten, Zero, One},
	} {
		t.Run(fmt.Sprintf("%s^%s", tc.a, tc.y), func(t *testing.T) {
			tt := assert.WrapTB(t)
			r := tc.a.Pow(tc.y)
			diff := DifferenceBN(tc.c, r)
			tt.MustAssert(diff.LessThan(BNFromFloat64(1e-3)), "found: %s", r)
		})
	}
}

func TestBNModDivideByZero(t *testing.T) {
	tt := assert.WrapTB(t)
	_, err := Ten.Mod(Zero)
	tt.MustAssert(err != nil)
	if dbz, ok := err.(*DivideByZeroError); ok {
		tt.MustEqual("Mod", dbz.Op)
	} else {
		t.Fatalf("expected *DivideByZeroError, found %T", err)
	}
}

// TestBNEpsilon guards against Epsilon silently collapsing to One: it must
// be built by packing fields directly rather than routing its tiny offset
// through EncodeOperand's integer-snap step, which would round it straight
// back to One. (Epsilon's operand lies 2^-85 above One's, far inside
// EncodeOperand's own 2^-40 snap tolerance, so this only holds because
// Epsilon bypasses that step.)
func TestBNEpsilon(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustAssert(!Epsilon.Equals(One), "Epsilon collapsed to One")
	tt.MustAssert(Epsilon.Cmp(One) > 0, "Epsilon must be strictly greater than One")
}
