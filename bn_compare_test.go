package num

import (
	"fmt"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestBNCmpOrdering(t *testing.T) {
	for _, tc := range []struct {
		a, b BN
		want int
	}{
		{One, Two, -1},
		{Two, One, 1},
		{One, One, 0},
		{NegativeOne, One, -1},
		{Zero, negativeZero, 0},
		{PositiveInfinity, Ten, 1},
		{NegativeInfinity, Ten, -1},
		{PositiveInfinity, PositiveInfinity, 0},
	} {
		t.Run(fmt.Sprintf("%s<=>%s", tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.want, tc.a.Cmp(tc.b))
		})
	}
}

func TestBNCmpNaN(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustAssert(!NaN.Equals(NaN))
	tt.MustAssert(!NaN.LessThan(One))
	tt.MustAssert(!One.LessThan(NaN))
	tt.MustAssert(!NaN.GreaterThan(One))
}

func TestBNPredicates(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustAssert(Zero.IsZero())
	tt.MustAssert(negativeZero.IsZero())
	tt.MustAssert(PositiveInfinity.IsInfinity())
	tt.MustAssert(PositiveInfinity.IsPositiveInfinity())
	tt.MustAssert(NegativeInfinity.IsNegativeInfinity())
	tt.MustAssert(NaN.IsNaN())
	tt.MustAssert(!NaN.IsRealNumber())
	tt.MustAssert(One.IsFinite())
	tt.MustAssert(Ten.IsInteger())
	tt.MustAssert(Ten.IsEvenInteger())
	tt.MustAssert(!Ten.IsOddInteger())
	tt.MustAssert(One.IsOddInteger())
}

func TestBNNormalized(t *testing.T) {
	tt := assert.WrapTB(t)
	recipOne := One.Reciprocal()
	tt.MustAssert(One.Equals(recipOne))
	tt.MustAssert(recipOne.Normalized() == One)
}

func TestBNMinMaxMagnitude(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustAssert(One.Equals(MinMagnitudeBN(One, Ten)))
	tt.MustAssert(Ten.Equals(MaxMagnitudeBN(One, Ten)))
	tt.MustAssert(NegativeOne.Equals(MinMagnitudeBN(NegativeOne, Ten)))
}

func TestBNHashEqualForEqualValues(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(Zero.Hash(), negativeZero.Hash())
	tt.MustEqual(One.Hash(), One.Reciprocal().Reciprocal().Hash())
}
