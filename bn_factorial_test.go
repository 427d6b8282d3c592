package num

import (
	"fmt"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestFactorialExact(t *testing.T) {
	for _, tc := range []struct {
		n   int64
		out int64
	}{
		{0, 1},
		{1, 1},
		{5, 120},
		{10, 3628800},
		{20, 2432902008176640000},
	} {
		t.Run(fmt.Sprintf("%d!", tc.n), func(t *testing.T) {
			tt := assert.WrapTB(t)
			r, err := Factorial(BNFromInt64(tc.n))
			tt.MustOK(err)
			tt.MustAssert(BNFromInt64(tc.out).Equals(r), "found: %s", r)
		})
	}
}

func TestFactorialLanczosApproximatesExact(t *testing.T) {
	tt := assert.WrapTB(t)
	// 25! computed by a chain of BN multiplications (each rounded to BN's
	// encoding) for comparison against the Lanczos approximation used past n=20.
	exact := One
	for i := int64(2); i <= 25; i++ {
		exact = exact.Mul(BNFromInt64(i))
	}
	approx, err := Factorial(BNFromInt64(25))
	tt.MustOK(err)

	diff := DifferenceBN(exact, approx)
	rel := diff.Quo(exact)
	tt.MustAssert(rel.LessThan(BNFromFloat64(1e-6)), "exact=%s approx=%s rel=%s", exact, approx, rel)
}

func TestFactorialNegativeIsDomainError(t *testing.T) {
	tt := assert.WrapTB(t)
	_, err := Factorial(BNFromInt64(-1))
	tt.MustAssert(err != nil)
	if _, ok := err.(*FactorialDomainError); !ok {
		t.Fatalf("expected *FactorialDomainError, found %T", err)
	}
}

func TestFactorialNaN(t *testing.T) {
	tt := assert.WrapTB(t)
	r, err := Factorial(NaN)
	tt.MustOK(err)
	tt.MustAssert(r.IsNaN())
}

func TestFactorialInfinity(t *testing.T) {
	tt := assert.WrapTB(t)
	r, err := Factorial(PositiveInfinity)
	tt.MustOK(err)
	tt.MustAssert(r.IsPositiveInfinity())
}
