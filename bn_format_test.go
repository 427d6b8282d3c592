package num

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestBNStringSpecials(t *testing.T) {
	for _, tc := range []struct {
		a   BN
		out string
	}{
		{NaN, "NaN"},
		{PositiveInfinity, "∞"},
		{NegativeInfinity, "-∞"},
		{Zero, "0"},
	} {
		t.Run(tc.out, func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, tc.a.String())
		})
	}
}

func TestBNStringRoundTrip(t *testing.T) {
	letter6Big := BNFromInt64(10).Pow(BNFromInt64(30))
	for _, tc := range []BN{
		One, Two, Ten, BNFromInt64(-7), BNFromInt64(100),
		letter6Big, letter6Big.Reciprocal(), letter6Big.Negated().Reciprocal(),
	} {
		t.Run(tc.String(), func(t *testing.T) {
			tt := assert.WrapTB(t)
			s := tc.String()
			v, err := Parse(s)
			tt.MustOK(err)
			tt.MustAssert(tc.Equals(v), "round-trip %q -> %s", s, v)
		})
	}
}

// TestBNLetter6ReciprocalString exercises letter6String's reciprocal
// branch directly: b's magnitude is M = sig * 10^exp with sig far from 1,
// so a correct reciprocal rendering must renormalize to (1/sig) * 10^(-exp)
// rather than reuse sig/exp verbatim.
func TestBNLetter6ReciprocalString(t *testing.T) {
	tt := assert.WrapTB(t)

	big := BNFromFloat64(3e30)
	tt.MustEqual(letter6, big.letter())

	r := big.Reciprocal()
	tt.MustEqual(letter6, r.letter())
	tt.MustAssert(r.recip())

	s := r.String()
	idx := strings.IndexByte(s, 'e')
	tt.MustAssert(idx > 0, "expected scientific notation, found %q", s)
	tt.MustAssert(s[idx:idx+2] == "e-", "expected a negative exponent, found %q", s)

	sig, err := hpfParse(s[:idx])
	tt.MustOK(err)
	tt.MustAssert(sig.Gte(hpfOne) && sig.Lt(hpfTen), "significand %s not renormalized into [1, 10)", sig)

	// 1/(1/M) must recover the original magnitude.
	tt.MustAssert(big.Equals(r.Reciprocal()), "found: %s", r.Reciprocal())
}

func TestBNFormat(t *testing.T) {
	tt := assert.WrapTB(t)
	s := fmt.Sprintf("%s", Ten)
	tt.MustAssert(s != "")
	q := fmt.Sprintf("%q", Ten)
	tt.MustEqual(`"10"`, q)
}

func TestBNMarshalJSON(t *testing.T) {
	tt := assert.WrapTB(t)
	bts, err := json.Marshal(Ten)
	tt.MustOK(err)
	tt.MustEqual(`"10"`, string(bts))

	var out BN
	tt.MustOK(json.Unmarshal(bts, &out))
	tt.MustAssert(Ten.Equals(out))
}

func TestBNMarshalText(t *testing.T) {
	tt := assert.WrapTB(t)
	bts, err := Ten.MarshalText()
	tt.MustOK(err)
	tt.MustEqual("10", string(bts))

	var out BN
	tt.MustOK(out.UnmarshalText(bts))
	tt.MustAssert(Ten.Equals(out))
}

func TestBNLetterTagString(t *testing.T) {
	tt := assert.WrapTB(t)
	big := BNFromInt64(10).Pow(BNFromInt64(30)).Exp10().Exp10()
	for big.letter() < letter7 {
		big = big.Exp10()
	}
	tt.MustEqual(letter7, big.letter())
	s := big.String()
	tt.MustAssert(len(s) > 0, "found empty string for %v", big)
	tt.MustEqual(byte('A'), s[0], "found %q", s)
}
