package num

import (
	"fmt"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func hpfClose(tt assert.T, want, got hpf, msg string) {
	diff := want.Sub(got).Abs()
	tol := mustHPFParse("1e-6")
	tt.MustAssert(diff.Lt(tol), "%s: want %s, got %s (diff %s)", msg, want, got, diff)
}

func TestSuperLog10Boundaries(t *testing.T) {
	tt := assert.WrapTB(t)
	hpfClose(tt, hpfZero, SuperLog10(hpfOne), "SuperLog10(1)")
	hpfClose(tt, hpfOne, SuperLog10(hpfTen), "SuperLog10(10)")
}

func TestLetterFSuperLog10Inverse(t *testing.T) {
	for _, v := range []hpf{
		hpfFromFloat64(-2), hpfFromFloat64(-0.5), hpfFromFloat64(0.5),
		hpfFromFloat64(1.5), hpfFromFloat64(2.5),
	} {
		t.Run(fmt.Sprintf("%s", v), func(t *testing.T) {
			tt := assert.WrapTB(t)
			got := SuperLog10(LetterF(v))
			hpfClose(tt, v, got, "SuperLog10(LetterF(v))")
		})
	}
}

func TestLetterJGInverse(t *testing.T) {
	for _, v := range []hpf{
		hpfFromFloat64(0.5), hpfFromFloat64(1.5), hpfFromFloat64(2.5),
		hpfFromFloat64(4),
	} {
		t.Run(fmt.Sprintf("%s", v), func(t *testing.T) {
			tt := assert.WrapTB(t)
			g := LetterJToLetterG(v)
			back := LetterGToLetterJ(g)
			hpfClose(tt, v, back, "LetterGToLetterJ(LetterJToLetterG(v))")
		})
	}
}
