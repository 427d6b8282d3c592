package num

import (
	"fmt"
	"io"
)

// This file implements BN's string surface (spec.md §4.11's formatting
// half): String/Format/MarshalText/MarshalJSON, mirroring u128.go's own
// String/Format/MarshalText/MarshalJSON quartet. Parsing lives in
// bn_parse.go.

// letterTags names the single-letter regime tags spec.md §4.11 assigns
// to letters 7 and above, skipping G, H, I, and O the same way the
// hyper-transcendentals layer's own F/G/J naming skips easily-confused
// letters. In practice bnFromTowerHeight only ever produces letter 7
// (higher letters saturate to infinity), so only "A" is reachable today,
// but the table is kept complete for any future regime.
const letterTags = "ABCDEFJKLMNP"

// ToString renders b per spec.md §4.11.
func (b BN) ToString() string {
	switch {
	case b.IsNaN():
		return "NaN"
	case b.IsPositiveInfinity():
		return "∞"
	case b.IsNegativeInfinity():
		return "-∞"
	case b.isZeroEncoding():
		return "0"
	}

	switch {
	case b.letter() < letter6:
		return b.toHPF().String()
	case b.letter() == letter6:
		return b.letter6String()
	default:
		return b.letterTagString()
	}
}

// letter6String formats a letter-6 BN in base-10 scientific notation.
// log10(M) is always representable in HPF for any valid letter-6
// operand (its own magnitude never approaches HPF's exponent ceiling),
// so the split into significand and exponent is exact; the exponent
// itself is rendered through hpf.String, which already falls back to
// its own compact scientific form for magnitudes too large to spell out
// digit by digit.
func (b BN) letter6String() string {
	o := b.operand()
	logM := SafeExp10(SafeExp10(o.Sub(hpfTwo)))
	exp := logM.Floor()
	sig := SafeExp10(logM.Sub(exp))

	sign := "e+"
	if b.recip() {
		// M = sig * 10^exp, so 1/M = (1/sig) * 10^(-exp). 1/sig lands in
		// (0.1, 1] rather than the [1, 10) a normalized significand needs;
		// sig == 1 is already in range, otherwise multiply it by ten and
		// absorb that factor into the exponent.
		sign = "e-"
		if !sig.Eq(hpfOne) {
			sig = hpfTen.Quo(sig)
			exp = exp.Add(hpfOne)
		}
	}
	prefix := ""
	if b.sign() {
		prefix = "-"
	}
	return prefix + sig.String() + sign + exp.String()
}

// letterTagString formats a letter >= 7 BN per spec.md §4.11: an
// optional reciprocal prefix, a single-letter regime tag, then the raw
// operand decimal.
func (b BN) letterTagString() string {
	idx := int(b.letter()) - 7
	tag := byte('?')
	if idx >= 0 && idx < len(letterTags) {
		tag = letterTags[idx]
	}

	prefix := ""
	if b.sign() {
		prefix = "-"
	}
	if b.recip() {
		prefix += "1 / "
	}
	return prefix + string(tag) + b.operand().String()
}

// String implements fmt.Stringer.
func (b BN) String() string { return b.ToString() }

// Format implements fmt.Formatter. Locale/format verbs beyond the
// default textual form are currently ignored, matching spec.md §6's
// "formatter with optional format/locale (currently ignored)".
func (b BN) Format(s fmt.State, c rune) {
	switch c {
	case 'q':
		fmt.Fprintf(s, "%q", b.ToString())
	default:
		io.WriteString(s, b.ToString())
	}
}

// MarshalText implements encoding.TextMarshaler.
func (b BN) MarshalText() ([]byte, error) {
	return []byte(b.ToString()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *BN) UnmarshalText(bts []byte) error {
	v, err := Parse(string(bts))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// MarshalJSON implements json.Marshaler, encoding b as a JSON string
// (the same way U128 avoids JSON number's float64 precision loss).
func (b BN) MarshalJSON() ([]byte, error) {
	return []byte(`"` + b.ToString() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (b *BN) UnmarshalJSON(bts []byte) error {
	if len(bts) >= 2 && bts[0] == '"' && bts[len(bts)-1] == '"' {
		bts = bts[1 : len(bts)-1]
	}
	v, err := Parse(string(bts))
	if err != nil {
		return err
	}
	*b = v
	return nil
}
