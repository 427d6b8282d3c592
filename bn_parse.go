package num

import "strings"

// This file implements Parse/TryParse, spec.md §4.11's parsing half,
// grounded on u128.go's U128FromString for the overall "strip sign,
// delegate, else format error" shape, generalized to the <sig>e<exp>
// scientific grammar spec.md actually specifies for BN.

// Parse decodes s into a BN: a direct HPF literal, a signed variant of
// one, the <sig>e<exp> scientific grammar, or (per an open question
// SPEC_FULL.md resolves in favor of accepting) a named infinity/NaN
// literal. Anything else is a *FormatError.
func Parse(s string) (BN, error) {
	if bn, ok := parseNamedLiteral(s); ok {
		return bn, nil
	}

	if len(s) > 0 && s[0] == '-' {
		v, err := Parse(s[1:])
		if err != nil {
			return NaN, err
		}
		return v.Negated(), nil
	}
	if len(s) > 0 && s[0] == '+' {
		return Parse(s[1:])
	}

	if h, err := hpfParse(s); err == nil {
		return bnFromHPF(h)
	}

	idx := strings.IndexAny(s, "eE")
	if idx <= 0 || idx == len(s)-1 {
		return NaN, &FormatError{Input: s}
	}
	sigStr, expStr := s[:idx], s[idx+1:]
	sig, err := hpfParse(sigStr)
	if err != nil {
		return NaN, &FormatError{Input: s}
	}
	exp, err := hpfParse(expStr)
	if err != nil {
		return NaN, &FormatError{Input: s}
	}

	logSig, err := SafeLog10(sig)
	if err != nil {
		return NaN, &FormatError{Input: s}
	}
	letterF := exp.Add(logSig)

	recip := letterF.IsNegative()
	if recip {
		letterF = letterF.Neg()
	}

	var result BN
	if letterF.Lt(hpfTen) {
		bn, err := bnFromHPF(letterF)
		if err != nil {
			return NaN, &FormatError{Input: s}
		}
		result = bn.Exp10()
	} else {
		o := hpfOne.Add(SuperLog10(letterF))
		i, f := EncodeOperand(o)
		result = bnPack(false, false, letter6, i, f)
	}

	if recip {
		result = result.Reciprocal()
	}
	return result, nil
}

// TryParse is Parse without the error: it reports success via its
// second return instead of re-raising a *FormatError, per spec.md §7's
// "TryParse catches format errors and reports success/failure without
// re-raising".
func TryParse(s string) (BN, bool) {
	v, err := Parse(s)
	if err != nil {
		return NaN, false
	}
	return v, true
}

// parseNamedLiteral recognizes the case-insensitive infinity/NaN
// literals SPEC_FULL.md's open-question decision accepts.
func parseNamedLiteral(s string) (BN, bool) {
	switch strings.ToLower(s) {
	case "nan":
		return NaN, true
	case "inf", "+inf", "infinity", "+infinity":
		return PositiveInfinity, true
	case "-inf", "-infinity":
		return NegativeInfinity, true
	}
	return NaN, false
}
