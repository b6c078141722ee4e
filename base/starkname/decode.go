package starkname

import "math/big"

// Decode maps a field element back to its label using the default alphabet.
// Total: every non-negative integer yields some string, so corrupt on-chain
// data degrades to an unreadable label instead of an error. Decode(0) is the
// empty label.
func Decode(v *big.Int) string {
	return defaultAlphabet.Decode(v)
}

// Decode is the structural inverse of Encode. It never fails; inputs that no
// valid label encodes to still map to a string, and non-positive inputs map
// to the empty label.
func (a *Alphabet) Decode(v *big.Int) string {
	if v == nil || v.Sign() <= 0 {
		return ""
	}
	rem := new(big.Int).Set(v)
	code := new(big.Int)
	next := new(big.Int)
	var out []rune
	for rem.Sign() != 0 {
		rem.DivMod(rem, a.basicSizePlusOne, code)
		if code.Cmp(a.basicSize) != 0 {
			out = append(out, a.basicRune(code.Int64()))
			continue
		}
		// escape marker: the next digit group is in the extended numbering
		if next.Div(rem, a.extSizePlusOne); next.Sign() == 0 {
			// final position, wider radix; zero is the escaped
			// zero-ordinal rune, everything else is shifted by one
			rem.DivMod(rem, a.extSizePlusOne, code)
			if code.Sign() == 0 {
				out = append(out, a.basic[0])
			} else {
				out = append(out, a.extendedRune(code.Int64()-1))
			}
			continue
		}
		rem.DivMod(rem, a.extSize, code)
		out = append(out, a.extendedRune(code.Int64()))
	}
	return string(a.removeTrailingBias(out))
}

// removeTrailingBias undoes the run rewrite of applyTrailingBias: even-length
// runs of the padding rune restore the two-rune tail, odd-length runs restore
// the original run.
func (a *Alphabet) removeTrailingBias(runes []rune) []rune {
	pad := a.extended[len(a.extended)-1]
	trimmed, k := trimTrailing(runes, pad)
	if k == 0 {
		return runes
	}
	if k%2 == 0 {
		out := append(trimmed, repeatRune(pad, k/2-1)...)
		return append(out, a.extended[0], a.basic[1])
	}
	return append(trimmed, repeatRune(pad, (k-1)/2+1)...)
}
