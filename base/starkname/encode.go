package starkname

import (
	"fmt"
	"math/big"
)

// UnknownCharacterError reports the first rune of a label that belongs to
// neither alphabet set. It is the only error the codec produces.
type UnknownCharacterError struct {
	Char rune
}

func (e *UnknownCharacterError) Error() string {
	return fmt.Sprintf("starkname: unknown character %q", e.Char)
}

// Encode maps a domain label to its field-element representation using the
// default alphabet. The empty label encodes to zero. The result is not
// reduced modulo FieldPrime; labels of up to 47 basic runes always fit the
// field, longer ones must be checked with FitsField by the caller.
func Encode(label string) (*big.Int, error) {
	return defaultAlphabet.Encode(label)
}

// Encode maps a label to an integer, little-endian: the first rune is the
// least significant digit. Fails on the first rune outside the alphabet
// without producing a partial result.
func (a *Alphabet) Encode(label string) (*big.Int, error) {
	runes := []rune(label)
	for _, r := range runes {
		if _, _, ok := a.Classify(r); !ok {
			return nil, &UnknownCharacterError{Char: r}
		}
	}
	runes = a.applyTrailingBias(runes)

	encoded := new(big.Int)
	multiplier := big.NewInt(1)
	tmp := new(big.Int)
	last := len(runes) - 1
	for i, r := range runes {
		ord, extended, _ := a.Classify(r)
		if !extended {
			if i == last && ord == 0 {
				// a trailing zero-ordinal digit would vanish and alias a
				// shorter label; emit the escape marker followed by an
				// implicit zero digit instead
				encoded.Add(encoded, tmp.Mul(multiplier, a.basicSize))
				multiplier.Mul(multiplier, a.basicSizePlusOne)
				multiplier.Mul(multiplier, a.basicSizePlusOne)
				continue
			}
			encoded.Add(encoded, tmp.Mul(multiplier, big.NewInt(ord)))
			multiplier.Mul(multiplier, a.basicSizePlusOne)
			continue
		}
		// escape marker, then the extended ordinal. The final position uses
		// the wider radix with ordinals shifted past zero, which stays
		// reserved for the trailing zero-ordinal escape above.
		encoded.Add(encoded, tmp.Mul(multiplier, a.basicSize))
		multiplier.Mul(multiplier, a.basicSizePlusOne)
		if i == last {
			ord++
		}
		encoded.Add(encoded, tmp.Mul(multiplier, big.NewInt(ord)))
		multiplier.Mul(multiplier, a.extSize)
	}
	return encoded, nil
}

// applyTrailingBias rewrites trailing runs of the last extended rune (and
// the two-rune tail that collides with a final extended digit) into runs of
// odd or even length, so that every distinct label keeps a distinct
// encoding. Inverse of removeTrailingBias.
func (a *Alphabet) applyTrailingBias(runes []rune) []rune {
	pad := a.extended[len(a.extended)-1]
	n := len(runes)
	if n >= 2 && runes[n-2] == a.extended[0] && runes[n-1] == a.basic[1] {
		trimmed, k := trimTrailing(runes[:n-2], pad)
		return append(trimmed, repeatRune(pad, 2*(k+1))...)
	}
	trimmed, k := trimTrailing(runes, pad)
	if k == 0 {
		return runes
	}
	return append(trimmed, repeatRune(pad, 1+2*(k-1))...)
}

func trimTrailing(runes []rune, r rune) ([]rune, int) {
	n := len(runes)
	for n > 0 && runes[n-1] == r {
		n--
	}
	return runes[:n], len(runes) - n
}

func repeatRune(r rune, n int) []rune {
	out := make([]rune, n)
	for i := range out {
		out[i] = r
	}
	return out
}
