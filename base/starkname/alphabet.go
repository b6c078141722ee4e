/*Package starkname implements the reversible mapping between starknet.id
domain labels and field elements.

A label is a single name segment without dots or the ".stark" suffix. Its
encoding is a little-endian mixed-radix integer: basic runes occupy one digit
of radix k+1 where k is the basic alphabet size, and the top ordinal k is
reserved to escape both the extended alphabet and trailing zero-ordinal runes.
The encoded integer fits a single storage slot of the naming contract for any
label of realistic length (see FitsField).
*/
package starkname

import (
	"fmt"
	"math/big"
)

// Tables deployed with the starknet.id naming contract. Labels stored on
// chain decode against these exact tables, so their content and order are
// protocol constants, not tunables.
const (
	defaultBasic    = "abcdefghijklmnopqrstuvwxyz0123456789-"
	defaultExtended = "这来"
)

// FieldPrime is the Stark curve prime 2^251 + 17*2^192 + 1.
var FieldPrime, _ = new(big.Int).SetString(
	"800000000000011000000000000000000000000000000000000000000000001", 16)

// FitsField reports whether an encoded value is storable as one field
// element. Encode itself never reduces, so oversized labels must be caught
// with this check before hitting the chain.
func FitsField(v *big.Int) bool {
	return v != nil && v.Sign() >= 0 && v.Cmp(FieldPrime) < 0
}

// Alphabet maps runes to ordinals and back. The basic set owns ordinals
// 0..k-1; ordinal k is the escape marker and never names a rune. The
// extended set carries runes outside the basic range (multi-byte symbols)
// under its own radix. Immutable after construction.
type Alphabet struct {
	basic    []rune
	extended []rune
	basicOrd map[rune]int64
	extOrd   map[rune]int64

	basicSize        *big.Int // k, doubles as the escape marker
	basicSizePlusOne *big.Int // the positional radix
	extSize          *big.Int
	extSizePlusOne   *big.Int // radix of a final-position extended rune
}

// NewAlphabet builds the lookup tables for a basic and an extended rune set.
// It panics when a rune appears twice across the sets: the alphabet is a
// fixed constant of the system and a malformed one is a programming error.
func NewAlphabet(basic, extended string) *Alphabet {
	a := &Alphabet{
		basic:    []rune(basic),
		extended: []rune(extended),
		basicOrd: map[rune]int64{},
		extOrd:   map[rune]int64{},
	}
	for i, r := range a.basic {
		if _, dup := a.basicOrd[r]; dup {
			panic(fmt.Sprintf("starkname: duplicated rune %q in alphabet", r))
		}
		a.basicOrd[r] = int64(i)
	}
	for i, r := range a.extended {
		if _, dup := a.basicOrd[r]; dup {
			panic(fmt.Sprintf("starkname: duplicated rune %q in alphabet", r))
		}
		if _, dup := a.extOrd[r]; dup {
			panic(fmt.Sprintf("starkname: duplicated rune %q in alphabet", r))
		}
		a.extOrd[r] = int64(i)
	}
	a.basicSize = big.NewInt(int64(len(a.basic)))
	a.basicSizePlusOne = big.NewInt(int64(len(a.basic)) + 1)
	a.extSize = big.NewInt(int64(len(a.extended)))
	a.extSizePlusOne = big.NewInt(int64(len(a.extended)) + 1)
	return a
}

// Classify returns the ordinal of r and which set it belongs to. ok is false
// for runes in neither set. Ordinal 0 is a legitimate symbol, not an absence
// marker; callers must branch on ok, never on the ordinal.
func (a *Alphabet) Classify(r rune) (ord int64, extended bool, ok bool) {
	if ord, ok := a.basicOrd[r]; ok {
		return ord, false, true
	}
	if ord, ok := a.extOrd[r]; ok {
		return ord, true, true
	}
	return 0, false, false
}

// basicRune is the inverse of Classify over the basic ordinal range.
func (a *Alphabet) basicRune(ord int64) rune {
	return a.basic[ord]
}

// extendedRune is the inverse of Classify over the extended ordinal range.
func (a *Alphabet) extendedRune(ord int64) rune {
	return a.extended[ord]
}

var defaultAlphabet = NewAlphabet(defaultBasic, defaultExtended)

// Default returns the alphabet of the deployed naming contract.
func Default() *Alphabet {
	return defaultAlphabet
}
