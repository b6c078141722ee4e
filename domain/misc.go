package domain

import (
	"math/big"
	"strings"
)

// ChainId identifies a configured starknet network.
type ChainId int32

const (
	ChainIdMainnet ChainId = 1
	ChainIdSepolia ChainId = 2
)

// Address is a starknet contract or account address: a field element in
// 0x-prefixed hex. Casing and leading zero digits are not significant, so
// comparisons go through Equals.
type Address string

const EmptyAddress = Address("0x0")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

func (a Address) Equals(b Address) bool {
	x, errA := a.Big()
	y, errB := b.Big()
	if errA != nil || errB != nil {
		return a.ToLowerStr() == b.ToLowerStr()
	}
	return x.Cmp(y) == 0
}

// Big parses the address into its field element. Returns ErrInvalidAddress
// for anything that is not 0x-prefixed hex.
func (a Address) Big() (*big.Int, error) {
	s := strings.ToLower(string(a))
	if !strings.HasPrefix(s, "0x") || len(s) == 2 {
		return nil, ErrInvalidAddress
	}
	v, ok := new(big.Int).SetString(s[2:], 16)
	if !ok || v.Sign() < 0 {
		return nil, ErrInvalidAddress
	}
	return v, nil
}

// AddressFromFelt renders a field element as a normalized address.
func AddressFromFelt(v *big.Int) Address {
	return Address("0x" + v.Text(16))
}
