package naming

import (
	"math/big"
	"strings"

	"github.com/starknet-id/goapi/base/starkname"
	"github.com/starknet-id/goapi/domain"
)

const rootSuffix = ".stark"

// EncodeDomain converts a domain into the felts stored on chain, one per
// label. The root suffix is optional on input. Labels whose encoding does
// not fit the field are rejected.
func EncodeDomain(name string) ([]*big.Int, error) {
	name = strings.TrimSuffix(name, rootSuffix)
	if name == "" {
		return []*big.Int{}, nil
	}
	labels := strings.Split(name, ".")
	felts := make([]*big.Int, 0, len(labels))
	for _, label := range labels {
		felt, err := starkname.Encode(label)
		if err != nil {
			return nil, err
		}
		if !starkname.FitsField(felt) {
			return nil, domain.ErrInvalidDomain
		}
		felts = append(felts, felt)
	}
	return felts, nil
}

// DecodeDomain is the inverse of EncodeDomain and always appends the root
// suffix. No felts decodes to the empty string.
func DecodeDomain(felts []*big.Int) string {
	if len(felts) == 0 {
		return ""
	}
	labels := make([]string, 0, len(felts))
	for _, felt := range felts {
		labels = append(labels, starkname.Decode(felt))
	}
	return strings.Join(labels, ".") + rootSuffix
}
