package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/starknet-id/goapi/base/starkname"
	"github.com/starknet-id/goapi/domain"
)

const domainSuffix = ".stark"

// IsValidAddress returns whether the string is a well-formed starknet
// address: 0x-prefixed hex within the field bound.
func IsValidAddress(address string) bool {
	v, err := domain.Address(address).Big()
	if err != nil {
		return false
	}
	return starkname.FitsField(v)
}

// IsValidDomain returns whether the string is a resolvable domain: a
// non-empty dot-separated sequence of encodable labels under the root
// suffix.
func IsValidDomain(name string) bool {
	if !strings.HasSuffix(name, domainSuffix) {
		return false
	}
	labels := strings.Split(strings.TrimSuffix(name, domainSuffix), ".")
	for _, label := range labels {
		if len(label) == 0 {
			return false
		}
		if v, err := starkname.Encode(label); err != nil || !starkname.FitsField(v) {
			return false
		}
	}
	return true
}

func NewCustomValidator(v *validator.Validate) echo.Validator {
	v.RegisterValidation("starkAddress", func(fl validator.FieldLevel) bool {
		return IsValidAddress(fl.Field().String())
	})
	v.RegisterValidation("starkDomain", func(fl validator.FieldLevel) bool {
		return IsValidDomain(fl.Field().String())
	})
	return &CustomValidator{v}
}

type CustomValidator struct {
	validator *validator.Validate
}

func (v *CustomValidator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return err
	}
	return nil
}
