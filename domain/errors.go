package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	// request error
	ErrInvalidAddress = errors.New("Invalid address")
	ErrInvalidChainId = errors.New("invalid chain id")

	// ErrInvalidDomain will throw for domains outside the supported shape:
	// wrong suffix, empty label or a label exceeding the field bound
	ErrInvalidDomain = errors.New("invalid domain")
	// ErrInvalidContractResult will throw when the naming contract returns a
	// malformed payload
	ErrInvalidContractResult = errors.New("invalid contract result")
	// ErrResolutionNotSupported will throw for networks without a configured
	// naming contract
	ErrResolutionNotSupported = errors.New("resolution not supported")
)
