package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/starknet-id/goapi/base/starkname"
	"github.com/starknet-id/goapi/domain"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		var unknownChar *starkname.UnknownCharacterError
		switch {
		case errors.Is(err, domain.ErrNotFound):
			status = http.StatusNotFound
		case errors.As(err, &unknownChar):
			status = http.StatusBadRequest
		case errors.Is(err, domain.ErrBadParamInput),
			errors.Is(err, domain.ErrInvalidAddress),
			errors.Is(err, domain.ErrInvalidDomain),
			errors.Is(err, domain.ErrInvalidChainId):
			status = http.StatusBadRequest
		case errors.Is(err, domain.ErrResolutionNotSupported):
			status = http.StatusNotImplemented
		}
		data = err.Error()
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}
