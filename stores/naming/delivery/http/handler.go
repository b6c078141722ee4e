package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/starknet-id/goapi/base/ctx"
	"github.com/starknet-id/goapi/base/delivery"
	"github.com/starknet-id/goapi/domain"
	"github.com/starknet-id/goapi/service/naming"
)

type handler struct {
	naming naming.Naming
}

func New(e *echo.Echo, naming naming.Naming) {
	h := &handler{
		naming,
	}

	g := e.Group("/naming")

	g.GET("/resolve/:domain", h.Resolve)

	g.GET("/reverse-resolve/:address", h.ReverseResolve)

	g.POST("/batch-reverse-resolve", h.BatchReverseResolve)
}

func (h *handler) Resolve(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		Domain  string         `param:"domain" validate:"required,starkDomain"`
		ChainId domain.ChainId `query:"chainId"`
	}

	p := payload{ChainId: domain.ChainIdMainnet}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	address, err := h.naming.Resolve(ctx, p.ChainId, p.Domain)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, address)
}

func (h *handler) ReverseResolve(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		Address domain.Address `param:"address" validate:"required,starkAddress"`
		ChainId domain.ChainId `query:"chainId"`
	}

	p := payload{ChainId: domain.ChainIdMainnet}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	name, err := h.naming.ReverseResolve(ctx, p.ChainId, p.Address)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, name)
}

func (h *handler) BatchReverseResolve(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		Addresses []domain.Address `json:"addresses" validate:"required,max=100,dive,required,starkAddress"`
		ChainId   domain.ChainId   `json:"chainId"`
	}

	p := payload{ChainId: domain.ChainIdMainnet}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	names, err := h.naming.BatchReverseResolve(ctx, p.ChainId, p.Addresses)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, names)
}
