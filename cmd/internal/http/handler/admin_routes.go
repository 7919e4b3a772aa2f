package handler

import (
	"context"
	"net/http"

	"hrindex/cmd/internal/contract"
	"hrindex/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type AdminService interface {
	Refresh(ctx context.Context) (*contract.RefreshResponse, apierror.ErrorResponse)
}

type DefaultAdminRoute struct {
	AdminService AdminService
}

func NewAdminDefault(service AdminService) *DefaultAdminRoute {
	return &DefaultAdminRoute{AdminService: service}
}

// Refresh runs a full ingest synchronously and returns the batch summary.
// Runs take minutes on a full corpus; callers are expected to be operators,
// not browsers.
func (h *DefaultAdminRoute) Refresh(c echo.Context) error {
	resp, apierr := h.AdminService.Refresh(c.Request().Context())
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}
