package handler

import (
	"net/http"

	"hrindex/cmd/internal/contract"
	"hrindex/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type RegisterService interface {
	GetEntries(number string) ([]*contract.RegisterEntryResponse, apierror.ErrorResponse)
	GetPersons(number string) ([]*contract.ParticipantPersonResponse, apierror.ErrorResponse)
	GetOrganizations(number string) ([]*contract.ParticipantOrganizationResponse, apierror.ErrorResponse)
}

type DefaultRegisterRoute struct {
	RegisterService RegisterService
}

func NewRegisterDefault(service RegisterService) *DefaultRegisterRoute {
	return &DefaultRegisterRoute{RegisterService: service}
}

func (h *DefaultRegisterRoute) GetEntries(c echo.Context) error {
	entries, apierr := h.RegisterService.GetEntries(c.Param("number"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, entries)
}

func (h *DefaultRegisterRoute) GetPersons(c echo.Context) error {
	persons, apierr := h.RegisterService.GetPersons(c.Param("number"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, persons)
}

func (h *DefaultRegisterRoute) GetOrganizations(c echo.Context) error {
	orgs, apierr := h.RegisterService.GetOrganizations(c.Param("number"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, orgs)
}
