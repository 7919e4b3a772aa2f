package handler

import (
	"net/http"
	"strconv"

	"hrindex/cmd/internal/contract"
	"hrindex/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

const (
	defaultLimit = 100
	maxLimit     = 1000
)

type CompanyService interface {
	CountCompanies() (*contract.CountResponse, apierror.ErrorResponse)
	GetCompanies(skip, limit int) ([]*contract.CompanyResponse, apierror.ErrorResponse)
	GetCompany(number string) (*contract.CompanyDetailResponse, apierror.ErrorResponse)
	CreateCompany(req *contract.CreateCompanyRequest) (*contract.CompanyResponse, apierror.ErrorResponse)
}

type DefaultCompanyRoute struct {
	CompanyService CompanyService
}

func NewCompanyDefault(service CompanyService) *DefaultCompanyRoute {
	return &DefaultCompanyRoute{CompanyService: service}
}

func (h *DefaultCompanyRoute) CountCompanies(c echo.Context) error {
	count, apierr := h.CompanyService.CountCompanies()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, count)
}

func (h *DefaultCompanyRoute) GetCompanies(c echo.Context) error {
	skip, err := queryInt(c, "skip", 0)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("skip", "int"))
	}
	limit, err := queryInt(c, "limit", defaultLimit)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("limit", "int"))
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	companies, apierr := h.CompanyService.GetCompanies(skip, limit)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, companies)
}

func (h *DefaultCompanyRoute) GetCompany(c echo.Context) error {
	company, apierr := h.CompanyService.GetCompany(c.Param("number"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, company)
}

func (h *DefaultCompanyRoute) CreateCompany(c echo.Context) error {
	var req contract.CreateCompanyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	company, apierr := h.CompanyService.CreateCompany(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, company)
}

func queryInt(c echo.Context, name string, fallback int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
