package service

import (
	"errors"
	"strings"

	"hrindex/cmd/internal/contract"
	"hrindex/cmd/internal/domain/entity"
	"hrindex/cmd/internal/domain/sqlite/repository"
	"hrindex/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
)

type CompanyRepository interface {
	Count() (int64, error)
	FindAll(skip, limit int) ([]*entity.Company, error)
	FindByNumber(number string) (*repository.CompanyDetail, error)
	Create(company *entity.Company) error
}

type DefaultCompanyService struct {
	CompanyRepo CompanyRepository
	Validate    *validator.Validate
}

func NewCompanyService(repo CompanyRepository, validate *validator.Validate) *DefaultCompanyService {
	return &DefaultCompanyService{
		CompanyRepo: repo,
		Validate:    validate,
	}
}

func (s *DefaultCompanyService) CountCompanies() (*contract.CountResponse, apierror.ErrorResponse) {
	total, err := s.CompanyRepo.Count()
	if err != nil {
		log.Errorf("failed to count companies: %v", err)
		return nil, apierror.InternalServerError
	}
	return &contract.CountResponse{Total: total}, nil
}

func (s *DefaultCompanyService) GetCompanies(skip, limit int) ([]*contract.CompanyResponse, apierror.ErrorResponse) {
	companies, err := s.CompanyRepo.FindAll(skip, limit)
	if err != nil {
		log.Errorf("failed to fetch companies: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.CompanyResponse, len(companies))
	for i, c := range companies {
		resp[i] = toCompanyResponse(c)
	}
	return resp, nil
}

func (s *DefaultCompanyService) GetCompany(number string) (*contract.CompanyDetailResponse, apierror.ErrorResponse) {
	detail, err := s.CompanyRepo.FindByNumber(number)
	if err != nil {
		log.Errorf("failed to fetch company %s: %v", number, err)
		return nil, apierror.InternalServerError
	}
	if detail == nil {
		return nil, apierror.NotFoundError
	}
	return toCompanyDetailResponse(detail), nil
}

func (s *DefaultCompanyService) CreateCompany(req *contract.CreateCompanyRequest) (*contract.CompanyResponse, apierror.ErrorResponse) {
	if err := s.Validate.Struct(req); err != nil {
		if resp := apierror.FromValidationError(err); resp != nil {
			return nil, resp
		}
		log.Errorf("failed to validate company request: %v", err)
		return nil, apierror.InternalServerError
	}

	company := &entity.Company{
		CourtSenderCode:        req.CourtSenderCode,
		CurrentStatuteDate:     req.CurrentStatuteDate,
		CurrentDesignation:     req.CurrentDesignation,
		LegalFormCode:          req.LegalFormCode,
		Location:               req.Location,
		AddressTypeCode:        req.AddressTypeCode,
		Street:                 req.Street,
		HouseNumber:            req.HouseNumber,
		PostalCode:             req.PostalCode,
		City:                   req.City,
		State:                  req.State,
		SubjectMatter:          req.SubjectMatter,
		RegisterCode:           req.RegisterCode,
		RegisterNumber:         req.RegisterNumber,
		RegisterNumberAddition: req.RegisterNumberAddition,
		CompanyNumber:          req.CompanyNumber,
		FilePath:               req.FilePath,
		Opencorporates:         req.Opencorporates,
	}

	if err := s.CompanyRepo.Create(company); err != nil {
		if isDuplicate(err) {
			return nil, apierror.DuplicateNumberError
		}
		log.Errorf("failed to create company %s: %v", req.CompanyNumber, err)
		return nil, apierror.InternalServerError
	}
	return toCompanyResponse(company), nil
}

func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func toCompanyResponse(c *entity.Company) *contract.CompanyResponse {
	return &contract.CompanyResponse{
		CourtSenderCode:        c.CourtSenderCode,
		CurrentStatuteDate:     c.CurrentStatuteDate,
		CurrentDesignation:     c.CurrentDesignation,
		LegalFormCode:          c.LegalFormCode,
		Location:               c.Location,
		AddressTypeCode:        c.AddressTypeCode,
		Street:                 c.Street,
		HouseNumber:            c.HouseNumber,
		PostalCode:             c.PostalCode,
		City:                   c.City,
		State:                  c.State,
		SubjectMatter:          c.SubjectMatter,
		RegisterCode:           c.RegisterCode,
		RegisterNumber:         c.RegisterNumber,
		RegisterNumberAddition: c.RegisterNumberAddition,
		CompanyNumber:          c.CompanyNumber,
		FilePath:               c.FilePath,
		Opencorporates:         c.Opencorporates,
	}
}

func toCompanyDetailResponse(d *repository.CompanyDetail) *contract.CompanyDetailResponse {
	return &contract.CompanyDetailResponse{
		CourtSenderCode:        contract.CodedValue{Value: d.CourtSenderCode, Label: d.CourtSenderLabel},
		CurrentStatuteDate:     d.CurrentStatuteDate,
		CurrentDesignation:     d.CurrentDesignation,
		LegalFormCode:          contract.CodedValue{Value: d.LegalFormCode, Label: d.LegalFormLabel},
		Location:               d.Location,
		AddressTypeCode:        contract.CodedValue{Value: d.AddressTypeCode, Label: d.AddressTypeLabel},
		Street:                 d.Street,
		HouseNumber:            d.HouseNumber,
		PostalCode:             d.PostalCode,
		City:                   d.City,
		State:                  d.State,
		SubjectMatter:          d.SubjectMatter,
		RegisterCode:           d.RegisterCode,
		RegisterNumber:         d.RegisterNumber,
		RegisterNumberAddition: d.RegisterNumberAddition,
		CompanyNumber:          d.CompanyNumber,
		FilePath:               d.FilePath,
		Opencorporates:         d.Opencorporates,
	}
}
