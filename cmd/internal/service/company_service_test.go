package service

import (
	"errors"
	"net/http"
	"testing"

	"hrindex/cmd/internal/contract"
	"hrindex/cmd/internal/domain/entity"
	"hrindex/cmd/internal/domain/sqlite/repository"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCompanyRepository is a mock implementation of CompanyRepository
type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCompanyRepository) FindAll(skip, limit int) ([]*entity.Company, error) {
	args := m.Called(skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Company), args.Error(1)
}

func (m *MockCompanyRepository) FindByNumber(number string) (*repository.CompanyDetail, error) {
	args := m.Called(number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.CompanyDetail), args.Error(1)
}

func (m *MockCompanyRepository) Create(company *entity.Company) error {
	args := m.Called(company)
	return args.Error(0)
}

func strptr(s string) *string { return &s }

func TestGetCompanyResolvesLabels(t *testing.T) {
	repo := new(MockCompanyRepository)
	repo.On("FindByNumber", "R3306_HRB100").Return(&repository.CompanyDetail{
		Company: entity.Company{
			CompanyNumber:   "R3306_HRB100",
			CourtSenderCode: strptr("R3306"),
			LegalFormCode:   strptr("234"),
		},
		CourtSenderLabel: strptr("Charlottenburg (Berlin)"),
		LegalFormLabel:   strptr("Gesellschaft mit beschränkter Haftung"),
	}, nil)

	svc := NewCompanyService(repo, validator.New())
	resp, apierr := svc.GetCompany("R3306_HRB100")
	require.Nil(t, apierr)

	assert.Equal(t, "R3306", *resp.CourtSenderCode.Value)
	assert.Equal(t, "Charlottenburg (Berlin)", *resp.CourtSenderCode.Label)
	assert.Equal(t, "Gesellschaft mit beschränkter Haftung", *resp.LegalFormCode.Label)
	assert.Nil(t, resp.AddressTypeCode.Value)
	repo.AssertExpectations(t)
}

func TestGetCompanyNotFound(t *testing.T) {
	repo := new(MockCompanyRepository)
	repo.On("FindByNumber", "missing").Return(nil, nil)

	svc := NewCompanyService(repo, validator.New())
	_, apierr := svc.GetCompany("missing")
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusNotFound, apierr.Code())
}

func TestCreateCompanyValidatesRequest(t *testing.T) {
	repo := new(MockCompanyRepository)

	svc := NewCompanyService(repo, validator.New())
	_, apierr := svc.CreateCompany(&contract.CreateCompanyRequest{})
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusBadRequest, apierr.Code())
	repo.AssertNotCalled(t, "Create")
}

func TestCreateCompanyDuplicateNumber(t *testing.T) {
	repo := new(MockCompanyRepository)
	repo.On("Create", mock.Anything).Return(errors.New("UNIQUE constraint failed: companies.company_number"))

	svc := NewCompanyService(repo, validator.New())
	_, apierr := svc.CreateCompany(&contract.CreateCompanyRequest{
		RegisterNumber: strptr("100"),
		CompanyNumber:  "R3306_HRB100",
		FilePath:       "https://example.org/download/x.xml",
	})
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusConflict, apierr.Code())
}

func TestGetCompaniesMapsRows(t *testing.T) {
	repo := new(MockCompanyRepository)
	repo.On("FindAll", 0, 100).Return([]*entity.Company{
		{CompanyNumber: "A", CurrentDesignation: strptr("Acme GmbH")},
		{CompanyNumber: "B"},
	}, nil)

	svc := NewCompanyService(repo, validator.New())
	resp, apierr := svc.GetCompanies(0, 100)
	require.Nil(t, apierr)
	require.Len(t, resp, 2)
	assert.Equal(t, "Acme GmbH", *resp[0].CurrentDesignation)
	assert.Nil(t, resp[1].CurrentDesignation)
}
