package service

import (
	"hrindex/cmd/internal/contract"
	"hrindex/cmd/internal/domain/sqlite/repository"
	"hrindex/cmd/internal/utils/apierror"

	"github.com/labstack/gommon/log"
)

type RegisterRepository interface {
	FindEntriesByCompany(number string) ([]*repository.RegisterEntryDetail, error)
	FindPersonsByCompany(number string) ([]*repository.ParticipantPersonDetail, error)
	FindOrganizationsByCompany(number string) ([]*repository.ParticipantOrganizationDetail, error)
}

type DefaultRegisterService struct {
	RegisterRepo RegisterRepository
}

func NewRegisterService(repo RegisterRepository) *DefaultRegisterService {
	return &DefaultRegisterService{RegisterRepo: repo}
}

func (s *DefaultRegisterService) GetEntries(number string) ([]*contract.RegisterEntryResponse, apierror.ErrorResponse) {
	rows, err := s.RegisterRepo.FindEntriesByCompany(number)
	if err != nil {
		log.Errorf("failed to fetch register entries for %s: %v", number, err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.RegisterEntryResponse, len(rows))
	for i, row := range rows {
		cn := row.CompanyNumber
		resp[i] = &contract.RegisterEntryResponse{
			Column:        row.Column,
			Position:      row.Position,
			RunningNumber: row.RunningNumber,
			EntryTypeCode: contract.CodedValue{Value: row.EntryTypeCode, Label: row.EntryTypeLabel},
			Text:          row.Text,
			CompanyNumber: contract.CodedValue{Value: &cn, Label: row.CompanyDesignation},
			FilePath:      row.FilePath,
		}
	}
	return resp, nil
}

func (s *DefaultRegisterService) GetPersons(number string) ([]*contract.ParticipantPersonResponse, apierror.ErrorResponse) {
	rows, err := s.RegisterRepo.FindPersonsByCompany(number)
	if err != nil {
		log.Errorf("failed to fetch participant persons for %s: %v", number, err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.ParticipantPersonResponse, len(rows))
	for i, row := range rows {
		cn := row.CompanyNumber
		resp[i] = &contract.ParticipantPersonResponse{
			RoleNumber:    row.RoleNumber,
			RoleNameCode:  contract.CodedValue{Value: row.RoleNameCode, Label: row.RoleNameLabel},
			FirstName:     row.FirstName,
			LastName:      row.LastName,
			BirthDate:     row.BirthDate,
			GenderCode:    contract.CodedValue{Value: row.GenderCode, Label: row.GenderLabel},
			City:          row.City,
			StateCode:     row.StateCode,
			CompanyNumber: contract.CodedValue{Value: &cn, Label: row.CompanyDesignation},
			FilePath:      row.FilePath,
		}
	}
	return resp, nil
}

func (s *DefaultRegisterService) GetOrganizations(number string) ([]*contract.ParticipantOrganizationResponse, apierror.ErrorResponse) {
	rows, err := s.RegisterRepo.FindOrganizationsByCompany(number)
	if err != nil {
		log.Errorf("failed to fetch participant organizations for %s: %v", number, err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.ParticipantOrganizationResponse, len(rows))
	for i, row := range rows {
		cn := row.CompanyNumber
		resp[i] = &contract.ParticipantOrganizationResponse{
			RoleNumber:    row.RoleNumber,
			RoleNameCode:  contract.CodedValue{Value: row.RoleNameCode, Label: row.RoleNameLabel},
			Name:          row.Name,
			LegalFormCode: contract.CodedValue{Value: row.LegalFormCode, Label: row.LegalFormLabel},
			City:          row.City,
			StateCode:     row.StateCode,
			CompanyNumber: contract.CodedValue{Value: &cn, Label: row.CompanyDesignation},
			FilePath:      row.FilePath,
		}
	}
	return resp, nil
}
