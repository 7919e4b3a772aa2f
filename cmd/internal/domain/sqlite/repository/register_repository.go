package repository

import (
	"hrindex/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

// RegisterEntryDetail joins each ledger line with its entry-type label and
// the owning company's current designation.
type RegisterEntryDetail struct {
	entity.RegisterEntry
	EntryTypeLabel     *string `gorm:"column:entry_type_label"`
	CompanyDesignation *string `gorm:"column:company_designation"`
}

// ParticipantPersonDetail joins a person row with its role and gender labels.
type ParticipantPersonDetail struct {
	entity.ParticipantPerson
	RoleNameLabel      *string `gorm:"column:role_name_label"`
	GenderLabel        *string `gorm:"column:gender_label"`
	CompanyDesignation *string `gorm:"column:company_designation"`
}

// ParticipantOrganizationDetail joins an organization row with its role and
// legal-form labels.
type ParticipantOrganizationDetail struct {
	entity.ParticipantOrganization
	RoleNameLabel      *string `gorm:"column:role_name_label"`
	LegalFormLabel     *string `gorm:"column:legal_form_label"`
	CompanyDesignation *string `gorm:"column:company_designation"`
}

type DefaultRegisterRepository struct {
	db *gorm.DB
}

func NewRegisterRepository(db *gorm.DB) *DefaultRegisterRepository {
	return &DefaultRegisterRepository{db: db}
}

func (r *DefaultRegisterRepository) FindEntriesByCompany(number string) ([]*RegisterEntryDetail, error) {
	var rows []*RegisterEntryDetail
	err := r.db.
		Table("entries").
		Select(`entries.*,
			eintragungsart.Wert AS entry_type_label,
			companies.current_designation AS company_designation`).
		Joins("LEFT JOIN eintragungsart ON entries.entry_type_code = eintragungsart.Schluessel").
		Joins("LEFT JOIN companies ON entries.company_number = companies.company_number").
		Where("entries.company_number = ?", number).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *DefaultRegisterRepository) FindPersonsByCompany(number string) ([]*ParticipantPersonDetail, error) {
	var rows []*ParticipantPersonDetail
	err := r.db.
		Table("participant_persons").
		Select(`participant_persons.*,
			rollenbezeichnung.wert AS role_name_label,
			geschlecht.wert AS gender_label,
			companies.current_designation AS company_designation`).
		Joins("LEFT JOIN rollenbezeichnung ON participant_persons.role_name_code = rollenbezeichnung.code").
		Joins("LEFT JOIN geschlecht ON participant_persons.gender_code = geschlecht.code").
		Joins("LEFT JOIN companies ON participant_persons.company_number = companies.company_number").
		Where("participant_persons.company_number = ?", number).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *DefaultRegisterRepository) FindOrganizationsByCompany(number string) ([]*ParticipantOrganizationDetail, error) {
	var rows []*ParticipantOrganizationDetail
	err := r.db.
		Table("participant_organizations").
		Select(`participant_organizations.*,
			rollenbezeichnung.wert AS role_name_label,
			rechtsform.wert AS legal_form_label,
			companies.current_designation AS company_designation`).
		Joins("LEFT JOIN rollenbezeichnung ON participant_organizations.role_name_code = rollenbezeichnung.code").
		Joins("LEFT JOIN rechtsform ON participant_organizations.legal_form_code = rechtsform.code").
		Joins("LEFT JOIN companies ON participant_organizations.company_number = companies.company_number").
		Where("participant_organizations.company_number = ?", number).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
