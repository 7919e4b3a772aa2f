package repository

import (
	"errors"

	"hrindex/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

// CompanyDetail is a company row widened with the human-readable labels of
// its coded fields. Labels come from LEFT joins against the code-list
// tables, so a company whose code has no match still comes back, just with a
// nil label.
type CompanyDetail struct {
	entity.Company
	CourtSenderLabel *string `gorm:"column:court_sender_label"`
	LegalFormLabel   *string `gorm:"column:legal_form_label"`
	AddressTypeLabel *string `gorm:"column:address_type_label"`
}

type DefaultCompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *DefaultCompanyRepository {
	return &DefaultCompanyRepository{db: db}
}

func (r *DefaultCompanyRepository) Count() (int64, error) {
	var total int64
	err := r.db.Model(&entity.Company{}).Count(&total).Error
	return total, err
}

func (r *DefaultCompanyRepository) FindAll(skip, limit int) ([]*entity.Company, error) {
	var companies []*entity.Company
	err := r.db.
		Offset(skip).
		Limit(limit).
		Find(&companies).Error
	if err != nil {
		return nil, err
	}
	return companies, nil
}

func (r *DefaultCompanyRepository) FindByNumber(number string) (*CompanyDetail, error) {
	var detail CompanyDetail
	err := r.db.
		Table("companies").
		Select(`companies.*,
			gerichtscode.Registergericht AS court_sender_label,
			rechtsform.wert AS legal_form_label,
			anschriftstyp.wert AS address_type_label`).
		Joins("LEFT JOIN gerichtscode ON companies.court_sender_code = gerichtscode.XJustiz_Id").
		Joins("LEFT JOIN rechtsform ON companies.legal_form_code = rechtsform.code").
		Joins("LEFT JOIN anschriftstyp ON companies.address_type_code = anschriftstyp.code").
		Where("companies.company_number = ?", number).
		Take(&detail).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

func (r *DefaultCompanyRepository) Create(company *entity.Company) error {
	return r.db.Create(company).Error
}
