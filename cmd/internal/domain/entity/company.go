package entity

// Company is one row per legal entity, keyed by the derived company number
// (court code + register code + register number + addition). Almost every
// field is a pointer: the XJustiz schema marks nearly everything optional
// and absent values must persist as NULL, not "".
type Company struct {
	CourtSenderCode        *string `gorm:"column:court_sender_code"`
	CurrentStatuteDate     *string `gorm:"column:current_statute_date"`
	CurrentDesignation     *string `gorm:"column:current_designation"`
	LegalFormCode          *string `gorm:"column:legal_form_code"`
	Location               *string `gorm:"column:location"`
	AddressTypeCode        *string `gorm:"column:address_type_code"`
	Street                 *string `gorm:"column:street"`
	HouseNumber            *string `gorm:"column:house_number"`
	PostalCode             *string `gorm:"column:postal_code"`
	City                   *string `gorm:"column:city"`
	State                  *string `gorm:"column:state"`
	SubjectMatter          *string `gorm:"column:subject_matter"`
	RegisterCode           *string `gorm:"column:register_code"`
	RegisterNumber         *string `gorm:"column:register_number"`
	RegisterNumberAddition *string `gorm:"column:register_number_addition"`
	CompanyNumber          string  `gorm:"primaryKey;column:company_number"`
	FilePath               string  `gorm:"column:file_path"`
	Opencorporates         string  `gorm:"column:opencorporates"`
}

func (Company) TableName() string {
	return "companies"
}
