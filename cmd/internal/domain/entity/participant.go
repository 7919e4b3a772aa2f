package entity

// ParticipantPerson is a natural person holding a role in relation to a
// company. Rows are fully replaced on every ingest pass, never updated.
type ParticipantPerson struct {
	ID            uint    `gorm:"primaryKey" json:"-"`
	RoleNumber    *string `gorm:"column:role_number"`
	RoleNameCode  *string `gorm:"column:role_name_code"`
	FirstName     *string `gorm:"column:first_name"`
	LastName      *string `gorm:"column:last_name"`
	BirthDate     *string `gorm:"column:birth_date"`
	GenderCode    *string `gorm:"column:gender_code"`
	City          *string `gorm:"column:city"`
	StateCode     *string `gorm:"column:state_code"`
	CompanyNumber string  `gorm:"column:company_number;index"`
	FilePath      string  `gorm:"column:file_path"`
}

func (ParticipantPerson) TableName() string {
	return "participant_persons"
}

// ParticipantOrganization is an organization holding a role in relation to a
// company, e.g. a corporate shareholder or the legal entity holder itself.
type ParticipantOrganization struct {
	ID            uint    `gorm:"primaryKey" json:"-"`
	RoleNumber    *string `gorm:"column:role_number"`
	RoleNameCode  *string `gorm:"column:role_name_code"`
	Name          *string `gorm:"column:name"`
	LegalFormCode *string `gorm:"column:legal_form_code"`
	City          *string `gorm:"column:city"`
	StateCode     *string `gorm:"column:state_code"`
	CompanyNumber string  `gorm:"column:company_number;index"`
	FilePath      string  `gorm:"column:file_path"`
}

func (ParticipantOrganization) TableName() string {
	return "participant_organizations"
}
