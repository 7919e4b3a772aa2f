package contract

type RegisterEntryResponse struct {
	Column        *string    `json:"column"`
	Position      *string    `json:"position"`
	RunningNumber *string    `json:"running_number"`
	EntryTypeCode CodedValue `json:"entry_type_code"`
	Text          *string    `json:"text"`
	CompanyNumber CodedValue `json:"company_number"`
	FilePath      string     `json:"file_path"`
}

type ParticipantPersonResponse struct {
	RoleNumber    *string    `json:"role_number"`
	RoleNameCode  CodedValue `json:"role_name_code"`
	FirstName     *string    `json:"first_name"`
	LastName      *string    `json:"last_name"`
	BirthDate     *string    `json:"birth_date"`
	GenderCode    CodedValue `json:"gender_code"`
	City          *string    `json:"city"`
	StateCode     *string    `json:"state_code"`
	CompanyNumber CodedValue `json:"company_number"`
	FilePath      string     `json:"file_path"`
}

type ParticipantOrganizationResponse struct {
	RoleNumber    *string    `json:"role_number"`
	RoleNameCode  CodedValue `json:"role_name_code"`
	Name          *string    `json:"name"`
	LegalFormCode CodedValue `json:"legal_form_code"`
	City          *string    `json:"city"`
	StateCode     *string    `json:"state_code"`
	CompanyNumber CodedValue `json:"company_number"`
	FilePath      string     `json:"file_path"`
}
