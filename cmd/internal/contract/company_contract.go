package contract

// CodedValue pairs a raw code with its label from the matching code-list
// table. Label is nil when the code has no match (or the code itself is
// absent).
type CodedValue struct {
	Value *string `json:"value"`
	Label *string `json:"label"`
}

type CompanyResponse struct {
	CourtSenderCode        *string `json:"court_sender_code"`
	CurrentStatuteDate     *string `json:"current_statute_date"`
	CurrentDesignation     *string `json:"current_designation"`
	LegalFormCode          *string `json:"legal_form_code"`
	Location               *string `json:"location"`
	AddressTypeCode        *string `json:"address_type_code"`
	Street                 *string `json:"street"`
	HouseNumber            *string `json:"house_number"`
	PostalCode             *string `json:"postal_code"`
	City                   *string `json:"city"`
	State                  *string `json:"state"`
	SubjectMatter          *string `json:"subject_matter"`
	RegisterCode           *string `json:"register_code"`
	RegisterNumber         *string `json:"register_number"`
	RegisterNumberAddition *string `json:"register_number_addition"`
	CompanyNumber          string  `json:"company_number"`
	FilePath               string  `json:"file_path"`
	Opencorporates         string  `json:"opencorporates"`
}

// CompanyDetailResponse is the single-company view with code-list labels
// resolved.
type CompanyDetailResponse struct {
	CourtSenderCode        CodedValue `json:"court_sender_code"`
	CurrentStatuteDate     *string    `json:"current_statute_date"`
	CurrentDesignation     *string    `json:"current_designation"`
	LegalFormCode          CodedValue `json:"legal_form_code"`
	Location               *string    `json:"location"`
	AddressTypeCode        CodedValue `json:"address_type_code"`
	Street                 *string    `json:"street"`
	HouseNumber            *string    `json:"house_number"`
	PostalCode             *string    `json:"postal_code"`
	City                   *string    `json:"city"`
	State                  *string    `json:"state"`
	SubjectMatter          *string    `json:"subject_matter"`
	RegisterCode           *string    `json:"register_code"`
	RegisterNumber         *string    `json:"register_number"`
	RegisterNumberAddition *string    `json:"register_number_addition"`
	CompanyNumber          string     `json:"company_number"`
	FilePath               string     `json:"file_path"`
	Opencorporates         string     `json:"opencorporates"`
}

type CreateCompanyRequest struct {
	CourtSenderCode        *string `json:"court_sender_code"`
	CurrentStatuteDate     *string `json:"current_statute_date"`
	CurrentDesignation     *string `json:"current_designation"`
	LegalFormCode          *string `json:"legal_form_code"`
	Location               *string `json:"location"`
	AddressTypeCode        *string `json:"address_type_code"`
	Street                 *string `json:"street"`
	HouseNumber            *string `json:"house_number"`
	PostalCode             *string `json:"postal_code"`
	City                   *string `json:"city"`
	State                  *string `json:"state"`
	SubjectMatter          *string `json:"subject_matter"`
	RegisterCode           *string `json:"register_code"`
	RegisterNumber         *string `json:"register_number" validate:"required"`
	RegisterNumberAddition *string `json:"register_number_addition"`
	CompanyNumber          string  `json:"company_number" validate:"required"`
	FilePath               string  `json:"file_path" validate:"required"`
	Opencorporates         string  `json:"opencorporates" validate:"omitempty,url"`
}

type CountResponse struct {
	Total int64 `json:"total"`
}
