package entity

// RegisterEntry is one free-text ledger line from the register excerpt
// (tns:auszug/tns:eintragungstext). "column" is the printed register column
// the line belongs to.
type RegisterEntry struct {
	ID            uint    `gorm:"primaryKey" json:"-"`
	Column        *string `gorm:"column:column"`
	Position      *string `gorm:"column:position"`
	RunningNumber *string `gorm:"column:running_number"`
	EntryTypeCode *string `gorm:"column:entry_type_code"`
	Text          *string `gorm:"column:text"`
	CompanyNumber string  `gorm:"column:company_number;index"`
	FilePath      string  `gorm:"column:file_path"`
}

func (RegisterEntry) TableName() string {
	return "entries"
}
