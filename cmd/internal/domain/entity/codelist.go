package entity

// Code list tables mirror the xrepository.de genericode downloads. They keep
// the German column names of the published lists so the payloads can be
// loaded without a translation layer. Each table is dropped and reloaded as a
// whole by the reference data sync; the core ingest never writes them.

// Gender is urn:xoev-de:xjustiz:codeliste:gds.geschlecht.
type Gender struct {
	Code        string  `gorm:"primaryKey;column:code"`
	Value       *string `gorm:"column:wert"`
	Description *string `gorm:"column:beschreibung"`
}

func (Gender) TableName() string {
	return "geschlecht"
}

// LegalForm is urn:xoev-de:xjustiz:codeliste:gds.rechtsform.
type LegalForm struct {
	Code        string  `gorm:"primaryKey;column:code"`
	Value       *string `gorm:"column:wert"`
	Description *string `gorm:"column:beschreibung"`
}

func (LegalForm) TableName() string {
	return "rechtsform"
}

// CourtCode is urn:xoev-de:xgewerbeanzeige:codeliste:registergerichte. The
// XJustiz id is what filings carry as the sender court code.
type CourtCode struct {
	XJustizID   string  `gorm:"primaryKey;column:XJustiz_Id"`
	Court       *string `gorm:"column:Registergericht"`
	Kind        *string `gorm:"column:Art"`
	State       *string `gorm:"column:Land"`
	PostalCode  *string `gorm:"column:PLZ"`
	ValidUntil  *string `gorm:"column:gueltigBis"`
	FutureCodes *string `gorm:"column:kuenftigZuVerwendendeCodes"`
}

func (CourtCode) TableName() string {
	return "gerichtscode"
}

// RoleName is urn:xoev-de:xjustiz:codeliste:gds.rollenbezeichnung.
type RoleName struct {
	Code   string  `gorm:"primaryKey;column:code"`
	Value  *string `gorm:"column:wert"`
	Module *string `gorm:"column:fachmodul"`
}

func (RoleName) TableName() string {
	return "rollenbezeichnung"
}

// EntryType is urn:xoev-de:xjustiz:codeliste:reg.eintragungsart.
type EntryType struct {
	Key   string  `gorm:"primaryKey;column:Schluessel"`
	Value *string `gorm:"column:Wert"`
}

func (EntryType) TableName() string {
	return "eintragungsart"
}

// AddressType is urn:xoev-de:xjustiz:codeliste:gds.anschriftstyp.
type AddressType struct {
	Code  string  `gorm:"primaryKey;column:code"`
	Value *string `gorm:"column:wert"`
}

func (AddressType) TableName() string {
	return "anschriftstyp"
}
