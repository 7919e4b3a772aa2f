package xrepository

import (
	"hrindex/cmd/internal/domain/entity"
)

// ListSpec binds one published code list to the table it feeds. Convert
// returns a slice of the matching entity type, ready for a drop-and-reload.
type ListSpec struct {
	Name    string
	Path    string
	Model   any
	Convert func(rows []Row) any
}

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// Lists enumerates the six code lists the read API joins against. Paths pin
// specific list versions; bumping a version is a deliberate change.
func Lists() []ListSpec {
	return []ListSpec{
		{
			Name:  "geschlecht",
			Path:  "urn:xoev-de:xjustiz:codeliste:gds.geschlecht_2.1/download/GDS.Geschlecht_2.1.json",
			Model: &entity.Gender{},
			Convert: func(rows []Row) any {
				out := make([]entity.Gender, 0, len(rows))
				for _, r := range rows {
					out = append(out, entity.Gender{
						Code:        str(r.Get("code")),
						Value:       r.Get("wert"),
						Description: r.Get("beschreibung"),
					})
				}
				return out
			},
		},
		{
			Name:  "rechtsform",
			Path:  "urn:xoev-de:xjustiz:codeliste:gds.rechtsform_3.4/download/GDS.Rechtsform_3.4.json",
			Model: &entity.LegalForm{},
			Convert: func(rows []Row) any {
				out := make([]entity.LegalForm, 0, len(rows))
				for _, r := range rows {
					out = append(out, entity.LegalForm{
						Code:        str(r.Get("code")),
						Value:       r.Get("wert"),
						Description: r.Get("beschreibung"),
					})
				}
				return out
			},
		},
		{
			Name:  "gerichtscode",
			Path:  "urn:xoev-de:xgewerbeanzeige:codeliste:registergerichte_11/download/Registergerichte_11.json",
			Model: &entity.CourtCode{},
			Convert: func(rows []Row) any {
				out := make([]entity.CourtCode, 0, len(rows))
				for _, r := range rows {
					out = append(out, entity.CourtCode{
						XJustizID:   str(r.Get("XJustiz_Id")),
						Court:       r.Get("Registergericht"),
						Kind:        r.Get("Art"),
						State:       r.Get("Land"),
						PostalCode:  r.Get("PLZ"),
						ValidUntil:  r.Get("gueltigBis"),
						FutureCodes: r.Get("kuenftigZuVerwendendeCodes"),
					})
				}
				return out
			},
		},
		{
			Name:  "rollenbezeichnung",
			Path:  "urn:xoev-de:xjustiz:codeliste:gds.rollenbezeichnung_3.5/download/GDS.Rollenbezeichnung_3.5.json",
			Model: &entity.RoleName{},
			Convert: func(rows []Row) any {
				out := make([]entity.RoleName, 0, len(rows))
				for _, r := range rows {
					out = append(out, entity.RoleName{
						Code:   str(r.Get("code")),
						Value:  r.Get("wert"),
						Module: r.Get("fachmodul"),
					})
				}
				return out
			},
		},
		{
			Name:  "eintragungsart",
			Path:  "urn:xoev-de:xjustiz:codeliste:reg.eintragungsart_2.0/download/REG.Eintragungsart_2.0.json",
			Model: &entity.EntryType{},
			Convert: func(rows []Row) any {
				out := make([]entity.EntryType, 0, len(rows))
				for _, r := range rows {
					out = append(out, entity.EntryType{
						Key:   str(r.Get("Schluessel")),
						Value: r.Get("Wert"),
					})
				}
				return out
			},
		},
		{
			Name:  "anschriftstyp",
			Path:  "urn:xoev-de:xjustiz:codeliste:gds.anschriftstyp_3.0/download/GDS.Anschriftstyp_3.0.json",
			Model: &entity.AddressType{},
			Convert: func(rows []Row) any {
				out := make([]entity.AddressType, 0, len(rows))
				for _, r := range rows {
					out = append(out, entity.AddressType{
						Code:  str(r.Get("code")),
						Value: r.Get("wert"),
					})
				}
				return out
			},
		},
	}
}
