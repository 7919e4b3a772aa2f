package xjustiz

import (
	"hrindex/cmd/internal/domain/entity"
)

// Participant is one tns:beteiligung block: exactly one of the two variants
// is set, discriminated by which selector key the filing carried
// (tns:natuerlichePerson vs tns:organisation).
type Participant struct {
	Person       *entity.ParticipantPerson
	Organization *entity.ParticipantOrganization
}

// extractCompany pulls the company-level fields out of the message. The
// register reference comes back separately because the identifier resolver
// may still rewrite its parts from free text before anything is persisted.
func extractCompany(doc Document) (*entity.Company, *RegisterReference) {
	msg := doc[RootMessage]

	head := lookup(msg, "tns:nachrichtenkopf")
	basis := lookup(msg, "tns:fachdatenRegister", "tns:basisdatenRegister")
	legal := lookup(basis, "tns:rechtstraeger")

	address := first(lookup(legal, "tns:anschrift"))

	company := &entity.Company{
		CourtSenderCode:    lookupString(head, "tns:auswahl_absender", "tns:absender.gericht", "code"),
		CurrentStatuteDate: lookupString(basis, "tns:satzungsdatum", "tns:aktuellesSatzungsdatum"),
		CurrentDesignation: lookupString(legal, "tns:bezeichnung", "tns:bezeichnung.aktuell"),
		LegalFormCode:      lookupString(legal, "tns:angabenZurRechtsform", "tns:rechtsform", "code"),
		Location:           lookupString(legal, "tns:sitz", "tns:ort"),
		AddressTypeCode:    lookupString(address, "tns:anschriftstyp", "code"),
		Street:             lookupString(address, "tns:strasse"),
		HouseNumber:        lookupString(address, "tns:hausnummer"),
		PostalCode:         lookupString(address, "tns:postleitzahl"),
		City:               lookupString(address, "tns:ort"),
		State:              lookupString(address, "tns:staat", "tns:auswahl_staat", "tns:staat", "code"),
		SubjectMatter:      lookupString(basis, "tns:gegenstand"),
	}

	structured := lookup(msg,
		"tns:grunddaten", "tns:verfahrensdaten", "tns:instanzdaten",
		"tns:aktenzeichen", "tns:auswahl_aktenzeichen", "tns:aktenzeichen.strukturiert")

	ref := &RegisterReference{
		CourtSenderCode:        company.CourtSenderCode,
		RegisterCode:           lookupString(structured, "tns:register", "code"),
		RegisterNumber:         lookupString(structured, "tns:laufendeNummer"),
		RegisterNumberAddition: lookupString(structured, "tns:zusatz"),
		FreeText:               lookupString(structured, "tns:aktenzeichen.freitext"),
		SenderFileReference:    lookupString(head, "tns:aktenzeichen.absender"),
	}

	return company, ref
}

// extractParticipants walks tns:beteiligung and classifies each block as a
// person or an organization. Blocks matching neither selector are dropped;
// the count comes back so the loader can report them.
func extractParticipants(doc Document, companyNumber, fileURL string) ([]Participant, int) {
	blocks := asList(lookup(doc[RootMessage], "tns:grunddaten", "tns:verfahrensdaten", "tns:beteiligung"))

	var participants []Participant
	dropped := 0
	for _, block := range blocks {
		role := first(lookup(block, "tns:rolle"))
		roleNumber := lookupString(role, "tns:rollennummer")
		roleNameCode := lookupString(role, "tns:rollenbezeichnung", "code")

		selector := lookup(block, "tns:beteiligter", "tns:auswahl_beteiligter")
		if person := lookup(selector, "tns:natuerlichePerson"); person != nil {
			address := first(lookup(person, "tns:anschrift"))
			participants = append(participants, Participant{
				Person: &entity.ParticipantPerson{
					RoleNumber:    roleNumber,
					RoleNameCode:  roleNameCode,
					FirstName:     lookupString(person, "tns:vollerName", "tns:vorname"),
					LastName:      lookupString(person, "tns:vollerName", "tns:nachname"),
					BirthDate:     lookupString(person, "tns:geburt", "tns:geburtsdatum"),
					GenderCode:    lookupString(person, "tns:geschlecht", "code"),
					City:          lookupString(address, "tns:ort"),
					StateCode:     lookupString(address, "tns:staat", "tns:auswahl_staat", "tns:staat", "code"),
					CompanyNumber: companyNumber,
					FilePath:      fileURL,
				},
			})
			continue
		}
		if org := lookup(selector, "tns:organisation"); org != nil {
			address := first(lookup(org, "tns:anschrift"))
			participants = append(participants, Participant{
				Organization: &entity.ParticipantOrganization{
					RoleNumber:    roleNumber,
					RoleNameCode:  roleNameCode,
					Name:          lookupString(org, "tns:bezeichnung", "tns:bezeichnung.aktuell"),
					LegalFormCode: lookupString(org, "tns:angabenZurRechtsform", "tns:rechtsform", "code"),
					City:          lookupString(org, "tns:sitz", "tns:ort"),
					StateCode:     lookupString(address, "tns:staat", "tns:auswahl_staat", "tns:staat", "code"),
					CompanyNumber: companyNumber,
					FilePath:      fileURL,
				},
			})
			continue
		}
		dropped++
	}
	return participants, dropped
}

// extractEntries walks the register excerpt's tns:eintragungstext lines.
// Nodes that are not element maps are skipped and counted.
func extractEntries(doc Document, companyNumber, fileURL string) ([]*entity.RegisterEntry, int) {
	nodes := asList(lookup(doc[RootMessage], "tns:fachdatenRegister", "tns:auszug", "tns:eintragungstext"))

	var entries []*entity.RegisterEntry
	dropped := 0
	for _, node := range nodes {
		if _, ok := node.(map[string]any); !ok {
			dropped++
			continue
		}
		entries = append(entries, &entity.RegisterEntry{
			Column:        lookupString(node, "tns:spalte"),
			Position:      lookupString(node, "tns:position"),
			RunningNumber: lookupString(node, "tns:laufendeNummer"),
			EntryTypeCode: lookupString(node, "tns:eintragungsart", "code"),
			Text:          lookupString(node, "tns:text"),
			CompanyNumber: companyNumber,
			FilePath:      fileURL,
		})
	}
	return entries, dropped
}
