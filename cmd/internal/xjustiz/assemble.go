package xjustiz

import (
	"fmt"

	"hrindex/cmd/internal/domain/entity"
)

// RoleLegalEntityHolder is the gds.rollenbezeichnung code for
// "Rechtsträger(in)" — the participant that IS the registered entity. When a
// filing has no company designation of its own, this participant's name is
// the designation.
const RoleLegalEntityHolder = "287"

// Filing is everything one authoritative document contributes to the store.
// Participants keep source order. The dropped counts cover participant blocks
// matching neither selector and malformed entry nodes; both are tolerated but
// reported.
type Filing struct {
	Company             *entity.Company
	Participants        []Participant
	Entries             []*entity.RegisterEntry
	DroppedParticipants int
	DroppedEntries      int
}

// Assemble builds the full record set for one parsed filing. fileURL is the
// already-public download URL recorded on every row. Pure value construction;
// the only error is a filing that cannot be keyed (ErrNoRegisterReference).
func Assemble(doc Document, fileURL string) (*Filing, error) {
	company, ref := extractCompany(doc)

	number, err := ref.Resolve()
	if err != nil {
		return nil, err
	}

	company.RegisterCode = ref.RegisterCode
	company.RegisterNumber = ref.RegisterNumber
	company.RegisterNumberAddition = ref.RegisterNumberAddition
	company.CompanyNumber = number
	company.FilePath = fileURL
	company.Opencorporates = fmt.Sprintf("https://www.opencorporates.com/companies/de/%s", number)

	participants, droppedParticipants := extractParticipants(doc, number, fileURL)
	entries, droppedEntries := extractEntries(doc, number, fileURL)

	if company.CurrentDesignation == nil {
		for _, p := range participants {
			if p.Organization == nil || p.Organization.RoleNameCode == nil {
				continue
			}
			if *p.Organization.RoleNameCode == RoleLegalEntityHolder {
				company.CurrentDesignation = p.Organization.Name
				break
			}
		}
	}

	return &Filing{
		Company:             company,
		Participants:        participants,
		Entries:             entries,
		DroppedParticipants: droppedParticipants,
		DroppedEntries:      droppedEntries,
	}, nil
}
