package repository

import (
	"testing"

	"hrindex/cmd/internal/domain/entity"
	"hrindex/cmd/internal/domain/sqlite"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func strptr(s string) *string { return &s }

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := sqlite.Init(":memory:")
	require.NoError(t, err)
	return db
}

func seedCompany(t *testing.T, db *gorm.DB, number string) {
	t.Helper()
	require.NoError(t, db.Create(&entity.Company{
		CompanyNumber:      number,
		CourtSenderCode:    strptr("R3306"),
		LegalFormCode:      strptr("234"),
		AddressTypeCode:    strptr("001"),
		CurrentDesignation: strptr("Acme GmbH"),
	}).Error)
}

func TestFindByNumberJoinsLabels(t *testing.T) {
	db := testDB(t)
	seedCompany(t, db, "R3306_HRB100")
	require.NoError(t, db.Create(&entity.CourtCode{XJustizID: "R3306", Court: strptr("Charlottenburg (Berlin)")}).Error)
	require.NoError(t, db.Create(&entity.LegalForm{Code: "234", Value: strptr("GmbH")}).Error)

	repo := NewCompanyRepository(db)
	detail, err := repo.FindByNumber("R3306_HRB100")
	require.NoError(t, err)
	require.NotNil(t, detail)

	assert.Equal(t, "Charlottenburg (Berlin)", *detail.CourtSenderLabel)
	assert.Equal(t, "GmbH", *detail.LegalFormLabel)
	// No anschriftstyp row seeded: left join keeps the company, label is nil.
	assert.Nil(t, detail.AddressTypeLabel)
}

func TestFindByNumberMissingCompany(t *testing.T) {
	repo := NewCompanyRepository(testDB(t))

	detail, err := repo.FindByNumber("nope")
	require.NoError(t, err)
	assert.Nil(t, detail)
}

func TestFindEntriesByCompanyJoins(t *testing.T) {
	db := testDB(t)
	seedCompany(t, db, "R3306_HRB100")
	require.NoError(t, db.Create(&entity.EntryType{Key: "001", Value: strptr("Neueintragung")}).Error)
	require.NoError(t, db.Create(&entity.RegisterEntry{
		Column:        strptr("2"),
		EntryTypeCode: strptr("001"),
		Text:          strptr("Eintragung."),
		CompanyNumber: "R3306_HRB100",
	}).Error)

	repo := NewRegisterRepository(db)
	rows, err := repo.FindEntriesByCompany("R3306_HRB100")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, "Neueintragung", *rows[0].EntryTypeLabel)
	assert.Equal(t, "Acme GmbH", *rows[0].CompanyDesignation)
}

func TestFindPersonsByCompanyJoins(t *testing.T) {
	db := testDB(t)
	seedCompany(t, db, "R3306_HRB100")
	require.NoError(t, db.Create(&entity.RoleName{Code: "192", Value: strptr("Geschäftsführer(in)")}).Error)
	require.NoError(t, db.Create(&entity.Gender{Code: "M", Value: strptr("männlich")}).Error)
	require.NoError(t, db.Create(&entity.ParticipantPerson{
		RoleNameCode:  strptr("192"),
		GenderCode:    strptr("M"),
		LastName:      strptr("Saraceno"),
		CompanyNumber: "R3306_HRB100",
	}).Error)

	repo := NewRegisterRepository(db)
	rows, err := repo.FindPersonsByCompany("R3306_HRB100")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, "Geschäftsführer(in)", *rows[0].RoleNameLabel)
	assert.Equal(t, "männlich", *rows[0].GenderLabel)
}

func TestFindOrganizationsByCompanyJoins(t *testing.T) {
	db := testDB(t)
	seedCompany(t, db, "R3306_HRB100")
	require.NoError(t, db.Create(&entity.RoleName{Code: "287", Value: strptr("Rechtsträger(in)")}).Error)
	require.NoError(t, db.Create(&entity.ParticipantOrganization{
		RoleNameCode:  strptr("287"),
		Name:          strptr("Acme Holding AG"),
		CompanyNumber: "R3306_HRB100",
	}).Error)

	repo := NewRegisterRepository(db)
	rows, err := repo.FindOrganizationsByCompany("R3306_HRB100")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, "Rechtsträger(in)", *rows[0].RoleNameLabel)
	// No rechtsform code on the row: label stays nil, row still returned.
	assert.Nil(t, rows[0].LegalFormLabel)
}

func TestCodeListReplaceSwapsRows(t *testing.T) {
	db := testDB(t)
	repo := NewCodeListRepository(db)

	require.NoError(t, repo.Replace(&entity.Gender{}, []entity.Gender{
		{Code: "M", Value: strptr("männlich")},
		{Code: "W", Value: strptr("weiblich")},
	}))
	require.NoError(t, repo.Replace(&entity.Gender{}, []entity.Gender{
		{Code: "D", Value: strptr("divers")},
		// Duplicate key within one payload: first row wins, no error.
		{Code: "D", Value: strptr("doppelt")},
	}))

	var rows []entity.Gender
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, "D", rows[0].Code)
	assert.Equal(t, "divers", *rows[0].Value)
}
