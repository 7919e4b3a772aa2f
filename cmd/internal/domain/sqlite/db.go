package sqlite

import (
	"time"

	"hrindex/cmd/internal/domain/entity"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// Init opens the store and migrates all tables. AutoMigrate is idempotent,
// so every process (api, loader) can call this at startup without
// coordination.
func Init(dbPath string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&entity.Company{},
		&entity.ParticipantPerson{},
		&entity.ParticipantOrganization{},
		&entity.RegisterEntry{},
		&entity.Gender{},
		&entity.LegalForm{},
		&entity.CourtCode{},
		&entity.RoleName{},
		&entity.EntryType{},
		&entity.AddressType{},
	)
	if err != nil {
		return nil, err
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}
