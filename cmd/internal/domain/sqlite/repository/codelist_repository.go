package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DefaultCodeListRepository drop-and-reloads code-list tables. The published
// lists occasionally repeat keys; OnConflict DoNothing keeps the first row
// and skips the duplicate, instead of failing the whole list.
type DefaultCodeListRepository struct {
	db *gorm.DB
}

func NewCodeListRepository(db *gorm.DB) *DefaultCodeListRepository {
	return &DefaultCodeListRepository{db: db}
}

// Replace clears the table behind model and inserts rows. rows must be a
// slice of the same entity type as model. The swap runs in one transaction so
// readers never see a half-loaded list.
func (r *DefaultCodeListRepository) Replace(model any, rows any) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			return err
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).
			CreateInBatches(rows, 200).Error
	})
}
