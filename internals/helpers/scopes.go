package helper

import (
	"gorm.io/gorm"

	"filestorage_backend/internals/constants"
)

// Active injects the soft-delete predicate. Every repository query that reads,
// updates or deletes rows goes through this scope so a new query cannot forget
// it.
func Active(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", constants.StatusActive)
}
