package model

import (
	"filestorage_backend/internals/constants"
)

// EventModel maps the events table: the ownership link between a user and a
// file.
type EventModel struct {
	ID     uint64           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID uint64           `gorm:"not null;index" json:"user_id"`
	FileID uint64           `gorm:"not null;index" json:"file_id"`
	Status constants.Status `gorm:"type:varchar(10);not null;default:'ACTIVE'" json:"-"`
}

func (EventModel) TableName() string {
	return "events"
}
