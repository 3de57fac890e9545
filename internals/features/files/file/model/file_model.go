package model

import (
	"filestorage_backend/internals/constants"
)

// FileModel maps the files table. The location's last path segment is the
// human-readable filename.
type FileModel struct {
	ID       uint64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Location string           `gorm:"size:512;not null" json:"location"`
	Status   constants.Status `gorm:"type:varchar(10);not null;default:'ACTIVE'" json:"-"`
}

func (FileModel) TableName() string {
	return "files"
}
