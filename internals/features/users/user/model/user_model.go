package model

import (
	"time"

	"filestorage_backend/internals/constants"
)

// UserModel maps the users table.
type UserModel struct {
	ID        uint64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Username  string           `gorm:"size:64;not null" json:"username"`
	Password  string           `gorm:"not null" json:"-"`
	Role      string           `gorm:"type:varchar(20);not null;default:'USER'" json:"role"`
	FirstName string           `gorm:"size:64" json:"first_name"`
	LastName  string           `gorm:"size:64" json:"last_name"`
	Enabled   bool             `gorm:"not null" json:"enabled"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
	Status    constants.Status `gorm:"type:varchar(10);not null;default:'ACTIVE'" json:"-"`
}

func (UserModel) TableName() string {
	return "users"
}
