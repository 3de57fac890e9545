package dto

import (
	"strings"
	"time"

	eventDTO "filestorage_backend/internals/features/files/event/dto"
	userModel "filestorage_backend/internals/features/users/user/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type RegisterRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=64"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name" validate:"omitempty,max=64"`
	LastName  string `json:"last_name" validate:"omitempty,max=64"`
}

func (r *RegisterRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
}

// UserUpdateRequest is an admin-only update. An empty password means
// "keep the current hash".
type UserUpdateRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=64"`
	Password  string `json:"password" validate:"omitempty,min=8"`
	Role      string `json:"role" validate:"omitempty,oneof=USER MODERATOR ADMIN"`
	FirstName string `json:"first_name" validate:"omitempty,max=64"`
	LastName  string `json:"last_name" validate:"omitempty,max=64"`
	Enabled   *bool  `json:"enabled,omitempty"`
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type UserBasicDTO struct {
	ID        uint64    `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Enabled   bool      `json:"enabled"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserDTO is the detailed shape: the user plus their events (each with its
// file embedded).
type UserDTO struct {
	UserBasicDTO
	Events []eventDTO.EventDTO `json:"events"`
}

func BasicFromModel(m *userModel.UserModel) UserBasicDTO {
	return UserBasicDTO{
		ID:        m.ID,
		Username:  m.Username,
		Role:      m.Role,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Enabled:   m.Enabled,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func FromModel(m *userModel.UserModel, events []eventDTO.EventDTO) UserDTO {
	if events == nil {
		events = []eventDTO.EventDTO{}
	}
	return UserDTO{
		UserBasicDTO: BasicFromModel(m),
		Events:       events,
	}
}
