package dto

import (
	eventModel "filestorage_backend/internals/features/files/event/model"
	fileDTO "filestorage_backend/internals/features/files/file/dto"
	fileModel "filestorage_backend/internals/features/files/file/model"
)

// EventDTO carries the link plus its file. Orphaned events (file row missing
// or soft-deleted) keep a zero-value file instead of failing the read.
type EventDTO struct {
	ID     uint64          `json:"id"`
	UserID uint64          `json:"user_id"`
	FileID uint64          `json:"file_id"`
	File   fileDTO.FileDTO `json:"file"`
}

type EventBasicDTO struct {
	ID     uint64 `json:"id"`
	UserID uint64 `json:"user_id"`
	FileID uint64 `json:"file_id"`
}

type EventUpdateRequest struct {
	UserID uint64 `json:"user_id" validate:"required"`
	FileID uint64 `json:"file_id" validate:"required"`
}

func FromModels(e *eventModel.EventModel, f *fileModel.FileModel) EventDTO {
	d := EventDTO{
		ID:     e.ID,
		UserID: e.UserID,
		FileID: e.FileID,
	}
	if f != nil {
		d.File = fileDTO.FromModel(f)
	}
	return d
}

func BasicFromModel(e *eventModel.EventModel) EventBasicDTO {
	return EventBasicDTO{
		ID:     e.ID,
		UserID: e.UserID,
		FileID: e.FileID,
	}
}
