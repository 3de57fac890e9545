package dto

import (
	fileModel "filestorage_backend/internals/features/files/file/model"
)

type FileDTO struct {
	ID       uint64 `json:"id"`
	Location string `json:"location"`
}

type FileUpdateRequest struct {
	ID       uint64 `json:"id" validate:"required"`
	Location string `json:"location" validate:"required,max=512"`
}

func FromModel(m *fileModel.FileModel) FileDTO {
	return FileDTO{
		ID:       m.ID,
		Location: m.Location,
	}
}
