package service

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eventRepo "filestorage_backend/internals/features/files/event/repository"
	fileDTO "filestorage_backend/internals/features/files/file/dto"
	fileModel "filestorage_backend/internals/features/files/file/model"
	fileRepo "filestorage_backend/internals/features/files/file/repository"
	"filestorage_backend/internals/policy"
)

const ErrAccessDenied = "Access denied"

type FileService struct {
	Files  *fileRepo.FileRepository
	Events *eventRepo.EventRepository
}

func NewFileService(db *gorm.DB) *FileService {
	return &FileService{
		Files:  fileRepo.NewFileRepository(db),
		Events: eventRepo.NewEventRepository(db),
	}
}

// GetByIDAndCaller resolves visibility through the ownership link: a USER
// caller must hold an active event tying them to this file id, and that link
// is checked before the row itself, so a foreign file id reads as Forbidden
// rather than NotFound.
func (s *FileService) GetByIDAndCaller(fileID uint64, caller policy.Caller) (*fileDTO.FileDTO, error) {
	if !caller.IsAdminOrModerator() {
		linked, err := s.Events.ExistsActiveByFileIDAndUserID(fileID, caller.UserID)
		if err != nil {
			return nil, err
		}
		if !linked {
			return nil, fiber.NewError(fiber.StatusForbidden, ErrAccessDenied)
		}
	}

	f, err := s.Files.FindActiveByID(fileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, fileNotFoundMsg(fileID))
		}
		return nil, err
	}
	d := fileDTO.FromModel(f)
	return &d, nil
}

// GetAllForCaller lists files; a USER caller is implicitly restricted to
// their own files.
func (s *FileService) GetAllForCaller(caller policy.Caller) ([]fileDTO.FileDTO, error) {
	userID := policy.ScopeUserID(caller, 0)
	if userID == 0 {
		files, err := s.Files.FindAllActive()
		if err != nil {
			return nil, err
		}
		return toDTOs(files), nil
	}
	return s.GetAllByUserID(userID)
}

func (s *FileService) GetAllByUserID(userID uint64) ([]fileDTO.FileDTO, error) {
	files, err := s.Files.FindAllActiveByUserID(userID)
	if err != nil {
		return nil, err
	}
	return toDTOs(files), nil
}

// Update mutates only the location.
func (s *FileService) Update(req *fileDTO.FileUpdateRequest) (*fileDTO.FileDTO, error) {
	f, err := s.Files.FindActiveByID(req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, fileNotFoundMsg(req.ID))
		}
		return nil, err
	}

	f.Location = req.Location
	if err := s.Files.Save(f); err != nil {
		log.Printf("[ERROR] update file %d: %v", req.ID, err)
		return nil, err
	}
	d := fileDTO.FromModel(f)
	return &d, nil
}

func (s *FileService) DeleteByID(id uint64) error {
	affected, err := s.Files.SoftDeleteByID(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fiber.NewError(fiber.StatusNotFound, fileNotFoundMsg(id))
	}
	return nil
}

func (s *FileService) DeleteAllByUserID(userID uint64) (int64, error) {
	return s.Files.SoftDeleteAllByUserID(userID)
}

func (s *FileService) DeleteAll() (int64, error) {
	return s.Files.SoftDeleteAll()
}

func toDTOs(files []fileModel.FileModel) []fileDTO.FileDTO {
	dtos := make([]fileDTO.FileDTO, 0, len(files))
	for i := range files {
		dtos = append(dtos, fileDTO.FromModel(&files[i]))
	}
	return dtos
}

func fileNotFoundMsg(id uint64) string {
	return fmt.Sprintf("File with ID = '%d' not found", id)
}
