package service

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eventDTO "filestorage_backend/internals/features/files/event/dto"
	eventModel "filestorage_backend/internals/features/files/event/model"
	eventRepo "filestorage_backend/internals/features/files/event/repository"
	fileModel "filestorage_backend/internals/features/files/file/model"
	fileRepo "filestorage_backend/internals/features/files/file/repository"
	"filestorage_backend/internals/policy"
)

const ErrAccessDenied = "Access denied"

type EventService struct {
	Events *eventRepo.EventRepository
	Files  *fileRepo.FileRepository
}

func NewEventService(db *gorm.DB) *EventService {
	return &EventService{
		Events: eventRepo.NewEventRepository(db),
		Files:  fileRepo.NewFileRepository(db),
	}
}

// GetByIDAndCaller: for a USER caller the link to the caller is checked
// before the row itself, so an event owned by someone else reads as Forbidden
// rather than NotFound.
func (s *EventService) GetByIDAndCaller(id uint64, caller policy.Caller) (*eventDTO.EventDTO, error) {
	if !caller.IsAdminOrModerator() {
		owned, err := s.Events.ExistsActiveByIDAndUserID(id, caller.UserID)
		if err != nil {
			return nil, err
		}
		if !owned {
			return nil, fiber.NewError(fiber.StatusForbidden, ErrAccessDenied)
		}
	}

	e, err := s.Events.FindActiveByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, eventNotFoundMsg(id))
		}
		return nil, err
	}

	d := s.withFile(e)
	return &d, nil
}

// GetAllForCaller lists events; a USER caller is implicitly restricted to
// their own.
func (s *EventService) GetAllForCaller(caller policy.Caller) ([]eventDTO.EventDTO, error) {
	userID := policy.ScopeUserID(caller, 0)
	var (
		events []eventModel.EventModel
		err    error
	)
	if userID == 0 {
		events, err = s.Events.FindAllActive()
	} else {
		events, err = s.Events.FindAllActiveByUserID(userID)
	}
	if err != nil {
		return nil, err
	}
	return s.withFiles(events)
}

func (s *EventService) GetAllByUserID(userID uint64) ([]eventDTO.EventDTO, error) {
	events, err := s.Events.FindAllActiveByUserID(userID)
	if err != nil {
		return nil, err
	}
	return s.withFiles(events)
}

// ExistsByFilenameAndUserID answers "does an active event tie this caller to
// the file with this filename" — the download access check for USER callers.
func (s *EventService) ExistsByFilenameAndUserID(filename string, userID uint64) (bool, error) {
	fileID, err := s.Files.FindActiveIDByFilename(filename)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return s.Events.ExistsActiveByFileIDAndUserID(fileID, userID)
}

// Update mutates only the user/file linkage.
func (s *EventService) Update(id uint64, req *eventDTO.EventUpdateRequest) (*eventDTO.EventBasicDTO, error) {
	e, err := s.Events.FindActiveByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, eventNotFoundMsg(id))
		}
		return nil, err
	}

	e.UserID = req.UserID
	e.FileID = req.FileID
	if err := s.Events.Save(e); err != nil {
		log.Printf("[ERROR] update event %d: %v", id, err)
		return nil, err
	}
	d := eventDTO.BasicFromModel(e)
	return &d, nil
}

func (s *EventService) DeleteByID(id uint64) error {
	affected, err := s.Events.SoftDeleteByID(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fiber.NewError(fiber.StatusNotFound, eventNotFoundMsg(id))
	}
	return nil
}

func (s *EventService) DeleteAllByUserID(userID uint64) (int64, error) {
	return s.Events.SoftDeleteAllByUserID(userID)
}

func (s *EventService) DeleteAll() (int64, error) {
	return s.Events.SoftDeleteAll()
}

// withFile embeds the event's file, falling back to a zero-value file for
// orphaned links.
func (s *EventService) withFile(e *eventModel.EventModel) eventDTO.EventDTO {
	f, err := s.Files.FindActiveByID(e.FileID)
	if err != nil {
		f = &fileModel.FileModel{}
	}
	return eventDTO.FromModels(e, f)
}

func (s *EventService) withFiles(events []eventModel.EventModel) ([]eventDTO.EventDTO, error) {
	dtos := make([]eventDTO.EventDTO, 0, len(events))
	for i := range events {
		dtos = append(dtos, s.withFile(&events[i]))
	}
	return dtos, nil
}

func eventNotFoundMsg(id uint64) string {
	return fmt.Sprintf("Event with ID = '%d' not found", id)
}
