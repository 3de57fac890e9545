package service

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"filestorage_backend/internals/constants"
	eventDTO "filestorage_backend/internals/features/files/event/dto"
	eventRepo "filestorage_backend/internals/features/files/event/repository"
	fileModel "filestorage_backend/internals/features/files/file/model"
	fileRepo "filestorage_backend/internals/features/files/file/repository"
	userDTO "filestorage_backend/internals/features/users/user/dto"
	userModel "filestorage_backend/internals/features/users/user/model"
	userRepo "filestorage_backend/internals/features/users/user/repository"
	"filestorage_backend/internals/policy"
)

const ErrAccessDenied = "Access denied"

type UserService struct {
	Users  *userRepo.UserRepository
	Events *eventRepo.EventRepository
	Files  *fileRepo.FileRepository
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{
		Users:  userRepo.NewUserRepository(db),
		Events: eventRepo.NewEventRepository(db),
		Files:  fileRepo.NewFileRepository(db),
	}
}

// Register always stores role=USER and enabled=true, whatever the request
// carried.
func (s *UserService) Register(req *userDTO.RegisterRequest) (*userModel.UserModel, error) {
	taken, err := s.Users.ExistsActiveByUsernameAndIDNot(req.Username, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Username already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to hash password")
	}

	u := &userModel.UserModel{
		Username:  req.Username,
		Password:  string(hash),
		Role:      constants.RoleUser,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Enabled:   true,
		Status:    constants.StatusActive,
	}
	if err := s.Users.Create(u); err != nil {
		log.Printf("[ERROR] register user %q: %v", req.Username, err)
		return nil, err
	}
	return u, nil
}

func (s *UserService) GetByID(id uint64) (*userModel.UserModel, error) {
	u, err := s.Users.FindActiveByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, userNotFoundMsg(id))
		}
		return nil, err
	}
	return u, nil
}

// GetByIDAndCaller applies the visibility policy, then loads the user together
// with their events and files.
func (s *UserService) GetByIDAndCaller(id uint64, caller policy.Caller) (*userDTO.UserDTO, error) {
	if policy.CanRead(caller, id) != policy.Allow {
		return nil, fiber.NewError(fiber.StatusForbidden, ErrAccessDenied)
	}

	u, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	events, err := s.eventDTOsForUser(u.ID)
	if err != nil {
		return nil, err
	}
	d := userDTO.FromModel(u, events)
	return &d, nil
}

// eventDTOsForUser resolves each event's file; a missing or deleted file falls
// back to a zero-value file rather than failing the read.
func (s *UserService) eventDTOsForUser(userID uint64) ([]eventDTO.EventDTO, error) {
	events, err := s.Events.FindAllActiveByUserID(userID)
	if err != nil {
		return nil, err
	}
	dtos := make([]eventDTO.EventDTO, 0, len(events))
	for i := range events {
		f, err := s.Files.FindActiveByID(events[i].FileID)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
			f = &fileModel.FileModel{}
		}
		dtos = append(dtos, eventDTO.FromModels(&events[i], f))
	}
	return dtos, nil
}

func (s *UserService) GetAll() ([]userDTO.UserBasicDTO, error) {
	users, err := s.Users.FindAllActive()
	if err != nil {
		return nil, err
	}
	dtos := make([]userDTO.UserBasicDTO, 0, len(users))
	for i := range users {
		dtos = append(dtos, userDTO.BasicFromModel(&users[i]))
	}
	return dtos, nil
}

// UpdateByID is admin-only (enforced at the route). Rejects the update when
// another active user already holds the requested username; re-hashes the
// password only when a non-empty one is supplied.
func (s *UserService) UpdateByID(id uint64, req *userDTO.UserUpdateRequest) (*userDTO.UserBasicDTO, error) {
	u, err := s.Users.FindActiveByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, userNotFoundMsg(id))
		}
		return nil, err
	}

	taken, err := s.Users.ExistsActiveByUsernameAndIDNot(req.Username, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Username already taken")
	}

	u.Username = req.Username
	u.FirstName = req.FirstName
	u.LastName = req.LastName
	if req.Role != "" {
		u.Role = req.Role
	}
	if req.Enabled != nil {
		u.Enabled = *req.Enabled
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to hash password")
		}
		u.Password = string(hash)
	}

	if err := s.Users.Save(u); err != nil {
		log.Printf("[ERROR] update user %d: %v", id, err)
		return nil, err
	}
	d := userDTO.BasicFromModel(u)
	return &d, nil
}

func (s *UserService) DeleteByID(id uint64) error {
	affected, err := s.Users.SoftDeleteByID(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fiber.NewError(fiber.StatusNotFound, userNotFoundMsg(id))
	}
	return nil
}

func (s *UserService) DeleteAll() (int64, error) {
	return s.Users.SoftDeleteAll()
}

func userNotFoundMsg(id uint64) string {
	return fmt.Sprintf("User with ID = '%d' not found", id)
}
