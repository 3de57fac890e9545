package service

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	userRepo "filestorage_backend/internals/features/users/user/repository"
)

type AuthService struct {
	Users *userRepo.UserRepository
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{Users: userRepo.NewUserRepository(db)}
}

// Authenticate validates credentials and issues a token. All three failure
// modes (unknown username, wrong password, disabled account) are 401s; the
// messages differ, the status does not.
func (s *AuthService) Authenticate(username, password, secret string, ttl time.Duration) (*TokenDetails, error) {
	u, err := s.Users.FindActiveByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid username")
		}
		log.Printf("[ERROR] authenticate %q: %v", username, err)
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid password")
	}
	if !u.Enabled {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Account disabled")
	}

	td, err := IssueToken(secret, u.ID, u.Role, ttl)
	if err != nil {
		log.Printf("[ERROR] issue token for user %d: %v", u.ID, err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to issue token")
	}
	return td, nil
}
