package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"filestorage_backend/internals/configs"
	authDTO "filestorage_backend/internals/features/users/auth/dto"
	authService "filestorage_backend/internals/features/users/auth/service"
	userDTO "filestorage_backend/internals/features/users/user/dto"
	userService "filestorage_backend/internals/features/users/user/service"
	helper "filestorage_backend/internals/helpers"
	authmw "filestorage_backend/internals/middlewares/auth"
)

type AuthController struct {
	Auth  *authService.AuthService
	Users *userService.UserService
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{
		Auth:  authService.NewAuthService(db),
		Users: userService.NewUserService(db),
	}
}

// POST /api/v1/auth/register
func (ctl *AuthController) Register(c *fiber.Ctx) error {
	var req userDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := helper.ValidateStruct(&req); err != nil {
		return err
	}

	u, err := ctl.Users.Register(&req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(userDTO.BasicFromModel(u))
}

// POST /api/v1/auth/login
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req authDTO.AuthRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return err
	}

	td, err := ctl.Auth.Authenticate(req.Username, req.Password, configs.JWTSecret, configs.TokenTTL)
	if err != nil {
		return err
	}
	return c.JSON(authDTO.AuthResponse{
		UserID:    td.UserID,
		Token:     td.Token,
		IssuedAt:  td.IssuedAt,
		ExpiresAt: td.ExpiresAt,
	})
}

// GET /api/v1/auth/info
func (ctl *AuthController) Info(c *fiber.Ctx) error {
	caller, err := authmw.Caller(c)
	if err != nil {
		return err
	}
	d, err := ctl.Users.GetByIDAndCaller(caller.UserID, caller)
	if err != nil {
		return err
	}
	return c.JSON(d)
}
