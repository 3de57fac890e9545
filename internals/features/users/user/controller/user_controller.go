package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userDTO "filestorage_backend/internals/features/users/user/dto"
	userService "filestorage_backend/internals/features/users/user/service"
	helper "filestorage_backend/internals/helpers"
	authmw "filestorage_backend/internals/middlewares/auth"
)

type UserController struct {
	Users *userService.UserService
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{Users: userService.NewUserService(db)}
}

// GET /api/v1/users/:id
func (ctl *UserController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParamID(c)
	if err != nil {
		return err
	}
	caller, err := authmw.Caller(c)
	if err != nil {
		return err
	}

	d, err := ctl.Users.GetByIDAndCaller(id, caller)
	if err != nil {
		return err
	}
	return c.JSON(d)
}

// GET /api/v1/users/
func (ctl *UserController) GetAll(c *fiber.Ctx) error {
	dtos, err := ctl.Users.GetAll()
	if err != nil {
		return err
	}
	return c.JSON(dtos)
}

// PUT /api/v1/users/:id
func (ctl *UserController) UpdateByID(c *fiber.Ctx) error {
	id, err := helper.ParamID(c)
	if err != nil {
		return err
	}

	var req userDTO.UserUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return err
	}

	d, err := ctl.Users.UpdateByID(id, &req)
	if err != nil {
		return err
	}
	return c.JSON(d)
}

// DELETE /api/v1/users/:id
func (ctl *UserController) DeleteByID(c *fiber.Ctx) error {
	id, err := helper.ParamID(c)
	if err != nil {
		return err
	}
	if err := ctl.Users.DeleteByID(id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DELETE /api/v1/users/all
func (ctl *UserController) DeleteAll(c *fiber.Ctx) error {
	count, err := ctl.Users.DeleteAll()
	if err != nil {
		return err
	}
	return c.JSON(count)
}
