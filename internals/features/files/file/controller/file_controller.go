package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	fileDTO "filestorage_backend/internals/features/files/file/dto"
	fileService "filestorage_backend/internals/features/files/file/service"
	helper "filestorage_backend/internals/helpers"
	authmw "filestorage_backend/internals/middlewares/auth"
)

type FileController struct {
	Files *fileService.FileService
}

func NewFileController(db *gorm.DB) *FileController {
	return &FileController{Files: fileService.NewFileService(db)}
}

// GET /api/v1/files/:id
func (ctl *FileController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParamID(c)
	if err != nil {
		return err
	}
	caller, err := authmw.Caller(c)
	if err != nil {
		return err
	}

	d, err := ctl.Files.GetByIDAndCaller(id, caller)
	if err != nil {
		return err
	}
	return c.JSON(d)
}

// GET /api/v1/files/
func (ctl *FileController) GetAll(c *fiber.Ctx) error {
	caller, err := authmw.Caller(c)
	if err != nil {
		return err
	}
	dtos, err := ctl.Files.GetAllForCaller(caller)
	if err != nil {
		return err
	}
	return c.JSON(dtos)
}

// GET /api/v1/files/by-user-id/?user_id=
func (ctl *FileController) GetAllByUserID(c *fiber.Ctx) error {
	userID, err := helper.QueryUserID(c)
	if err != nil {
		return err
	}
	if userID == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "user_id is required")
	}
	dtos, err := ctl.Files.GetAllByUserID(userID)
	if err != nil {
		return err
	}
	return c.JSON(dtos)
}

// PUT /api/v1/files/
func (ctl *FileController) Update(c *fiber.Ctx) error {
	var req fileDTO.FileUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return err
	}

	d, err := ctl.Files.Update(&req)
	if err != nil {
		return err
	}
	return c.JSON(d)
}

// DELETE /api/v1/files/:id
func (ctl *FileController) DeleteByID(c *fiber.Ctx) error {
	id, err := helper.ParamID(c)
	if err != nil {
		return err
	}
	if err := ctl.Files.DeleteByID(id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DELETE /api/v1/files/?user_id=
func (ctl *FileController) DeleteAllByUserID(c *fiber.Ctx) error {
	userID, err := helper.QueryUserID(c)
	if err != nil {
		return err
	}
	if userID == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "user_id is required")
	}
	count, err := ctl.Files.DeleteAllByUserID(userID)
	if err != nil {
		return err
	}
	return c.JSON(count)
}

// DELETE /api/v1/files/all
func (ctl *FileController) DeleteAll(c *fiber.Ctx) error {
	count, err := ctl.Files.DeleteAll()
	if err != nil {
		return err
	}
	return c.JSON(count)
}
