package controller

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	storageService "filestorage_backend/internals/features/files/storage/service"
	authmw "filestorage_backend/internals/middlewares/auth"
)

type StorageController struct {
	Storage *storageService.StorageService
}

func NewStorageController(db *gorm.DB, storage storageService.ObjectStorage) *StorageController {
	return &StorageController{Storage: storageService.NewStorageService(db, storage)}
}

// POST /api/v1/file-storage/upload  (multipart field "file", "image" accepted too)
func (ctl *StorageController) Upload(c *fiber.Ctx) error {
	caller, err := authmw.Caller(c)
	if err != nil {
		return err
	}

	fh, err := c.FormFile("file")
	if err != nil {
		fh, err = c.FormFile("image")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Missing multipart field 'file'")
	}

	src, err := fh.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Unreadable multipart file")
	}
	defer src.Close()

	resp, err := ctl.Storage.Upload(c.UserContext(), src, fh.Filename, caller.UserID)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GET /api/v1/file-storage/download?filename=
func (ctl *StorageController) Download(c *fiber.Ctx) error {
	caller, err := authmw.Caller(c)
	if err != nil {
		return err
	}

	filename := c.Query("filename")
	if filename == "" {
		return fiber.NewError(fiber.StatusBadRequest, "filename is required")
	}

	rc, err := ctl.Storage.Download(c.UserContext(), filename, caller)
	if err != nil {
		return err
	}

	// fasthttp closes the stream once the body is written
	c.Set(fiber.HeaderContentType, "application/octet-stream")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.SendStream(rc)
}
