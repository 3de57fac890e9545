package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "filestorage_backend/internals/features/files/storage/controller"
	storageService "filestorage_backend/internals/features/files/storage/service"
	authmw "filestorage_backend/internals/middlewares/auth"
)

func StorageRoutes(app *fiber.App, db *gorm.DB, storage storageService.ObjectStorage) {
	ctl := controller.NewStorageController(db, storage)

	fs := app.Group("/api/v1/file-storage", authmw.AuthMiddleware())
	fs.Post("/upload", ctl.Upload)
	fs.Get("/download", ctl.Download)
}
