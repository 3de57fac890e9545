package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eventRoute "filestorage_backend/internals/features/files/event/route"
	fileRoute "filestorage_backend/internals/features/files/file/route"
	storageRoute "filestorage_backend/internals/features/files/storage/route"
	storageService "filestorage_backend/internals/features/files/storage/service"
	authRoute "filestorage_backend/internals/features/users/auth/route"
	userRoute "filestorage_backend/internals/features/users/user/route"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, storage storageService.ObjectStorage) {
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	log.Println("[INFO] Setting up UserRoutes...")
	userRoute.UserRoutes(app, db)

	log.Println("[INFO] Setting up FileRoutes...")
	fileRoute.FileRoutes(app, db)

	log.Println("[INFO] Setting up EventRoutes...")
	eventRoute.EventRoutes(app, db)

	log.Println("[INFO] Setting up StorageRoutes...")
	storageRoute.StorageRoutes(app, db, storage)
}
