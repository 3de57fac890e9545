package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "filestorage_backend/internals/features/users/auth/controller"
	"filestorage_backend/internals/middlewares"
	authmw "filestorage_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctl := controller.NewAuthController(db)

	auth := app.Group("/api/v1/auth")
	auth.Post("/register", ctl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	auth.Get("/info", authmw.AuthMiddleware(), ctl.Info)
}
