package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"filestorage_backend/internals/constants"
	controller "filestorage_backend/internals/features/files/file/controller"
	authmw "filestorage_backend/internals/middlewares/auth"
)

func FileRoutes(app *fiber.App, db *gorm.DB) {
	ctl := controller.NewFileController(db)

	files := app.Group("/api/v1/files", authmw.AuthMiddleware())

	files.Get("/", ctl.GetAll)
	files.Get("/by-user-id/", authmw.OnlyRoles(constants.RoleErrorModerator("file listings by user"), constants.ModeratorAndAbove...), ctl.GetAllByUserID)
	files.Get("/:id", ctl.GetByID)
	files.Put("/", authmw.OnlyRoles(constants.RoleErrorModerator("file update"), constants.ModeratorAndAbove...), ctl.Update)
	files.Delete("/all", authmw.OnlyRoles(constants.RoleErrorAdmin("file bulk delete"), constants.AdminOnly...), ctl.DeleteAll)
	files.Delete("/", authmw.OnlyRoles(constants.RoleErrorModerator("file delete by user"), constants.ModeratorAndAbove...), ctl.DeleteAllByUserID)
	files.Delete("/:id", authmw.OnlyRoles(constants.RoleErrorModerator("file delete"), constants.ModeratorAndAbove...), ctl.DeleteByID)
}
