package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"filestorage_backend/internals/constants"
	controller "filestorage_backend/internals/features/users/user/controller"
	authmw "filestorage_backend/internals/middlewares/auth"
)

func UserRoutes(app *fiber.App, db *gorm.DB) {
	ctl := controller.NewUserController(db)

	users := app.Group("/api/v1/users", authmw.AuthMiddleware())

	users.Get("/", authmw.OnlyRoles(constants.RoleErrorModerator("user listing"), constants.ModeratorAndAbove...), ctl.GetAll)
	users.Get("/:id", ctl.GetByID)
	users.Put("/:id", authmw.OnlyRoles(constants.RoleErrorAdmin("user update"), constants.AdminOnly...), ctl.UpdateByID)
	users.Delete("/all", authmw.OnlyRoles(constants.RoleErrorAdmin("user bulk delete"), constants.AdminOnly...), ctl.DeleteAll)
	users.Delete("/:id", authmw.OnlyRoles(constants.RoleErrorAdmin("user delete"), constants.AdminOnly...), ctl.DeleteByID)
}
