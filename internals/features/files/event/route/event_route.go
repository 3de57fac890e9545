package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"filestorage_backend/internals/constants"
	controller "filestorage_backend/internals/features/files/event/controller"
	authmw "filestorage_backend/internals/middlewares/auth"
)

func EventRoutes(app *fiber.App, db *gorm.DB) {
	ctl := controller.NewEventController(db)

	events := app.Group("/api/v1/events", authmw.AuthMiddleware())

	events.Get("/", ctl.GetAll)
	events.Get("/by-user-id/", authmw.OnlyRoles(constants.RoleErrorModerator("event listings by user"), constants.ModeratorAndAbove...), ctl.GetAllByUserID)
	events.Get("/:id", ctl.GetByID)
	events.Put("/:id", authmw.OnlyRoles(constants.RoleErrorModerator("event update"), constants.ModeratorAndAbove...), ctl.Update)
	events.Delete("/all", authmw.OnlyRoles(constants.RoleErrorAdmin("event bulk delete"), constants.AdminOnly...), ctl.DeleteAll)
	events.Delete("/", authmw.OnlyRoles(constants.RoleErrorModerator("event delete by user"), constants.ModeratorAndAbove...), ctl.DeleteAllByUserID)
	events.Delete("/:id", authmw.OnlyRoles(constants.RoleErrorModerator("event delete"), constants.ModeratorAndAbove...), ctl.DeleteByID)
}
