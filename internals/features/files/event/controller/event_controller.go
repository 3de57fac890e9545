package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eventDTO "filestorage_backend/internals/features/files/event/dto"
	eventService "filestorage_backend/internals/features/files/event/service"
	helper "filestorage_backend/internals/helpers"
	authmw "filestorage_backend/internals/middlewares/auth"
)

type EventController struct {
	Events *eventService.EventService
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{Events: eventService.NewEventService(db)}
}

// GET /api/v1/events/:id
func (ctl *EventController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParamID(c)
	if err != nil {
		return err
	}
	caller, err := authmw.Caller(c)
	if err != nil {
		return err
	}

	d, err := ctl.Events.GetByIDAndCaller(id, caller)
	if err != nil {
		return err
	}
	return c.JSON(d)
}

// GET /api/v1/events/
func (ctl *EventController) GetAll(c *fiber.Ctx) error {
	caller, err := authmw.Caller(c)
	if err != nil {
		return err
	}
	dtos, err := ctl.Events.GetAllForCaller(caller)
	if err != nil {
		return err
	}
	return c.JSON(dtos)
}

// GET /api/v1/events/by-user-id/?user_id=
func (ctl *EventController) GetAllByUserID(c *fiber.Ctx) error {
	userID, err := helper.QueryUserID(c)
	if err != nil {
		return err
	}
	if userID == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "user_id is required")
	}
	dtos, err := ctl.Events.GetAllByUserID(userID)
	if err != nil {
		return err
	}
	return c.JSON(dtos)
}

// PUT /api/v1/events/:id
func (ctl *EventController) Update(c *fiber.Ctx) error {
	id, err := helper.ParamID(c)
	if err != nil {
		return err
	}

	var req eventDTO.EventUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return err
	}

	d, err := ctl.Events.Update(id, &req)
	if err != nil {
		return err
	}
	return c.JSON(d)
}

// DELETE /api/v1/events/:id
func (ctl *EventController) DeleteByID(c *fiber.Ctx) error {
	id, err := helper.ParamID(c)
	if err != nil {
		return err
	}
	if err := ctl.Events.DeleteByID(id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DELETE /api/v1/events/?user_id=
func (ctl *EventController) DeleteAllByUserID(c *fiber.Ctx) error {
	userID, err := helper.QueryUserID(c)
	if err != nil {
		return err
	}
	if userID == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "user_id is required")
	}
	count, err := ctl.Events.DeleteAllByUserID(userID)
	if err != nil {
		return err
	}
	return c.JSON(count)
}

// DELETE /api/v1/events/all
func (ctl *EventController) DeleteAll(c *fiber.Ctx) error {
	count, err := ctl.Events.DeleteAll()
	if err != nil {
		return err
	}
	return c.JSON(count)
}
