package helper

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// ParamID parses the :id path segment.
func ParamID(c *fiber.Ctx) (uint64, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	return id, nil
}

// QueryUserID parses the user_id query filter; 0 means "no filter".
func QueryUserID(c *fiber.Ctx) (uint64, error) {
	raw := c.Query("user_id")
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid user_id")
	}
	return id, nil
}
