package helper

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ValidateStruct runs validator.v10 on a request DTO and maps the first field
// failure into a 400.
func ValidateStruct(s interface{}) *fiber.Error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid input")
	}
	msg := "Validation failed"
	if len(ve) > 0 {
		msg = "Validation failed on field '" + ve[0].Field() + "' (" + ve[0].Tag() + ")"
	}
	return fiber.NewError(fiber.StatusBadRequest, msg)
}
