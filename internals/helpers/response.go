package helper

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Error body shapes:
//   domain errors  -> {status, errors: [{code, message}]}
//   anything else  -> {status, error, message, request_id, path, timestamp}

type ErrorItem struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorEnvelope struct {
	Status int         `json:"status"`
	Errors []ErrorItem `json:"errors"`
}

func errorCodeForStatus(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "BAD_REQUEST"
	case fiber.StatusUnauthorized:
		return "UNAUTHORIZED"
	case fiber.StatusForbidden:
		return "FORBIDDEN"
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusTooManyRequests:
		return "TOO_MANY_REQUESTS"
	default:
		return "INTERNAL_ERROR"
	}
}

// JsonError writes the domain error envelope.
func JsonError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(ErrorEnvelope{
		Status: status,
		Errors: []ErrorItem{{Code: errorCodeForStatus(status), Message: message}},
	})
}

// ErrorHandler is the app-level Fiber error handler. Domain errors raised as
// *fiber.Error pass through unmodified from the service layer; everything else
// is an unexpected failure and gets the generic shape.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}

	reqID, _ := c.Locals("reqid").(string)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"status":     fiber.StatusInternalServerError,
		"error":      http.StatusText(http.StatusInternalServerError),
		"message":    err.Error(),
		"request_id": reqID,
		"path":       c.Path(),
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
	})
}
