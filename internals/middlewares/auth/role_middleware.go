package auth

import (
	"github.com/gofiber/fiber/v2"

	"filestorage_backend/internals/policy"
)

// RoleMiddlewareWithCustomError gates a route on the caller's role.
func RoleMiddlewareWithCustomError(allowedRoles []string, customForbiddenMessage string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("userRole").(string)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: missing role information")
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}

		if customForbiddenMessage == "" {
			customForbiddenMessage = "Forbidden: you are not authorized to access this resource"
		}
		return fiber.NewError(fiber.StatusForbidden, customForbiddenMessage)
	}
}

// OnlyRoles is the short form used by route registration.
func OnlyRoles(customMessage string, roles ...string) fiber.Handler {
	return RoleMiddlewareWithCustomError(roles, customMessage)
}

// Caller resolves the authenticated identity stored by AuthMiddleware.
func Caller(c *fiber.Ctx) (policy.Caller, error) {
	userID, ok := c.Locals("user_id").(uint64)
	if !ok || userID == 0 {
		return policy.Caller{}, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: missing user identity")
	}
	role, _ := c.Locals("userRole").(string)
	return policy.Caller{UserID: userID, Role: role}, nil
}
