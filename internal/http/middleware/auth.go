package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"bookapi/internal/model"
	"bookapi/internal/service"
)

// PrincipalLocalKey stores the authenticated *model.User in Fiber's context locals.
const PrincipalLocalKey = "principal"

// Authenticate requires a valid bearer token and stores the resolved user in locals.
// Failures return 401 with a WWW-Authenticate challenge.
func Authenticate(auth service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := bearerToken(c.Get(fiber.HeaderAuthorization))
		if !ok {
			return unauthorized(c, "Not authenticated")
		}

		u, err := auth.Authenticate(c.UserContext(), token)
		if err != nil {
			if errors.Is(err, service.ErrInvalidToken) {
				return unauthorized(c, "Could not validate credentials")
			}
			return err
		}

		c.Locals(PrincipalLocalKey, u)
		return c.Next()
	}
}

// RequireActive rejects inactive principals. Must run after Authenticate.
func RequireActive() fiber.Handler {
	return func(c *fiber.Ctx) error {
		u := Principal(c)
		if u == nil {
			return unauthorized(c, "Not authenticated")
		}
		if !u.IsActive {
			return fiber.NewError(fiber.StatusForbidden, "Inactive user")
		}
		return c.Next()
	}
}

// RequireAdmin rejects principals without the admin flag. Must run after Authenticate.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		u := Principal(c)
		if u == nil {
			return unauthorized(c, "Not authenticated")
		}
		if !u.IsActive {
			return fiber.NewError(fiber.StatusForbidden, "Inactive user")
		}
		if !u.IsAdmin {
			return fiber.NewError(fiber.StatusForbidden, "Not enough permissions. Admin access required.")
		}
		return c.Next()
	}
}

// Principal returns the authenticated user, or nil.
func Principal(c *fiber.Ctx) *model.User {
	u, _ := c.Locals(PrincipalLocalKey).(*model.User)
	return u
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func unauthorized(c *fiber.Ctx, msg string) error {
	c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
	return fiber.NewError(fiber.StatusUnauthorized, msg)
}
