package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Nayan-navghane/School-application/app/access"
	"github.com/Nayan-navghane/School-application/app/apperr"
	appauth "github.com/Nayan-navghane/School-application/app/auth"
	"github.com/Nayan-navghane/School-application/app/models"
)

// RequireAuth validates the JWT (cookie or Authorization header) and
// sets the caller's identity on the request context.
func RequireAuth(secret []byte) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies("jwt_token")
		if tokenString == "" {
			auth := c.Get("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				tokenString = strings.TrimPrefix(auth, "Bearer ")
			}
		}
		if tokenString == "" {
			return c.Status(401).JSON(fiber.Map{"error": "no token found"})
		}

		claims, err := appauth.ValidateJWT(secret, tokenString)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "invalid token"})
		}

		c.Locals("user_id", claims.UID)
		c.Locals("user_email", claims.Email)
		c.Locals("user_role", models.Role(claims.Role))
		c.Locals("person_id", claims.PersonID)
		return c.Next()
	}
}

// CurrentRole returns the authenticated caller's role, or "" when the
// request never passed RequireAuth.
func CurrentRole(c *fiber.Ctx) models.Role {
	if role, ok := c.Locals("user_role").(models.Role); ok {
		return role
	}
	return ""
}

// CurrentPersonID returns the caller's linked person id, if any.
func CurrentPersonID(c *fiber.Ctx) string {
	if id, ok := c.Locals("person_id").(string); ok {
		return id
	}
	return ""
}

// RequireView rejects roles outside the section's view allow-list with
// an access-denied state, never partial data.
func RequireView(section access.Section) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !access.CanView(section, CurrentRole(c)) {
			return c.Status(403).JSON(fiber.Map{"error": "access denied"})
		}
		return c.Next()
	}
}

// RequireMutate re-checks the mutate allow-list at call time so a stale
// UI cannot slip a forbidden write through.
func RequireMutate(section access.Section) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !access.CanMutate(section, CurrentRole(c)) {
			return c.Status(403).JSON(fiber.Map{"error": "insufficient permissions"})
		}
		return c.Next()
	}
}

// Fail converts an error into the single user-visible notification the
// client shows; nothing propagates further and nothing is retried.
func Fail(c *fiber.Ctx, err error) error {
	return c.Status(apperr.Status(err)).JSON(fiber.Map{"error": apperr.Message(err)})
}
