package auth

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Nayan-navghane/School-application/app/access"
	appauth "github.com/Nayan-navghane/School-application/app/auth"
	"github.com/Nayan-navghane/School-application/app/models"
)

var validate = validator.New()

func (h *Handler) LoginAPI(c *fiber.Ctx) error {
	type LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "email and password are required"})
	}

	acct, err := h.Service.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return Fail(c, err)
	}

	token, err := appauth.GenerateJWT([]byte(h.Config.JWTSecret), acct, h.Config.JWTTTL)
	if err != nil {
		return Fail(c, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    token,
		Expires:  time.Now().Add(h.Config.JWTTTL),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	h.Logger.Info("login", zap.String("user_id", acct.UID), zap.String("role", string(acct.Role)))
	return c.JSON(fiber.Map{
		"message": "Login successful",
		"user":    acct,
		"token":   token,
	})
}

func (h *Handler) SignupAPI(c *fiber.Ctx) error {
	type SignupRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
		Role     string `json:"role" validate:"required"`
	}

	var req SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "email, password (min 8) and role are required"})
	}
	role, ok := models.ParseRole(req.Role)
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "role must be admin, teacher, student or parent"})
	}

	acct, err := h.Service.Signup(c.UserContext(), req.Email, req.Password, role)
	if err != nil {
		return Fail(c, err)
	}

	h.Logger.Info("signup", zap.String("user_id", acct.UID), zap.String("role", string(acct.Role)))
	return c.Status(201).JSON(fiber.Map{
		"message": "Signup successful",
		"user":    acct,
	})
}

func (h *Handler) LogoutAPI(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	if err := h.Service.Logout(c.UserContext()); err != nil {
		return Fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Logged out"})
}

func (h *Handler) MeAPI(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"uid":       c.Locals("user_id"),
		"email":     c.Locals("user_email"),
		"role":      CurrentRole(c),
		"person_id": CurrentPersonID(c),
	})
}

// SectionsAPI returns the composer output for the caller: the ordered
// visible sections and whether each may be mutated.
func (h *Handler) SectionsAPI(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"sections": sectionSummary(CurrentRole(c))})
}

type sectionInfo struct {
	Name      string `json:"name"`
	CanMutate bool   `json:"can_mutate"`
	OwnOnly   bool   `json:"own_only,omitempty"`
}

func sectionSummary(role models.Role) []sectionInfo {
	var out []sectionInfo
	for _, s := range access.SectionsFor(role) {
		out = append(out, sectionInfo{
			Name:      string(s),
			CanMutate: access.CanMutate(s, role),
			OwnOnly:   access.ViewScope(s, role) == access.ScopeOwn,
		})
	}
	return out
}
