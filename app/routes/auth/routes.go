package auth

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	appauth "github.com/Nayan-navghane/School-application/app/auth"
	"github.com/Nayan-navghane/School-application/app/config"
)

// Handler carries the auth endpoints' dependencies; they are passed in
// explicitly rather than read from globals.
type Handler struct {
	Service *appauth.Service
	Config  *config.Config
	Logger  *zap.Logger
}

func SetupRoutes(app *fiber.App, h *Handler) {
	grp := app.Group("/api/auth")

	grp.Post("/login", h.LoginAPI)
	grp.Post("/signup", h.SignupAPI)
	grp.Post("/logout", h.LogoutAPI)

	authed := RequireAuth([]byte(h.Config.JWTSecret))
	grp.Get("/me", authed, h.MeAPI)
	app.Get("/api/sections", authed, h.SectionsAPI)

	app.Get("/auth/login", h.ShowLoginPage)
	app.Get("/dashboard", authed, h.ShowDashboardPage)
}

func (h *Handler) ShowLoginPage(c *fiber.Ctx) error {
	if tokenString := c.Cookies("jwt_token"); tokenString != "" {
		if _, err := appauth.ValidateJWT([]byte(h.Config.JWTSecret), tokenString); err == nil {
			return c.Redirect("/dashboard")
		}
	}
	return c.Render("login", fiber.Map{
		"Title": "Login - " + h.Config.AppName,
	})
}

func (h *Handler) ShowDashboardPage(c *fiber.Ctx) error {
	role := CurrentRole(c)
	return c.Render("dashboard", fiber.Map{
		"Title":    "Dashboard - " + h.Config.AppName,
		"Email":    c.Locals("user_email"),
		"Role":     string(role),
		"Sections": sectionSummary(role),
	})
}
