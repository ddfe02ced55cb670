package settings

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Nayan-navghane/School-application/app/access"
	"github.com/Nayan-navghane/School-application/app/blob"
	"github.com/Nayan-navghane/School-application/app/repo"
	"github.com/Nayan-navghane/School-application/app/routes/auth"
)

type Handler struct {
	Repo   *repo.SettingsRepo
	Blobs  blob.Store
	Logger *zap.Logger
}

func SetupRoutes(app *fiber.App, authed fiber.Handler, h *Handler) {
	api := app.Group("/api/settings", authed)

	// Settings are visible to every role; only admin may change them.
	view := auth.RequireView(access.SectionSettings)
	mutate := auth.RequireMutate(access.SectionSettings)

	api.Get("/", view, h.GetAPI)
	api.Get("/version", view, h.VersionAPI)
	api.Put("/", mutate, h.UpdateAPI)
	api.Post("/logo", mutate, h.UploadLogoAPI)
}
