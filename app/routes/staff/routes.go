package staff

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Nayan-navghane/School-application/app/access"
	"github.com/Nayan-navghane/School-application/app/blob"
	"github.com/Nayan-navghane/School-application/app/repo"
	"github.com/Nayan-navghane/School-application/app/routes/auth"
)

type Handler struct {
	Repo   *repo.Repository
	Blobs  blob.Store
	Logger *zap.Logger
}

func SetupRoutes(app *fiber.App, authed fiber.Handler, h *Handler) {
	api := app.Group("/api/staff", authed)

	view := auth.RequireView(access.SectionStaff)
	mutate := auth.RequireMutate(access.SectionStaff)

	api.Get("/", view, h.ListAPI)
	api.Get("/version", view, h.VersionAPI)
	api.Post("/", mutate, h.CreateAPI)
	api.Put("/:id", mutate, h.UpdateAPI)
	api.Delete("/:id", mutate, h.DeleteAPI)
	api.Post("/:id/photo", mutate, h.UploadPhotoAPI)
}
