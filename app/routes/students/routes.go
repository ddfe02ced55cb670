package students

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Nayan-navghane/School-application/app/access"
	"github.com/Nayan-navghane/School-application/app/blob"
	"github.com/Nayan-navghane/School-application/app/repo"
	"github.com/Nayan-navghane/School-application/app/reports"
	"github.com/Nayan-navghane/School-application/app/routes/auth"
)

type Handler struct {
	Repo   *repo.Repository
	Blobs  blob.Store
	Sink   reports.Sink
	Logger *zap.Logger
}

func SetupRoutes(app *fiber.App, authed fiber.Handler, h *Handler) {
	api := app.Group("/api/students", authed)

	view := auth.RequireView(access.SectionStudents)
	mutate := auth.RequireMutate(access.SectionStudents)

	api.Get("/", view, h.ListAPI)
	api.Get("/version", view, h.VersionAPI)
	api.Get("/:id/idcard", view, h.IDCardAPI)
	api.Post("/", mutate, h.CreateAPI)
	api.Put("/:id", mutate, h.UpdateAPI)
	api.Delete("/:id", mutate, h.DeleteAPI)
	api.Post("/:id/photo", mutate, h.UploadPhotoAPI)
}
