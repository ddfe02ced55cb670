package exams

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
	Marks  *repo.Repository
	Blobs  blob.Store
	Sink   reports.Sink
	Logger *zap.Logger
}

func SetupRoutes(app *fiber.App, authed fiber.Handler, h *Handler) {
	api := app.Group("/api/exams", authed)

	view := auth.RequireView(access.SectionExams)
	mutate := auth.RequireMutate(access.SectionExams)

	api.Get("/", view, h.ListAPI)
	api.Get("/version", view, h.VersionAPI)
	api.Post("/", mutate, h.CreateAPI)
	api.Put("/:id", mutate, h.UpdateAPI)
	api.Delete("/:id", mutate, h.DeleteAPI)
	api.Post("/:id/paper", mutate, h.UploadPaperAPI)

	api.Get("/marks", view, h.ListMarksAPI)
	api.Post("/marks", mutate, h.CreateMarksAPI)
	api.Get("/reportcard/:studentId", view, h.ReportCardAPI)
}
