package attendance

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Nayan-navghane/School-application/app/access"
	"github.com/Nayan-navghane/School-application/app/repo"
	"github.com/Nayan-navghane/School-application/app/routes/auth"
)

type Handler struct {
	Repo   *repo.AttendanceRepo
	Logger *zap.Logger
}

func SetupRoutes(app *fiber.App, authed fiber.Handler, h *Handler) {
	api := app.Group("/api/attendance", authed)

	view := auth.RequireView(access.SectionAttendance)
	mutate := auth.RequireMutate(access.SectionAttendance)

	api.Get("/", view, h.ListAPI)
	api.Get("/version", view, h.VersionAPI)
	api.Post("/mark", mutate, h.MarkAPI)
	api.Get("/export", mutate, h.ExportAPI)
}
