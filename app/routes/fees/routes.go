package fees

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Nayan-navghane/School-application/app/access"
	"github.com/Nayan-navghane/School-application/app/mail"
	"github.com/Nayan-navghane/School-application/app/repo"
	"github.com/Nayan-navghane/School-application/app/reports"
	"github.com/Nayan-navghane/School-application/app/routes/auth"
)

type Handler struct {
	Structures *repo.Repository
	Payments   *repo.Repository
	Sink       reports.Sink
	Mailer     mail.Service
	ReceiptsTo string // bursar address; empty disables receipt email
	Logger     *zap.Logger
}

func SetupRoutes(app *fiber.App, authed fiber.Handler, h *Handler) {
	api := app.Group("/api/fees", authed)

	view := auth.RequireView(access.SectionFees)
	mutate := auth.RequireMutate(access.SectionFees)

	api.Get("/", view, h.ListAPI)
	api.Get("/version", view, h.VersionAPI)
	api.Post("/", mutate, h.CreateAPI)
	api.Put("/:id", mutate, h.UpdateAPI)
	api.Delete("/:id", mutate, h.DeleteAPI)

	api.Get("/payments", view, h.ListPaymentsAPI)
	api.Post("/payments", mutate, h.CreatePaymentAPI)
	api.Get("/payments/:id/receipt", view, h.ReceiptAPI)
}
