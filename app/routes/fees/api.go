package fees

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Nayan-navghane/School-application/app/mail"
	"github.com/Nayan-navghane/School-application/app/models"
	"github.com/Nayan-navghane/School-application/app/repo"
	"github.com/Nayan-navghane/School-application/app/reports"
	"github.com/Nayan-navghane/School-application/app/routes/auth"
)

var validate = validator.New()

func (h *Handler) ListAPI(c *fiber.Ctx) error {
	recs, err := h.Structures.List(c.UserContext())
	if err != nil {
		return auth.Fail(c, err)
	}

	recs = repo.FilterClass(recs, c.Query("class"))
	recs = repo.FilterSearch(recs, c.Query("search"), "feeType")

	return c.JSON(fiber.Map{
		"feeStructures": recs,
		"count":         len(recs),
	})
}

func (h *Handler) VersionAPI(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"version": h.Structures.Version()})
}

type feeForm struct {
	Class   string `json:"class" validate:"required"`
	FeeType string `json:"feeType" validate:"required"`
	Amount  string `json:"amount" validate:"required"`
	DueDate string `json:"dueDate"`
}

func (f feeForm) fields() map[string]any {
	return map[string]any{
		"class":   f.Class,
		"feeType": f.FeeType,
		"amount":  f.Amount,
		"dueDate": f.DueDate,
	}
}

func (h *Handler) CreateAPI(c *fiber.Ctx) error {
	var form feeForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request"})
	}
	if err := validate.Struct(form); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "class, feeType and amount are required"})
	}

	id, err := h.Structures.Create(c.UserContext(), auth.CurrentRole(c), form.fields())
	if err != nil {
		return auth.Fail(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"id": id, "message": "Fee structure saved successfully"})
}

func (h *Handler) UpdateAPI(c *fiber.Ctx) error {
	var fields map[string]any
	if err := c.BodyParser(&fields); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request"})
	}

	if err := h.Structures.Update(c.UserContext(), auth.CurrentRole(c), c.Params("id"), fields); err != nil {
		return auth.Fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Fee structure updated successfully"})
}

func (h *Handler) DeleteAPI(c *fiber.Ctx) error {
	if err := h.Structures.Delete(c.UserContext(), auth.CurrentRole(c), c.Params("id")); err != nil {
		return auth.Fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Fee structure deleted"})
}

func (h *Handler) ListPaymentsAPI(c *fiber.Ctx) error {
	recs, err := h.Payments.List(c.UserContext())
	if err != nil {
		return auth.Fail(c, err)
	}

	recs = repo.FilterSearch(recs, c.Query("search"), "studentId", "date")

	return c.JSON(fiber.Map{
		"payments": recs,
		"count":    len(recs),
	})
}

func (h *Handler) CreatePaymentAPI(c *fiber.Ctx) error {
	type paymentForm struct {
		StudentID string `json:"studentId" validate:"required"`
		Amount    string `json:"amount" validate:"required"`
		Date      string `json:"date" validate:"required"`
		Mode      string `json:"mode"`
	}

	var form paymentForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request"})
	}
	if err := validate.Struct(form); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "studentId, amount and date are required"})
	}
	if form.Mode == "" {
		form.Mode = string(models.PayCash)
	}

	id, err := h.Payments.Create(c.UserContext(), auth.CurrentRole(c), map[string]any{
		"studentId": form.StudentID,
		"amount":    form.Amount,
		"date":      form.Date,
		"mode":      form.Mode,
	})
	if err != nil {
		return auth.Fail(c, err)
	}

	if h.ReceiptsTo != "" {
		h.emailReceipt(c, id)
	}

	return c.Status(201).JSON(fiber.Map{"id": id, "message": "Payment recorded successfully"})
}

// ReceiptAPI renders the payment's receipt and hands it to the share
// sink.
func (h *Handler) ReceiptAPI(c *fiber.Ctx) error {
	payment, err := h.Payments.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return auth.Fail(c, err)
	}

	markup, err := reports.RenderReceipt(reports.BuildReceipt(payment))
	if err != nil {
		return auth.Fail(c, err)
	}
	handle, err := h.Sink.RenderToFile(markup)
	if err != nil {
		return auth.Fail(c, err)
	}
	if err := h.Sink.Share(handle); err != nil {
		return auth.Fail(c, err)
	}

	return c.JSON(fiber.Map{"document": handle})
}

// emailReceipt is best-effort; a mail failure must not fail the payment.
func (h *Handler) emailReceipt(c *fiber.Ctx, paymentID string) {
	payment, err := h.Payments.Get(c.UserContext(), paymentID)
	if err != nil {
		h.Logger.Warn("receipt email skipped", zap.Error(err))
		return
	}
	markup, err := reports.RenderReceipt(reports.BuildReceipt(payment))
	if err != nil {
		h.Logger.Warn("receipt email skipped", zap.Error(err))
		return
	}
	msg := mail.Message{
		To:       h.ReceiptsTo,
		Subject:  "Fee receipt " + paymentID,
		TextBody: "Payment recorded for student " + payment.Field("studentId"),
		HTMLBody: markup,
	}
	if err := h.Mailer.Send(msg); err != nil {
		h.Logger.Warn("receipt email failed", zap.Error(err))
	}
}
