package exams

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Nayan-navghane/School-application/app/repo"
	"github.com/Nayan-navghane/School-application/app/reports"
	"github.com/Nayan-navghane/School-application/app/routes/auth"
)

var validate = validator.New()

func (h *Handler) ListAPI(c *fiber.Ctx) error {
	recs, err := h.Repo.List(c.UserContext())
	if err != nil {
		return auth.Fail(c, err)
	}

	recs = repo.FilterClass(recs, c.Query("class"))
	recs = repo.FilterSearch(recs, c.Query("search"), "subject", "date")

	return c.JSON(fiber.Map{
		"exams": recs,
		"count": len(recs),
	})
}

func (h *Handler) VersionAPI(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"version": h.Repo.Version()})
}

type examForm struct {
	Class   string `json:"class" validate:"required"`
	Subject string `json:"subject" validate:"required"`
	Date    string `json:"date" validate:"required"`
}

func (h *Handler) CreateAPI(c *fiber.Ctx) error {
	var form examForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request"})
	}
	if err := validate.Struct(form); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "class, subject and date are required"})
	}

	id, err := h.Repo.Create(c.UserContext(), auth.CurrentRole(c), map[string]any{
		"class":   form.Class,
		"subject": form.Subject,
		"date":    form.Date,
		"paper":   "",
	})
	if err != nil {
		return auth.Fail(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"id": id, "message": "Exam saved successfully"})
}

func (h *Handler) UpdateAPI(c *fiber.Ctx) error {
	var fields map[string]any
	if err := c.BodyParser(&fields); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request"})
	}

	if err := h.Repo.Update(c.UserContext(), auth.CurrentRole(c), c.Params("id"), fields); err != nil {
		return auth.Fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Exam updated successfully"})
}

func (h *Handler) DeleteAPI(c *fiber.Ctx) error {
	if err := h.Repo.Delete(c.UserContext(), auth.CurrentRole(c), c.Params("id")); err != nil {
		return auth.Fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Exam deleted"})
}

// UploadPaperAPI attaches an exam paper PDF and stores its URL on the
// exam record.
func (h *Handler) UploadPaperAPI(c *fiber.Ctx) error {
	file, err := c.FormFile("paper")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "paper file is required"})
	}
	if !strings.EqualFold(filepath.Ext(file.Filename), ".pdf") {
		return c.Status(400).JSON(fiber.Map{"error": "paper must be a PDF"})
	}
	src, err := file.Open()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "paper file is required"})
	}
	defer src.Close()
	data, err := io.ReadAll(src)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "failed to read paper"})
	}

	handle, err := h.Blobs.Upload("exam-papers", data, "pdf")
	if err != nil {
		return auth.Fail(c, err)
	}
	url := h.Blobs.URL(handle)

	if err := h.Repo.Update(c.UserContext(), auth.CurrentRole(c), c.Params("id"), map[string]any{"paper": url}); err != nil {
		return auth.Fail(c, err)
	}
	return c.JSON(fiber.Map{"paper": url})
}

func (h *Handler) ListMarksAPI(c *fiber.Ctx) error {
	recs, err := h.Marks.List(c.UserContext())
	if err != nil {
		return auth.Fail(c, err)
	}

	recs = repo.FilterSearch(recs, c.Query("search"), "studentId", "examId")

	return c.JSON(fiber.Map{
		"marks": recs,
		"count": len(recs),
	})
}

func (h *Handler) CreateMarksAPI(c *fiber.Ctx) error {
	type marksForm struct {
		StudentID string `json:"studentId" validate:"required"`
		ExamID    string `json:"examId" validate:"required"`
		Marks     string `json:"marks" validate:"required"`
		Total     int    `json:"total"`
	}

	var form marksForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request"})
	}
	if err := validate.Struct(form); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "studentId, examId and marks are required"})
	}
	if form.Total == 0 {
		form.Total = 100
	}

	id, err := h.Marks.Create(c.UserContext(), auth.CurrentRole(c), map[string]any{
		"studentId": form.StudentID,
		"examId":    form.ExamID,
		"marks":     form.Marks,
		"total":     form.Total,
	})
	if err != nil {
		return auth.Fail(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"id": id, "message": "Marks entered successfully"})
}

// ReportCardAPI aggregates a student's marks, renders the report card
// and hands it to the share sink.
func (h *Handler) ReportCardAPI(c *fiber.Ctx) error {
	marks, err := h.Marks.List(c.UserContext())
	if err != nil {
		return auth.Fail(c, err)
	}

	card := reports.BuildReportCard(c.Params("studentId"), marks)
	markup, err := reports.RenderReportCard(card)
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

	h.Logger.Info("report card generated",
		zap.String("user_id", card.StudentID), zap.Float64("average", card.Average))
	return c.JSON(fiber.Map{
		"document": handle,
		"average":  card.Average,
		"total":    card.TotalMarks,
		"exams":    len(card.Lines),
	})
}
