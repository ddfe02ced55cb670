package attendance

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Nayan-navghane/School-application/app/models"
	"github.com/Nayan-navghane/School-application/app/repo"
	"github.com/Nayan-navghane/School-application/app/reports"
	"github.com/Nayan-navghane/School-application/app/routes/auth"
	"github.com/Nayan-navghane/School-application/app/store"
)

var validate = validator.New()

func today() string {
	return time.Now().Format("2006-01-02")
}

// ListAPI returns the day's records. Admin and teacher see everything;
// student and parent accounts see only their own linked records.
func (h *Handler) ListAPI(c *fiber.Ctx) error {
	date := c.Query("date", today())

	recs, err := h.Repo.ListForDate(c.UserContext(), auth.CurrentRole(c), auth.CurrentPersonID(c), date)
	if err != nil {
		return auth.Fail(c, err)
	}

	if kind := c.Query("kind"); kind != "" {
		var kept []store.Record
		for _, rec := range recs {
			if rec.Field("kind") == kind {
				kept = append(kept, rec)
			}
		}
		recs = kept
	}
	recs = repo.FilterClass(recs, c.Query("class"))
	recs = repo.FilterSearch(recs, c.Query("search"), "entity_id", "date")

	return c.JSON(fiber.Map{
		"attendance": recs,
		"date":       date,
		"count":      len(recs),
	})
}

func (h *Handler) VersionAPI(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"version": h.Repo.Version()})
}

// MarkAPI marks one entity present or absent for a date. Re-marking the
// same (entity, date) pair updates the status in place.
func (h *Handler) MarkAPI(c *fiber.Ctx) error {
	type markForm struct {
		EntityID string `json:"entity_id" validate:"required"`
		Status   string `json:"status" validate:"required,oneof=present absent"`
		Kind     string `json:"kind" validate:"required,oneof=student teacher"`
		Class    string `json:"class"`
		Date     string `json:"date"`
	}

	var form markForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request"})
	}
	if err := validate.Struct(form); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "entity_id, status (present|absent) and kind (student|teacher) are required"})
	}
	if form.Date == "" {
		form.Date = today()
	}

	err := h.Repo.Mark(c.UserContext(), auth.CurrentRole(c),
		form.EntityID,
		models.AttendanceStatus(form.Status),
		models.AttendanceKind(form.Kind),
		form.Class, form.Date,
	)
	if err != nil {
		return auth.Fail(c, err)
	}

	h.Logger.Info("attendance marked",
		zap.String("document_id", form.EntityID),
		zap.String("operation", "mark"),
	)
	return c.JSON(fiber.Map{"message": "Attendance marked as " + form.Status})
}

// ExportAPI streams the day's register as an xlsx workbook.
func (h *Handler) ExportAPI(c *fiber.Ctx) error {
	date := c.Query("date", today())

	recs, err := h.Repo.ListForDate(c.UserContext(), auth.CurrentRole(c), auth.CurrentPersonID(c), date)
	if err != nil {
		return auth.Fail(c, err)
	}

	f, err := reports.AttendanceRegister(date, recs)
	if err != nil {
		return auth.Fail(c, err)
	}

	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", `attachment; filename="attendance-`+date+`.xlsx"`)
	return f.Write(c.Response().BodyWriter())
}
