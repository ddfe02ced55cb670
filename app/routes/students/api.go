package students

import (
	"io"

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
	recs = repo.FilterSearch(recs, c.Query("search"), "name", "rollNo")

	return c.JSON(fiber.Map{
		"students": recs,
		"count":    len(recs),
	})
}

func (h *Handler) VersionAPI(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"version": h.Repo.Version()})
}

type studentForm struct {
	Name             string `json:"name" validate:"required"`
	DOB              string `json:"dob"`
	Class            string `json:"class" validate:"required"`
	Section          string `json:"section"`
	RollNo           string `json:"rollNo"`
	ParentName       string `json:"parentName"`
	ParentPhone      string `json:"parentPhone"`
	Address          string `json:"address"`
	Aadhar           string `json:"aadhar"`
	BloodGroup       string `json:"bloodGroup"`
	EmergencyContact string `json:"emergencyContact"`
}

func (f studentForm) fields() map[string]any {
	return map[string]any{
		"name":             f.Name,
		"dob":              f.DOB,
		"class":            f.Class,
		"section":          f.Section,
		"rollNo":           f.RollNo,
		"parentName":       f.ParentName,
		"parentPhone":      f.ParentPhone,
		"address":          f.Address,
		"aadhar":           f.Aadhar,
		"bloodGroup":       f.BloodGroup,
		"emergencyContact": f.EmergencyContact,
	}
}

func (h *Handler) CreateAPI(c *fiber.Ctx) error {
	var form studentForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request"})
	}
	if err := validate.Struct(form); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "name and class are required"})
	}

	id, err := h.Repo.Create(c.UserContext(), auth.CurrentRole(c), form.fields())
	if err != nil {
		return auth.Fail(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"id": id, "message": "Student saved successfully"})
}

func (h *Handler) UpdateAPI(c *fiber.Ctx) error {
	var fields map[string]any
	if err := c.BodyParser(&fields); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request"})
	}

	if err := h.Repo.Update(c.UserContext(), auth.CurrentRole(c), c.Params("id"), fields); err != nil {
		return auth.Fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Student updated successfully"})
}

func (h *Handler) DeleteAPI(c *fiber.Ctx) error {
	if err := h.Repo.Delete(c.UserContext(), auth.CurrentRole(c), c.Params("id")); err != nil {
		return auth.Fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Student deleted"})
}

func (h *Handler) UploadPhotoAPI(c *fiber.Ctx) error {
	file, err := c.FormFile("photo")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "photo file is required"})
	}
	src, err := file.Open()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "photo file is required"})
	}
	defer src.Close()
	data, err := io.ReadAll(src)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "failed to read photo"})
	}

	handle, err := h.Blobs.Upload("photos", data, "jpg")
	if err != nil {
		return auth.Fail(c, err)
	}
	url := h.Blobs.URL(handle)

	if err := h.Repo.Update(c.UserContext(), auth.CurrentRole(c), c.Params("id"), map[string]any{"photo": url}); err != nil {
		return auth.Fail(c, err)
	}
	return c.JSON(fiber.Map{"photo": url})
}

func (h *Handler) IDCardAPI(c *fiber.Ctx) error {
	student, err := h.Repo.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return auth.Fail(c, err)
	}

	markup, err := reports.RenderIDCard(reports.BuildIDCard(student, student.Field("photo")))
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

	h.Logger.Info("id card generated", zap.String("document_id", student.ID))
	return c.JSON(fiber.Map{"document": handle})
}
