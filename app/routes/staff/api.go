package staff

import (
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/Nayan-navghane/School-application/app/repo"
	"github.com/Nayan-navghane/School-application/app/routes/auth"
)

var validate = validator.New()

func (h *Handler) ListAPI(c *fiber.Ctx) error {
	recs, err := h.Repo.List(c.UserContext())
	if err != nil {
		return auth.Fail(c, err)
	}

	recs = repo.FilterSearch(recs, c.Query("search"), "name", "role")

	return c.JSON(fiber.Map{
		"staff": recs,
		"count": len(recs),
	})
}

func (h *Handler) VersionAPI(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"version": h.Repo.Version()})
}

type staffForm struct {
	Name        string `json:"name" validate:"required"`
	Role        string `json:"role" validate:"required"`
	Contact     string `json:"contact"`
	JoiningDate string `json:"joiningDate"`
	Salary      string `json:"salary" validate:"required"`
	Schedule    string `json:"schedule"`
}

func (f staffForm) fields() map[string]any {
	return map[string]any{
		"name":        f.Name,
		"role":        f.Role,
		"contact":     f.Contact,
		"joiningDate": f.JoiningDate,
		"salary":      f.Salary,
		"schedule":    f.Schedule,
	}
}

func (h *Handler) CreateAPI(c *fiber.Ctx) error {
	var form staffForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request"})
	}
	if err := validate.Struct(form); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "name, role and salary are required"})
	}

	id, err := h.Repo.Create(c.UserContext(), auth.CurrentRole(c), form.fields())
	if err != nil {
		return auth.Fail(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"id": id, "message": "Staff member saved successfully"})
}

func (h *Handler) UpdateAPI(c *fiber.Ctx) error {
	var fields map[string]any
	if err := c.BodyParser(&fields); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request"})
	}

	if err := h.Repo.Update(c.UserContext(), auth.CurrentRole(c), c.Params("id"), fields); err != nil {
		return auth.Fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Staff member updated successfully"})
}

func (h *Handler) DeleteAPI(c *fiber.Ctx) error {
	if err := h.Repo.Delete(c.UserContext(), auth.CurrentRole(c), c.Params("id")); err != nil {
		return auth.Fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Staff member deleted"})
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

	handle, err := h.Blobs.Upload("staff-photos", data, "jpg")
	if err != nil {
		return auth.Fail(c, err)
	}
	url := h.Blobs.URL(handle)

	if err := h.Repo.Update(c.UserContext(), auth.CurrentRole(c), c.Params("id"), map[string]any{"photo": url}); err != nil {
		return auth.Fail(c, err)
	}
	return c.JSON(fiber.Map{"photo": url})
}
