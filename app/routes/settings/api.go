package settings

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/Nayan-navghane/School-application/app/models"
	"github.com/Nayan-navghane/School-application/app/routes/auth"
)

func (h *Handler) GetAPI(c *fiber.Ctx) error {
	settings, err := h.Repo.Load(c.UserContext())
	if err != nil {
		return auth.Fail(c, err)
	}
	return c.JSON(fiber.Map{"settings": settings})
}

func (h *Handler) VersionAPI(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"version": h.Repo.Version()})
}

func (h *Handler) UpdateAPI(c *fiber.Ctx) error {
	var settings models.Settings
	if err := c.BodyParser(&settings); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request"})
	}

	if err := h.Repo.Save(c.UserContext(), auth.CurrentRole(c), settings); err != nil {
		return auth.Fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Settings saved successfully"})
}

func (h *Handler) UploadLogoAPI(c *fiber.Ctx) error {
	file, err := c.FormFile("logo")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "logo file is required"})
	}
	src, err := file.Open()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "logo file is required"})
	}
	defer src.Close()
	data, err := io.ReadAll(src)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "failed to read logo"})
	}

	handle, err := h.Blobs.Upload("school-logo", data, "jpg")
	if err != nil {
		return auth.Fail(c, err)
	}
	url := h.Blobs.URL(handle)

	if err := h.Repo.SetLogo(c.UserContext(), auth.CurrentRole(c), url); err != nil {
		return auth.Fail(c, err)
	}
	return c.JSON(fiber.Map{"logoUrl": url})
}
