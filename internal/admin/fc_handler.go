package admin

import (
	"strings"

	"kiosk-backend/internal/database"
	"kiosk-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ----------------------------------------
// FC (FRANCHISE) CRUD
// ----------------------------------------

type CreateFCRequest struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	NameJa string `json:"name_ja"`
	FcType string `json:"fc_type"`
}

type UpdateFCRequest struct {
	Code   *string `json:"code"`
	Name   *string `json:"name"`
	NameJa *string `json:"name_ja"`
	FcType *string `json:"fc_type"`
}

func CreateFCHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateFCRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "FC adı boş olamaz")
		}

		if body.Code != "" {
			var existing models.FC
			if err := database.DB.First(&existing, "code = ?", body.Code).Error; err == nil {
				return fiber.NewError(fiber.StatusBadRequest, "Bu FC kodu zaten kayıtlı")
			}
		}

		fc := models.FC{
			Code:   body.Code,
			Name:   body.Name,
			NameJa: body.NameJa,
			FcType: body.FcType,
		}

		if err := database.DB.Create(&fc).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "FC oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(fc)
	}
}

func ListFCsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var fcs []models.FC
		if err := database.DB.Preload("Corporations").Order("code ASC").Find(&fcs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "FC'ler listelenemedi")
		}
		return c.JSON(fcs)
	}
}

func UpdateFCHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var fc models.FC
		if err := database.DB.First(&fc, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "FC bulunamadı")
		}

		var body UpdateFCRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		if body.Code != nil {
			fc.Code = *body.Code
		}
		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "FC adı boş olamaz")
			}
			fc.Name = name
		}
		if body.NameJa != nil {
			fc.NameJa = *body.NameJa
		}
		if body.FcType != nil {
			fc.FcType = *body.FcType
		}

		if err := database.DB.Save(&fc).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "FC güncellenemedi")
		}

		return c.JSON(fc)
	}
}

func DeleteFCHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var corpCount int64
		database.DB.Model(&models.Corporation{}).Where("fc_id = ?", id).Count(&corpCount)
		if corpCount > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Bu FC'ye bağlı şirketler var, önce onları silin")
		}

		if err := database.DB.Delete(&models.FC{}, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "FC silinemedi")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}

// ----------------------------------------
// ŞİRKET (CORPORATION) CRUD
// ----------------------------------------

type CreateCorporationRequest struct {
	FcID   *uint  `json:"fc_id"`
	Code   string `json:"code"`
	Name   string `json:"name"`
	NameJa string `json:"name_ja"`
}

type UpdateCorporationRequest struct {
	FcID   *uint   `json:"fc_id"`
	Code   *string `json:"code"`
	Name   *string `json:"name"`
	NameJa *string `json:"name_ja"`
}

func CreateCorporationHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateCorporationRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Şirket adı boş olamaz")
		}

		if body.FcID != nil {
			var fc models.FC
			if err := database.DB.First(&fc, "id = ?", *body.FcID).Error; err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Bağlanacak FC bulunamadı")
			}
		}

		corp := models.Corporation{
			FcID:   body.FcID,
			Code:   body.Code,
			Name:   body.Name,
			NameJa: body.NameJa,
		}

		if err := database.DB.Create(&corp).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Şirket oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(corp)
	}
}

func ListCorporationsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var corps []models.Corporation
		if err := database.DB.Preload("Fc").Preload("Branches").Order("name ASC").Find(&corps).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Şirketler listelenemedi")
		}
		return c.JSON(corps)
	}
}

func UpdateCorporationHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var corp models.Corporation
		if err := database.DB.First(&corp, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Şirket bulunamadı")
		}

		var body UpdateCorporationRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		if body.FcID != nil {
			var fc models.FC
			if err := database.DB.First(&fc, "id = ?", *body.FcID).Error; err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Bağlanacak FC bulunamadı")
			}
			corp.FcID = body.FcID
		}
		if body.Code != nil {
			corp.Code = *body.Code
		}
		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Şirket adı boş olamaz")
			}
			corp.Name = name
		}
		if body.NameJa != nil {
			corp.NameJa = *body.NameJa
		}

		if err := database.DB.Save(&corp).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Şirket güncellenemedi")
		}

		return c.JSON(corp)
	}
}

func DeleteCorporationHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var branchCount int64
		database.DB.Model(&models.Branch{}).Where("corporation_id = ?", id).Count(&branchCount)
		if branchCount > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Bu şirkete bağlı şubeler var, önce onları silin")
		}

		if err := database.DB.Delete(&models.Corporation{}, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Şirket silinemedi")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
