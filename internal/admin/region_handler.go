package admin

import (
	"strings"

	"kiosk-backend/internal/database"
	"kiosk-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ----------------------------------------
// BÖLGE (REGION) CRUD
// ----------------------------------------

type CreateRegionRequest struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	NameJa string `json:"name_ja"`
}

type UpdateRegionRequest struct {
	Name   *string `json:"name"`
	NameJa *string `json:"name_ja"`
}

func CreateRegionHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateRegionRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		body.Code = strings.TrimSpace(body.Code)
		body.Name = strings.TrimSpace(body.Name)
		if body.Code == "" || body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Bölge kodu ve adı zorunlu")
		}

		var existing models.Region
		if err := database.DB.First(&existing, "code = ?", body.Code).Error; err == nil {
			return fiber.NewError(fiber.StatusBadRequest, "Bu bölge kodu zaten kayıtlı")
		}

		region := models.Region{
			Code:   body.Code,
			Name:   body.Name,
			NameJa: body.NameJa,
		}

		if err := database.DB.Create(&region).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Bölge oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(region)
	}
}

func ListRegionsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var regions []models.Region
		if err := database.DB.Preload("Areas").Order("code ASC").Find(&regions).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Bölgeler listelenemedi")
		}
		return c.JSON(regions)
	}
}

func UpdateRegionHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var region models.Region
		if err := database.DB.First(&region, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Bölge bulunamadı")
		}

		var body UpdateRegionRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Bölge adı boş olamaz")
			}
			region.Name = name
		}
		if body.NameJa != nil {
			region.NameJa = *body.NameJa
		}

		if err := database.DB.Save(&region).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Bölge güncellenemedi")
		}

		return c.JSON(region)
	}
}

func DeleteRegionHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var region models.Region
		if err := database.DB.First(&region, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Bölge bulunamadı")
		}

		var areaCount int64
		database.DB.Model(&models.Area{}).Where("region_code = ?", region.Code).Count(&areaCount)
		if areaCount > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Bu bölgeye bağlı ofisler var, önce onları silin")
		}

		if err := database.DB.Delete(&region).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Bölge silinemedi")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}

// ----------------------------------------
// BÖLGE OFİSİ (AREA) CRUD
// ----------------------------------------

type CreateAreaRequest struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	NameJa     string `json:"name_ja"`
	RegionCode string `json:"region_code"`
}

type UpdateAreaRequest struct {
	Name       *string `json:"name"`
	NameJa     *string `json:"name_ja"`
	RegionCode *string `json:"region_code"`
}

func CreateAreaHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateAreaRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		body.Code = strings.TrimSpace(body.Code)
		body.Name = strings.TrimSpace(body.Name)
		if body.Code == "" || body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Ofis kodu ve adı zorunlu")
		}

		if body.RegionCode != "" {
			var region models.Region
			if err := database.DB.First(&region, "code = ?", body.RegionCode).Error; err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Bağlanacak bölge bulunamadı")
			}
		}

		var existing models.Area
		if err := database.DB.First(&existing, "code = ?", body.Code).Error; err == nil {
			return fiber.NewError(fiber.StatusBadRequest, "Bu ofis kodu zaten kayıtlı")
		}

		area := models.Area{
			Code:       body.Code,
			Name:       body.Name,
			NameJa:     body.NameJa,
			RegionCode: body.RegionCode,
		}

		if err := database.DB.Create(&area).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ofis oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(area)
	}
}

func ListAreasHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := database.DB.Order("code ASC")
		if regionCode := c.Query("region_code"); regionCode != "" {
			query = query.Where("region_code = ?", regionCode)
		}

		var areas []models.Area
		if err := query.Find(&areas).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ofisler listelenemedi")
		}
		return c.JSON(areas)
	}
}

func UpdateAreaHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var area models.Area
		if err := database.DB.First(&area, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Ofis bulunamadı")
		}

		var body UpdateAreaRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Ofis adı boş olamaz")
			}
			area.Name = name
		}
		if body.NameJa != nil {
			area.NameJa = *body.NameJa
		}
		if body.RegionCode != nil {
			if *body.RegionCode != "" {
				var region models.Region
				if err := database.DB.First(&region, "code = ?", *body.RegionCode).Error; err != nil {
					return fiber.NewError(fiber.StatusBadRequest, "Bağlanacak bölge bulunamadı")
				}
			}
			area.RegionCode = *body.RegionCode
		}

		if err := database.DB.Save(&area).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ofis güncellenemedi")
		}

		return c.JSON(area)
	}
}

func DeleteAreaHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		if err := database.DB.Delete(&models.Area{}, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ofis silinemedi")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
