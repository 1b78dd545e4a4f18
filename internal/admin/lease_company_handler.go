package admin

import (
	"strings"

	"kiosk-backend/internal/database"
	"kiosk-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CreateLeaseCompanyRequest struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	NameJa  string `json:"name_ja"`
	Contact string `json:"contact"`
}

type UpdateLeaseCompanyRequest struct {
	Code    *string `json:"code"`
	Name    *string `json:"name"`
	NameJa  *string `json:"name_ja"`
	Contact *string `json:"contact"`
}

func CreateLeaseCompanyHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateLeaseCompanyRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Leasing şirketi adı boş olamaz")
		}

		if body.Code != "" {
			var existing models.LeaseCompany
			if err := database.DB.First(&existing, "code = ?", body.Code).Error; err == nil {
				return fiber.NewError(fiber.StatusBadRequest, "Bu leasing şirketi kodu zaten kayıtlı")
			}
		}

		company := models.LeaseCompany{
			Code:    body.Code,
			Name:    body.Name,
			NameJa:  body.NameJa,
			Contact: body.Contact,
		}

		if err := database.DB.Create(&company).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Leasing şirketi oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(company)
	}
}

func ListLeaseCompaniesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var companies []models.LeaseCompany
		if err := database.DB.Order("name ASC").Find(&companies).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Leasing şirketleri listelenemedi")
		}
		return c.JSON(companies)
	}
}

func UpdateLeaseCompanyHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var company models.LeaseCompany
		if err := database.DB.First(&company, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Leasing şirketi bulunamadı")
		}

		var body UpdateLeaseCompanyRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		if body.Code != nil {
			company.Code = *body.Code
		}
		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Leasing şirketi adı boş olamaz")
			}
			company.Name = name
		}
		if body.NameJa != nil {
			company.NameJa = *body.NameJa
		}
		if body.Contact != nil {
			company.Contact = *body.Contact
		}

		if err := database.DB.Save(&company).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Leasing şirketi güncellenemedi")
		}

		return c.JSON(company)
	}
}

func DeleteLeaseCompanyHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var kioskCount int64
		database.DB.Model(&models.Kiosk{}).Where("lease_company_id = ?", id).Count(&kioskCount)
		if kioskCount > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Bu leasing şirketine bağlı kiosklar var")
		}

		if err := database.DB.Delete(&models.LeaseCompany{}, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Leasing şirketi silinemedi")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
