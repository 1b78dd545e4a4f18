package admin

import (
	"strings"

	"kiosk-backend/internal/database"
	"kiosk-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CreateBranchRequest struct {
	CorporationID *uint  `json:"corporation_id"`
	Code          string `json:"code"`
	Name          string `json:"name"`
	NameJa        string `json:"name_ja"`
	Address       string `json:"address"`
	ManagerName   string `json:"manager_name"`
	RegionCode    string `json:"region_code"`
	AreaCode      string `json:"area_code"`
}

type UpdateBranchRequest struct {
	CorporationID *uint   `json:"corporation_id"`
	Code          *string `json:"code"`
	Name          *string `json:"name"`
	NameJa        *string `json:"name_ja"`
	Address       *string `json:"address"`
	ManagerName   *string `json:"manager_name"`
	RegionCode    *string `json:"region_code"`
	AreaCode      *string `json:"area_code"`
}

func CreateBranchHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateBranchRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Şube adı boş olamaz")
		}

		if body.CorporationID != nil {
			var corp models.Corporation
			if err := database.DB.First(&corp, "id = ?", *body.CorporationID).Error; err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Bağlanacak şirket bulunamadı")
			}
		}

		branch := models.Branch{
			CorporationID: body.CorporationID,
			Code:          body.Code,
			Name:          body.Name,
			NameJa:        body.NameJa,
			Address:       body.Address,
			ManagerName:   body.ManagerName,
			RegionCode:    body.RegionCode,
			AreaCode:      body.AreaCode,
		}

		if err := database.DB.Create(&branch).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Şube oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(branch)
	}
}

func ListBranchesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var branches []models.Branch
		if err := database.DB.Preload("Corporation.Fc").Order("name ASC").Find(&branches).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Şubeler listelenemedi")
		}
		return c.JSON(branches)
	}
}

func GetBranchHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var branch models.Branch
		if err := database.DB.Preload("Corporation.Fc").First(&branch, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Şube bulunamadı")
		}
		return c.JSON(branch)
	}
}

func UpdateBranchHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var branch models.Branch
		if err := database.DB.First(&branch, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Şube bulunamadı")
		}

		var body UpdateBranchRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		if body.CorporationID != nil {
			var corp models.Corporation
			if err := database.DB.First(&corp, "id = ?", *body.CorporationID).Error; err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Bağlanacak şirket bulunamadı")
			}
			branch.CorporationID = body.CorporationID
		}
		if body.Code != nil {
			branch.Code = *body.Code
		}
		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Şube adı boş olamaz")
			}
			branch.Name = name
		}
		if body.NameJa != nil {
			branch.NameJa = *body.NameJa
		}
		if body.Address != nil {
			branch.Address = *body.Address
		}
		if body.ManagerName != nil {
			branch.ManagerName = *body.ManagerName
		}
		if body.RegionCode != nil {
			branch.RegionCode = *body.RegionCode
		}
		if body.AreaCode != nil {
			branch.AreaCode = *body.AreaCode
		}

		if err := database.DB.Save(&branch).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Şube güncellenemedi")
		}

		return c.JSON(branch)
	}
}

func DeleteBranchHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var kioskCount int64
		database.DB.Model(&models.Kiosk{}).Where("branch_id = ?", id).Count(&kioskCount)
		if kioskCount > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Bu şubede kiosklar var, önce onları taşıyın")
		}

		if err := database.DB.Delete(&models.Branch{}, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Şube silinemedi")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
