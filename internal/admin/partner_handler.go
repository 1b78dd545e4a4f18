package admin

import (
	"strings"
	"time"

	"kiosk-backend/internal/database"
	"kiosk-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CreatePartnerRequest struct {
	Name    string `json:"name"`
	NameJa  string `json:"name_ja"`
	Type    string `json:"type"`
	Contact string `json:"contact"`
	Address string `json:"address"`

	ContractDate      *string `json:"contract_date"`
	ContractStartDate *string `json:"contract_start_date"`

	KioskSaleType      string   `json:"kiosk_sale_type"`
	KioskSalePrice     *float64 `json:"kiosk_sale_price"`
	KioskFreeCondition string   `json:"kiosk_free_condition"`
	SaleTerms          string   `json:"sale_terms"`
	MaintenanceTerms   string   `json:"maintenance_terms"`
	CommissionTerms    string   `json:"commission_terms"`
	FeeChangeTerms     string   `json:"fee_change_terms"`
	PmsRate            *float64 `json:"pms_rate"`
	OtaRate            *float64 `json:"ota_rate"`
}

type UpdatePartnerRequest struct {
	Name    *string `json:"name"`
	NameJa  *string `json:"name_ja"`
	Type    *string `json:"type"`
	Contact *string `json:"contact"`
	Address *string `json:"address"`

	ContractDate      *string `json:"contract_date"`
	ContractStartDate *string `json:"contract_start_date"`

	KioskSaleType      *string  `json:"kiosk_sale_type"`
	KioskSalePrice     *float64 `json:"kiosk_sale_price"`
	KioskFreeCondition *string  `json:"kiosk_free_condition"`
	SaleTerms          *string  `json:"sale_terms"`
	MaintenanceTerms   *string  `json:"maintenance_terms"`
	CommissionTerms    *string  `json:"commission_terms"`
	FeeChangeTerms     *string  `json:"fee_change_terms"`
	PmsRate            *float64 `json:"pms_rate"`
	OtaRate            *float64 `json:"ota_rate"`
}

func parseDateField(s *string, fieldName string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	d, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, fieldName+" formatı 'YYYY-MM-DD' olmalı")
	}
	return &d, nil
}

func CreatePartnerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreatePartnerRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Bayi adı boş olamaz")
		}

		contractDate, err := parseDateField(body.ContractDate, "contract_date")
		if err != nil {
			return err
		}
		contractStartDate, err := parseDateField(body.ContractStartDate, "contract_start_date")
		if err != nil {
			return err
		}

		partner := models.Partner{
			Name:               body.Name,
			NameJa:             body.NameJa,
			Type:               body.Type,
			Contact:            body.Contact,
			Address:            body.Address,
			ContractDate:       contractDate,
			ContractStartDate:  contractStartDate,
			KioskSaleType:      body.KioskSaleType,
			KioskSalePrice:     body.KioskSalePrice,
			KioskFreeCondition: body.KioskFreeCondition,
			SaleTerms:          body.SaleTerms,
			MaintenanceTerms:   body.MaintenanceTerms,
			CommissionTerms:    body.CommissionTerms,
			FeeChangeTerms:     body.FeeChangeTerms,
			PmsRate:            body.PmsRate,
			OtaRate:            body.OtaRate,
		}

		if err := database.DB.Create(&partner).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Bayi oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(partner)
	}
}

func ListPartnersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var partners []models.Partner
		if err := database.DB.Order("name ASC").Find(&partners).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Bayiler listelenemedi")
		}
		return c.JSON(partners)
	}
}

func GetPartnerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var partner models.Partner
		if err := database.DB.Preload("CurrentKiosks").First(&partner, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Bayi bulunamadı")
		}
		return c.JSON(partner)
	}
}

func UpdatePartnerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var partner models.Partner
		if err := database.DB.First(&partner, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Bayi bulunamadı")
		}

		var body UpdatePartnerRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Bayi adı boş olamaz")
			}
			partner.Name = name
		}
		if body.NameJa != nil {
			partner.NameJa = *body.NameJa
		}
		if body.Type != nil {
			partner.Type = *body.Type
		}
		if body.Contact != nil {
			partner.Contact = *body.Contact
		}
		if body.Address != nil {
			partner.Address = *body.Address
		}
		if body.ContractDate != nil {
			d, err := parseDateField(body.ContractDate, "contract_date")
			if err != nil {
				return err
			}
			partner.ContractDate = d
		}
		if body.ContractStartDate != nil {
			d, err := parseDateField(body.ContractStartDate, "contract_start_date")
			if err != nil {
				return err
			}
			partner.ContractStartDate = d
		}
		if body.KioskSaleType != nil {
			partner.KioskSaleType = *body.KioskSaleType
		}
		if body.KioskSalePrice != nil {
			partner.KioskSalePrice = body.KioskSalePrice
		}
		if body.KioskFreeCondition != nil {
			partner.KioskFreeCondition = *body.KioskFreeCondition
		}
		if body.SaleTerms != nil {
			partner.SaleTerms = *body.SaleTerms
		}
		if body.MaintenanceTerms != nil {
			partner.MaintenanceTerms = *body.MaintenanceTerms
		}
		if body.CommissionTerms != nil {
			partner.CommissionTerms = *body.CommissionTerms
		}
		if body.FeeChangeTerms != nil {
			partner.FeeChangeTerms = *body.FeeChangeTerms
		}
		if body.PmsRate != nil {
			partner.PmsRate = body.PmsRate
		}
		if body.OtaRate != nil {
			partner.OtaRate = body.OtaRate
		}

		if err := database.DB.Save(&partner).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Bayi güncellenemedi")
		}

		return c.JSON(partner)
	}
}

func DeletePartnerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		// Üzerinde kiosk varken silinemez
		var kioskCount int64
		database.DB.Model(&models.Kiosk{}).Where("current_partner_id = ?", id).Count(&kioskCount)
		if kioskCount > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Bu bayiye bağlı kiosklar var, önce onları taşıyın")
		}

		if err := database.DB.Delete(&models.Partner{}, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Bayi silinemedi")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
