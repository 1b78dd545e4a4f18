package assets

import (
	"fmt"
	"strings"
	"time"

	"kiosk-backend/internal/audit"
	"kiosk-backend/internal/auth"
	"kiosk-backend/internal/database"
	"kiosk-backend/internal/history"
	"kiosk-backend/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var validate = validator.New()

type CreateKioskRequest struct {
	Code             string   `json:"code"`
	SerialNumber     string   `json:"serial_number"`
	KioskNumber      string   `json:"kiosk_number"`
	AnydeskID        string   `json:"anydesk_id"`
	BrandName        string   `json:"brand_name"`
	CurrentPartnerID *uint    `json:"current_partner_id"`
	BranchID         *uint    `json:"branch_id"`
	BranchName       string   `json:"branch_name"`
	RegionCode       string   `json:"region_code"`
	AreaCode         string   `json:"area_code"`
	Acquisition      string   `json:"acquisition" validate:"omitempty,oneof=FREE LEASE LEASE_FREE PURCHASE RENTAL"`
	SalePrice        *float64 `json:"sale_price"`
	LeaseCompanyID   *uint    `json:"lease_company_id"`
	OrderRequestDate *string  `json:"order_request_date"`
	DeliveryDueDate  string   `json:"delivery_due_date"` // serbest metin
	DeliveryDate     *string  `json:"delivery_date"`
	DeliveryStatus   string   `json:"delivery_status" validate:"omitempty,oneof=PENDING ORDERED SHIPPED DELIVERED"`
	Status           string   `json:"status" validate:"omitempty,oneof=IN_STOCK DEPLOYED MAINTENANCE RETIRED"`
	Memo             string   `json:"memo"`
}

type UpdateKioskRequest struct {
	Code             *string  `json:"code"`
	SerialNumber     *string  `json:"serial_number"`
	KioskNumber      *string  `json:"kiosk_number"`
	AnydeskID        *string  `json:"anydesk_id"`
	BrandName        *string  `json:"brand_name"`
	CurrentPartnerID *uint    `json:"current_partner_id"`
	BranchID         *uint    `json:"branch_id"`
	BranchName       *string  `json:"branch_name"`
	RegionCode       *string  `json:"region_code"`
	AreaCode         *string  `json:"area_code"`
	Acquisition      *string  `json:"acquisition"`
	SalePrice        *float64 `json:"sale_price"`
	LeaseCompanyID   *uint    `json:"lease_company_id"`
	OrderRequestDate *string  `json:"order_request_date"`
	DeliveryDueDate  *string  `json:"delivery_due_date"`
	DeliveryDate     *string  `json:"delivery_date"`
	DeliveryStatus   *string  `json:"delivery_status"`
	Memo             *string  `json:"memo"`
}

// tempSerial: seri numarası henüz bilinmeyen cihazlar için geçici, benzersiz numara.
func tempSerial() string {
	return fmt.Sprintf("TEMP-%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

func parseDatePtr(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	d, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// GET /api/assets
func ListKiosksHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var kiosks []models.Kiosk
		if err := database.DB.
			Preload("CurrentPartner").
			Preload("LeaseCompany").
			Preload("Branch.Corporation.Fc").
			Order("created_at ASC").
			Find(&kiosks).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kiosklar listelenemedi")
		}
		return c.JSON(kiosks)
	}
}

// GET /api/assets/:id
func GetKioskHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var kiosk models.Kiosk
		if err := database.DB.
			Preload("CurrentPartner").
			Preload("LeaseCompany").
			Preload("Branch.Corporation.Fc").
			First(&kiosk, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Kiosk bulunamadı")
		}
		return c.JSON(kiosk)
	}
}

// POST /api/assets
// Seri numarası boş gelirse TEMP- ön ekiyle üretilir; kayıtla birlikte ilk
// DEPLOY hareketi de açılır (teslim tarihi varsa event_date olarak kullanılır).
func CreateKioskHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateKioskRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if err := validate.Struct(body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz alan değeri: "+err.Error())
		}

		if body.Code != "" {
			var existing models.Kiosk
			if err := database.DB.First(&existing, "code = ?", body.Code).Error; err == nil {
				return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("'%s' kodu zaten kayıtlı", body.Code))
			}
		}

		serial := strings.TrimSpace(body.SerialNumber)
		if serial == "" {
			serial = tempSerial()
		}
		var existingSerial models.Kiosk
		if err := database.DB.First(&existingSerial, "serial_number = ?", serial).Error; err == nil {
			return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("'%s' seri numarası zaten kayıtlı", serial))
		}

		orderRequestDate, err := parseDatePtr(body.OrderRequestDate)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "order_request_date formatı 'YYYY-MM-DD' olmalı")
		}
		deliveryDate, err := parseDatePtr(body.DeliveryDate)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "delivery_date formatı 'YYYY-MM-DD' olmalı")
		}

		kiosk := models.Kiosk{
			SerialNumber:     serial,
			KioskNumber:      body.KioskNumber,
			AnydeskID:        body.AnydeskID,
			BrandName:        body.BrandName,
			CurrentPartnerID: body.CurrentPartnerID,
			BranchID:         body.BranchID,
			BranchName:       body.BranchName,
			RegionCode:       body.RegionCode,
			AreaCode:         body.AreaCode,
			Acquisition:      models.AcquisitionPurchase,
			SalePrice:        body.SalePrice,
			LeaseCompanyID:   body.LeaseCompanyID,
			OrderRequestDate: orderRequestDate,
			DeliveryDueDate:  body.DeliveryDueDate,
			DeliveryDate:     deliveryDate,
			DeliveryStatus:   models.DeliveryStatusPending,
			Status:           models.KioskStatusInStock,
			Memo:             body.Memo,
		}
		if body.Code != "" {
			kiosk.Code = &body.Code
		}
		if body.Acquisition != "" {
			kiosk.Acquisition = models.AcquisitionType(body.Acquisition)
		}
		if body.DeliveryStatus != "" {
			kiosk.DeliveryStatus = models.DeliveryStatus(body.DeliveryStatus)
		}
		if body.Status != "" {
			kiosk.Status = models.KioskStatus(body.Status)
		}

		if err := database.DB.Create(&kiosk).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kiosk oluşturulamadı")
		}

		userID, userName, _ := auth.CurrentUser(c)

		// İlk hareket kaydı: yeni varlık kaydı bir DEPLOY olayıdır
		if _, err := history.Append(kiosk.ID, history.AppendInput{
			MoveType:      models.MoveTypeDeploy,
			EventDate:     deliveryDate,
			NewPartnerID:  body.CurrentPartnerID,
			NewBranchID:   body.BranchID,
			NewBranchName: body.BranchName,
			Description:   "Yeni varlık kaydı",
			HandledBy:     userName,
			UpdateKiosk:   false,
		}); err != nil {
			return err
		}

		audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "kiosk",
			EntityID:    kiosk.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("Kiosk %s kaydedildi", kiosk.SerialNumber),
			After:       kiosk,
		})

		return c.Status(fiber.StatusCreated).JSON(kiosk)
	}
}

// PUT /api/assets/:id
// Status bu endpoint'ten değiştirilemez; durum değişikliği hareket kaydı
// üzerinden yapılır (POST /api/assets/:id/history).
func UpdateKioskHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var kiosk models.Kiosk
		if err := database.DB.First(&kiosk, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Kiosk bulunamadı")
		}
		before := kiosk

		var body UpdateKioskRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		if body.Code != nil {
			if *body.Code != "" {
				var existing models.Kiosk
				if err := database.DB.Where("code = ? AND id <> ?", *body.Code, kiosk.ID).First(&existing).Error; err == nil {
					return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("'%s' kodu zaten kayıtlı", *body.Code))
				}
				kiosk.Code = body.Code
			} else {
				kiosk.Code = nil
			}
		}
		if body.SerialNumber != nil && *body.SerialNumber != "" {
			var existing models.Kiosk
			if err := database.DB.Where("serial_number = ? AND id <> ?", *body.SerialNumber, kiosk.ID).First(&existing).Error; err == nil {
				return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("'%s' seri numarası zaten kayıtlı", *body.SerialNumber))
			}
			kiosk.SerialNumber = *body.SerialNumber
		}
		if body.KioskNumber != nil {
			kiosk.KioskNumber = *body.KioskNumber
		}
		if body.AnydeskID != nil {
			kiosk.AnydeskID = *body.AnydeskID
		}
		if body.BrandName != nil {
			kiosk.BrandName = *body.BrandName
		}
		if body.CurrentPartnerID != nil {
			kiosk.CurrentPartnerID = body.CurrentPartnerID
		}
		if body.BranchID != nil {
			kiosk.BranchID = body.BranchID
		}
		if body.BranchName != nil {
			kiosk.BranchName = *body.BranchName
		}
		if body.RegionCode != nil {
			kiosk.RegionCode = *body.RegionCode
		}
		if body.AreaCode != nil {
			kiosk.AreaCode = *body.AreaCode
		}
		if body.Acquisition != nil {
			switch models.AcquisitionType(*body.Acquisition) {
			case models.AcquisitionFree, models.AcquisitionLease, models.AcquisitionLeaseFree,
				models.AcquisitionPurchase, models.AcquisitionRental:
				kiosk.Acquisition = models.AcquisitionType(*body.Acquisition)
			default:
				return fiber.NewError(fiber.StatusBadRequest, "Geçersiz acquisition değeri")
			}
		}
		if body.SalePrice != nil {
			kiosk.SalePrice = body.SalePrice
		}
		if body.LeaseCompanyID != nil {
			kiosk.LeaseCompanyID = body.LeaseCompanyID
		}
		if body.OrderRequestDate != nil {
			d, err := parseDatePtr(body.OrderRequestDate)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "order_request_date formatı 'YYYY-MM-DD' olmalı")
			}
			kiosk.OrderRequestDate = d
		}
		if body.DeliveryDueDate != nil {
			kiosk.DeliveryDueDate = *body.DeliveryDueDate
		}
		if body.DeliveryDate != nil {
			d, err := parseDatePtr(body.DeliveryDate)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "delivery_date formatı 'YYYY-MM-DD' olmalı")
			}
			kiosk.DeliveryDate = d
		}
		if body.DeliveryStatus != nil {
			switch models.DeliveryStatus(*body.DeliveryStatus) {
			case models.DeliveryStatusPending, models.DeliveryStatusOrdered,
				models.DeliveryStatusShipped, models.DeliveryStatusDelivered:
				kiosk.DeliveryStatus = models.DeliveryStatus(*body.DeliveryStatus)
			default:
				return fiber.NewError(fiber.StatusBadRequest, "Geçersiz delivery_status değeri")
			}
		}
		if body.Memo != nil {
			kiosk.Memo = *body.Memo
		}

		if err := database.DB.Save(&kiosk).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kiosk güncellenemedi")
		}

		userID, userName, _ := auth.CurrentUser(c)
		audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "kiosk",
			EntityID:    kiosk.ID,
			Action:      models.AuditActionUpdate,
			Description: fmt.Sprintf("Kiosk %s güncellendi", kiosk.SerialNumber),
			Before:      before,
			After:       kiosk,
		})

		return c.JSON(kiosk)
	}
}

// DELETE /api/assets/:id - hareket kayıtları CASCADE ile gider.
func DeleteKioskHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var kiosk models.Kiosk
		if err := database.DB.First(&kiosk, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Kiosk bulunamadı")
		}

		if err := database.DB.Delete(&kiosk).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kiosk silinemedi")
		}

		userID, userName, _ := auth.CurrentUser(c)
		audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "kiosk",
			EntityID:    kiosk.ID,
			Action:      models.AuditActionDelete,
			Description: fmt.Sprintf("Kiosk %s silindi", kiosk.SerialNumber),
			Before:      kiosk,
		})

		return c.JSON(fiber.Map{"success": true})
	}
}

// POST /api/assets/sync-delivery-dates
// Eski kayıtların teslim tarihlerini en güncel hareket tarihine göre doldurur.
func SyncDeliveryDatesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var kiosks []models.Kiosk
		if err := database.DB.Select("id").Find(&kiosks).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kiosklar okunamadı")
		}

		updated := 0
		for _, k := range kiosks {
			var rows []models.LocationHistory
			if err := database.DB.Where("kiosk_id = ?", k.ID).Find(&rows).Error; err != nil {
				continue
			}
			latest := history.LatestRow(rows)
			if latest == nil {
				continue
			}
			if err := database.DB.Model(&models.Kiosk{}).
				Where("id = ?", k.ID).
				Update("delivery_date", latest.EventDate).Error; err == nil {
				updated++
			}
		}

		return c.JSON(fiber.Map{
			"success": true,
			"message": fmt.Sprintf("%d kioskun teslim tarihi güncellendi", updated),
		})
	}
}
