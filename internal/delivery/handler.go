package delivery

import (
	"fmt"
	"time"

	"kiosk-backend/internal/audit"
	"kiosk-backend/internal/auth"
	"kiosk-backend/internal/database"
	"kiosk-backend/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type CreateDeliveryProcessRequest struct {
	SerialNumber    string `json:"serial_number" validate:"required"`
	ModelName       string `json:"model_name"`
	OrderProcessID  *uint  `json:"order_process_id"`
	ShippedDate     string `json:"shipped_date"`
	ExpectedArrival string `json:"expected_arrival"`
	TrackingNumber  string `json:"tracking_number"`
	Logistics       string `json:"logistics"`
	VendorName      string `json:"vendor_name"`
	VendorContact   string `json:"vendor_contact"`
	VendorNotes     string `json:"vendor_notes"`
}

type UpdateDeliveryProcessRequest struct {
	SerialNumber     *string `json:"serial_number"`
	ModelName        *string `json:"model_name"`
	OrderProcessID   *uint   `json:"order_process_id"`
	Status           *string `json:"status"`
	ShippedDate      *string `json:"shipped_date"`
	ExpectedArrival  *string `json:"expected_arrival"`
	TrackingNumber   *string `json:"tracking_number"`
	Logistics        *string `json:"logistics"`
	VendorName       *string `json:"vendor_name"`
	VendorContact    *string `json:"vendor_contact"`
	VendorNotes      *string `json:"vendor_notes"`
	ActualArrival    *string `json:"actual_arrival"`
	InspectionPassed *bool   `json:"inspection_passed"`
	InspectionNotes  *string `json:"inspection_notes"`
	InternalNotes    *string `json:"internal_notes"`
}

type CompleteStepRequest struct {
	Step int `json:"step" validate:"required,min=1,max=2"`
}

func generateProcessNumber() (string, error) {
	dateStr := time.Now().Format("20060102")
	prefix := fmt.Sprintf("DP-%s", dateStr)

	var count int64
	if err := database.DB.Model(&models.DeliveryProcess{}).
		Where("process_number LIKE ?", prefix+"%").
		Count(&count).Error; err != nil {
		return "", err
	}

	return fmt.Sprintf("%s-%03d", prefix, count+1), nil
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// POST /api/delivery-processes
func CreateDeliveryProcessHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateDeliveryProcessRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if err := validate.Struct(body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "serial_number zorunlu")
		}

		if body.OrderProcessID != nil {
			var orderProc models.OrderProcess
			if err := database.DB.First(&orderProc, "id = ?", *body.OrderProcessID).Error; err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Bağlanacak sipariş süreci bulunamadı")
			}
		}

		shipped, err := parseDate(body.ShippedDate)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "shipped_date formatı 'YYYY-MM-DD' olmalı")
		}
		expected, err := parseDate(body.ExpectedArrival)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "expected_arrival formatı 'YYYY-MM-DD' olmalı")
		}

		number, err := generateProcessNumber()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Süreç numarası üretilemedi")
		}

		proc := models.DeliveryProcess{
			ProcessNumber:   number,
			SerialNumber:    body.SerialNumber,
			ModelName:       body.ModelName,
			OrderProcessID:  body.OrderProcessID,
			ShippedDate:     shipped,
			ExpectedArrival: expected,
			TrackingNumber:  body.TrackingNumber,
			Logistics:       body.Logistics,
			VendorName:      body.VendorName,
			VendorContact:   body.VendorContact,
			VendorNotes:     body.VendorNotes,
			CurrentStep:     1,
			Status:          models.ProcessStatusInProgress,
		}

		if err := database.DB.Create(&proc).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Süreç oluşturulamadı")
		}

		userID, userName, _ := auth.CurrentUser(c)
		audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "delivery_process",
			EntityID:    proc.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("Sevkiyat süreci %s açıldı", proc.ProcessNumber),
			After:       proc,
		})

		return c.Status(fiber.StatusCreated).JSON(proc)
	}
}

// GET /api/delivery-processes
func ListDeliveryProcessesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var procs []models.DeliveryProcess
		if err := database.DB.
			Preload("OrderProcess").
			Order("created_at DESC").
			Find(&procs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Süreçler listelenemedi")
		}
		return c.JSON(procs)
	}
}

// GET /api/delivery-processes/:id
func GetDeliveryProcessHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var proc models.DeliveryProcess
		if err := database.DB.
			Preload("OrderProcess.Partner").
			First(&proc, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Süreç bulunamadı")
		}
		return c.JSON(proc)
	}
}

// PUT /api/delivery-processes/:id - alan alt kümesi, tek atomik persist
func UpdateDeliveryProcessHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var proc models.DeliveryProcess
		if err := database.DB.First(&proc, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Süreç bulunamadı")
		}
		before := proc

		var body UpdateDeliveryProcessRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		if body.SerialNumber != nil {
			if *body.SerialNumber == "" {
				return fiber.NewError(fiber.StatusBadRequest, "serial_number boş olamaz")
			}
			proc.SerialNumber = *body.SerialNumber
		}
		if body.ModelName != nil {
			proc.ModelName = *body.ModelName
		}
		if body.OrderProcessID != nil {
			proc.OrderProcessID = body.OrderProcessID
		}
		if body.Status != nil {
			switch models.ProcessStatus(*body.Status) {
			case models.ProcessStatusCancelled:
				if err := Cancel(&proc); err != nil {
					return fiber.NewError(fiber.StatusBadRequest, err.Error())
				}
			case models.ProcessStatusInProgress:
				proc.Status = models.ProcessStatusInProgress
			default:
				return fiber.NewError(fiber.StatusBadRequest, "status yalnızca IN_PROGRESS veya CANCELLED yapılabilir; tamamlama 2. adımla olur")
			}
		}
		if body.ShippedDate != nil {
			d, err := parseDate(*body.ShippedDate)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "shipped_date formatı 'YYYY-MM-DD' olmalı")
			}
			proc.ShippedDate = d
		}
		if body.ExpectedArrival != nil {
			d, err := parseDate(*body.ExpectedArrival)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "expected_arrival formatı 'YYYY-MM-DD' olmalı")
			}
			proc.ExpectedArrival = d
		}
		if body.TrackingNumber != nil {
			proc.TrackingNumber = *body.TrackingNumber
		}
		if body.Logistics != nil {
			proc.Logistics = *body.Logistics
		}
		if body.VendorName != nil {
			proc.VendorName = *body.VendorName
		}
		if body.VendorContact != nil {
			proc.VendorContact = *body.VendorContact
		}
		if body.VendorNotes != nil {
			proc.VendorNotes = *body.VendorNotes
		}
		if body.ActualArrival != nil {
			d, err := parseDate(*body.ActualArrival)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "actual_arrival formatı 'YYYY-MM-DD' olmalı")
			}
			proc.ActualArrival = d
		}
		if body.InspectionPassed != nil {
			proc.InspectionPassed = body.InspectionPassed
		}
		if body.InspectionNotes != nil {
			proc.InspectionNotes = *body.InspectionNotes
		}
		if body.InternalNotes != nil {
			proc.InternalNotes = *body.InternalNotes
		}

		if err := database.DB.Save(&proc).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Süreç güncellenemedi")
		}

		userID, userName, _ := auth.CurrentUser(c)
		audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "delivery_process",
			EntityID:    proc.ID,
			Action:      models.AuditActionUpdate,
			Description: fmt.Sprintf("Sevkiyat süreci %s güncellendi", proc.ProcessNumber),
			Before:      before,
			After:       proc,
		})

		return c.JSON(proc)
	}
}

// POST /api/delivery-processes/:id/complete-step
func CompleteStepHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var proc models.DeliveryProcess
		if err := database.DB.First(&proc, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Süreç bulunamadı")
		}
		before := proc

		var body CompleteStepRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if err := validate.Struct(body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "step 1 veya 2 olmalı")
		}

		userID, userName, err := auth.CurrentUser(c)
		if err != nil {
			return err
		}

		if err := CompleteStep(&proc, body.Step, time.Now(), userName); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		if err := database.DB.Save(&proc).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Süreç güncellenemedi")
		}

		audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "delivery_process",
			EntityID:    proc.ID,
			Action:      models.AuditActionUpdate,
			Description: fmt.Sprintf("Sevkiyat süreci %s, %d. adım tamamlandı", proc.ProcessNumber, body.Step),
			Before:      before,
			After:       proc,
		})

		return c.JSON(proc)
	}
}

// DELETE /api/delivery-processes/:id
func DeleteDeliveryProcessHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var proc models.DeliveryProcess
		if err := database.DB.First(&proc, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Süreç bulunamadı")
		}

		if err := database.DB.Delete(&proc).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Süreç silinemedi")
		}

		userID, userName, _ := auth.CurrentUser(c)
		audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "delivery_process",
			EntityID:    proc.ID,
			Action:      models.AuditActionDelete,
			Description: fmt.Sprintf("Sevkiyat süreci %s silindi", proc.ProcessNumber),
			Before:      proc,
		})

		return c.JSON(fiber.Map{"success": true})
	}
}
