package orders

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

type CreateOrderProcessRequest struct {
	Title               string   `json:"title" validate:"required"`
	PartnerID           uint     `json:"partner_id" validate:"required"`
	RequesterName       string   `json:"requester_name"`
	Quantity            *int     `json:"quantity"`
	ModelType           string   `json:"model_type"`
	DesiredDeliveryDate string   `json:"desired_delivery_date"`
	DueDate             string   `json:"due_date"`
	Acquisition         string   `json:"acquisition" validate:"omitempty,oneof=FREE LEASE LEASE_FREE PURCHASE RENTAL"`
	LeaseCompanyID      *uint    `json:"lease_company_id"`
	LeaseMonthlyFee     *float64 `json:"lease_monthly_fee"`
	LeasePeriod         *int     `json:"lease_period"`
	Step1Notes          string   `json:"step1_notes"`
}

type UpdateOrderProcessRequest struct {
	Title               *string  `json:"title"`
	PartnerID           *uint    `json:"partner_id"`
	RequesterName       *string  `json:"requester_name"`
	Quantity            *int     `json:"quantity"`
	ModelType           *string  `json:"model_type"`
	DesiredDeliveryDate *string  `json:"desired_delivery_date"`
	DueDate             *string  `json:"due_date"`
	Status              *string  `json:"status"`
	Acquisition         *string  `json:"acquisition"`
	LeaseCompanyID      *uint    `json:"lease_company_id"`
	LeaseMonthlyFee     *float64 `json:"lease_monthly_fee"`
	LeasePeriod         *int     `json:"lease_period"`
	Step1Notes          *string  `json:"step1_notes"`
	DocumentURL         *string  `json:"document_url"`
	DocumentNumber      *string  `json:"document_number"`
	ApprovalRequestID   *string  `json:"approval_request_id"`
	ApprovalTitle       *string  `json:"approval_title"`
	ApprovalStatus      *string  `json:"approval_status"`
	ApprovalDate        *string  `json:"approval_date"`
	ApprovalComment     *string  `json:"approval_comment"`
	VendorEmail         *string  `json:"vendor_email"`
	VendorOrderSent     *bool    `json:"vendor_order_sent"`
}

type CompleteStepRequest struct {
	Step int `json:"step" validate:"required,min=1,max=5"`
}

// generateProcessNumber: OP-YYYYMMDD-NNN formatında numara üretir
// (NNN = o gün açılan süreç sayısı + 1).
func generateProcessNumber() (string, error) {
	dateStr := time.Now().Format("20060102")
	prefix := fmt.Sprintf("OP-%s", dateStr)

	var count int64
	if err := database.DB.Model(&models.OrderProcess{}).
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

// POST /api/order-processes
func CreateOrderProcessHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateOrderProcessRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if err := validate.Struct(body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "title ve partner_id zorunlu")
		}

		var partner models.Partner
		if err := database.DB.First(&partner, "id = ?", body.PartnerID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "İş ortağı bulunamadı")
		}

		desired, err := parseDate(body.DesiredDeliveryDate)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "desired_delivery_date formatı 'YYYY-MM-DD' olmalı")
		}
		due, err := parseDate(body.DueDate)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "due_date formatı 'YYYY-MM-DD' olmalı")
		}

		number, err := generateProcessNumber()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Süreç numarası üretilemedi")
		}

		acquisition := models.AcquisitionPurchase
		if body.Acquisition != "" {
			acquisition = models.AcquisitionType(body.Acquisition)
		}

		proc := models.OrderProcess{
			ProcessNumber:       number,
			Title:               body.Title,
			PartnerID:           body.PartnerID,
			RequesterName:       body.RequesterName,
			Quantity:            body.Quantity,
			ModelType:           body.ModelType,
			DesiredDeliveryDate: desired,
			DueDate:             due,
			Acquisition:         acquisition,
			LeaseCompanyID:      body.LeaseCompanyID,
			LeaseMonthlyFee:     body.LeaseMonthlyFee,
			LeasePeriod:         body.LeasePeriod,
			Step1Notes:          body.Step1Notes,
			CurrentStep:         1,
			Status:              models.ProcessStatusInProgress,
			ApprovalStatus:      models.ApprovalStatusPending,
		}

		if err := database.DB.Create(&proc).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Süreç oluşturulamadı")
		}

		userID, userName, _ := auth.CurrentUser(c)
		audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "order_process",
			EntityID:    proc.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("Sipariş süreci %s açıldı", proc.ProcessNumber),
			After:       proc,
		})

		return c.Status(fiber.StatusCreated).JSON(proc)
	}
}

// GET /api/order-processes
func ListOrderProcessesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var procs []models.OrderProcess
		if err := database.DB.
			Preload("Partner").
			Order("created_at DESC").
			Find(&procs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Süreçler listelenemedi")
		}
		return c.JSON(procs)
	}
}

// GET /api/order-processes/:id
func GetOrderProcessHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var proc models.OrderProcess
		if err := database.DB.
			Preload("Partner").
			Preload("LeaseCompany").
			Preload("DeliveryProcesses").
			First(&proc, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Süreç bulunamadı")
		}
		return c.JSON(proc)
	}
}

// PUT /api/order-processes/:id
// Alanların herhangi bir alt kümesini günceller; tek atomik persist.
// Adım ilerletme buradan yapılmaz (complete-step endpoint'i kullanılır).
func UpdateOrderProcessHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var proc models.OrderProcess
		if err := database.DB.First(&proc, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Süreç bulunamadı")
		}
		before := proc

		var body UpdateOrderProcessRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		if body.Title != nil {
			proc.Title = *body.Title
		}
		if body.PartnerID != nil {
			proc.PartnerID = *body.PartnerID
		}
		if body.RequesterName != nil {
			proc.RequesterName = *body.RequesterName
		}
		if body.Quantity != nil {
			proc.Quantity = body.Quantity
		}
		if body.ModelType != nil {
			proc.ModelType = *body.ModelType
		}
		if body.DesiredDeliveryDate != nil {
			d, err := parseDate(*body.DesiredDeliveryDate)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "desired_delivery_date formatı 'YYYY-MM-DD' olmalı")
			}
			proc.DesiredDeliveryDate = d
		}
		if body.DueDate != nil {
			d, err := parseDate(*body.DueDate)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "due_date formatı 'YYYY-MM-DD' olmalı")
			}
			proc.DueDate = d
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
				return fiber.NewError(fiber.StatusBadRequest, "status yalnızca IN_PROGRESS veya CANCELLED yapılabilir; tamamlama 5. adımla olur")
			}
		}
		if body.Acquisition != nil {
			proc.Acquisition = models.AcquisitionType(*body.Acquisition)
		}
		if body.LeaseCompanyID != nil {
			proc.LeaseCompanyID = body.LeaseCompanyID
		}
		if body.LeaseMonthlyFee != nil {
			proc.LeaseMonthlyFee = body.LeaseMonthlyFee
		}
		if body.LeasePeriod != nil {
			proc.LeasePeriod = body.LeasePeriod
		}
		if body.Step1Notes != nil {
			proc.Step1Notes = *body.Step1Notes
		}
		if body.DocumentURL != nil {
			proc.DocumentURL = *body.DocumentURL
		}
		if body.DocumentNumber != nil {
			proc.DocumentNumber = *body.DocumentNumber
		}
		if body.ApprovalRequestID != nil {
			proc.ApprovalRequestID = *body.ApprovalRequestID
		}
		if body.ApprovalTitle != nil {
			proc.ApprovalTitle = *body.ApprovalTitle
		}
		if body.ApprovalStatus != nil {
			proc.ApprovalStatus = models.ApprovalStatus(*body.ApprovalStatus)
		}
		if body.ApprovalDate != nil {
			d, err := parseDate(*body.ApprovalDate)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "approval_date formatı 'YYYY-MM-DD' olmalı")
			}
			proc.ApprovalDate = d
		}
		if body.ApprovalComment != nil {
			proc.ApprovalComment = *body.ApprovalComment
		}
		if body.VendorEmail != nil {
			proc.VendorEmail = *body.VendorEmail
		}
		if body.VendorOrderSent != nil {
			proc.VendorOrderSent = *body.VendorOrderSent
		}

		if err := database.DB.Save(&proc).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Süreç güncellenemedi")
		}

		userID, userName, _ := auth.CurrentUser(c)
		audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "order_process",
			EntityID:    proc.ID,
			Action:      models.AuditActionUpdate,
			Description: fmt.Sprintf("Sipariş süreci %s güncellendi", proc.ProcessNumber),
			Before:      before,
			After:       proc,
		})

		return c.JSON(proc)
	}
}

// POST /api/order-processes/:id/complete-step
// Ön koşullar sağlanmıyorsa süreç değişmeden 400 döner (buton devre dışı
// davranışının server tarafı karşılığı).
func CompleteStepHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var proc models.OrderProcess
		if err := database.DB.First(&proc, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Süreç bulunamadı")
		}
		before := proc

		var body CompleteStepRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if err := validate.Struct(body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "step 1-5 arası olmalı")
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
			EntityType:  "order_process",
			EntityID:    proc.ID,
			Action:      models.AuditActionUpdate,
			Description: fmt.Sprintf("Sipariş süreci %s, %d. adım tamamlandı", proc.ProcessNumber, body.Step),
			Before:      before,
			After:       proc,
		})

		return c.JSON(proc)
	}
}

// DELETE /api/order-processes/:id
func DeleteOrderProcessHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var proc models.OrderProcess
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
			EntityType:  "order_process",
			EntityID:    proc.ID,
			Action:      models.AuditActionDelete,
			Description: fmt.Sprintf("Sipariş süreci %s silindi", proc.ProcessNumber),
			Before:      proc,
		})

		return c.JSON(fiber.Map{"success": true})
	}
}
