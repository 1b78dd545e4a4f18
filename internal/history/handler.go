package history

import (
	"fmt"
	"time"

	"kiosk-backend/internal/audit"
	"kiosk-backend/internal/auth"
	"kiosk-backend/internal/database"
	"kiosk-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type AddHistoryRequest struct {
	MoveType       string   `json:"move_type"`
	EventDate      string   `json:"event_date"` // "2026-02-10"; boşsa bugün
	NewPartnerID   *uint    `json:"new_partner_id"`
	NewBranchID    *uint    `json:"new_branch_id"`
	NewBranchName  string   `json:"new_branch_name"`
	NewRegionCode  string   `json:"new_region_code"`
	NewAreaCode    string   `json:"new_area_code"`
	NewStatus      string   `json:"new_status"`
	NewAcquisition string   `json:"new_acquisition"`
	NewPrice       *float64 `json:"new_price"`
	RepairReason   string   `json:"repair_reason"`
	RepairCost     *float64 `json:"repair_cost"`
	RepairVendor   string   `json:"repair_vendor"`
	Description    string   `json:"description"`
	UpdateKiosk    *bool    `json:"update_kiosk"` // default true
}

type UpdateHistoryRequest struct {
	MoveType       *string  `json:"move_type"`
	EventDate      *string  `json:"event_date"`
	NewPartnerID   *uint    `json:"new_partner_id"`
	NewBranchID    *uint    `json:"new_branch_id"`
	NewBranchName  *string  `json:"new_branch_name"`
	NewRegionCode  *string  `json:"new_region_code"`
	NewAreaCode    *string  `json:"new_area_code"`
	NewStatus      *string  `json:"new_status"`
	NewAcquisition *string  `json:"new_acquisition"`
	NewPrice       *float64 `json:"new_price"`
	RepairReason   *string  `json:"repair_reason"`
	RepairCost     *float64 `json:"repair_cost"`
	RepairVendor   *string  `json:"repair_vendor"`
	Description    *string  `json:"description"`
}

func parseKioskID(c *fiber.Ctx) (uint, error) {
	idStr := c.Params("id")
	var id uint
	if _, err := fmt.Sscan(idStr, &id); err != nil || id == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Geçersiz kiosk id")
	}
	return id, nil
}

// POST /api/assets/:id/history
func AddHistoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		kioskID, err := parseKioskID(c)
		if err != nil {
			return err
		}

		var body AddHistoryRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		userID, userName, err := auth.CurrentUser(c)
		if err != nil {
			return err
		}

		in := AppendInput{
			MoveType:       models.MoveType(body.MoveType),
			NewPartnerID:   body.NewPartnerID,
			NewBranchID:    body.NewBranchID,
			NewBranchName:  body.NewBranchName,
			NewRegionCode:  body.NewRegionCode,
			NewAreaCode:    body.NewAreaCode,
			NewStatus:      models.KioskStatus(body.NewStatus),
			NewAcquisition: models.AcquisitionType(body.NewAcquisition),
			NewPrice:       body.NewPrice,
			RepairReason:   body.RepairReason,
			RepairCost:     body.RepairCost,
			RepairVendor:   body.RepairVendor,
			Description:    body.Description,
			HandledBy:      userName,
			UpdateKiosk:    body.UpdateKiosk == nil || *body.UpdateKiosk,
		}

		if body.EventDate != "" {
			d, err := time.Parse("2006-01-02", body.EventDate)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "event_date formatı 'YYYY-MM-DD' olmalı")
			}
			in.EventDate = &d
		}

		row, err := Append(kioskID, in)
		if err != nil {
			return err
		}

		audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "location_history",
			EntityID:    row.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("Kiosk #%d için %s hareketi eklendi", kioskID, row.MoveType),
			After:       row,
		})

		return c.Status(fiber.StatusCreated).JSON(row)
	}
}

// GET /api/assets/:id/history
func ListHistoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		kioskID, err := parseKioskID(c)
		if err != nil {
			return err
		}

		var rows []models.LocationHistory
		if err := database.DB.
			Preload("PrevPartner").Preload("NewPartner").
			Preload("PrevBranch").Preload("NewBranch").
			Where("kiosk_id = ?", kioskID).
			Order("event_date ASC, created_at ASC").
			Find(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Hareket kayıtları listelenemedi")
		}

		return c.JSON(rows)
	}
}

// PUT /api/history/:id
// Herhangi bir satır (en güncel olmasa bile) düzenlenebilir; düzenleme
// sonrası sahip kiosk otomatik olarak yeniden senkronize edilir.
func UpdateHistoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var row models.LocationHistory
		if err := database.DB.First(&row, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Hareket kaydı bulunamadı")
		}
		before := row

		var body UpdateHistoryRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		if body.MoveType != nil {
			if *body.MoveType == "" {
				return fiber.NewError(fiber.StatusBadRequest, "move_type boş olamaz")
			}
			row.MoveType = models.MoveType(*body.MoveType)
		}
		if body.EventDate != nil {
			d, err := time.Parse("2006-01-02", *body.EventDate)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "event_date formatı 'YYYY-MM-DD' olmalı")
			}
			row.EventDate = d
		}
		if body.NewPartnerID != nil {
			row.NewPartnerID = body.NewPartnerID
		}
		if body.NewBranchID != nil {
			row.NewBranchID = body.NewBranchID
		}
		if body.NewBranchName != nil {
			row.NewBranchName = *body.NewBranchName
		}
		if body.NewRegionCode != nil {
			row.NewRegionCode = *body.NewRegionCode
		}
		if body.NewAreaCode != nil {
			row.NewAreaCode = *body.NewAreaCode
		}
		if body.NewStatus != nil {
			row.NewStatus = models.KioskStatus(*body.NewStatus)
		}
		if body.NewAcquisition != nil {
			row.NewAcquisition = models.AcquisitionType(*body.NewAcquisition)
		}
		if body.NewPrice != nil {
			row.NewPrice = body.NewPrice
		}
		if body.RepairReason != nil {
			row.RepairReason = *body.RepairReason
		}
		if body.RepairCost != nil {
			row.RepairCost = body.RepairCost
		}
		if body.RepairVendor != nil {
			row.RepairVendor = *body.RepairVendor
		}
		if body.Description != nil {
			row.Description = *body.Description
		}

		if err := database.DB.Save(&row).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Hareket kaydı güncellenemedi")
		}

		ResyncAfterMutation(row.KioskID)

		userID, userName, _ := auth.CurrentUser(c)
		audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "location_history",
			EntityID:    row.ID,
			Action:      models.AuditActionUpdate,
			Description: fmt.Sprintf("Kiosk #%d hareket kaydı düzenlendi", row.KioskID),
			Before:      before,
			After:       row,
		})

		return c.JSON(row)
	}
}

// DELETE /api/history/:id
// Silme sonrası sahip kiosk otomatik olarak yeniden senkronize edilir;
// hiç satır kalmadıysa projeksiyon olduğu gibi bırakılır.
func DeleteHistoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var row models.LocationHistory
		if err := database.DB.First(&row, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Hareket kaydı bulunamadı")
		}

		if err := database.DB.Delete(&row).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Hareket kaydı silinemedi")
		}

		ResyncAfterMutation(row.KioskID)

		userID, userName, _ := auth.CurrentUser(c)
		audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "location_history",
			EntityID:    row.ID,
			Action:      models.AuditActionDelete,
			Description: fmt.Sprintf("Kiosk #%d hareket kaydı silindi", row.KioskID),
			Before:      row,
		})

		return c.JSON(fiber.Map{"success": true})
	}
}

// POST /api/assets/:id/sync-latest - manuel onarım endpoint'i
func SyncLatestHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		kioskID, err := parseKioskID(c)
		if err != nil {
			return err
		}

		result, err := SyncLatest(kioskID)
		if err != nil {
			return err
		}

		return c.JSON(result)
	}
}
