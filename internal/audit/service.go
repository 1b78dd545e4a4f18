package audit

import (
	"encoding/json"
	"fmt"
	"time"

	"kiosk-backend/internal/database"
	"kiosk-backend/internal/models"
)

type LogOptions struct {
	UserID      uint
	UserName    string
	EntityType  string
	EntityID    uint
	Action      models.AuditAction
	Description string
	Before      any
	After       any
}

// ResyncKiosk: location_history üzerinde bir undo yapıldığında sahip kiosk'un
// projeksiyonunu onarmak için main.go'da history paketine bağlanır.
// (audit -> history import döngüsünü önlemek için fonksiyon değişkeni)
var ResyncKiosk func(kioskID uint)

func WriteLog(opts LogOptions) error {
	// PostgreSQL jsonb için boş string yerine "null" JSON string'i kullanmalıyız
	beforeStr := "null"
	afterStr := "null"

	if opts.Before != nil {
		if b, err := json.Marshal(opts.Before); err == nil {
			beforeStr = string(b)
		}
	}
	if opts.After != nil {
		if b, err := json.Marshal(opts.After); err == nil {
			afterStr = string(b)
		}
	}

	log := models.AuditLog{
		UserID:      opts.UserID,
		UserName:    opts.UserName,
		EntityType:  opts.EntityType,
		EntityID:    opts.EntityID,
		Action:      opts.Action,
		Description: opts.Description,
		BeforeData:  beforeStr,
		AfterData:   afterStr,
		Undone:      false,
		IsUndone:    false,
	}

	if err := database.DB.Create(&log).Error; err != nil {
		return fmt.Errorf("audit log kaydedilemedi: %w", err)
	}

	return nil
}

// UndoLog - Bir audit log'u undo et
func UndoLog(logID uint, userID uint, userName string) error {
	var log models.AuditLog
	if err := database.DB.First(&log, "id = ?", logID).Error; err != nil {
		return fmt.Errorf("log bulunamadı: %w", err)
	}

	// Zaten undo edilmiş mi?
	if log.IsUndone {
		return fmt.Errorf("bu işlem zaten geri alınmış")
	}

	// Undo işlemini gerçekleştir
	switch log.Action {
	case models.AuditActionCreate:
		// Create ise entity'yi sil
		if err := deleteEntity(log.EntityType, log.EntityID); err != nil {
			return fmt.Errorf("entity silinemedi: %w", err)
		}

	case models.AuditActionUpdate:
		// Update ise önceki haline geri döndür
		if err := restoreEntity(log.EntityType, log.EntityID, log.BeforeData); err != nil {
			return fmt.Errorf("entity geri yüklenemedi: %w", err)
		}

	case models.AuditActionDelete:
		// Delete ise entity'yi geri oluştur (create)
		if err := recreateEntity(log.EntityType, log.BeforeData); err != nil {
			return fmt.Errorf("entity geri oluşturulamadı: %w", err)
		}

	default:
		return fmt.Errorf("bu işlem türü geri alınamaz")
	}

	// history üzerinde oynandıysa sahip kiosk'u onar
	if log.EntityType == "location_history" && ResyncKiosk != nil {
		if kioskID := historyOwner(log); kioskID != 0 {
			ResyncKiosk(kioskID)
		}
	}

	// Log'u işaretle
	now := time.Now()
	log.IsUndone = true
	log.UndoneBy = &userID
	log.UndoneAt = &now

	if err := database.DB.Save(&log).Error; err != nil {
		return fmt.Errorf("log güncellenemedi: %w", err)
	}

	// Undo işlemi için yeni bir log oluştur
	undoLog := models.AuditLog{
		UserID:      userID,
		UserName:    userName,
		EntityType:  log.EntityType,
		EntityID:    log.EntityID,
		Action:      models.AuditActionUndo,
		Description: fmt.Sprintf("Geri alındı: %s", log.Description),
		BeforeData:  log.AfterData,
		AfterData:   log.BeforeData,
		Undone:      true,
		IsUndone:    false,
	}

	if err := database.DB.Create(&undoLog).Error; err != nil {
		return fmt.Errorf("undo log kaydedilemedi: %w", err)
	}

	return nil
}

// historyOwner: log'un before/after JSON'undan kiosk_id'yi çıkarır.
func historyOwner(log models.AuditLog) uint {
	var row struct {
		KioskID uint `json:"kiosk_id"`
	}
	for _, data := range []string{log.BeforeData, log.AfterData} {
		if data == "" || data == "null" {
			continue
		}
		if err := json.Unmarshal([]byte(data), &row); err == nil && row.KioskID != 0 {
			return row.KioskID
		}
	}
	return 0
}

// deleteEntity - Entity'yi sil
func deleteEntity(entityType string, entityID uint) error {
	switch entityType {
	case "kiosk":
		return database.DB.Delete(&models.Kiosk{}, "id = ?", entityID).Error
	case "location_history":
		return database.DB.Delete(&models.LocationHistory{}, "id = ?", entityID).Error
	case "order_process":
		return database.DB.Delete(&models.OrderProcess{}, "id = ?", entityID).Error
	case "delivery_process":
		return database.DB.Delete(&models.DeliveryProcess{}, "id = ?", entityID).Error
	default:
		return fmt.Errorf("bilinmeyen entity tipi: %s", entityType)
	}
}

// restoreEntity - Update edilen entity'yi önceki haline döndür
func restoreEntity(entityType string, entityID uint, dataJSON string) error {
	switch entityType {
	case "kiosk":
		var kiosk models.Kiosk
		if err := json.Unmarshal([]byte(dataJSON), &kiosk); err != nil {
			return err
		}
		kiosk.ID = entityID
		return database.DB.Save(&kiosk).Error

	case "location_history":
		var row models.LocationHistory
		if err := json.Unmarshal([]byte(dataJSON), &row); err != nil {
			return err
		}
		row.ID = entityID
		return database.DB.Save(&row).Error

	case "order_process":
		var proc models.OrderProcess
		if err := json.Unmarshal([]byte(dataJSON), &proc); err != nil {
			return err
		}
		proc.ID = entityID
		return database.DB.Save(&proc).Error

	case "delivery_process":
		var proc models.DeliveryProcess
		if err := json.Unmarshal([]byte(dataJSON), &proc); err != nil {
			return err
		}
		proc.ID = entityID
		return database.DB.Save(&proc).Error

	default:
		return fmt.Errorf("bilinmeyen entity tipi: %s", entityType)
	}
}

// recreateEntity - Silinen entity'yi geri oluştur
func recreateEntity(entityType string, dataJSON string) error {
	switch entityType {
	case "kiosk":
		var kiosk models.Kiosk
		if err := json.Unmarshal([]byte(dataJSON), &kiosk); err != nil {
			return err
		}
		kiosk.ID = 0 // Yeni entity oluştur
		return database.DB.Create(&kiosk).Error

	case "location_history":
		var row models.LocationHistory
		if err := json.Unmarshal([]byte(dataJSON), &row); err != nil {
			return err
		}
		row.ID = 0
		return database.DB.Create(&row).Error

	case "order_process":
		var proc models.OrderProcess
		if err := json.Unmarshal([]byte(dataJSON), &proc); err != nil {
			return err
		}
		proc.ID = 0
		return database.DB.Create(&proc).Error

	case "delivery_process":
		var proc models.DeliveryProcess
		if err := json.Unmarshal([]byte(dataJSON), &proc); err != nil {
			return err
		}
		proc.ID = 0
		return database.DB.Create(&proc).Error

	default:
		return fmt.Errorf("bilinmeyen entity tipi: %s", entityType)
	}
}
