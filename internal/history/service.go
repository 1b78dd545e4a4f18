package history

import (
	"time"

	"kiosk-backend/internal/database"
	"kiosk-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// AppendInput: yeni hareket kaydı için girdi. prev_* alanları client'tan
// alınmaz, olay anında kiosk üzerinden fotoğraflanır.
type AppendInput struct {
	MoveType       models.MoveType
	EventDate      *time.Time
	NewPartnerID   *uint
	NewBranchID    *uint
	NewBranchName  string
	NewRegionCode  string
	NewAreaCode    string
	NewStatus      models.KioskStatus
	NewAcquisition models.AcquisitionType
	NewPrice       *float64
	RepairReason   string
	RepairCost     *float64
	RepairVendor   string
	Description    string
	HandledBy      string
	UpdateKiosk    bool
}

type SyncResult struct {
	Updated      bool       `json:"updated"`
	Message      string     `json:"message,omitempty"`
	SyncedFromID uint       `json:"synced_from_id,omitempty"`
	EventDate    *time.Time `json:"event_date,omitempty"`
}

// BrandNameFromFC: "FC022 / Lilmobi" formatında marka adı üretir.
// Kod veya ad eksikse mevcut olan tek başına kullanılır.
func BrandNameFromFC(code, name string) string {
	switch {
	case code != "" && name != "":
		return code + " / " + name
	case code != "":
		return code
	default:
		return name
	}
}

// LatestRow: "en güncel" hareketi seçer. Sıralama event_date'e göredir,
// ekleme sırasına göre DEĞİL; aynı event_date'te created_at büyük olan
// kazanır. Satır yoksa nil döner.
func LatestRow(rows []models.LocationHistory) *models.LocationHistory {
	var latest *models.LocationHistory
	for i := range rows {
		h := &rows[i]
		if latest == nil {
			latest = h
			continue
		}
		if h.EventDate.After(latest.EventDate) {
			latest = h
			continue
		}
		if h.EventDate.Equal(latest.EventDate) && h.CreatedAt.After(latest.CreatedAt) {
			latest = h
		}
	}
	return latest
}

// ApplyLatest: en güncel hareketin new_* alanlarını kiosk'un canlı alanlarına
// ve latest_* projeksiyon alanlarına işler. Herhangi bir alan değiştiyse true
// döner; hiçbir şey değişmediyse kiosk'a dokunmaz ve false döner (SyncLatest
// idempotent olmalı). Hareket üzerinde region/area kodu yoksa yeni şubenin
// kendi kodlarına düşülür.
func ApplyLatest(k *models.Kiosk, h *models.LocationHistory, branchRegionCode, branchAreaCode, brandName string) bool {
	changed := false

	if h.NewBranchID != nil && (k.BranchID == nil || *k.BranchID != *h.NewBranchID) {
		k.BranchID = h.NewBranchID
		changed = true
	}
	if h.NewBranchName != "" && k.BranchName != h.NewBranchName {
		k.BranchName = h.NewBranchName
		changed = true
	}
	if brandName != "" && k.BrandName != brandName {
		k.BrandName = brandName
		changed = true
	}

	regionCode := h.NewRegionCode
	if regionCode == "" {
		regionCode = branchRegionCode
	}
	if regionCode != "" && k.RegionCode != regionCode {
		k.RegionCode = regionCode
		changed = true
	}

	areaCode := h.NewAreaCode
	if areaCode == "" {
		areaCode = branchAreaCode
	}
	if areaCode != "" && k.AreaCode != areaCode {
		k.AreaCode = areaCode
		changed = true
	}

	if h.NewStatus != "" && k.Status != h.NewStatus {
		k.Status = h.NewStatus
		changed = true
	}
	if h.NewAcquisition != "" && k.Acquisition != h.NewAcquisition {
		k.Acquisition = h.NewAcquisition
		changed = true
	}
	if h.NewPrice != nil && (k.SalePrice == nil || *k.SalePrice != *h.NewPrice) {
		k.SalePrice = h.NewPrice
		changed = true
	}
	if h.NewPartnerID != nil && (k.CurrentPartnerID == nil || *k.CurrentPartnerID != *h.NewPartnerID) {
		k.CurrentPartnerID = h.NewPartnerID
		changed = true
	}

	// Projeksiyon alanları
	if k.LatestMoveType != h.MoveType {
		k.LatestMoveType = h.MoveType
		changed = true
	}
	if h.NewStatus != "" && k.LatestStatus != h.NewStatus {
		k.LatestStatus = h.NewStatus
		changed = true
	}
	if h.NewBranchName != "" && k.LatestBranchName != h.NewBranchName {
		k.LatestBranchName = h.NewBranchName
		changed = true
	}
	if k.LatestEventDate == nil || !k.LatestEventDate.Equal(h.EventDate) {
		d := h.EventDate
		k.LatestEventDate = &d
		changed = true
	}

	return changed
}

// branchContext: şubenin region/area kodlarını ve bağlı FC'den üretilen marka
// adını döner. Şube yoksa boş değerler döner.
func branchContext(branchID *uint) (regionCode, areaCode, brandName string, corporationID *uint) {
	if branchID == nil {
		return "", "", "", nil
	}

	var branch models.Branch
	if err := database.DB.Preload("Corporation.Fc").First(&branch, "id = ?", *branchID).Error; err != nil {
		return "", "", "", nil
	}

	regionCode = branch.RegionCode
	areaCode = branch.AreaCode
	corporationID = branch.CorporationID
	if branch.Corporation != nil && branch.Corporation.Fc != nil {
		brandName = BrandNameFromFC(branch.Corporation.Fc.Code, branch.Corporation.Fc.Name)
	}
	return regionCode, areaCode, brandName, corporationID
}

// Append: yeni hareket kaydı oluşturur; UpdateKiosk true ise new_* değerlerini
// kiosk'un canlı alanlarına ve projeksiyona da yazar. Kiosk'un status'u normal
// akışta SADECE bu yoldan değişir.
func Append(kioskID uint, in AppendInput) (*models.LocationHistory, error) {
	if in.MoveType == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "move_type zorunlu")
	}

	var kiosk models.Kiosk
	if err := database.DB.Preload("Branch").First(&kiosk, "id = ?", kioskID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Kiosk bulunamadı")
	}

	eventDate := time.Now()
	if in.EventDate != nil {
		eventDate = *in.EventDate
	}

	_, _, _, newCorporationID := branchContext(in.NewBranchID)
	var prevCorporationID *uint
	if kiosk.Branch != nil {
		prevCorporationID = kiosk.Branch.CorporationID
	}

	row := models.LocationHistory{
		KioskID:           kiosk.ID,
		MoveType:          in.MoveType,
		PrevPartnerID:     kiosk.CurrentPartnerID,
		NewPartnerID:      in.NewPartnerID,
		PrevBranchID:      kiosk.BranchID,
		PrevBranchName:    kiosk.BranchName,
		NewBranchID:       in.NewBranchID,
		NewBranchName:     in.NewBranchName,
		PrevCorporationID: prevCorporationID,
		NewCorporationID:  newCorporationID,
		PrevRegionCode:    kiosk.RegionCode,
		NewRegionCode:     in.NewRegionCode,
		PrevAreaCode:      kiosk.AreaCode,
		NewAreaCode:       in.NewAreaCode,
		PrevStatus:        kiosk.Status,
		NewStatus:         in.NewStatus,
		PrevAcquisition:   kiosk.Acquisition,
		NewAcquisition:    in.NewAcquisition,
		PrevPrice:         kiosk.SalePrice,
		NewPrice:          in.NewPrice,
		RepairReason:      in.RepairReason,
		RepairCost:        in.RepairCost,
		RepairVendor:      in.RepairVendor,
		EventDate:         eventDate,
		Description:       in.Description,
		HandledBy:         in.HandledBy,
	}

	if err := database.DB.Create(&row).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Hareket kaydı oluşturulamadı")
	}

	if in.UpdateKiosk {
		branchRegion, branchArea, brandName, _ := branchContext(in.NewBranchID)

		changed := ApplyLatest(&kiosk, &row, branchRegion, branchArea, brandName)

		// İlk hareket aynı zamanda kiosk'un teslim tarihi sayılır
		if kiosk.DeliveryDate == nil {
			d := row.EventDate
			kiosk.DeliveryDate = &d
			changed = true
		}

		if changed {
			if err := database.DB.Save(&kiosk).Error; err != nil {
				return nil, fiber.NewError(fiber.StatusInternalServerError, "Kiosk güncellenemedi")
			}
		}
	}

	return &row, nil
}

// SyncLatest: kiosk'u en güncel (max event_date) hareketine göre yeniden
// senkronize eder. History edit/delete sonrası otomatik olarak da çağrılır;
// ayrıca manuel onarım endpoint'i olarak açıktır.
func SyncLatest(kioskID uint) (*SyncResult, error) {
	var kiosk models.Kiosk
	if err := database.DB.First(&kiosk, "id = ?", kioskID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Kiosk bulunamadı")
	}

	var rows []models.LocationHistory
	if err := database.DB.Where("kiosk_id = ?", kioskID).Find(&rows).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Hareket kayıtları okunamadı")
	}

	latest := LatestRow(rows)
	if latest == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Bu kiosk için hiç hareket kaydı yok")
	}

	branchRegion, branchArea, brandName, _ := branchContext(latest.NewBranchID)

	if !ApplyLatest(&kiosk, latest, branchRegion, branchArea, brandName) {
		return &SyncResult{Updated: false, Message: "Senkronize edilecek veri yok"}, nil
	}

	if err := database.DB.Save(&kiosk).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Kiosk güncellenemedi")
	}

	d := latest.EventDate
	return &SyncResult{Updated: true, Message: "En güncel harekete göre senkronize edildi", SyncedFromID: latest.ID, EventDate: &d}, nil
}

// ResyncAfterMutation: history satırı düzenlendikten/silindikten sonra sahibini
// yeniden senkronize eder. Satır kalmadıysa sessizce geçer; senkronizasyon
// hatası mutasyonu geri almaz (kabul edilen davranış, telafi yok).
func ResyncAfterMutation(kioskID uint) {
	if _, err := SyncLatest(kioskID); err != nil {
		if fe, ok := err.(*fiber.Error); ok && fe.Code == fiber.StatusNotFound {
			return
		}
	}
}
