package models

import "time"

type MoveType string

const (
	MoveTypeDeploy         MoveType = "DEPLOY"          // kurulum
	MoveTypeReturn         MoveType = "RETURN"          // iade
	MoveTypeTransfer       MoveType = "TRANSFER"        // şube değişikliği
	MoveTypeMaintenance    MoveType = "MAINTENANCE"     // bakıma alındı
	MoveTypeRepairComplete MoveType = "REPAIR_COMPLETE" // tamir tamamlandı
	MoveTypeResale         MoveType = "RESALE"          // yeniden satış
	MoveTypeDisposal       MoveType = "DISPOSAL"        // imha
	MoveTypeStorage        MoveType = "STORAGE"         // depoya çekildi
)

// LocationHistory: Kiosk'un durum/konum değiştiren her olayı için bir satır.
// prev_* alanları olay anında kiosk'un üzerindeki değerlerin fotoğrafıdır,
// new_* alanları olayın getirdiği yeni değerlerdir.
// "En güncel" sıralaması event_date'e göredir (ekleme sırasına değil);
// aynı event_date'te created_at büyük olan kazanır.
type LocationHistory struct {
	ID      uint  `gorm:"primaryKey" json:"id"`
	KioskID uint  `gorm:"index;not null" json:"kiosk_id"`
	Kiosk   Kiosk `json:"-"`

	MoveType MoveType `gorm:"size:20;not null" json:"move_type"`

	PrevPartnerID *uint    `json:"prev_partner_id"`
	PrevPartner   *Partner `gorm:"foreignKey:PrevPartnerID" json:"prev_partner,omitempty"`
	NewPartnerID  *uint    `json:"new_partner_id"`
	NewPartner    *Partner `gorm:"foreignKey:NewPartnerID" json:"new_partner,omitempty"`

	PrevBranchID   *uint   `json:"prev_branch_id"`
	PrevBranch     *Branch `gorm:"foreignKey:PrevBranchID" json:"prev_branch,omitempty"`
	PrevBranchName string  `gorm:"size:150" json:"prev_branch_name"`
	NewBranchID    *uint   `json:"new_branch_id"`
	NewBranch      *Branch `gorm:"foreignKey:NewBranchID" json:"new_branch,omitempty"`
	NewBranchName  string  `gorm:"size:150" json:"new_branch_name"`

	PrevCorporationID *uint `json:"prev_corporation_id"`
	NewCorporationID  *uint `json:"new_corporation_id"`

	PrevRegionCode string `gorm:"size:20" json:"prev_region_code"`
	NewRegionCode  string `gorm:"size:20" json:"new_region_code"`
	PrevAreaCode   string `gorm:"size:20" json:"prev_area_code"`
	NewAreaCode    string `gorm:"size:20" json:"new_area_code"`

	PrevStatus KioskStatus `gorm:"size:20" json:"prev_status"`
	NewStatus  KioskStatus `gorm:"size:20" json:"new_status"`

	PrevAcquisition AcquisitionType `gorm:"size:20" json:"prev_acquisition"`
	NewAcquisition  AcquisitionType `gorm:"size:20" json:"new_acquisition"`

	PrevPrice *float64 `json:"prev_price"`
	NewPrice  *float64 `json:"new_price"`

	// Tamir hareketlerine özel alanlar
	RepairReason string   `gorm:"size:255" json:"repair_reason"`
	RepairCost   *float64 `json:"repair_cost"`
	RepairVendor string   `gorm:"size:150" json:"repair_vendor"`

	EventDate   time.Time `gorm:"index;not null" json:"event_date"`
	Description string    `gorm:"size:500" json:"description"`
	HandledBy   string    `gorm:"size:100" json:"handled_by"` // işlemi yapan kişi (JWT'deki kullanıcıdan)

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
