package models

import "time"

// Partner: Kiosk'ların yerleştirildiği iş ortağı (müşteri/bayi).
// Sözleşme koşulu alanları ERP talep çıktısında kullanılır.
type Partner struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:150;not null" json:"name"`
	NameJa  string `gorm:"size:150" json:"name_ja"` // Japonca görünen ad
	Type    string `gorm:"size:50" json:"type"`
	Contact string `gorm:"size:150" json:"contact"`
	Address string `gorm:"size:255" json:"address"`

	ContractDate      *time.Time `json:"contract_date"`
	ContractStartDate *time.Time `json:"contract_start_date"`

	// Kiosk satış koşulları
	KioskSaleType      string   `gorm:"size:20" json:"kiosk_sale_type"` // FREE / PAID / FREE_TO_PAID
	KioskSalePrice     *float64 `json:"kiosk_sale_price"`               // 万円
	KioskFreeCondition string   `gorm:"size:255" json:"kiosk_free_condition"`
	SaleTerms          string   `gorm:"size:500" json:"sale_terms"`

	// Bakım ve komisyon koşulları
	MaintenanceTerms string   `gorm:"size:500" json:"maintenance_terms"`
	CommissionTerms  string   `gorm:"size:500" json:"commission_terms"`
	FeeChangeTerms   string   `gorm:"size:500" json:"fee_change_terms"`
	PmsRate          *float64 `json:"pms_rate"` // yüzde
	OtaRate          *float64 `json:"ota_rate"` // yüzde

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	CurrentKiosks []Kiosk `gorm:"foreignKey:CurrentPartnerID" json:"current_kiosks,omitempty"`
}
