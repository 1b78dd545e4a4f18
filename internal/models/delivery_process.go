package models

import "time"

// DeliveryProcess: Fiziksel sevkiyatın 2 adımlı süreci. İsteğe bağlı olarak
// bir OrderProcess'e bağlanır.
//  1. Sevkiyat girişi (seri no zorunlu, kargo/tedarikçi bilgileri)
//  2. Teslim alma + kontrol (kontrol sonucu tamamlamayı ENGELLEMEZ;
//     başarısız kontrol ayrı tamir sürecine devredilir)
type DeliveryProcess struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	ProcessNumber string `gorm:"size:30;uniqueIndex;not null" json:"process_number"` // DP-YYYYMMDD-NNN

	SerialNumber string `gorm:"size:100;not null;index" json:"serial_number"`
	ModelName    string `gorm:"size:100" json:"model_name"`

	OrderProcessID *uint         `gorm:"index" json:"order_process_id"`
	OrderProcess   *OrderProcess `json:"order_process,omitempty"`

	CurrentStep int           `gorm:"not null;default:1" json:"current_step"` // 1..2
	Status      ProcessStatus `gorm:"size:20;not null;default:IN_PROGRESS" json:"status"`

	// 1. adım
	ShippedDate     *time.Time `json:"shipped_date"`
	ExpectedArrival *time.Time `json:"expected_arrival"`
	TrackingNumber  string     `gorm:"size:100" json:"tracking_number"`
	Logistics       string     `gorm:"size:100" json:"logistics"` // kargo firması
	VendorName      string     `gorm:"size:150" json:"vendor_name"`
	VendorContact   string     `gorm:"size:150" json:"vendor_contact"`
	VendorNotes     string     `gorm:"size:500" json:"vendor_notes"`

	// 2. adım
	ActualArrival    *time.Time `json:"actual_arrival"`
	InspectionPassed *bool      `json:"inspection_passed"` // nil = henüz kontrol edilmedi
	InspectionNotes  string     `gorm:"size:500" json:"inspection_notes"`
	InternalNotes    string     `gorm:"size:500" json:"internal_notes"`

	Step1CompletedAt *time.Time `json:"step1_completed_at"`
	Step1CompletedBy string     `gorm:"size:100" json:"step1_completed_by"`
	Step2CompletedAt *time.Time `json:"step2_completed_at"`
	Step2CompletedBy string     `gorm:"size:100" json:"step2_completed_by"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
