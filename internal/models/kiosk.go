package models

import "time"

type AcquisitionType string

const (
	AcquisitionFree      AcquisitionType = "FREE"       // bedelsiz
	AcquisitionLease     AcquisitionType = "LEASE"      // leasing
	AcquisitionLeaseFree AcquisitionType = "LEASE_FREE" // leasing + bedelsiz
	AcquisitionPurchase  AcquisitionType = "PURCHASE"   // satın alma
	AcquisitionRental    AcquisitionType = "RENTAL"     // kiralama
)

type KioskStatus string

const (
	KioskStatusInStock     KioskStatus = "IN_STOCK"    // depoda
	KioskStatusDeployed    KioskStatus = "DEPLOYED"    // sahada
	KioskStatusMaintenance KioskStatus = "MAINTENANCE" // bakımda
	KioskStatusRetired     KioskStatus = "RETIRED"     // emekli
)

type DeliveryStatus string

const (
	DeliveryStatusPending   DeliveryStatus = "PENDING"
	DeliveryStatusOrdered   DeliveryStatus = "ORDERED"
	DeliveryStatusShipped   DeliveryStatus = "SHIPPED"
	DeliveryStatusDelivered DeliveryStatus = "DELIVERED"
)

// Kiosk: Takip edilen fiziksel cihaz. Normal akışta hiç silinmez,
// emeklilik bir status'tur.
type Kiosk struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Code         *string `gorm:"size:50;uniqueIndex" json:"code"`
	SerialNumber string  `gorm:"size:100;uniqueIndex;not null" json:"serial_number"` // boş gelirse TEMP- ile üretilir
	KioskNumber  string  `gorm:"size:50" json:"kiosk_number"`
	AnydeskID    string  `gorm:"size:50" json:"anydesk_id"`

	// Marka adı "FC kodu / FC adı" formatında denormalize tutulur (ör: "FC022 / Lilmobi")
	BrandName string `gorm:"size:150" json:"brand_name"`

	CurrentPartnerID *uint    `gorm:"index" json:"current_partner_id"`
	CurrentPartner   *Partner `json:"current_partner,omitempty"`

	BranchID   *uint   `gorm:"index" json:"branch_id"`
	Branch     *Branch `json:"branch,omitempty"`
	BranchName string  `gorm:"size:150" json:"branch_name"` // kayıt anındaki kopya
	RegionCode string  `gorm:"size:20;index" json:"region_code"`
	AreaCode   string  `gorm:"size:20;index" json:"area_code"`

	Acquisition    AcquisitionType `gorm:"size:20;not null;default:PURCHASE" json:"acquisition"`
	SalePrice      *float64        `json:"sale_price"` // 万円 cinsinden
	LeaseCompanyID *uint           `gorm:"index" json:"lease_company_id"`
	LeaseCompany   *LeaseCompany   `json:"lease_company,omitempty"`

	OrderRequestDate *time.Time     `json:"order_request_date"`
	DeliveryDueDate  string         `gorm:"size:100" json:"delivery_due_date"` // serbest metin ("3월 말" gibi) de girilebiliyor
	DeliveryDate     *time.Time     `gorm:"index" json:"delivery_date"`
	DeliveryStatus   DeliveryStatus `gorm:"size:20;not null;default:PENDING" json:"delivery_status"`

	Status KioskStatus `gorm:"size:20;not null;default:IN_STOCK;index" json:"status"`
	Memo   string      `gorm:"type:text" json:"memo"`

	// En güncel hareketin (max event_date) projeksiyonu. Kaynak LocationHistory
	// tablosudur; history tarafındaki her mutasyon sonrası senkronize edilir.
	LatestMoveType   MoveType    `gorm:"size:20" json:"latest_move_type"`
	LatestStatus     KioskStatus `gorm:"size:20" json:"latest_status"`
	LatestBranchName string      `gorm:"size:150" json:"latest_branch_name"`
	LatestEventDate  *time.Time  `json:"latest_event_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	History []LocationHistory `gorm:"foreignKey:KioskID;constraint:OnDelete:CASCADE" json:"history,omitempty"`
}
