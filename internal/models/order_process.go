package models

import "time"

type ProcessStatus string

const (
	ProcessStatusInProgress ProcessStatus = "IN_PROGRESS"
	ProcessStatusCompleted  ProcessStatus = "COMPLETED"
	ProcessStatusCancelled  ProcessStatus = "CANCELLED"
)

type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "PENDING"
	ApprovalStatusApproved ApprovalStatus = "APPROVED"
	ApprovalStatusRejected ApprovalStatus = "REJECTED"
)

// OrderProcess: Satın alma / leasing talebinin 5 adımlı süreci.
// Adımlar yalnızca ileri yönde ilerler:
//  1. Talep girişi (adet, model, teslim tarihi; leasing ise leasing koşulları)
//  2. Doküman hazırlığı (harici doküman referansı)
//  3. Onaya gönderim (onay talep numarası)
//  4. Onay sonucu (APPROVED olmadan 5'e geçilemez)
//  5. Tedarikçi bildirimi (tamamlanınca status = COMPLETED)
type OrderProcess struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	ProcessNumber string `gorm:"size:30;uniqueIndex;not null" json:"process_number"` // OP-YYYYMMDD-NNN

	Title         string   `gorm:"size:200;not null" json:"title"`
	PartnerID     uint     `gorm:"index;not null" json:"partner_id"`
	Partner       *Partner `json:"partner,omitempty"`
	RequesterName string   `gorm:"size:100" json:"requester_name"`

	Quantity            *int       `json:"quantity"`
	ModelType           string     `gorm:"size:100" json:"model_type"`
	DesiredDeliveryDate *time.Time `json:"desired_delivery_date"`
	DueDate             *time.Time `json:"due_date"`

	CurrentStep int           `gorm:"not null;default:1" json:"current_step"` // 1..5
	Status      ProcessStatus `gorm:"size:20;not null;default:IN_PROGRESS" json:"status"`

	// 1. adım
	Acquisition     AcquisitionType `gorm:"size:20;not null;default:PURCHASE" json:"acquisition"`
	LeaseCompanyID  *uint           `gorm:"index" json:"lease_company_id"`
	LeaseCompany    *LeaseCompany   `json:"lease_company,omitempty"`
	LeaseMonthlyFee *float64        `json:"lease_monthly_fee"`
	LeasePeriod     *int            `json:"lease_period"` // ay
	Step1Notes      string          `gorm:"size:500" json:"step1_notes"`

	// 2. adım
	DocumentURL    string `gorm:"size:500" json:"document_url"`
	DocumentNumber string `gorm:"size:100" json:"document_number"`

	// 3. adım
	ApprovalRequestID string `gorm:"size:100" json:"approval_request_id"`
	ApprovalTitle     string `gorm:"size:200" json:"approval_title"`

	// 4. adım
	ApprovalStatus  ApprovalStatus `gorm:"size:20;default:PENDING" json:"approval_status"`
	ApprovalDate    *time.Time     `json:"approval_date"`
	ApprovalComment string         `gorm:"size:500" json:"approval_comment"`

	// 5. adım
	VendorEmail     string `gorm:"size:150" json:"vendor_email"`
	VendorOrderSent bool   `gorm:"default:false" json:"vendor_order_sent"`

	Step1CompletedAt *time.Time `json:"step1_completed_at"`
	Step1CompletedBy string     `gorm:"size:100" json:"step1_completed_by"`
	Step2CompletedAt *time.Time `json:"step2_completed_at"`
	Step2CompletedBy string     `gorm:"size:100" json:"step2_completed_by"`
	Step3CompletedAt *time.Time `json:"step3_completed_at"`
	Step3CompletedBy string     `gorm:"size:100" json:"step3_completed_by"`
	Step4CompletedAt *time.Time `json:"step4_completed_at"`
	Step4CompletedBy string     `gorm:"size:100" json:"step4_completed_by"`
	Step5CompletedAt *time.Time `json:"step5_completed_at"`
	Step5CompletedBy string     `gorm:"size:100" json:"step5_completed_by"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	DeliveryProcesses []DeliveryProcess `gorm:"foreignKey:OrderProcessID" json:"delivery_processes,omitempty"`
}
