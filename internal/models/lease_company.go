package models

import "time"

// LeaseCompany: Leasing sözleşmelerinin karşı tarafı.
type LeaseCompany struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Code    string `gorm:"size:20;uniqueIndex" json:"code"`
	Name    string `gorm:"size:150;not null" json:"name"`
	NameJa  string `gorm:"size:150" json:"name_ja"`
	Contact string `gorm:"size:150" json:"contact"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Kiosks []Kiosk `gorm:"foreignKey:LeaseCompanyID" json:"kiosks,omitempty"`
}
