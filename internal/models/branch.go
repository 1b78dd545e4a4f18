package models

import "time"

// Branch: Kiosk'un fiziken durduğu şube. Şubenin kendi region/area kodları
// kiosk üzerindeki kopyadan sapabilir; kiosk'taki değerler olay anındaki
// fotoğraftır.
type Branch struct {
	ID            uint         `gorm:"primaryKey" json:"id"`
	CorporationID *uint        `gorm:"index" json:"corporation_id"`
	Corporation   *Corporation `json:"corporation,omitempty"`

	Code        string `gorm:"size:20" json:"code"`
	Name        string `gorm:"size:150;not null" json:"name"`
	NameJa      string `gorm:"size:150" json:"name_ja"`
	Address     string `gorm:"size:255" json:"address"`
	ManagerName string `gorm:"size:100" json:"manager_name"`
	RegionCode  string `gorm:"size:20;index" json:"region_code"`
	AreaCode    string `gorm:"size:20;index" json:"area_code"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Kiosks []Kiosk `gorm:"foreignKey:BranchID" json:"kiosks,omitempty"`
}
