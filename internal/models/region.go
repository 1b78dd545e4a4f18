package models

import "time"

// Region ⊃ Area: coğrafi hiyerarşi, yalnızca filtreleme/görüntüleme için
// referans veri.
type Region struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Code   string `gorm:"size:20;uniqueIndex;not null" json:"code"`
	Name   string `gorm:"size:100;not null" json:"name"`
	NameJa string `gorm:"size:100" json:"name_ja"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Areas []Area `gorm:"foreignKey:RegionCode;references:Code" json:"areas,omitempty"`
}

type Area struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Code       string `gorm:"size:20;uniqueIndex;not null" json:"code"`
	Name       string `gorm:"size:100;not null" json:"name"`
	NameJa     string `gorm:"size:100" json:"name_ja"`
	RegionCode string `gorm:"size:20;index" json:"region_code"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
