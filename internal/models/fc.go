package models

import "time"

// FC: Franchise seviyesi, hiyerarşinin tepesi (FC ⊃ Corporation ⊃ Branch).
type FC struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Code   string `gorm:"size:20;uniqueIndex" json:"code"` // ör: "FC022"
	Name   string `gorm:"size:150;not null" json:"name"`
	NameJa string `gorm:"size:150" json:"name_ja"`
	FcType string `gorm:"size:50" json:"fc_type"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Corporations []Corporation `gorm:"foreignKey:FcID" json:"corporations,omitempty"`
}

type Corporation struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	FcID   *uint  `gorm:"index" json:"fc_id"`
	Fc     *FC    `gorm:"foreignKey:FcID" json:"fc,omitempty"`
	Code   string `gorm:"size:20" json:"code"`
	Name   string `gorm:"size:150;not null" json:"name"`
	NameJa string `gorm:"size:150" json:"name_ja"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Branches []Branch `gorm:"foreignKey:CorporationID" json:"branches,omitempty"`
}
