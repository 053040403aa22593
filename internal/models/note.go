package models

import "gorm.io/gorm"

type Note struct {
	gorm.Model

	Title       string `gorm:"not null"`
	Content     string
	IsPinned    bool `gorm:"default:false"`
	OwnerID     uint `gorm:"not null;index"`
	WorkspaceID uint `gorm:"not null;index"`

	// Relationships
	Owner     User      `gorm:"foreignKey:OwnerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Workspace Workspace `gorm:"foreignKey:WorkspaceID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
