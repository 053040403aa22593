package models

import "gorm.io/gorm"

// WorkspacePreference keeps one row per (workspace, user); saves use upsert
// semantics so concurrent duplicate requests cannot create a second row.
type WorkspacePreference struct {
	gorm.Model

	WorkspaceID uint   `gorm:"not null;uniqueIndex:idx_workspace_user_pref"`
	UserID      uint   `gorm:"not null;uniqueIndex:idx_workspace_user_pref"`
	Theme       string `gorm:"not null"`

	// Relationships
	User      User      `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Workspace Workspace `gorm:"foreignKey:WorkspaceID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
