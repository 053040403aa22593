package models

import "time"

const RoleMember = "member"

// WorkspaceMember is the membership junction row. The owner is tracked via
// Workspace.OwnerID and never gets a row here. Rows are hard-deleted on
// removal or quit, so there is no gorm.Model soft-delete column.
type WorkspaceMember struct {
	ID          uint   `gorm:"primaryKey"`
	WorkspaceID uint   `gorm:"not null;uniqueIndex:idx_workspace_member"`
	UserID      uint   `gorm:"not null;uniqueIndex:idx_workspace_member"`
	Role        string `gorm:"not null;default:member"`
	CreatedAt   time.Time

	// Relationships
	User      User      `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Workspace Workspace `gorm:"foreignKey:WorkspaceID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
