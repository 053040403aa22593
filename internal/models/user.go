package models

import "gorm.io/gorm"

type User struct {
	gorm.Model

	Name         string  `gorm:"uniqueIndex;not null"`
	Email        *string `gorm:"uniqueIndex"`
	PasswordHash string  `gorm:"not null"`

	// Relationships
	OwnedWorkspaces []Workspace           `gorm:"foreignKey:OwnerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Memberships     []WorkspaceMember     `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Invitations     []WorkspaceInvitation `gorm:"foreignKey:InviteeUserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	AssignedTasks   []Task                `gorm:"foreignKey:AssigneeID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Notes           []Note                `gorm:"foreignKey:OwnerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
