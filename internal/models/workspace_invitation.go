package models

import (
	"time"

	"gorm.io/gorm"
)

type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "pending"
	InvitationAccepted InvitationStatus = "accepted"
	InvitationRejected InvitationStatus = "rejected"
)

func (s InvitationStatus) IsValid() bool {
	switch s {
	case InvitationPending, InvitationAccepted, InvitationRejected:
		return true
	default:
		return false
	}
}

// WorkspaceInvitation holds at most one row per (workspace, invitee) pair;
// re-inviting upserts the existing row back to pending instead of inserting
// a duplicate.
type WorkspaceInvitation struct {
	gorm.Model

	WorkspaceID   uint             `gorm:"not null;uniqueIndex:idx_workspace_invitee"`
	InviteeUserID uint             `gorm:"not null;uniqueIndex:idx_workspace_invitee"`
	InviterUserID uint             `gorm:"not null"`
	Status        InvitationStatus `gorm:"not null;default:pending"`
	RespondedAt   *time.Time

	// Relationships
	Workspace Workspace `gorm:"foreignKey:WorkspaceID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Invitee   User      `gorm:"foreignKey:InviteeUserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Inviter   User      `gorm:"foreignKey:InviterUserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
