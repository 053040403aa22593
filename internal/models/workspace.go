package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Workspace names are unique per owner, not globally. The same name may
// exist under two different owners, so lookups by name must always carry
// the acting user. OwnerName is a denormalized copy of the owner's current
// name, kept in sync by rename propagation.
type Workspace struct {
	gorm.Model

	Name        string `gorm:"not null;index"`
	OwnerID     uint   `gorm:"not null;index"`
	OwnerName   string `gorm:"not null"`
	Description string
	DueDate     *datatypes.Date

	// Relationships
	Owner       User                  `gorm:"foreignKey:OwnerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Members     []WorkspaceMember     `gorm:"foreignKey:WorkspaceID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Invitations []WorkspaceInvitation `gorm:"foreignKey:WorkspaceID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Tasks       []Task                `gorm:"foreignKey:WorkspaceID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Notes       []Note                `gorm:"foreignKey:WorkspaceID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
