package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type TaskPriority string

const (
	PriorityLight  TaskPriority = "Light"
	PriorityMedium TaskPriority = "Medium"
	PriorityHigh   TaskPriority = "High"
	PriorityUrgent TaskPriority = "Urgent"
)

func (p TaskPriority) IsValid() bool {
	switch p {
	case PriorityLight, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	default:
		return false
	}
}

// Task.AssigneeName (column "assignee") is a denormalized copy of the
// assignee's name and must always refer to the same user as AssigneeID;
// every write path sets both in the same statement.
type Task struct {
	gorm.Model

	Title        string       `gorm:"not null"`
	Description  string
	Priority     TaskPriority `gorm:"not null;default:Medium"`
	DueDate      *datatypes.Date
	WorkspaceID  *uint  `gorm:"index"`
	AssigneeID   uint   `gorm:"not null;index"`
	AssigneeName string `gorm:"column:assignee;not null"`
	CreatedBy    *uint
	IsFinished   bool `gorm:"default:false"`

	// Relationships
	Workspace *Workspace `gorm:"foreignKey:WorkspaceID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Assignee  User       `gorm:"foreignKey:AssigneeID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
