package types

import "time"

type UserResponse struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Email *string `json:"email"`
}

type WorkspaceResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Owner       string  `json:"owner"`
	OwnerID     uint    `json:"owner_id"`
	Description string  `json:"description"`
	DueDate     *string `json:"due_date,omitempty"`
	Role        string  `json:"role"`
}

type MemberResponse struct {
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}

type InvitationResponse struct {
	ID            uint       `json:"id"`
	WorkspaceID   uint       `json:"workspace_id"`
	WorkspaceName string     `json:"workspace_name"`
	Inviter       string     `json:"inviter"`
	Invitee       string     `json:"invitee"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	RespondedAt   *time.Time `json:"responded_at,omitempty"`
}

type TaskResponse struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Priority    string  `json:"priority"`
	DueDate     *string `json:"due_date,omitempty"`
	Assignee    string  `json:"assignee"`
	AssigneeID  uint    `json:"assignee_id"`
	IsFinished  bool    `json:"is_finished"`
}

type NoteResponse struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	IsPinned bool   `json:"is_pinned"`
	OwnerID  uint   `json:"owner_id"`
}
