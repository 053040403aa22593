package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hivedesk-dev/hivedesk/internal/apperrors"
	"github.com/hivedesk-dev/hivedesk/internal/models"
	"github.com/hivedesk-dev/hivedesk/internal/services"
	"github.com/hivedesk-dev/hivedesk/internal/types"
	"gorm.io/datatypes"
)

// respondError maps a domain error onto its HTTP status. Internal errors are
// logged with their cause and surfaced as a generic message.
func respondError(ctx *gin.Context, err error) {
	var appErr *apperrors.Error

	if errors.As(err, &appErr) && appErr.Kind != apperrors.KindInternal {
		ctx.JSON(appErr.StatusCode(), gin.H{"error": appErr.Message})
		return
	}

	log.Printf("Internal error on %s %s: %v", ctx.Request.Method, ctx.Request.URL.Path, err)
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

// parseDate parses a YYYY-MM-DD request field; empty means unset.
func parseDate(value string) (*datatypes.Date, error) {
	if value == "" {
		return nil, nil
	}

	t, err := time.Parse("2006-01-02", value)

	if err != nil {
		return nil, apperrors.Validation("Invalid date, expected YYYY-MM-DD")
	}

	date := datatypes.Date(t)
	return &date, nil
}

func formatDate(date *datatypes.Date) *string {
	if date == nil {
		return nil
	}

	formatted := time.Time(*date).Format("2006-01-02")
	return &formatted
}

func toWorkspaceResponse(access services.Access) types.WorkspaceResponse {
	ws := access.Workspace

	return types.WorkspaceResponse{
		ID:          ws.ID,
		Name:        ws.Name,
		Owner:       ws.OwnerName,
		OwnerID:     ws.OwnerID,
		Description: ws.Description,
		DueDate:     formatDate(ws.DueDate),
		Role:        access.Role.String(),
	}
}

func toTaskResponse(task models.Task) types.TaskResponse {
	return types.TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Priority:    string(task.Priority),
		DueDate:     formatDate(task.DueDate),
		Assignee:    task.AssigneeName,
		AssigneeID:  task.AssigneeID,
		IsFinished:  task.IsFinished,
	}
}

func toNoteResponse(note models.Note) types.NoteResponse {
	return types.NoteResponse{
		ID:       note.ID,
		Title:    note.Title,
		Content:  note.Content,
		IsPinned: note.IsPinned,
		OwnerID:  note.OwnerID,
	}
}

func toInvitationResponse(inv models.WorkspaceInvitation) types.InvitationResponse {
	return types.InvitationResponse{
		ID:            inv.ID,
		WorkspaceID:   inv.WorkspaceID,
		WorkspaceName: inv.Workspace.Name,
		Inviter:       inv.Inviter.Name,
		Invitee:       inv.Invitee.Name,
		Status:        string(inv.Status),
		CreatedAt:     inv.CreatedAt,
		RespondedAt:   inv.RespondedAt,
	}
}
