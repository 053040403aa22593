package services

import (
	"errors"
	"time"

	"github.com/hivedesk-dev/hivedesk/internal/apperrors"
	"github.com/hivedesk-dev/hivedesk/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Invite upserts the (workspace, invitee) invitation row back to pending.
// A rejected invitation is resurrected by a fresh invite, with the inviter
// overwritten and responded_at cleared; calling twice with no response in
// between leaves exactly one pending row.
func Invite(gdb *gorm.DB, inviter models.User, inviteeName string, workspaceName string) (models.WorkspaceInvitation, error) {
	ws, err := RequireOwner(gdb, inviter, workspaceName, "Only the workspace owner can send invitations")

	if err != nil {
		return models.WorkspaceInvitation{}, err
	}

	invitee, err := ResolveUser(gdb, inviteeName)

	if err != nil {
		return models.WorkspaceInvitation{}, err
	}

	if IsOwner(ws, invitee) {
		return models.WorkspaceInvitation{}, apperrors.Conflict("User is already a member of this workspace")
	}

	var member models.WorkspaceMember

	err = gdb.Where("workspace_id = ? AND user_id = ?", ws.ID, invitee.ID).First(&member).Error

	if err == nil {
		return models.WorkspaceInvitation{}, apperrors.Conflict("User is already a member of this workspace")
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.WorkspaceInvitation{}, apperrors.Internal("Failed to check membership", err)
	}

	inv := models.WorkspaceInvitation{
		WorkspaceID:   ws.ID,
		InviteeUserID: invitee.ID,
		InviterUserID: inviter.ID,
		Status:        models.InvitationPending,
	}

	err = gdb.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "workspace_id"}, {Name: "invitee_user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"status":          models.InvitationPending,
			"inviter_user_id": inviter.ID,
			"responded_at":    nil,
			"updated_at":      time.Now(),
		}),
	}).Create(&inv).Error

	if err != nil {
		return models.WorkspaceInvitation{}, apperrors.Internal("Failed to create invitation", err)
	}

	// Reload: on conflict the upsert does not refresh the struct.
	err = gdb.Where("workspace_id = ? AND invitee_user_id = ?", ws.ID, invitee.ID).First(&inv).Error

	if err != nil {
		return models.WorkspaceInvitation{}, apperrors.Internal("Failed to load invitation", err)
	}

	return inv, nil
}

// Respond accepts or rejects a pending invitation addressed to the caller.
// A wrong caller and an already-responded invitation both come back as
// NotFound, so non-invitees cannot probe for invitation existence.
func Respond(gdb *gorm.DB, invitee models.User, invitationID uint, accept bool) (models.WorkspaceInvitation, error) {
	var inv models.WorkspaceInvitation

	err := gdb.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("id = ? AND invitee_user_id = ? AND status = ?",
			invitationID, invitee.ID, models.InvitationPending).First(&inv).Error

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("Invitation not found")
		}

		if err != nil {
			return apperrors.Internal("Failed to load invitation", err)
		}

		status := models.InvitationRejected

		if accept {
			if err := AddMember(tx, inv.WorkspaceID, invitee.ID); err != nil {
				return err
			}
			status = models.InvitationAccepted
		}

		now := time.Now()
		inv.Status = status
		inv.RespondedAt = &now

		return tx.Model(&inv).Updates(map[string]interface{}{
			"status":       status,
			"responded_at": now,
		}).Error
	})

	if err != nil {
		var appErr *apperrors.Error
		if errors.As(err, &appErr) {
			return models.WorkspaceInvitation{}, appErr
		}
		return models.WorkspaceInvitation{}, apperrors.Internal("Failed to respond to invitation", err)
	}

	return inv, nil
}

func ListPendingForUser(gdb *gorm.DB, userID uint) ([]models.WorkspaceInvitation, error) {
	var invitations []models.WorkspaceInvitation

	err := gdb.Preload("Workspace").Preload("Inviter").
		Where("invitee_user_id = ? AND status = ?", userID, models.InvitationPending).
		Order("id ASC").
		Find(&invitations).Error

	if err != nil {
		return nil, apperrors.Internal("Failed to list invitations", err)
	}

	return invitations, nil
}

// ListForWorkspace is owner-only and returns every invitation regardless of
// status.
func ListForWorkspace(gdb *gorm.DB, owner models.User, workspaceName string) ([]models.WorkspaceInvitation, error) {
	ws, err := RequireOwner(gdb, owner, workspaceName, "Only the workspace owner can list invitations")

	if err != nil {
		return nil, err
	}

	var invitations []models.WorkspaceInvitation

	err = gdb.Preload("Invitee").Preload("Inviter").
		Where("workspace_id = ?", ws.ID).
		Order("id ASC").
		Find(&invitations).Error

	if err != nil {
		return nil, apperrors.Internal("Failed to list invitations", err)
	}

	return invitations, nil
}
