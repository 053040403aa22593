package services

import (
	"errors"

	"github.com/hivedesk-dev/hivedesk/internal/apperrors"
	"github.com/hivedesk-dev/hivedesk/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AddMember inserts a membership row idempotently; a pre-existing row is not
// an error. This is the path invitation acceptance uses, so a duplicate
// accept racing with itself stays correct.
func AddMember(gdb *gorm.DB, workspaceID uint, userID uint) error {
	member := models.WorkspaceMember{
		WorkspaceID: workspaceID,
		UserID:      userID,
		Role:        models.RoleMember,
	}

	err := gdb.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "workspace_id"}, {Name: "user_id"}},
		DoNothing: true,
	}).Create(&member).Error

	if err != nil {
		return apperrors.Internal("Failed to add member", err)
	}

	return nil
}

// AddMemberDirect is the owner's explicit add-member operation; unlike the
// invitation path an existing membership is a conflict here.
func AddMemberDirect(gdb *gorm.DB, owner models.User, workspaceName string, memberName string) (models.User, error) {
	ws, err := RequireOwner(gdb, owner, workspaceName, "Only the workspace owner can add members")

	if err != nil {
		return models.User{}, err
	}

	target, err := ResolveUser(gdb, memberName)

	if err != nil {
		return models.User{}, err
	}

	if IsOwner(ws, target) {
		return models.User{}, apperrors.Conflict("User is already a member of this workspace")
	}

	var existing models.WorkspaceMember

	err = gdb.Where("workspace_id = ? AND user_id = ?", ws.ID, target.ID).First(&existing).Error

	if err == nil {
		return models.User{}, apperrors.Conflict("User is already a member of this workspace")
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, apperrors.Internal("Failed to check membership", err)
	}

	if err := AddMember(gdb, ws.ID, target.ID); err != nil {
		return models.User{}, err
	}

	return target, nil
}

// RemoveMember is owner-only. Every task in the workspace still assigned to
// the target (by id or by a stale denormalized name) is reassigned to the
// owner before the membership row is deleted, so no task ever references a
// user without workspace access. Both steps commit or roll back together.
func RemoveMember(gdb *gorm.DB, requester models.User, workspaceName string, targetName string) error {
	ws, err := RequireOwner(gdb, requester, workspaceName, "Only the workspace owner can remove members")

	if err != nil {
		return err
	}

	target, err := ResolveUser(gdb, targetName)

	if err != nil {
		return err
	}

	if IsOwner(ws, target) {
		return apperrors.InvalidOperation("The workspace owner cannot be removed")
	}

	var member models.WorkspaceMember

	err = gdb.Where("workspace_id = ? AND user_id = ?", ws.ID, target.ID).First(&member).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NotFound("User is not a member of this workspace")
	}

	if err != nil {
		return apperrors.Internal("Failed to check membership", err)
	}

	err = gdb.Transaction(func(tx *gorm.DB) error {
		if err := reassignTasksToOwner(tx, ws, target); err != nil {
			return err
		}

		return tx.Delete(&models.WorkspaceMember{}, member.ID).Error
	})

	if err != nil {
		return apperrors.Internal("Failed to remove member", err)
	}

	return nil
}

// Quit is the member's self-removal. The owner cannot quit their own
// workspace. The quitter's tasks are handed back to the owner in the same
// transaction, mirroring RemoveMember.
func Quit(gdb *gorm.DB, user models.User, workspaceName string) error {
	access, err := RequireAccess(gdb, user, workspaceName)

	if err != nil {
		return err
	}

	if access.Role == RoleOwner {
		return apperrors.InvalidOperation("The owner cannot quit their own workspace; delete it instead")
	}

	err = gdb.Transaction(func(tx *gorm.DB) error {
		if err := reassignTasksToOwner(tx, access.Workspace, user); err != nil {
			return err
		}

		return tx.Where("workspace_id = ? AND user_id = ?", access.Workspace.ID, user.ID).
			Delete(&models.WorkspaceMember{}).Error
	})

	if err != nil {
		return apperrors.Internal("Failed to quit workspace", err)
	}

	return nil
}

// ListMembers returns the membership rows with their users preloaded; the
// owner is implicit via the workspace and not included.
func ListMembers(gdb *gorm.DB, user models.User, workspaceName string) (Access, []models.WorkspaceMember, error) {
	access, err := RequireAccess(gdb, user, workspaceName)

	if err != nil {
		return Access{}, nil, err
	}

	var members []models.WorkspaceMember

	err = gdb.Preload("User").
		Where("workspace_id = ?", access.Workspace.ID).
		Order("id ASC").
		Find(&members).Error

	if err != nil {
		return Access{}, nil, apperrors.Internal("Failed to list members", err)
	}

	return access, members, nil
}

// reassignTasksToOwner rewrites assignee_id and the denormalized assignee
// name in the same statement.
func reassignTasksToOwner(tx *gorm.DB, ws models.Workspace, from models.User) error {
	owner, err := resolveWorkspaceOwner(tx, ws)

	if err != nil {
		return err
	}

	return tx.Model(&models.Task{}).
		Where("workspace_id = ? AND (assignee_id = ? OR assignee = ?)", ws.ID, from.ID, from.Name).
		Updates(map[string]interface{}{
			"assignee_id": owner.ID,
			"assignee":    owner.Name,
		}).Error
}
