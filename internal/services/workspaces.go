package services

import (
	"errors"

	"github.com/hivedesk-dev/hivedesk/internal/apperrors"
	"github.com/hivedesk-dev/hivedesk/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CreateWorkspace enforces per-owner name uniqueness; the same name may
// exist under a different owner.
func CreateWorkspace(gdb *gorm.DB, owner models.User, name string, description string, dueDate *datatypes.Date) (models.Workspace, error) {
	if err := ValidateName(name, "Workspace name"); err != nil {
		return models.Workspace{}, err
	}

	var existing models.Workspace

	err := gdb.Where("name = ? AND (owner_id = ? OR owner_name = ?)", name, owner.ID, owner.Name).First(&existing).Error

	if err == nil {
		return models.Workspace{}, apperrors.Conflict("A workspace with this name already exists")
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Workspace{}, apperrors.Internal("Failed to check workspace name", err)
	}

	ws := models.Workspace{
		Name:        name,
		OwnerID:     owner.ID,
		OwnerName:   owner.Name,
		Description: description,
		DueDate:     dueDate,
	}

	if err := gdb.Create(&ws).Error; err != nil {
		return models.Workspace{}, apperrors.Internal("Failed to create workspace", err)
	}

	return ws, nil
}

// DeleteWorkspace removes the workspace and everything hanging off it in one
// transaction.
func DeleteWorkspace(gdb *gorm.DB, user models.User, workspaceName string) error {
	ws, err := RequireOwner(gdb, user, workspaceName, "Only the workspace owner can delete the workspace")

	if err != nil {
		return err
	}

	err = gdb.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("workspace_id = ?", ws.ID).Delete(&models.Task{}).Error; err != nil {
			return err
		}

		if err := tx.Where("workspace_id = ?", ws.ID).Delete(&models.Note{}).Error; err != nil {
			return err
		}

		if err := tx.Where("workspace_id = ?", ws.ID).Delete(&models.WorkspaceInvitation{}).Error; err != nil {
			return err
		}

		if err := tx.Where("workspace_id = ?", ws.ID).Delete(&models.WorkspacePreference{}).Error; err != nil {
			return err
		}

		if err := tx.Where("workspace_id = ?", ws.ID).Delete(&models.WorkspaceMember{}).Error; err != nil {
			return err
		}

		return tx.Delete(&ws).Error
	})

	if err != nil {
		return apperrors.Internal("Failed to delete workspace", err)
	}

	return nil
}

// ListWorkspaces returns the workspaces the user owns plus the ones they are
// a member of.
func ListWorkspaces(gdb *gorm.DB, user models.User) ([]Access, error) {
	var owned []models.Workspace

	if err := gdb.Where("owner_id = ? OR owner_name = ?", user.ID, user.Name).Order("id ASC").Find(&owned).Error; err != nil {
		return nil, apperrors.Internal("Failed to list workspaces", err)
	}

	var memberOf []models.Workspace

	err := gdb.
		Select("workspaces.*").
		Joins("JOIN workspace_members ON workspace_members.workspace_id = workspaces.id AND workspace_members.user_id = ?", user.ID).
		Order("workspaces.id ASC").
		Find(&memberOf).Error

	if err != nil {
		return nil, apperrors.Internal("Failed to list workspaces", err)
	}

	seen := make(map[uint]bool, len(owned))
	result := make([]Access, 0, len(owned)+len(memberOf))

	for _, ws := range owned {
		seen[ws.ID] = true
		result = append(result, Access{Role: RoleOwner, Workspace: ws})
	}

	for _, ws := range memberOf {
		if seen[ws.ID] {
			continue
		}
		result = append(result, Access{Role: RoleMember, Workspace: ws})
	}

	return result, nil
}
