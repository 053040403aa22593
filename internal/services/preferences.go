package services

import (
	"errors"
	"time"

	"github.com/hivedesk-dev/hivedesk/internal/apperrors"
	"github.com/hivedesk-dev/hivedesk/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SavePreference upserts the caller's theme for the workspace; one row per
// (workspace, user) pair even under concurrent duplicate requests.
func SavePreference(gdb *gorm.DB, user models.User, workspaceName string, theme string) (models.WorkspacePreference, error) {
	access, err := RequireAccess(gdb, user, workspaceName)

	if err != nil {
		return models.WorkspacePreference{}, err
	}

	if theme == "" {
		return models.WorkspacePreference{}, apperrors.Validation("Theme is required")
	}

	pref := models.WorkspacePreference{
		WorkspaceID: access.Workspace.ID,
		UserID:      user.ID,
		Theme:       theme,
	}

	err = gdb.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "workspace_id"}, {Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"theme":      theme,
			"updated_at": time.Now(),
		}),
	}).Create(&pref).Error

	if err != nil {
		return models.WorkspacePreference{}, apperrors.Internal("Failed to save preference", err)
	}

	err = gdb.Where("workspace_id = ? AND user_id = ?", access.Workspace.ID, user.ID).First(&pref).Error

	if err != nil {
		return models.WorkspacePreference{}, apperrors.Internal("Failed to load preference", err)
	}

	return pref, nil
}

func GetPreference(gdb *gorm.DB, user models.User, workspaceName string) (models.WorkspacePreference, error) {
	access, err := RequireAccess(gdb, user, workspaceName)

	if err != nil {
		return models.WorkspacePreference{}, err
	}

	var pref models.WorkspacePreference

	err = gdb.Where("workspace_id = ? AND user_id = ?", access.Workspace.ID, user.ID).First(&pref).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.WorkspacePreference{}, apperrors.NotFound("Preference not found")
	}

	if err != nil {
		return models.WorkspacePreference{}, apperrors.Internal("Failed to load preference", err)
	}

	return pref, nil
}
