package services

import (
	"errors"
	"strings"

	"github.com/hivedesk-dev/hivedesk/internal/apperrors"
	"github.com/hivedesk-dev/hivedesk/internal/models"
	"gorm.io/gorm"
)

// RenameInput carries the optional new name and email; nil fields are left
// untouched.
type RenameInput struct {
	Name  *string
	Email *string
}

// RenameUser updates the user row and propagates a name change to every
// denormalized copy: workspaces.owner_name where the user is the owner by id
// or by the old name, and tasks.assignee likewise. All writes share one
// transaction; a uniqueness conflict rolls everything back with no partial
// rename. The id-or-old-name predicates cover legacy rows whose id column
// was never backfilled, and must both be kept.
func RenameUser(gdb *gorm.DB, userID uint, in RenameInput) (models.User, error) {
	var user models.User

	err := gdb.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("User not found")
			}
			return apperrors.Internal("Failed to load user", err)
		}

		oldName := user.Name
		updates := make(map[string]interface{})

		if in.Name != nil && *in.Name != oldName {
			if err := ValidateName(*in.Name, "Username"); err != nil {
				return err
			}

			if err := ensureNameAvailable(tx, *in.Name, user.ID); err != nil {
				return err
			}

			updates["name"] = *in.Name
		}

		if in.Email != nil {
			newEmail := strings.ToLower(strings.TrimSpace(*in.Email))

			if newEmail == "" {
				return apperrors.Validation("Email is required")
			}

			if strings.ContainsAny(newEmail, " \t") {
				return apperrors.Validation("Email must not contain whitespace")
			}

			if user.Email == nil || newEmail != *user.Email {
				if err := ensureEmailAvailable(tx, newEmail, user.ID); err != nil {
					return err
				}

				updates["email"] = newEmail
			}
		}

		if len(updates) == 0 {
			return nil
		}

		if err := tx.Model(&user).Updates(updates).Error; err != nil {
			return apperrors.Internal("Failed to update user", err)
		}

		newName, renamed := updates["name"].(string)

		if !renamed {
			return nil
		}

		err := tx.Model(&models.Workspace{}).
			Where("owner_id = ? OR owner_name = ?", user.ID, oldName).
			Update("owner_name", newName).Error

		if err != nil {
			return apperrors.Internal("Failed to propagate rename to workspaces", err)
		}

		err = tx.Model(&models.Task{}).
			Where("assignee_id = ? OR assignee = ?", user.ID, oldName).
			Update("assignee", newName).Error

		if err != nil {
			return apperrors.Internal("Failed to propagate rename to tasks", err)
		}

		return nil
	})

	if err != nil {
		var appErr *apperrors.Error
		if errors.As(err, &appErr) {
			return models.User{}, appErr
		}
		return models.User{}, apperrors.Internal("Failed to rename user", err)
	}

	if err := gdb.First(&user, userID).Error; err != nil {
		return models.User{}, apperrors.Internal("Failed to reload user", err)
	}

	return user, nil
}
