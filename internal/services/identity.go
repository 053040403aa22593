// Package services holds the domain rules shared by every handler: identity
// resolution, workspace access checks, membership and invitation lifecycles,
// task/note ownership binding and rename propagation. Every function takes
// the database handle as its first argument; handlers pass db.DB and tests
// pass their own in-memory database.
package services

import (
	"errors"
	"strings"
	"unicode"

	"github.com/hivedesk-dev/hivedesk/internal/apperrors"
	"github.com/hivedesk-dev/hivedesk/internal/models"
	"gorm.io/gorm"
)

// ResolveUser maps a name to its user row. Lookups are case-sensitive exact
// match.
func ResolveUser(gdb *gorm.DB, name string) (models.User, error) {
	var user models.User

	err := gdb.Where("name = ?", name).First(&user).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, apperrors.NotFound("User not found")
	}

	if err != nil {
		return models.User{}, apperrors.Internal("Failed to resolve user", err)
	}

	return user, nil
}

func ResolveUserByID(gdb *gorm.DB, id uint) (models.User, error) {
	var user models.User

	err := gdb.First(&user, id).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, apperrors.NotFound("User not found")
	}

	if err != nil {
		return models.User{}, apperrors.Internal("Failed to resolve user", err)
	}

	return user, nil
}

// ValidateName rejects empty names and names containing whitespace. The
// field label is used in the error message ("Username", "Workspace name").
func ValidateName(name string, field string) error {
	if name == "" {
		return apperrors.Validation(field + " is required")
	}

	if strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return apperrors.Validation(field + " must not contain whitespace")
	}

	return nil
}

// ensureNameAvailable returns Conflict when another user (excluding
// excludeID) already holds the name.
func ensureNameAvailable(gdb *gorm.DB, name string, excludeID uint) error {
	var existing models.User

	err := gdb.Where("name = ? AND id != ?", name, excludeID).First(&existing).Error

	if err == nil {
		return apperrors.Conflict("Username already exists")
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.Internal("Failed to check username availability", err)
	}

	return nil
}

func ensureEmailAvailable(gdb *gorm.DB, email string, excludeID uint) error {
	var existing models.User

	err := gdb.Where("email = ? AND id != ?", email, excludeID).First(&existing).Error

	if err == nil {
		return apperrors.Conflict("Email already exists")
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.Internal("Failed to check email availability", err)
	}

	return nil
}

// RegisterUser creates a user after enforcing name/email uniqueness. The
// password is hashed by the caller.
func RegisterUser(gdb *gorm.DB, name string, email *string, passwordHash string) (models.User, error) {
	if err := ValidateName(name, "Username"); err != nil {
		return models.User{}, err
	}

	if err := ensureNameAvailable(gdb, name, 0); err != nil {
		return models.User{}, err
	}

	if email != nil {
		if err := ensureEmailAvailable(gdb, *email, 0); err != nil {
			return models.User{}, err
		}
	}

	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
	}

	if err := gdb.Create(&user).Error; err != nil {
		return models.User{}, apperrors.Internal("Failed to create user", err)
	}

	return user, nil
}
