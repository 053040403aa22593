package services

import (
	"errors"

	"github.com/hivedesk-dev/hivedesk/internal/apperrors"
	"github.com/hivedesk-dev/hivedesk/internal/models"
	"gorm.io/gorm"
)

type Role int

const (
	RoleNone Role = iota
	RoleMember
	RoleOwner
)

func (r Role) String() string {
	switch r {
	case RoleOwner:
		return "owner"
	case RoleMember:
		return "member"
	default:
		return "none"
	}
}

// Access is the result of resolving a (user, workspace name) pair.
type Access struct {
	Role      Role
	Workspace models.Workspace
}

// IsOwner matches by owner id or by the denormalized owner name. Legacy rows
// may carry a stale value in either column, so both predicates are required;
// every owner check in the codebase goes through here.
func IsOwner(ws models.Workspace, user models.User) bool {
	return ws.OwnerID == user.ID || ws.OwnerName == user.Name
}

// ResolveAccess picks, among all workspaces sharing the given name, the
// lowest-id one the user can actually reach (owner or member). A same-named
// workspace belonging to a stranger is never selected. RoleNone with a nil
// error means no reachable workspace exists under that name.
func ResolveAccess(gdb *gorm.DB, user models.User, workspaceName string) (Access, error) {
	var ws models.Workspace

	err := gdb.
		Select("workspaces.*").
		Joins("LEFT JOIN workspace_members ON workspace_members.workspace_id = workspaces.id AND workspace_members.user_id = ?", user.ID).
		Where("workspaces.name = ? AND (workspaces.owner_id = ? OR workspaces.owner_name = ? OR workspace_members.id IS NOT NULL)",
			workspaceName, user.ID, user.Name).
		Order("workspaces.id ASC").
		First(&ws).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Access{Role: RoleNone}, nil
	}

	if err != nil {
		return Access{}, apperrors.Internal("Failed to resolve workspace access", err)
	}

	if IsOwner(ws, user) {
		return Access{Role: RoleOwner, Workspace: ws}, nil
	}

	return Access{Role: RoleMember, Workspace: ws}, nil
}

// RequireAccess resolves access and turns RoleNone into NotFound. Existence
// of a same-named workspace under another owner is deliberately not
// distinguishable from nonexistence.
func RequireAccess(gdb *gorm.DB, user models.User, workspaceName string) (Access, error) {
	access, err := ResolveAccess(gdb, user, workspaceName)

	if err != nil {
		return Access{}, err
	}

	if access.Role == RoleNone {
		return Access{}, apperrors.NotFound("Workspace not found")
	}

	return access, nil
}

// RequireOwner is RequireAccess restricted to the owner. Members get the
// given Forbidden message; they already know the workspace exists, so the
// sharper error leaks nothing.
func RequireOwner(gdb *gorm.DB, user models.User, workspaceName string, forbiddenMsg string) (models.Workspace, error) {
	access, err := RequireAccess(gdb, user, workspaceName)

	if err != nil {
		return models.Workspace{}, err
	}

	if access.Role != RoleOwner {
		return models.Workspace{}, apperrors.Forbidden(forbiddenMsg)
	}

	return access.Workspace, nil
}

// resolveWorkspaceOwner returns the owner's current user row, falling back
// to the denormalized name for legacy rows that predate owner_id.
func resolveWorkspaceOwner(gdb *gorm.DB, ws models.Workspace) (models.User, error) {
	if ws.OwnerID != 0 {
		return ResolveUserByID(gdb, ws.OwnerID)
	}

	return ResolveUser(gdb, ws.OwnerName)
}
