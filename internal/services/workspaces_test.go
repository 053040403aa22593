package services

import (
	"testing"

	"github.com/hivedesk-dev/hivedesk/internal/apperrors"
	"github.com/hivedesk-dev/hivedesk/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateWorkspaceUniquePerOwner(t *testing.T) {
	gdb := newTestDB(t)

	alice := createUser(t, gdb, "alice")
	bob := createUser(t, gdb, "bob")

	createWorkspace(t, gdb, alice, "ops")

	_, err := CreateWorkspace(gdb, alice, "ops", "", nil)
	assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))

	// The same name under a different owner is fine.
	_, err = CreateWorkspace(gdb, bob, "ops", "", nil)
	require.NoError(t, err)
}

func TestCreateWorkspaceValidation(t *testing.T) {
	gdb := newTestDB(t)

	alice := createUser(t, gdb, "alice")

	_, err := CreateWorkspace(gdb, alice, "my ops", "", nil)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))

	_, err = CreateWorkspace(gdb, alice, "", "", nil)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func TestDeleteWorkspaceCascades(t *testing.T) {
	gdb := newTestDB(t)

	alice := createUser(t, gdb, "alice")
	bob := createUser(t, gdb, "bob")
	ws := createWorkspace(t, gdb, alice, "ops")
	addMember(t, gdb, ws, bob)

	createTask(t, gdb, alice, "ops", "deploy", "bob")

	_, err := CreateNote(gdb, bob, "ops", NoteInput{Title: "runbook"})
	require.NoError(t, err)

	_, err = SavePreference(gdb, bob, "ops", "dark")
	require.NoError(t, err)

	// Members cannot delete the workspace.
	err = DeleteWorkspace(gdb, bob, "ops")
	assert.True(t, apperrors.IsKind(err, apperrors.KindForbidden))

	require.NoError(t, DeleteWorkspace(gdb, alice, "ops"))

	var count int64

	require.NoError(t, gdb.Model(&models.Task{}).Where("workspace_id = ?", ws.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	require.NoError(t, gdb.Model(&models.Note{}).Where("workspace_id = ?", ws.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	require.NoError(t, gdb.Model(&models.WorkspaceMember{}).Where("workspace_id = ?", ws.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	require.NoError(t, gdb.Model(&models.WorkspacePreference{}).Where("workspace_id = ?", ws.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	access, err := ResolveAccess(gdb, alice, "ops")
	require.NoError(t, err)
	assert.Equal(t, RoleNone, access.Role)
}

func TestListWorkspacesOwnedAndMemberOf(t *testing.T) {
	gdb := newTestDB(t)

	alice := createUser(t, gdb, "alice")
	bob := createUser(t, gdb, "bob")

	owned := createWorkspace(t, gdb, alice, "mine")
	shared := createWorkspace(t, gdb, bob, "shared")
	addMember(t, gdb, shared, alice)
	createWorkspace(t, gdb, bob, "private")

	accesses, err := ListWorkspaces(gdb, alice)
	require.NoError(t, err)
	require.Len(t, accesses, 2)

	assert.Equal(t, owned.ID, accesses[0].Workspace.ID)
	assert.Equal(t, RoleOwner, accesses[0].Role)
	assert.Equal(t, shared.ID, accesses[1].Workspace.ID)
	assert.Equal(t, RoleMember, accesses[1].Role)
}
