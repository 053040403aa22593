package services

import (
	"testing"

	"github.com/hivedesk-dev/hivedesk/internal/apperrors"
	"github.com/hivedesk-dev/hivedesk/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string {
	return &s
}

func TestRenamePropagatesToWorkspacesAndTasks(t *testing.T) {
	gdb := newTestDB(t)

	alice := createUser(t, gdb, "alice")
	ws := createWorkspace(t, gdb, alice, "ops")
	task := createTask(t, gdb, alice, "ops", "deploy", "alice")

	renamed, err := RenameUser(gdb, alice.ID, RenameInput{Name: strptr("alicia")})
	require.NoError(t, err)
	assert.Equal(t, "alicia", renamed.Name)

	var gotWS models.Workspace
	require.NoError(t, gdb.First(&gotWS, ws.ID).Error)
	assert.Equal(t, "alicia", gotWS.OwnerName)

	var gotTask models.Task
	require.NoError(t, gdb.First(&gotTask, task.ID).Error)
	assert.Equal(t, "alicia", gotTask.AssigneeName)
	assert.Equal(t, alice.ID, gotTask.AssigneeID)
}

func TestRenameRoundTrip(t *testing.T) {
	gdb := newTestDB(t)

	alice := createUser(t, gdb, "alice")
	ws := createWorkspace(t, gdb, alice, "ops")
	task := createTask(t, gdb, alice, "ops", "deploy", "alice")

	_, err := RenameUser(gdb, alice.ID, RenameInput{Name: strptr("alicia")})
	require.NoError(t, err)

	_, err = RenameUser(gdb, alice.ID, RenameInput{Name: strptr("alice")})
	require.NoError(t, err)

	var gotWS models.Workspace
	require.NoError(t, gdb.First(&gotWS, ws.ID).Error)
	assert.Equal(t, "alice", gotWS.OwnerName)

	var gotTask models.Task
	require.NoError(t, gdb.First(&gotTask, task.ID).Error)
	assert.Equal(t, "alice", gotTask.AssigneeName)

	// No stranded copies under the intermediate name anywhere.
	var count int64
	require.NoError(t, gdb.Model(&models.Workspace{}).Where("owner_name = ?", "alicia").Count(&count).Error)
	assert.Equal(t, int64(0), count)

	require.NoError(t, gdb.Model(&models.Task{}).Where("assignee = ?", "alicia").Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestRenameConflictLeavesEverythingUntouched(t *testing.T) {
	gdb := newTestDB(t)

	alice := createUser(t, gdb, "alice")
	createUser(t, gdb, "bob")
	ws := createWorkspace(t, gdb, alice, "ops")
	task := createTask(t, gdb, alice, "ops", "deploy", "alice")

	_, err := RenameUser(gdb, alice.ID, RenameInput{Name: strptr("bob")})
	assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))

	var gotUser models.User
	require.NoError(t, gdb.First(&gotUser, alice.ID).Error)
	assert.Equal(t, "alice", gotUser.Name)

	var gotWS models.Workspace
	require.NoError(t, gdb.First(&gotWS, ws.ID).Error)
	assert.Equal(t, "alice", gotWS.OwnerName)

	var gotTask models.Task
	require.NoError(t, gdb.First(&gotTask, task.ID).Error)
	assert.Equal(t, "alice", gotTask.AssigneeName)
}

func TestRenameValidation(t *testing.T) {
	gdb := newTestDB(t)

	alice := createUser(t, gdb, "alice")

	_, err := RenameUser(gdb, alice.ID, RenameInput{Name: strptr("al ice")})
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))

	_, err = RenameUser(gdb, alice.ID, RenameInput{Name: strptr("")})
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func TestRenameUpdatesLegacyRowsMatchedByName(t *testing.T) {
	gdb := newTestDB(t)

	alice := createUser(t, gdb, "alice")
	ws := createWorkspace(t, gdb, alice, "legacy")

	// Legacy row: owner_id lost, only the denormalized name matches.
	require.NoError(t, gdb.Model(&models.Workspace{}).Where("id = ?", ws.ID).Update("owner_id", 0).Error)

	_, err := RenameUser(gdb, alice.ID, RenameInput{Name: strptr("alicia")})
	require.NoError(t, err)

	var gotWS models.Workspace
	require.NoError(t, gdb.First(&gotWS, ws.ID).Error)
	assert.Equal(t, "alicia", gotWS.OwnerName)
}

func TestRenameEmailConflict(t *testing.T) {
	gdb := newTestDB(t)

	alice := createUser(t, gdb, "alice")
	bob := createUser(t, gdb, "bob")

	_, err := RenameUser(gdb, bob.ID, RenameInput{Email: strptr("bob@example.com")})
	require.NoError(t, err)

	_, err = RenameUser(gdb, alice.ID, RenameInput{Email: strptr("BOB@example.com")})
	assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))

	// Changing email alone never touches denormalized names.
	updated, err := RenameUser(gdb, alice.ID, RenameInput{Email: strptr("alice@example.com")})
	require.NoError(t, err)
	require.NotNil(t, updated.Email)
	assert.Equal(t, "alice@example.com", *updated.Email)
	assert.Equal(t, "alice", updated.Name)
}
