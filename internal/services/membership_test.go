package services

import (
	"testing"

	"github.com/hivedesk-dev/hivedesk/internal/apperrors"
	"github.com/hivedesk-dev/hivedesk/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddMemberIsIdempotent(t *testing.T) {
	gdb := newTestDB(t)

	alice := createUser(t, gdb, "alice")
	bob := createUser(t, gdb, "bob")
	ws := createWorkspace(t, gdb, alice, "ops")

	require.NoError(t, AddMember(gdb, ws.ID, bob.ID))
	require.NoError(t, AddMember(gdb, ws.ID, bob.ID))

	var count int64
	require.NoError(t, gdb.Model(&models.WorkspaceMember{}).Where("workspace_id = ? AND user_id = ?", ws.ID, bob.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestAddMemberDirectConflictsWhenAlreadyMember(t *testing.T) {
	gdb := newTestDB(t)

	alice := createUser(t, gdb, "alice")
	bob := createUser(t, gdb, "bob")
	createWorkspace(t, gdb, alice, "ops")

	_, err := AddMemberDirect(gdb, alice, "ops", "bob")
	require.NoError(t, err)

	_, err = AddMemberDirect(gdb, alice, "ops", "bob")
	assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))

	// Adding the owner is also a conflict.
	_, err = AddMemberDirect(gdb, alice, "ops", "alice")
	assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))

	// Unknown users are not silently created.
	_, err = AddMemberDirect(gdb, alice, "ops", "ghost")
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))

	// A member may not add members.
	_, err = AddMemberDirect(gdb, bob, "ops", "ghost")
	assert.True(t, apperrors.IsKind(err, apperrors.KindForbidden))
}

func TestRemoveMemberReassignsTasksToOwner(t *testing.T) {
	gdb := newTestDB(t)

	alice := createUser(t, gdb, "alice")
	bob := createUser(t, gdb, "bob")
	ws := createWorkspace(t, gdb, alice, "ops")
	addMember(t, gdb, ws, bob)

	// One task assigned to bob in this workspace, one of bob's tasks in an
	// unrelated workspace that must stay untouched.
	createTask(t, gdb, bob, "ops", "deploy", "bob")

	createWorkspace(t, gdb, bob, "personal")
	untouched := createTask(t, gdb, bob, "personal", "errands", "bob")

	require.NoError(t, RemoveMember(gdb, alice, "ops", "bob"))

	var tasks []models.Task
	require.NoError(t, gdb.Where("workspace_id = ?", ws.ID).Find(&tasks).Error)
	require.Len(t, tasks, 1)
	assert.Equal(t, alice.ID, tasks[0].AssigneeID)
	assert.Equal(t, "alice", tasks[0].AssigneeName)

	var count int64
	require.NoError(t, gdb.Model(&models.WorkspaceMember{}).Where("workspace_id = ? AND user_id = ?", ws.ID, bob.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	var task models.Task
	require.NoError(t, gdb.First(&task, untouched.ID).Error)
	assert.Equal(t, bob.ID, task.AssigneeID)
	assert.Equal(t, "bob", task.AssigneeName)
}

func TestRemoveMemberRules(t *testing.T) {
	gdb := newTestDB(t)

	alice := createUser(t, gdb, "alice")
	bob := createUser(t, gdb, "bob")
	carol := createUser(t, gdb, "carol")
	ws := createWorkspace(t, gdb, alice, "ops")
	addMember(t, gdb, ws, bob)

	// The owner cannot be removed.
	err := RemoveMember(gdb, alice, "ops", "alice")
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidOperation))

	// Members cannot remove members.
	err = RemoveMember(gdb, bob, "ops", "bob")
	assert.True(t, apperrors.IsKind(err, apperrors.KindForbidden))

	// Strangers do not learn the workspace exists.
	err = RemoveMember(gdb, carol, "ops", "bob")
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))

	// Removing a non-member is NotFound.
	err = RemoveMember(gdb, alice, "ops", "carol")
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestQuit(t *testing.T) {
	gdb := newTestDB(t)

	alice := createUser(t, gdb, "alice")
	bob := createUser(t, gdb, "bob")
	ws := createWorkspace(t, gdb, alice, "ops")
	addMember(t, gdb, ws, bob)

	createTask(t, gdb, bob, "ops", "deploy", "bob")

	// The owner cannot quit; the membership table is left unchanged.
	err := Quit(gdb, alice, "ops")
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidOperation))

	var count int64
	require.NoError(t, gdb.Model(&models.WorkspaceMember{}).Where("workspace_id = ?", ws.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// A member quits; their tasks go back to the owner.
	require.NoError(t, Quit(gdb, bob, "ops"))

	require.NoError(t, gdb.Model(&models.WorkspaceMember{}).Where("workspace_id = ?", ws.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	var tasks []models.Task
	require.NoError(t, gdb.Where("workspace_id = ?", ws.ID).Find(&tasks).Error)
	require.Len(t, tasks, 1)
	assert.Equal(t, alice.ID, tasks[0].AssigneeID)
	assert.Equal(t, "alice", tasks[0].AssigneeName)
}

func TestListMembersIncludesOwnerFirst(t *testing.T) {
	gdb := newTestDB(t)

	alice := createUser(t, gdb, "alice")
	bob := createUser(t, gdb, "bob")
	ws := createWorkspace(t, gdb, alice, "ops")
	addMember(t, gdb, ws, bob)

	access, members, err := ListMembers(gdb, bob, "ops")
	require.NoError(t, err)
	assert.Equal(t, RoleMember, access.Role)
	require.Len(t, members, 1)
	assert.Equal(t, bob.ID, members[0].UserID)
	assert.Equal(t, "bob", members[0].User.Name)
}
