package services

import (
	"testing"

	"github.com/hivedesk-dev/hivedesk/internal/apperrors"
	"github.com/hivedesk-dev/hivedesk/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTaskGhostAssigneeIsValidationError(t *testing.T) {
	gdb := newTestDB(t)

	alice := createUser(t, gdb, "alice")
	createWorkspace(t, gdb, alice, "ops")

	_, err := CreateTask(gdb, alice, "ops", TaskInput{Title: "deploy", Assignee: "ghost"})
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))

	var count int64
	require.NoError(t, gdb.Model(&models.Task{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestCreateTaskDefaults(t *testing.T) {
	gdb := newTestDB(t)

	alice := createUser(t, gdb, "alice")
	createWorkspace(t, gdb, alice, "ops")

	task, err := CreateTask(gdb, alice, "ops", TaskInput{Title: "deploy"})
	require.NoError(t, err)
	assert.Equal(t, models.PriorityMedium, task.Priority)
	assert.Equal(t, alice.ID, task.AssigneeID)
	assert.Equal(t, "alice", task.AssigneeName)
	require.NotNil(t, task.CreatedBy)
	assert.Equal(t, alice.ID, *task.CreatedBy)
}

func TestCreateTaskInvalidPriority(t *testing.T) {
	gdb := newTestDB(t)

	alice := createUser(t, gdb, "alice")
	createWorkspace(t, gdb, alice, "ops")

	_, err := CreateTask(gdb, alice, "ops", TaskInput{Title: "deploy", Priority: "Extreme"})
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func TestTaskAccessControl(t *testing.T) {
	gdb := newTestDB(t)

	alice := createUser(t, gdb, "alice")
	bob := createUser(t, gdb, "bob")
	mallory := createUser(t, gdb, "mallory")
	ws := createWorkspace(t, gdb, alice, "ops")
	addMember(t, gdb, ws, bob)

	// Members can create and assign to other members.
	task, err := CreateTask(gdb, bob, "ops", TaskInput{Title: "deploy", Assignee: "alice"})
	require.NoError(t, err)
	assert.Equal(t, alice.ID, task.AssigneeID)

	// Strangers cannot see the workspace at all.
	_, err = CreateTask(gdb, mallory, "ops", TaskInput{Title: "sneak"})
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))

	_, err = ListTasks(gdb, mallory, "ops")
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))

	tasks, err := ListTasks(gdb, bob, "ops")
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

func TestUpdateTaskReassignsDualWrite(t *testing.T) {
	gdb := newTestDB(t)

	alice := createUser(t, gdb, "alice")
	bob := createUser(t, gdb, "bob")
	ws := createWorkspace(t, gdb, alice, "ops")
	addMember(t, gdb, ws, bob)

	task := createTask(t, gdb, alice, "ops", "deploy", "alice")

	assignee := "bob"
	finished := true
	updated, err := UpdateTask(gdb, alice, "ops", task.ID, TaskUpdate{Assignee: &assignee, IsFinished: &finished})
	require.NoError(t, err)
	assert.Equal(t, bob.ID, updated.AssigneeID)
	assert.Equal(t, "bob", updated.AssigneeName)
	assert.True(t, updated.IsFinished)

	// Unknown assignee on update is rejected and nothing changes.
	ghost := "ghost"
	_, err = UpdateTask(gdb, alice, "ops", task.ID, TaskUpdate{Assignee: &ghost})
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))

	var got models.Task
	require.NoError(t, gdb.First(&got, task.ID).Error)
	assert.Equal(t, "bob", got.AssigneeName)
}

func TestDeleteTaskScopedToWorkspace(t *testing.T) {
	gdb := newTestDB(t)

	alice := createUser(t, gdb, "alice")
	bob := createUser(t, gdb, "bob")
	createWorkspace(t, gdb, alice, "ops")
	createWorkspace(t, gdb, bob, "ops")

	task := createTask(t, gdb, alice, "ops", "deploy", "alice")

	// Bob's same-named workspace does not contain alice's task.
	err := DeleteTask(gdb, bob, "ops", task.ID)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))

	require.NoError(t, DeleteTask(gdb, alice, "ops", task.ID))

	_, err = UpdateTask(gdb, alice, "ops", task.ID, TaskUpdate{})
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}
