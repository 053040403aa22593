package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/hivedesk-dev/hivedesk/db"
	"github.com/hivedesk-dev/hivedesk/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testDBCounter int64

// newTestDB opens a named in-memory database so each test gets its own
// isolated store while gorm's connection pool still sees the same data.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:hivedesk_test_%d?mode=memory&cache=shared", atomic.AddInt64(&testDBCounter, 1))

	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.Migrate(gdb))

	return gdb
}

func createUser(t *testing.T, gdb *gorm.DB, name string) models.User {
	t.Helper()

	user, err := RegisterUser(gdb, name, nil, "x")
	require.NoError(t, err)

	return user
}

func createWorkspace(t *testing.T, gdb *gorm.DB, owner models.User, name string) models.Workspace {
	t.Helper()

	ws, err := CreateWorkspace(gdb, owner, name, "", nil)
	require.NoError(t, err)

	return ws
}

func addMember(t *testing.T, gdb *gorm.DB, ws models.Workspace, user models.User) {
	t.Helper()

	require.NoError(t, AddMember(gdb, ws.ID, user.ID))
}

func createTask(t *testing.T, gdb *gorm.DB, actor models.User, workspaceName string, title string, assignee string) models.Task {
	t.Helper()

	task, err := CreateTask(gdb, actor, workspaceName, TaskInput{Title: title, Assignee: assignee})
	require.NoError(t, err)

	return task
}
