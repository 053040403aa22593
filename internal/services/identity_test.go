package services

import (
	"testing"

	"github.com/hivedesk-dev/hivedesk/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveUserExactMatch(t *testing.T) {
	gdb := newTestDB(t)

	alice := createUser(t, gdb, "alice")

	got, err := ResolveUser(gdb, "alice")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, got.ID)

	// Case-sensitive exact match only.
	_, err = ResolveUser(gdb, "Alice")
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))

	_, err = ResolveUser(gdb, "ghost")
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestRegisterUserUniqueness(t *testing.T) {
	gdb := newTestDB(t)

	email := "alice@example.com"
	_, err := RegisterUser(gdb, "alice", &email, "x")
	require.NoError(t, err)

	_, err = RegisterUser(gdb, "alice", nil, "x")
	assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))

	_, err = RegisterUser(gdb, "alice2", &email, "x")
	assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))
}

func TestRegisterUserValidation(t *testing.T) {
	gdb := newTestDB(t)

	_, err := RegisterUser(gdb, "al ice", nil, "x")
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))

	_, err = RegisterUser(gdb, "", nil, "x")
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func TestValidateName(t *testing.T) {
	assert.NoError(t, ValidateName("alice", "Username"))
	assert.Error(t, ValidateName("", "Username"))
	assert.Error(t, ValidateName("a b", "Username"))
	assert.Error(t, ValidateName("a\tb", "Username"))
	assert.Error(t, ValidateName("a\nb", "Username"))
}
