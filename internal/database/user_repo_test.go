package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bloggable-backend/internal/models"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := Open(Config{Path: filepath.Join(t.TempDir(), "test.db")})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db
}

func TestUserRepoCreateAssignsID(t *testing.T) {
	repo := NewUserRepo(newTestDB(t))

	first := &models.User{Username: "alice", PasswordHash: "digest-a"}
	require.NoError(t, repo.Create(first))
	assert.Equal(t, int64(1), first.ID)

	second := &models.User{Username: "bob", PasswordHash: "digest-b"}
	require.NoError(t, repo.Create(second))
	assert.Equal(t, int64(2), second.ID)
}

func TestUserRepoDuplicateUsername(t *testing.T) {
	repo := NewUserRepo(newTestDB(t))

	require.NoError(t, repo.Create(&models.User{Username: "alice", PasswordHash: "digest-a"}))

	err := repo.Create(&models.User{Username: "alice", PasswordHash: "digest-b"})
	assert.ErrorIs(t, err, ErrUserExists)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestUserRepoLookups(t *testing.T) {
	repo := NewUserRepo(newTestDB(t))

	user := &models.User{Username: "alice", PasswordHash: "digest-a"}
	require.NoError(t, repo.Create(user))

	byName, err := repo.GetByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)
	assert.Equal(t, "digest-a", byName.PasswordHash)

	byID, err := repo.GetByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)

	_, err = repo.GetByUsername("nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = repo.GetByID(999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
