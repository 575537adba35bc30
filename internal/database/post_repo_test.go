package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostRepoCreate(t *testing.T) {
	repo := NewPostRepo(newTestDB(t))

	post, err := repo.Create("alice", "Hello", "<p>first</p>")
	require.NoError(t, err)

	assert.Equal(t, int64(1), post.ID)
	assert.Equal(t, "alice", post.Author)
	assert.WithinDuration(t, time.Now().UTC(), post.DatePosted, 5*time.Second)
	assert.Nil(t, post.DateEdited)

	got, err := repo.GetByID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hello", got.Title)
	assert.Equal(t, "<p>first</p>", got.Content)
	assert.Nil(t, got.DateEdited)
}

func TestPostRepoUpdateStampsDateEdited(t *testing.T) {
	repo := NewPostRepo(newTestDB(t))

	post, err := repo.Create("alice", "Hello", "<p>first</p>")
	require.NoError(t, err)
	posted := post.DatePosted

	require.NoError(t, repo.Update(post, "Hello again", "<p>second</p>"))

	got, err := repo.GetByID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hello again", got.Title)
	assert.Equal(t, "<p>second</p>", got.Content)
	require.NotNil(t, got.DateEdited)
	assert.True(t, got.DatePosted.Equal(posted), "date_posted must not change on edit")
}

func TestPostRepoUpdateMissing(t *testing.T) {
	repo := NewPostRepo(newTestDB(t))

	post, err := repo.Create("alice", "Hello", "<p>first</p>")
	require.NoError(t, err)

	require.NoError(t, repo.Delete(post.ID))
	assert.ErrorIs(t, repo.Update(post, "x", "y"), ErrPostNotFound)
}

func TestPostRepoDelete(t *testing.T) {
	repo := NewPostRepo(newTestDB(t))

	post, err := repo.Create("alice", "Hello", "<p>first</p>")
	require.NoError(t, err)

	require.NoError(t, repo.Delete(post.ID))

	_, err = repo.GetByID(post.ID)
	assert.ErrorIs(t, err, ErrPostNotFound)

	assert.ErrorIs(t, repo.Delete(post.ID), ErrPostNotFound)
}

func TestPostRepoListByAuthor(t *testing.T) {
	repo := NewPostRepo(newTestDB(t))

	_, err := repo.Create("alice", "A1", "<p>a</p>")
	require.NoError(t, err)
	_, err = repo.Create("bob", "B1", "<p>b</p>")
	require.NoError(t, err)
	_, err = repo.Create("alice", "A2", "<p>a</p>")
	require.NoError(t, err)

	all, err := repo.List()
	require.NoError(t, err)
	assert.Len(t, all, 3)

	mine, err := repo.ListByAuthor("alice")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "A1", mine[0].Title)
	assert.Equal(t, "A2", mine[1].Title)

	none, err := repo.ListByAuthor("carol")
	require.NoError(t, err)
	assert.Empty(t, none)
}
