package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bloggable-backend/internal/models"
)

func TestCanModify(t *testing.T) {
	post := &models.Post{ID: 1, Author: "alice", Title: "Hello", Content: "<p>hi</p>"}

	alice := &models.User{ID: 1, Username: "alice"}
	bob := &models.User{ID: 2, Username: "bob"}

	assert.True(t, CanModify(alice, post))
	assert.False(t, CanModify(bob, post))
	assert.False(t, CanModify(nil, post))
}

func TestCanView(t *testing.T) {
	assert.True(t, CanView(&models.Post{Author: "alice"}))
	assert.True(t, CanView(nil))
}
