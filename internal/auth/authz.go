package auth

import "bloggable-backend/internal/models"

// CanView reports whether a post may be read. Posts are public.
func CanView(_ *models.Post) bool {
	return true
}

// CanModify reports whether the given identity may edit or delete the post.
// Only the author may, and an anonymous identity never may.
func CanModify(user *models.User, post *models.Post) bool {
	return user != nil && user.Username == post.Author
}
