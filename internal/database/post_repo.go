package database

import (
	"database/sql"
	"errors"
	"time"

	"bloggable-backend/internal/models"
)

var ErrPostNotFound = errors.New("post not found")

// PostRepo handles post database operations
type PostRepo struct {
	db *DB
}

// NewPostRepo creates a new post repository
func NewPostRepo(db *DB) *PostRepo {
	return &PostRepo{db: db}
}

// Create persists a new post for the given author, stamping date_posted.
func (r *PostRepo) Create(author, title, content string) (*models.Post, error) {
	post := &models.Post{
		Author:     author,
		Title:      title,
		Content:    content,
		DatePosted: time.Now().UTC(),
	}

	result, err := r.db.conn.Exec(`
		INSERT INTO post (author, title, content, date_posted)
		VALUES (?, ?, ?, ?)
	`, post.Author, post.Title, post.Content, post.DatePosted)
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	post.ID = id

	return post, nil
}

// GetByID retrieves a post by ID
func (r *PostRepo) GetByID(id int64) (*models.Post, error) {
	post := &models.Post{}
	var edited sql.NullTime

	err := r.db.conn.QueryRow(`
		SELECT id, author, title, content, date_posted, date_edited
		FROM post WHERE id = ?
	`, id).Scan(&post.ID, &post.Author, &post.Title, &post.Content, &post.DatePosted, &edited)
	if err == sql.ErrNoRows {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}

	if edited.Valid {
		post.DateEdited = &edited.Time
	}

	return post, nil
}

// List retrieves all posts in insertion order
func (r *PostRepo) List() ([]*models.Post, error) {
	return r.query("SELECT id, author, title, content, date_posted, date_edited FROM post ORDER BY id")
}

// ListByAuthor retrieves all posts created by the given username
func (r *PostRepo) ListByAuthor(author string) ([]*models.Post, error) {
	return r.query("SELECT id, author, title, content, date_posted, date_edited FROM post WHERE author = ? ORDER BY id", author)
}

func (r *PostRepo) query(q string, args ...any) ([]*models.Post, error) {
	rows, err := r.db.conn.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*models.Post
	for rows.Next() {
		post := &models.Post{}
		var edited sql.NullTime

		err := rows.Scan(&post.ID, &post.Author, &post.Title, &post.Content, &post.DatePosted, &edited)
		if err != nil {
			return nil, err
		}

		if edited.Valid {
			post.DateEdited = &edited.Time
		}

		posts = append(posts, post)
	}

	return posts, rows.Err()
}

// Update replaces a post's title and content and stamps date_edited.
// date_posted is never touched.
func (r *PostRepo) Update(post *models.Post, title, content string) error {
	edited := time.Now().UTC()

	result, err := r.db.conn.Exec(`
		UPDATE post SET title = ?, content = ?, date_edited = ?
		WHERE id = ?
	`, title, content, edited, post.ID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrPostNotFound
	}

	post.Title = title
	post.Content = content
	post.DateEdited = &edited

	return nil
}

// Delete removes a post permanently
func (r *PostRepo) Delete(id int64) error {
	result, err := r.db.conn.Exec("DELETE FROM post WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrPostNotFound
	}

	return nil
}
