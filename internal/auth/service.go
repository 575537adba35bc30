package auth

import (
	"errors"
	"time"

	"bloggable-backend/internal/database"
	"bloggable-backend/internal/models"
)

// ErrInvalidCredentials is returned for every login failure, whether the
// username is unknown or the password is wrong. Callers must not be able to
// tell which part failed.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Service handles registration, authentication and session identity.
type Service struct {
	users      *database.UserRepo
	sessions   *database.SessionRepo
	sessionTTL time.Duration
}

// NewService creates a new auth service
func NewService(users *database.UserRepo, sessions *database.SessionRepo, sessionTTL time.Duration) *Service {
	return &Service{
		users:      users,
		sessions:   sessions,
		sessionTTL: sessionTTL,
	}
}

// Register hashes the password and creates the account. A username
// collision surfaces as database.ErrUserExists; the plaintext password is
// never stored.
func (s *Service) Register(username, password string) (*models.User, error) {
	passwordHash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     username,
		PasswordHash: passwordHash,
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies credentials and creates a session, returning the plain
// session token for the cookie. Lookup misses and password mismatches are
// collapsed into ErrInvalidCredentials.
func (s *Service) Login(username, password string) (string, *models.Session, error) {
	user, err := s.users.GetByUsername(username)
	if err != nil {
		if errors.Is(err, database.ErrUserNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !VerifyPassword(password, user.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}

	return s.sessions.Create(user.ID, s.sessionTTL)
}

// Logout invalidates a session
func (s *Service) Logout(token string) error {
	return s.sessions.DeleteByToken(token)
}

// CurrentUser resolves a session token to its user. Missing, expired or
// orphaned sessions all resolve to an error; the request is then anonymous.
func (s *Service) CurrentUser(token string) (*models.User, *models.Session, error) {
	session, err := s.sessions.GetByToken(token)
	if err != nil {
		return nil, nil, err
	}

	user, err := s.users.GetByID(session.UserID)
	if err != nil {
		return nil, nil, err
	}

	return user, session, nil
}
