package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/gatehouse/gatehouse/internal/core/domain"
	"github.com/gatehouse/gatehouse/internal/core/ports"
)

// bcryptCost matches the work factor the legacy system used; each increment
// roughly doubles hashing cost.
const bcryptCost = 10

// AuthService implements registration, login and logout.
type AuthService struct {
	users      ports.UserRepository
	sessions   ports.SessionStore
	sessionTTL time.Duration
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionStore, sessionTTL time.Duration) *AuthService {
	if sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
	}
	return &AuthService{users: users, sessions: sessions, sessionTTL: sessionTTL}
}

// Register creates a user with the default role. The returned error for
// missing fields is deliberately not translated into a client error anywhere;
// the legacy flow had no such guard and the gap is preserved.
func (s *AuthService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	return s.RegisterWithRole(ctx, username, password, domain.RoleUser)
}

// RegisterWithRole creates a user with an explicit role. Used by operator
// seeding; the public registration path always passes RoleUser.
//
// No duplicate-username check is performed: two registrations with the same
// name both succeed, concurrently or not.
func (s *AuthService) RegisterWithRole(ctx context.Context, username, password, role string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrMissingCredentials
	}
	if role == "" {
		role = domain.RoleUser
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return s.users.Create(ctx, user)
}

// Login verifies the credentials and, on success, issues a session carrying
// the user's id and a copy of their role at login time. An unknown username
// and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.Session, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	session := &domain.Session{
		Token:     domain.NewSessionToken(),
		UserID:    user.ID,
		UserRole:  user.Role,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Logout destroys the server-side session. The error is returned to the
// caller so the transport layer can apply its failure policy.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}
