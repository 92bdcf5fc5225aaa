package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/gatehouse/gatehouse/internal/core/domain"
)

type stubUserRepo struct {
	users []*domain.User
	next  int

	createErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	copy := cloneUser(user)
	r.next++
	copy.ID = "user_" + strconv.Itoa(r.next)
	r.users = append(r.users, cloneUser(copy))
	return copy, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	// First match, like the real store against duplicate usernames.
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

type stubSessionStore struct {
	sessions map[string]*domain.Session

	saveErr   error
	deleteErr error
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]*domain.Session)}
}

func (s *stubSessionStore) Save(_ context.Context, session *domain.Session) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	clone := *session
	s.sessions[session.Token] = &clone
	return nil
}

func (s *stubSessionStore) Find(_ context.Context, token string) (*domain.Session, error) {
	session, ok := s.sessions[token]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	clone := *session
	return &clone, nil
}

func (s *stubSessionStore) Delete(_ context.Context, token string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	delete(s.sessions, token)
	return nil
}

func newTestService() (*AuthService, *stubUserRepo, *stubSessionStore) {
	repo := newStubUserRepo()
	store := newStubSessionStore()
	return NewAuthService(repo, store, time.Hour), repo, store
}

func TestAuthService_Register_HashesPassword(t *testing.T) {
	svc, _, _ := newTestService()

	user, err := svc.Register(context.Background(), "alice", "secret1")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected role %q, got %q", domain.RoleUser, user.Role)
	}
	if user.PasswordHash == "secret1" {
		t.Fatalf("plaintext password stored")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret1")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_MissingCredentials(t *testing.T) {
	svc, _, _ := newTestService()

	if _, err := svc.Register(context.Background(), "", "pw"); err != domain.ErrMissingCredentials {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "alice", ""); err != domain.ErrMissingCredentials {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
}

func TestAuthService_Register_DuplicateUsernamesBothSucceed(t *testing.T) {
	svc, repo, _ := newTestService()

	first, err := svc.Register(context.Background(), "alice", "pw1")
	if err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	second, err := svc.Register(context.Background(), "alice", "pw2")
	if err != nil {
		t.Fatalf("second register failed: %v", err)
	}
	if first.ID == second.ID {
		t.Fatalf("expected distinct records, both got id %s", first.ID)
	}
	if len(repo.users) != 2 {
		t.Fatalf("expected 2 stored records, got %d", len(repo.users))
	}
}

func TestAuthService_Register_PersistenceFailure(t *testing.T) {
	svc, repo, _ := newTestService()
	repo.createErr = errors.New("store down")

	if _, err := svc.Register(context.Background(), "alice", "pw"); !errors.Is(err, repo.createErr) {
		t.Fatalf("expected persistence error to propagate, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, _, store := newTestService()

	user, err := svc.Register(context.Background(), "alice", "secret1")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	session, err := svc.Login(context.Background(), "alice", "secret1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if session.Token == "" {
		t.Fatalf("expected session token")
	}
	if session.UserID != user.ID {
		t.Fatalf("session user id %q, want %q", session.UserID, user.ID)
	}
	if session.UserRole != domain.RoleUser {
		t.Fatalf("session role %q, want %q", session.UserRole, domain.RoleUser)
	}
	if _, err := store.Find(context.Background(), session.Token); err != nil {
		t.Fatalf("session not persisted: %v", err)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, _, store := newTestService()

	_, _ = svc.Register(context.Background(), "alice", "goodpass")
	if _, err := svc.Login(context.Background(), "alice", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if len(store.sessions) != 0 {
		t.Fatalf("failed login must not create a session")
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc, _, _ := newTestService()

	// Unknown user and wrong password are indistinguishable.
	if _, err := svc.Login(context.Background(), "ghost", "pw"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_RoleFixedAtLoginTime(t *testing.T) {
	svc, repo, _ := newTestService()

	user, err := svc.RegisterWithRole(context.Background(), "bob", "pw", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	session, err := svc.Login(context.Background(), "bob", "pw")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if session.UserRole != domain.RoleAdmin {
		t.Fatalf("expected admin role in session, got %q", session.UserRole)
	}

	// Demote after login: the issued session keeps the stale role.
	for _, u := range repo.users {
		if u.ID == user.ID {
			u.Role = domain.RoleUser
		}
	}
	if session.UserRole != domain.RoleAdmin {
		t.Fatalf("session role must not track the user record")
	}
}

func TestAuthService_Login_SessionStoreFailure(t *testing.T) {
	svc, _, store := newTestService()
	store.saveErr = errors.New("session store down")

	_, _ = svc.Register(context.Background(), "alice", "pw")
	if _, err := svc.Login(context.Background(), "alice", "pw"); !errors.Is(err, store.saveErr) {
		t.Fatalf("expected session store error to propagate, got %v", err)
	}
}

func TestAuthService_Logout(t *testing.T) {
	svc, _, store := newTestService()

	_, _ = svc.Register(context.Background(), "alice", "pw")
	session, err := svc.Login(context.Background(), "alice", "pw")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if err := svc.Logout(context.Background(), session.Token); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if _, err := store.Find(context.Background(), session.Token); err != domain.ErrSessionNotFound {
		t.Fatalf("expected session destroyed, got %v", err)
	}
}

func TestAuthService_Logout_StoreFailure(t *testing.T) {
	svc, _, store := newTestService()
	store.deleteErr = errors.New("session store down")

	if err := svc.Logout(context.Background(), "tok"); !errors.Is(err, store.deleteErr) {
		t.Fatalf("expected delete error to propagate, got %v", err)
	}
}
