package auth

import (
	"context"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
)

// memStore is an in-memory UserStore with the same nil-on-miss contract
// as the Postgres repository.
type memStore struct {
	mu       sync.Mutex
	users    map[string]*User
	profiles map[string]*Profile
}

func newMemStore() *memStore {
	return &memStore{
		users:    make(map[string]*User),
		profiles: make(map[string]*Profile),
	}
}

func (s *memStore) Create(_ context.Context, email, passwordHash string, role Role) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	user := &User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.users[user.ID] = user
	clone := *user
	return &clone, nil
}

func (s *memStore) FindByEmail(_ context.Context, email string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, nil
}

func (s *memStore) FindByID(_ context.Context, id string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	clone := *user
	return &clone, nil
}

func (s *memStore) MarkEmailVerified(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user, ok := s.users[id]; ok {
		now := time.Now()
		user.IsEmailVerified = true
		user.EmailVerifiedAt = &now
		user.UpdatedAt = now
	}
	return nil
}

func (s *memStore) UpdatePassword(_ context.Context, id, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user, ok := s.users[id]; ok {
		user.PasswordHash = passwordHash
		user.UpdatedAt = time.Now()
	}
	return nil
}

func (s *memStore) FindProfile(_ context.Context, userID string) (*Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile, ok := s.profiles[userID]
	if !ok {
		return nil, nil
	}
	clone := *profile
	return &clone, nil
}

// mailRecorder captures dispatched links instead of sending anything.
type mailRecorder struct {
	mu                sync.Mutex
	verificationLinks []string
	resetLinks        []string
}

func (m *mailRecorder) SendVerificationLink(_ context.Context, _, link string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.verificationLinks = append(m.verificationLinks, link)
	return nil
}

func (m *mailRecorder) SendPasswordResetLink(_ context.Context, _, link string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resetLinks = append(m.resetLinks, link)
	return nil
}

func (m *mailRecorder) lastVerificationLink(t *testing.T) string {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.verificationLinks) == 0 {
		t.Fatal("no verification mail dispatched")
	}
	return m.verificationLinks[len(m.verificationLinks)-1]
}

func (m *mailRecorder) lastResetLink(t *testing.T) string {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.resetLinks) == 0 {
		t.Fatal("no reset mail dispatched")
	}
	return m.resetLinks[len(m.resetLinks)-1]
}

func tokenFromLink(t *testing.T, link string) string {
	t.Helper()
	parsed, err := url.Parse(link)
	if err != nil {
		t.Fatalf("parse link %q: %v", link, err)
	}
	token := parsed.Query().Get("token")
	if token == "" {
		t.Fatalf("link %q carries no token", link)
	}
	return token
}

// testEnv wires the flows over the in-memory collaborators.
type testEnv struct {
	store       *memStore
	mail        *mailRecorder
	codec       *Codec
	sessions    *SessionIssuer
	credentials *CredentialManager
	verify      *VerificationFlow
	reset       *PasswordResetFlow
}

func newTestEnv() *testEnv {
	store := newMemStore()
	mail := &mailRecorder{}
	codec := NewCodec("session-secret", "email-secret", "reset-secret")
	sessions := NewSessionIssuer(codec)
	hasher := &BcryptHasher{Cost: 4}
	links := Links{APIBaseURL: "http://localhost:8080", FrontendURL: "http://localhost:3000"}

	return &testEnv{
		store:       store,
		mail:        mail,
		codec:       codec,
		sessions:    sessions,
		credentials: NewCredentialManager(store, hasher, codec, sessions, mail, links),
		verify:      NewVerificationFlow(store, codec, mail, links),
		reset:       NewPasswordResetFlow(store, hasher, codec, mail, links),
	}
}
