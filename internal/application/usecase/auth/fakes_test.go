package auth

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/member-portal/backend/internal/application/adapter"
	"github.com/member-portal/backend/internal/domain/entity"
	domainerror "github.com/member-portal/backend/internal/domain/error"
)

type fakeUserRepo struct {
	mu        sync.Mutex
	users     map[string]*entity.User
	createErr error
	findErr   error
	updates   int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	if _, ok := r.users[user.Username]; ok {
		return domainerror.ErrUsernameAlreadyExists
	}
	stored := *user
	r.users[user.Username] = &stored
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == id {
			found := *u
			return &found, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.users[username]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	found := *u
	return &found, nil
}

func (r *fakeUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.users[username]
	return ok, nil
}

func (r *fakeUserRepo) UpdatePasswordHash(_ context.Context, id uuid.UUID, hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == id {
			u.PasswordHash = hash
			r.updates++
			return nil
		}
	}
	return domainerror.ErrUserNotFound
}

func (r *fakeUserRepo) Count(context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.users)), nil
}

// fakeCredentials produces "v<cost>:<password>" digests.
type fakeCredentials struct {
	cost      string
	hashCalls int
	verified  []string
}

func (c *fakeCredentials) Hash(_ context.Context, plaintext string) (string, error) {
	c.hashCalls++
	if strings.TrimSpace(plaintext) == "" {
		return "", domainerror.ErrInvalidPassword
	}
	return c.cost + ":" + plaintext, nil
}

func (c *fakeCredentials) Verify(_ context.Context, plaintext, digest string) bool {
	c.verified = append(c.verified, digest)
	_, rest, ok := strings.Cut(digest, ":")
	return ok && plaintext != "" && rest == plaintext
}

func (c *fakeCredentials) NeedsRehash(digest string) bool {
	return !strings.HasPrefix(digest, c.cost+":")
}

type fakePolicy struct{}

func (fakePolicy) IsStrong(p string) bool       { return len(p) >= 6 && strings.ContainsAny(p, "0123456789") }
func (fakePolicy) RequirementsMessage() string { return "needs six characters and a digit" }

type fakeSessions struct {
	created   []*entity.Session
	destroyed []string
	createErr error
}

func (s *fakeSessions) Create(_ context.Context, identity entity.Identity) (*entity.Session, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	session := &entity.Session{ID: uuid.NewString(), UserID: identity.UserID, Username: identity.Username, CSRFToken: "csrf"}
	s.created = append(s.created, session)
	return session, nil
}

func (s *fakeSessions) Validate(context.Context, string) (*entity.Session, error) {
	return nil, errors.New("not used")
}

func (s *fakeSessions) Destroy(_ context.Context, id string) error {
	s.destroyed = append(s.destroyed, id)
	return nil
}

type fakeEmailService struct {
	queued []adapter.QueueWelcomeInput
	err    error
}

func (e *fakeEmailService) QueueWelcomeEmail(_ context.Context, input adapter.QueueWelcomeInput) error {
	e.queued = append(e.queued, input)
	return e.err
}
