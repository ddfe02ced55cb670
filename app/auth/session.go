package auth

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Nayan-navghane/School-application/app/apperr"
	"github.com/Nayan-navghane/School-application/app/models"
	"github.com/Nayan-navghane/School-application/app/store"
)

// Session holds the current authenticated identity and role. It is
// constructed once at process start and updated on identity-change
// notifications; there is no teardown beyond process exit.
type Session struct {
	mu       sync.RWMutex
	identity *models.Identity
	role     models.Role
	ready    bool
}

// Ready reports whether the initial authentication check has completed.
// It transitions false to true exactly once, after the first
// identity-change notification, whether or not an identity was found.
// Dependent views must show a loading state until then.
func (s *Session) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// Current returns the identity and role, or nil when signed out.
func (s *Session) Current() (*models.Identity, models.Role) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity, s.role
}

func (s *Session) set(id *models.Identity, role models.Role) {
	s.mu.Lock()
	s.identity = id
	s.role = role
	s.ready = true
	s.mu.Unlock()
}

// Service wires the identity provider and the users collection into the
// session-state contract: login, signup, logout, role resolution.
type Service struct {
	provider Provider
	store    store.Store
	session  *Session
	logger   *zap.Logger
}

func NewService(provider Provider, st store.Store, logger *zap.Logger) *Service {
	svc := &Service{
		provider: provider,
		store:    st,
		session:  &Session{},
		logger:   logger,
	}
	provider.OnIdentityChange(svc.handleIdentityChange)
	return svc
}

// Start triggers the initial authentication check.
func (s *Service) Start(ctx context.Context) {
	s.provider.Start(ctx)
}

func (s *Service) Session() *Session { return s.session }

func (s *Service) handleIdentityChange(id *models.Identity) {
	if id == nil {
		s.session.set(nil, "")
		return
	}
	acct, err := s.lookupAccount(context.Background(), *id)
	if err != nil {
		s.logger.Warn("role lookup failed, defaulting to student",
			zap.String("user_id", id.UID), zap.Error(err))
		acct = models.Account{UID: id.UID, Email: id.Email, Role: models.RoleStudent}
	}
	s.session.set(id, acct.Role)
}

// Login authenticates and resolves the account's role, defaulting to
// student when no role record exists.
func (s *Service) Login(ctx context.Context, email, secret string) (models.Account, error) {
	id, err := s.provider.SignIn(ctx, email, secret)
	if err != nil {
		return models.Account{}, err
	}
	acct, err := s.lookupAccount(ctx, id)
	if err != nil {
		return models.Account{}, err
	}
	return acct, nil
}

// Signup creates an identity and persists its role record.
func (s *Service) Signup(ctx context.Context, email, secret string, role models.Role) (models.Account, error) {
	if !role.Valid() {
		return models.Account{}, apperr.Auth("unknown role: " + string(role))
	}
	id, err := s.provider.SignUp(ctx, email, secret)
	if err != nil {
		return models.Account{}, err
	}

	now := time.Now().UTC()
	_, err = s.store.Add(ctx, store.Users, map[string]any{
		"uid":        id.UID,
		"email":      email,
		"role":       string(role),
		"created_at": now.Format(time.RFC3339),
	})
	if err != nil {
		return models.Account{}, apperr.Collaborator("persist role record", err)
	}
	return models.Account{UID: id.UID, Email: email, Role: role, CreatedAt: now}, nil
}

// Logout signs out and clears the session.
func (s *Service) Logout(ctx context.Context) error {
	return s.provider.SignOut(ctx)
}

func (s *Service) lookupAccount(ctx context.Context, id models.Identity) (models.Account, error) {
	recs, err := s.store.List(ctx, store.Users, store.Eq("uid", id.UID))
	if err != nil {
		return models.Account{}, apperr.Collaborator("fetch role record", err)
	}

	acct := models.Account{UID: id.UID, Email: id.Email, Role: models.RoleStudent}
	if len(recs) > 0 {
		rec := recs[0]
		if role, ok := models.ParseRole(rec.Field("role")); ok {
			acct.Role = role
		}
		acct.PersonID = rec.Field("person_id")
	}
	return acct, nil
}
