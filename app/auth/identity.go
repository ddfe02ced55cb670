package auth

import (
	"context"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Nayan-navghane/School-application/app/apperr"
	"github.com/Nayan-navghane/School-application/app/models"
	"github.com/Nayan-navghane/School-application/app/store"
)

// Provider is the identity provider capability. OnIdentityChange
// callbacks receive the current identity, or nil, whenever the
// authentication state transitions; Start delivers the initial state.
type Provider interface {
	SignIn(ctx context.Context, email, secret string) (models.Identity, error)
	SignUp(ctx context.Context, email, secret string) (models.Identity, error)
	SignOut(ctx context.Context) error
	OnIdentityChange(fn func(*models.Identity))
	Start(ctx context.Context)
}

// StoreProvider keeps credentials in the identities collection.
type StoreProvider struct {
	store store.Store

	mu       sync.Mutex
	current  *models.Identity
	watchers []func(*models.Identity)
}

var _ Provider = (*StoreProvider)(nil)

func NewStoreProvider(st store.Store) *StoreProvider {
	return &StoreProvider{store: st}
}

func (p *StoreProvider) SignIn(ctx context.Context, email, secret string) (models.Identity, error) {
	recs, err := p.store.List(ctx, store.Identities, store.Eq("email", email))
	if err != nil {
		return models.Identity{}, apperr.Collaborator("sign in", err)
	}
	if len(recs) == 0 {
		return models.Identity{}, apperr.Auth("invalid credentials")
	}
	rec := recs[0]
	if bcrypt.CompareHashAndPassword([]byte(rec.Field("password_hash")), []byte(secret)) != nil {
		return models.Identity{}, apperr.Auth("invalid credentials")
	}

	id := models.Identity{UID: rec.ID, Email: email}
	p.notify(&id)
	return id, nil
}

func (p *StoreProvider) SignUp(ctx context.Context, email, secret string) (models.Identity, error) {
	existing, err := p.store.List(ctx, store.Identities, store.Eq("email", email))
	if err != nil {
		return models.Identity{}, apperr.Collaborator("sign up", err)
	}
	if len(existing) > 0 {
		return models.Identity{}, apperr.Auth("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), 14)
	if err != nil {
		return models.Identity{}, apperr.Collaborator("sign up", err)
	}
	uid, err := p.store.Add(ctx, store.Identities, map[string]any{
		"email":         email,
		"password_hash": string(hash),
		"created_at":    time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return models.Identity{}, apperr.Collaborator("sign up", err)
	}

	id := models.Identity{UID: uid, Email: email}
	p.notify(&id)
	return id, nil
}

func (p *StoreProvider) SignOut(context.Context) error {
	p.notify(nil)
	return nil
}

func (p *StoreProvider) OnIdentityChange(fn func(*models.Identity)) {
	p.mu.Lock()
	p.watchers = append(p.watchers, fn)
	p.mu.Unlock()
}

// Start delivers the initial authentication state. The server holds no
// persisted session of its own, so the initial state is signed-out.
func (p *StoreProvider) Start(context.Context) {
	p.mu.Lock()
	current := p.current
	p.mu.Unlock()
	p.notify(current)
}

func (p *StoreProvider) notify(id *models.Identity) {
	p.mu.Lock()
	p.current = id
	watchers := make([]func(*models.Identity), len(p.watchers))
	copy(watchers, p.watchers)
	p.mu.Unlock()

	for _, fn := range watchers {
		fn(id)
	}
}
