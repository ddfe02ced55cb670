// Package repo wraps one store collection per entity type with
// list/create/update/delete plus the client-side filtering the screens
// apply after a bulk fetch.
package repo

import (
	"context"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/Nayan-navghane/School-application/app/access"
	"github.com/Nayan-navghane/School-application/app/apperr"
	"github.com/Nayan-navghane/School-application/app/models"
	"github.com/Nayan-navghane/School-application/app/store"
)

// Repository is a keyed collection fetched in bulk and filtered
// client-side. Every mutation re-checks the caller's role against the
// section's allow-list, then bumps a change version so clients can poll
// for staleness instead of guessing.
type Repository struct {
	store      store.Store
	collection string
	section    access.Section
	version    atomic.Int64
	logger     *zap.Logger
}

func New(st store.Store, collection string, section access.Section, logger *zap.Logger) *Repository {
	return &Repository{store: st, collection: collection, section: section, logger: logger}
}

func (r *Repository) Collection() string      { return r.collection }
func (r *Repository) Section() access.Section { return r.section }

// Version is the change token; it increases on every successful mutation.
func (r *Repository) Version() int64 { return r.version.Load() }

func (r *Repository) bump() { r.version.Add(1) }

// List returns all records, optionally narrowed by explicit server-side
// equality filters (e.g. attendance by date). Everything else is
// filtered client-side after the fetch.
func (r *Repository) List(ctx context.Context, filters ...store.Filter) ([]store.Record, error) {
	recs, err := r.store.List(ctx, r.collection, filters...)
	if err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *Repository) Get(ctx context.Context, id string) (store.Record, error) {
	return r.store.Get(ctx, r.collection, id)
}

// Create persists fields as a new record and returns the assigned id.
func (r *Repository) Create(ctx context.Context, role models.Role, fields map[string]any) (string, error) {
	if err := r.guard(role); err != nil {
		return "", err
	}
	id, err := r.store.Add(ctx, r.collection, fields)
	if err != nil {
		return "", err
	}
	r.bump()
	r.logger.Info("record created",
		zap.String("collection", r.collection), zap.String("document_id", id))
	return id, nil
}

// Update merges fields into an existing record. A missing id fails with
// NotFoundError and never creates a record.
func (r *Repository) Update(ctx context.Context, role models.Role, id string, fields map[string]any) error {
	if err := r.guard(role); err != nil {
		return err
	}
	if err := r.store.Set(ctx, r.collection, id, fields); err != nil {
		return err
	}
	r.bump()
	return nil
}

// Delete removes a record. A second delete of the same id reports
// success: the store's not-found is treated as already deleted.
func (r *Repository) Delete(ctx context.Context, role models.Role, id string) error {
	if err := r.guard(role); err != nil {
		return err
	}
	if err := r.store.Delete(ctx, r.collection, id); err != nil {
		if apperr.IsNotFound(err) {
			return nil
		}
		return err
	}
	r.bump()
	return nil
}

func (r *Repository) guard(role models.Role) error {
	if !access.CanMutate(r.section, role) {
		return apperr.Policy(string(role) + " may not modify " + string(r.section))
	}
	return nil
}

// MatchesSearch reports whether any of the named fields contains the
// query, case-insensitively. An empty query matches everything.
func MatchesSearch(rec store.Record, query string, fields ...string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(rec.Field(f)), q) {
			return true
		}
	}
	return false
}

// FilterSearch keeps records matching the query on the named fields.
func FilterSearch(recs []store.Record, query string, fields ...string) []store.Record {
	if query == "" {
		return recs
	}
	var out []store.Record
	for _, rec := range recs {
		if MatchesSearch(rec, query, fields...) {
			out = append(out, rec)
		}
	}
	return out
}

// FilterClass keeps records of the given class; "All" or "" is a
// wildcard.
func FilterClass(recs []store.Record, class string) []store.Record {
	if class == "" || class == "All" {
		return recs
	}
	var out []store.Record
	for _, rec := range recs {
		if rec.Field("class") == class {
			out = append(out, rec)
		}
	}
	return out
}
