// Package store is the document store capability: named collections of
// schemaless records, filtered by simple field equality. Implementations
// are the sole arbiter of consistency for concurrent writers; last write
// wins and nothing here detects or resolves conflicts.
package store

import "context"

// Record is one document: an opaque identifier assigned on creation plus
// a mapping of field name to value (strings, numbers, booleans, dates as
// strings). Relations are free-text references matched by equality at
// query time; there is no referential integrity.
type Record struct {
	ID     string         `json:"id"`
	Fields map[string]any `json:"fields"`
}

// Field returns a field as a string, or "" when absent.
func (r Record) Field(name string) string {
	v, ok := r.Fields[name]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return stringify(v)
}

// Filter is a field equality predicate.
type Filter struct {
	Field string
	Value any
}

// Eq builds an equality filter.
func Eq(field string, value any) Filter {
	return Filter{Field: field, Value: value}
}

type Store interface {
	// List returns all records of a collection matching every filter.
	List(ctx context.Context, collection string, filters ...Filter) ([]Record, error)
	// Get returns a single record or NotFoundError.
	Get(ctx context.Context, collection, id string) (Record, error)
	// Add persists fields as a new record and returns the assigned id.
	Add(ctx context.Context, collection string, fields map[string]any) (string, error)
	// Set merges fields into an existing record; NotFoundError if absent.
	// It never creates a record.
	Set(ctx context.Context, collection, id string, fields map[string]any) error
	// Delete removes a record; NotFoundError if absent.
	Delete(ctx context.Context, collection, id string) error
}

// Collection names used across the app. These are conventions against the
// store, not schemas.
const (
	Identities    = "identities"
	Users         = "users"
	Students      = "students"
	Teachers      = "teachers"
	Staff         = "staff"
	FeeStructures = "feeStructures"
	Payments      = "payments"
	Exams         = "exams"
	Marks         = "marks"
	Salaries      = "salaries"
	Attendance    = "attendance"
	Settings      = "settings"
)
