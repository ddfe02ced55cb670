package repo

import (
	"context"

	"github.com/Nayan-navghane/School-application/app/access"
	"github.com/Nayan-navghane/School-application/app/apperr"
	"github.com/Nayan-navghane/School-application/app/models"
	"github.com/Nayan-navghane/School-application/app/store"
)

// AttendanceRepo adds the merge rule on top of the plain repository:
// attendance is keyed by (entity id, date), and re-marking an existing
// pair updates the status in place rather than duplicating.
type AttendanceRepo struct {
	*Repository
}

func NewAttendance(base *Repository) *AttendanceRepo {
	return &AttendanceRepo{Repository: base}
}

// Mark records attendance for one student or teacher on a date. Class is
// only kept for student records.
func (a *AttendanceRepo) Mark(ctx context.Context, role models.Role, entityID string, status models.AttendanceStatus, kind models.AttendanceKind, class, date string) error {
	if err := a.guard(role); err != nil {
		return err
	}
	if !status.Valid() {
		return apperr.Policy("attendance status must be present or absent")
	}
	if !kind.Valid() {
		return apperr.Policy("attendance kind must be student or teacher")
	}

	existing, err := a.store.List(ctx, a.collection,
		store.Eq("entity_id", entityID), store.Eq("date", date))
	if err != nil {
		return err
	}

	if len(existing) > 0 {
		if err := a.store.Set(ctx, a.collection, existing[0].ID, map[string]any{
			"status": string(status),
		}); err != nil {
			return err
		}
		a.bump()
		return nil
	}

	fields := map[string]any{
		"entity_id": entityID,
		"date":      date,
		"status":    string(status),
		"kind":      string(kind),
		"class":     nil,
	}
	if kind == models.StudentAttendance {
		fields["class"] = class
	}
	if _, err := a.store.Add(ctx, a.collection, fields); err != nil {
		return err
	}
	a.bump()
	return nil
}

// ListForDate returns the records visible to the role on a date. Full
// scope sees everything; own scope is narrowed to the caller's linked
// person id (an account with no link sees nothing, not an error).
func (a *AttendanceRepo) ListForDate(ctx context.Context, role models.Role, personID, date string) ([]store.Record, error) {
	filters := []store.Filter{store.Eq("date", date)}

	switch access.ViewScope(access.SectionAttendance, role) {
	case access.ScopeFull:
	case access.ScopeOwn:
		if personID == "" {
			return nil, nil
		}
		filters = append(filters, store.Eq("entity_id", personID))
	default:
		return nil, apperr.Policy(string(role) + " may not view attendance")
	}

	return a.store.List(ctx, a.collection, filters...)
}
