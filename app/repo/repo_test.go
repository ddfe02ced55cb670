package repo

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/Nayan-navghane/School-application/app/access"
	"github.com/Nayan-navghane/School-application/app/apperr"
	"github.com/Nayan-navghane/School-application/app/models"
	"github.com/Nayan-navghane/School-application/app/store"
)

func newTestRepo(collection string, section access.Section) *Repository {
	return New(store.NewMemory(), collection, section, zap.NewNop())
}

func TestFeeStructureLifecycle(t *testing.T) {
	r := newTestRepo(store.FeeStructures, access.SectionFees)
	ctx := context.Background()

	id, err := r.Create(ctx, models.RoleAdmin, map[string]any{
		"class":   "Class 1",
		"feeType": "Tuition",
		"amount":  500,
	})
	if err != nil {
		t.Fatalf("admin create: %v", err)
	}

	recs, err := r.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(recs) != 1 || recs[0].ID != id {
		t.Fatalf("list after create = %v, want the created record", recs)
	}
	if recs[0].Field("feeType") != "Tuition" || recs[0].Field("amount") != "500" {
		t.Errorf("unexpected fields: %v", recs[0].Fields)
	}

	// Teacher can delete fee records; student hits the policy wall.
	if err := r.Delete(ctx, models.RoleStudent, id); !apperr.IsPolicy(err) {
		t.Fatalf("student delete: got %v, want PolicyError", err)
	}
	if err := r.Delete(ctx, models.RoleTeacher, id); err != nil {
		t.Fatalf("teacher delete: %v", err)
	}

	recs, err = r.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("record survived delete: %v", recs)
	}
}

func TestCreateDeniedForViewers(t *testing.T) {
	r := newTestRepo(store.Teachers, access.SectionTeachers)
	ctx := context.Background()

	for _, role := range []models.Role{models.RoleTeacher, models.RoleStudent, models.RoleParent} {
		if _, err := r.Create(ctx, role, map[string]any{"name": "X"}); !apperr.IsPolicy(err) {
			t.Errorf("%s create on teachers: got %v, want PolicyError", role, err)
		}
	}
	recs, _ := r.List(ctx)
	if len(recs) != 0 {
		t.Errorf("denied creates still persisted records: %v", recs)
	}
}

func TestUpdateMissingIDNeverCreates(t *testing.T) {
	r := newTestRepo(store.Students, access.SectionStudents)
	ctx := context.Background()

	err := r.Update(ctx, models.RoleAdmin, "missing-id", map[string]any{"name": "Ghost"})
	if !apperr.IsNotFound(err) {
		t.Fatalf("update missing id: got %v, want NotFoundError", err)
	}

	recs, err := r.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("update of a missing id created a record: %v", recs)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	r := newTestRepo(store.Students, access.SectionStudents)
	ctx := context.Background()

	id, err := r.Create(ctx, models.RoleAdmin, map[string]any{"name": "John"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := r.Delete(ctx, models.RoleAdmin, id); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := r.Delete(ctx, models.RoleAdmin, id); err != nil {
		t.Fatalf("second delete: got %v, want success", err)
	}
}

func TestVersionBumpsOnMutation(t *testing.T) {
	r := newTestRepo(store.Students, access.SectionStudents)
	ctx := context.Background()

	if r.Version() != 0 {
		t.Fatalf("fresh repo version = %d, want 0", r.Version())
	}

	id, _ := r.Create(ctx, models.RoleAdmin, map[string]any{"name": "John"})
	if r.Version() != 1 {
		t.Errorf("version after create = %d, want 1", r.Version())
	}

	// A denied mutation must not advance the token.
	_ = r.Delete(ctx, models.RoleStudent, id)
	if r.Version() != 1 {
		t.Errorf("version after denied delete = %d, want 1", r.Version())
	}

	_ = r.Update(ctx, models.RoleAdmin, id, map[string]any{"class": "Class 2"})
	if r.Version() != 2 {
		t.Errorf("version after update = %d, want 2", r.Version())
	}
}

func TestFilterSearch(t *testing.T) {
	recs := []store.Record{
		{ID: "1", Fields: map[string]any{"name": "John"}},
		{ID: "2", Fields: map[string]any{"name": "Joanna"}},
		{ID: "3", Fields: map[string]any{"name": "Amy"}},
	}

	tests := []struct {
		query string
		want  []string
	}{
		{"jo", []string{"John", "Joanna"}},
		{"JO", []string{"John", "Joanna"}},
		{"amy", []string{"Amy"}},
		{"", []string{"John", "Joanna", "Amy"}},
		{"zzz", nil},
	}
	for _, tt := range tests {
		t.Run("query="+tt.query, func(t *testing.T) {
			got := FilterSearch(recs, tt.query, "name")
			if len(got) != len(tt.want) {
				t.Fatalf("got %d records, want %d", len(got), len(tt.want))
			}
			for i, rec := range got {
				if rec.Field("name") != tt.want[i] {
					t.Errorf("result[%d] = %q, want %q", i, rec.Field("name"), tt.want[i])
				}
			}
		})
	}
}

func TestMatchesSearchSpansFields(t *testing.T) {
	rec := store.Record{Fields: map[string]any{"name": "Amy", "rollNo": "J-042"}}
	if !MatchesSearch(rec, "j-0", "name", "rollNo") {
		t.Error("query should match on the second field")
	}
	if MatchesSearch(rec, "jo", "name") {
		t.Error("query must not match when the field list excludes rollNo")
	}
}

func TestFilterClass(t *testing.T) {
	recs := []store.Record{
		{ID: "1", Fields: map[string]any{"name": "John", "class": "Class 1"}},
		{ID: "2", Fields: map[string]any{"name": "Amy", "class": "Class 2"}},
	}

	if got := FilterClass(recs, "Class 1"); len(got) != 1 || got[0].Field("name") != "John" {
		t.Errorf("FilterClass(Class 1) = %v", got)
	}
	if got := FilterClass(recs, "All"); len(got) != 2 {
		t.Errorf("FilterClass(All) dropped records: %v", got)
	}
	if got := FilterClass(recs, ""); len(got) != 2 {
		t.Errorf("FilterClass(empty) dropped records: %v", got)
	}
}
