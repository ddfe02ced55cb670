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

func newAttendanceRepo() *AttendanceRepo {
	return NewAttendance(New(store.NewMemory(), store.Attendance, access.SectionAttendance, zap.NewNop()))
}

func TestMarkTwiceMergesIntoOneRecord(t *testing.T) {
	a := newAttendanceRepo()
	ctx := context.Background()

	if err := a.Mark(ctx, models.RoleTeacher, "s1", models.Present, models.StudentAttendance, "Class 1", "2024-03-01"); err != nil {
		t.Fatalf("first mark: %v", err)
	}
	if err := a.Mark(ctx, models.RoleTeacher, "s1", models.Absent, models.StudentAttendance, "Class 1", "2024-03-01"); err != nil {
		t.Fatalf("second mark: %v", err)
	}

	recs, err := a.ListForDate(ctx, models.RoleAdmin, "", "2024-03-01")
	if err != nil {
		t.Fatalf("ListForDate: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("got %d records for (s1, 2024-03-01), want 1", len(recs))
	}
	if got := recs[0].Field("status"); got != string(models.Absent) {
		t.Errorf("status = %q, want the second mark %q", got, models.Absent)
	}
}

func TestMarkSeparateDatesStaySeparate(t *testing.T) {
	a := newAttendanceRepo()
	ctx := context.Background()

	dates := []string{"2024-03-01", "2024-03-02"}
	for _, d := range dates {
		if err := a.Mark(ctx, models.RoleAdmin, "s1", models.Present, models.StudentAttendance, "Class 1", d); err != nil {
			t.Fatalf("mark %s: %v", d, err)
		}
	}
	for _, d := range dates {
		recs, err := a.ListForDate(ctx, models.RoleAdmin, "", d)
		if err != nil {
			t.Fatalf("ListForDate %s: %v", d, err)
		}
		if len(recs) != 1 {
			t.Errorf("date %s: got %d records, want 1", d, len(recs))
		}
	}
}

func TestMarkKeepsClassOnlyForStudents(t *testing.T) {
	a := newAttendanceRepo()
	ctx := context.Background()

	if err := a.Mark(ctx, models.RoleAdmin, "t1", models.Present, models.TeacherAttendance, "Class 1", "2024-03-01"); err != nil {
		t.Fatalf("mark: %v", err)
	}

	recs, err := a.ListForDate(ctx, models.RoleAdmin, "", "2024-03-01")
	if err != nil {
		t.Fatalf("ListForDate: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("got %d records, want 1", len(recs))
	}
	if got := recs[0].Field("class"); got != "" {
		t.Errorf("teacher record carried class %q, want none", got)
	}
}

func TestMarkRejectsBadInput(t *testing.T) {
	a := newAttendanceRepo()
	ctx := context.Background()

	if err := a.Mark(ctx, models.RoleAdmin, "s1", "late", models.StudentAttendance, "Class 1", "2024-03-01"); !apperr.IsPolicy(err) {
		t.Errorf("bad status: got %v, want PolicyError", err)
	}
	if err := a.Mark(ctx, models.RoleAdmin, "s1", models.Present, "visitor", "Class 1", "2024-03-01"); !apperr.IsPolicy(err) {
		t.Errorf("bad kind: got %v, want PolicyError", err)
	}
	if err := a.Mark(ctx, models.RoleStudent, "s1", models.Present, models.StudentAttendance, "Class 1", "2024-03-01"); !apperr.IsPolicy(err) {
		t.Errorf("student mark: got %v, want PolicyError", err)
	}
}

func TestListForDateScopes(t *testing.T) {
	a := newAttendanceRepo()
	ctx := context.Background()

	_ = a.Mark(ctx, models.RoleAdmin, "s1", models.Present, models.StudentAttendance, "Class 1", "2024-03-01")
	_ = a.Mark(ctx, models.RoleAdmin, "s2", models.Absent, models.StudentAttendance, "Class 1", "2024-03-01")

	t.Run("full scope sees everything", func(t *testing.T) {
		recs, err := a.ListForDate(ctx, models.RoleTeacher, "", "2024-03-01")
		if err != nil {
			t.Fatalf("ListForDate: %v", err)
		}
		if len(recs) != 2 {
			t.Errorf("got %d records, want 2", len(recs))
		}
	})

	t.Run("own scope narrows to the linked person", func(t *testing.T) {
		recs, err := a.ListForDate(ctx, models.RoleStudent, "s1", "2024-03-01")
		if err != nil {
			t.Fatalf("ListForDate: %v", err)
		}
		if len(recs) != 1 || recs[0].Field("entity_id") != "s1" {
			t.Errorf("got %v, want only s1's record", recs)
		}
	})

	t.Run("own scope without a linked person sees nothing", func(t *testing.T) {
		recs, err := a.ListForDate(ctx, models.RoleParent, "", "2024-03-01")
		if err != nil {
			t.Fatalf("ListForDate: %v", err)
		}
		if len(recs) != 0 {
			t.Errorf("got %v, want empty", recs)
		}
	})

	t.Run("unknown role is denied", func(t *testing.T) {
		if _, err := a.ListForDate(ctx, models.Role("intruder"), "", "2024-03-01"); !apperr.IsPolicy(err) {
			t.Errorf("got %v, want PolicyError", err)
		}
	})
}
