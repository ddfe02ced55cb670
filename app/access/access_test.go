package access

import (
	"testing"

	"github.com/Nayan-navghane/School-application/app/models"
)

func TestViewAllowLists(t *testing.T) {
	tests := []struct {
		section Section
		role    models.Role
		want    Scope
	}{
		{SectionStudents, models.RoleAdmin, ScopeFull},
		{SectionStudents, models.RoleTeacher, ScopeFull},
		{SectionStudents, models.RoleStudent, ScopeNone},
		{SectionStudents, models.RoleParent, ScopeNone},
		{SectionTeachers, models.RoleAdmin, ScopeFull},
		{SectionTeachers, models.RoleTeacher, ScopeNone},
		{SectionStaff, models.RoleAdmin, ScopeFull},
		{SectionStaff, models.RoleTeacher, ScopeNone},
		{SectionFees, models.RoleTeacher, ScopeFull},
		{SectionFees, models.RoleStudent, ScopeNone},
		{SectionExams, models.RoleTeacher, ScopeFull},
		{SectionExams, models.RoleParent, ScopeNone},
		{SectionAttendance, models.RoleAdmin, ScopeFull},
		{SectionAttendance, models.RoleStudent, ScopeOwn},
		{SectionAttendance, models.RoleParent, ScopeOwn},
		{SectionSettings, models.RoleStudent, ScopeFull},
		{SectionSettings, models.RoleParent, ScopeFull},
	}
	for _, tt := range tests {
		t.Run(string(tt.section)+"/"+string(tt.role), func(t *testing.T) {
			if got := ViewScope(tt.section, tt.role); got != tt.want {
				t.Errorf("ViewScope(%s, %s) = %v, want %v", tt.section, tt.role, got, tt.want)
			}
		})
	}
}

func TestMutateAllowLists(t *testing.T) {
	tests := []struct {
		section Section
		role    models.Role
		want    bool
	}{
		{SectionStudents, models.RoleAdmin, true},
		{SectionStudents, models.RoleTeacher, true},
		{SectionStudents, models.RoleStudent, false},
		{SectionTeachers, models.RoleTeacher, false},
		{SectionStaff, models.RoleAdmin, true},
		{SectionFees, models.RoleTeacher, true},
		{SectionFees, models.RoleParent, false},
		{SectionExams, models.RoleAdmin, true},
		{SectionAttendance, models.RoleTeacher, true},
		{SectionAttendance, models.RoleStudent, false},
		{SectionAttendance, models.RoleParent, false},
		{SectionSettings, models.RoleAdmin, true},
		{SectionSettings, models.RoleTeacher, false},
		{SectionSettings, models.RoleStudent, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.section)+"/"+string(tt.role), func(t *testing.T) {
			if got := CanMutate(tt.section, tt.role); got != tt.want {
				t.Errorf("CanMutate(%s, %s) = %v, want %v", tt.section, tt.role, got, tt.want)
			}
		})
	}
}

func TestSectionsForRole(t *testing.T) {
	tests := []struct {
		role models.Role
		want []Section
	}{
		{models.RoleAdmin, []Section{SectionStudents, SectionTeachers, SectionStaff, SectionFees, SectionExams, SectionAttendance, SectionSettings}},
		{models.RoleTeacher, []Section{SectionStudents, SectionFees, SectionExams, SectionAttendance, SectionSettings}},
		{models.RoleStudent, []Section{SectionAttendance, SectionSettings}},
		{models.RoleParent, []Section{SectionAttendance, SectionSettings}},
	}
	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			got := SectionsFor(tt.role)
			if len(got) != len(tt.want) {
				t.Fatalf("SectionsFor(%s) = %v, want %v", tt.role, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("SectionsFor(%s)[%d] = %s, want %s", tt.role, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestUnknownRoleSeesNothing(t *testing.T) {
	if got := SectionsFor(models.Role("intruder")); got != nil {
		t.Errorf("SectionsFor(unknown) = %v, want nil", got)
	}
	if CanMutate(SectionSettings, models.Role("")) {
		t.Error("unauthenticated role must not mutate settings")
	}
}
