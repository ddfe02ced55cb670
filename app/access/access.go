// Package access is the single capability table consulted everywhere a
// role decision is made, both when composing the visible sections and
// again at mutation time.
package access

import "github.com/Nayan-navghane/School-application/app/models"

// Section is a top-level area of the app.
type Section string

const (
	SectionStudents   Section = "students"
	SectionTeachers   Section = "teachers"
	SectionStaff      Section = "staff"
	SectionFees       Section = "fees"
	SectionExams      Section = "exams"
	SectionAttendance Section = "attendance"
	SectionSettings   Section = "settings"
)

// Scope qualifies a view grant.
type Scope int

const (
	ScopeNone Scope = iota // access denied
	ScopeOwn               // only records linked to the caller
	ScopeFull
)

type capability struct {
	view   map[models.Role]Scope
	mutate map[models.Role]bool
}

var (
	adminTeacherView = map[models.Role]Scope{
		models.RoleAdmin:   ScopeFull,
		models.RoleTeacher: ScopeFull,
	}
	adminTeacherMutate = map[models.Role]bool{
		models.RoleAdmin:   true,
		models.RoleTeacher: true,
	}
	adminOnlyView   = map[models.Role]Scope{models.RoleAdmin: ScopeFull}
	adminOnlyMutate = map[models.Role]bool{models.RoleAdmin: true}
)

// sectionOrder is the order sections are presented in.
var sectionOrder = []Section{
	SectionStudents,
	SectionTeachers,
	SectionStaff,
	SectionFees,
	SectionExams,
	SectionAttendance,
	SectionSettings,
}

var table = map[Section]capability{
	SectionStudents: {view: adminTeacherView, mutate: adminTeacherMutate},
	SectionTeachers: {view: adminOnlyView, mutate: adminOnlyMutate},
	SectionStaff:    {view: adminOnlyView, mutate: adminOnlyMutate},
	SectionFees:     {view: adminTeacherView, mutate: adminTeacherMutate},
	SectionExams:    {view: adminTeacherView, mutate: adminTeacherMutate},
	SectionAttendance: {
		view: map[models.Role]Scope{
			models.RoleAdmin:   ScopeFull,
			models.RoleTeacher: ScopeFull,
			models.RoleStudent: ScopeOwn,
			models.RoleParent:  ScopeOwn,
		},
		mutate: adminTeacherMutate,
	},
	SectionSettings: {
		view: map[models.Role]Scope{
			models.RoleAdmin:   ScopeFull,
			models.RoleTeacher: ScopeFull,
			models.RoleStudent: ScopeFull,
			models.RoleParent:  ScopeFull,
		},
		mutate: adminOnlyMutate,
	},
}

// ViewScope returns how much of a section the role may see. ScopeNone
// means an access-denied state, never partial data.
func ViewScope(s Section, role models.Role) Scope {
	return table[s].view[role]
}

// CanView reports whether the role may see the section at all.
func CanView(s Section, role models.Role) bool {
	return ViewScope(s, role) != ScopeNone
}

// CanMutate reports whether the role may add, edit or delete in the
// section. Callers must re-check this at call time, not just at render
// time, to guard against stale UI state.
func CanMutate(s Section, role models.Role) bool {
	return table[s].mutate[role]
}

// SectionsFor returns the ordered list of sections visible to the role.
func SectionsFor(role models.Role) []Section {
	var out []Section
	for _, s := range sectionOrder {
		if CanView(s, role) {
			out = append(out, s)
		}
	}
	return out
}
