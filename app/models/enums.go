package models

// Role is the closed set of account roles. It determines which sections
// are visible and which mutations are permitted.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
	RoleParent  Role = "parent"
)

// Roles lists all valid roles.
var Roles = []Role{RoleAdmin, RoleTeacher, RoleStudent, RoleParent}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleTeacher, RoleStudent, RoleParent:
		return true
	}
	return false
}

// ParseRole returns the role for name, or false if it is not in the set.
func ParseRole(name string) (Role, bool) {
	r := Role(name)
	return r, r.Valid()
}

// AttendanceStatus defines the possible status values for attendance.
type AttendanceStatus string

const (
	Present AttendanceStatus = "present"
	Absent  AttendanceStatus = "absent"
)

func (s AttendanceStatus) Valid() bool {
	return s == Present || s == Absent
}

// AttendanceKind says whose attendance a record tracks.
type AttendanceKind string

const (
	StudentAttendance AttendanceKind = "student"
	TeacherAttendance AttendanceKind = "teacher"
)

func (k AttendanceKind) Valid() bool {
	return k == StudentAttendance || k == TeacherAttendance
}

// PaymentMode defines how a fee payment was made.
type PaymentMode string

const (
	PayCash   PaymentMode = "Cash"
	PayCard   PaymentMode = "Card"
	PayOnline PaymentMode = "Online"
)
