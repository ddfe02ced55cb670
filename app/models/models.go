package models

import "time"

// Identity is an authenticated principal as reported by the identity
// provider. Role and profile data live in the users collection, not here.
type Identity struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
}

// Account joins an identity with its role record.
type Account struct {
	UID       string    `json:"uid"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	PersonID  string    `json:"person_id,omitempty"` // links student/parent accounts to a student record
	CreatedAt time.Time `json:"created_at"`
}

// AdminSettings are the admin-only access toggles.
type AdminSettings struct {
	AllowStudentAccess bool `json:"allowStudentAccess"`
	AllowParentAccess  bool `json:"allowParentAccess"`
}

// Settings is the single school-wide settings document.
type Settings struct {
	Theme                string        `json:"theme"`
	NotificationsEnabled bool          `json:"notificationsEnabled"`
	AdminSettings        AdminSettings `json:"adminSettings"`
	LogoURL              string        `json:"logoUrl,omitempty"`
}

// DefaultSettings mirrors the defaults a fresh install starts with.
func DefaultSettings() Settings {
	return Settings{
		Theme:                "light",
		NotificationsEnabled: true,
		AdminSettings: AdminSettings{
			AllowStudentAccess: true,
			AllowParentAccess:  true,
		},
	}
}
