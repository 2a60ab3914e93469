package model

import "time"

// Role names a user's permission level.  Two closed sets share this type:
// the directory roles shown on the settings page (admin, manager, viewer)
// and the session roles issued at login (ADMIN, LANDLORD, TENANT).
type Role string

const (
	RoleAdmin   Role = "admin"   // directory: full access
	RoleManager Role = "manager" // directory: day-to-day operations
	RoleViewer  Role = "viewer"  // directory: read only

	SessionAdmin    Role = "ADMIN"    // session: default for unknown emails
	SessionLandlord Role = "LANDLORD" // session: landlord@renttrack.local
	SessionTenant   Role = "TENANT"   // session: tenant@renttrack.local
)

// IsDirectory reports whether r belongs to the directory role set.
func (r Role) IsDirectory() bool {
	return r == RoleAdmin || r == RoleManager || r == RoleViewer
}

// IsSession reports whether r belongs to the session role set.
func (r Role) IsSession() bool {
	return r == SessionAdmin || r == SessionLandlord || r == SessionTenant
}

// User represents a dashboard account.  Directory users are seeded and
// listed on the settings page; session users are synthesized by login and
// identity resolution.
//
// Fields:
//
//	ID        – unique identifier.
//	Name      – display name.
//	Email     – login email.
//	Role      – directory or session role.
//	Avatar    – avatar image URI.
//	LastLogin – last sign-in time, nil when never recorded.
type User struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      Role       `json:"role"`
	Avatar    string     `json:"avatar,omitempty"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

// GetID implements repository.Record.
func (u User) GetID() string { return u.ID }

// Clone returns a deep copy of u.
func (u User) Clone() User {
	if u.LastLogin != nil {
		t := *u.LastLogin
		u.LastLogin = &t
	}
	return u
}

// AuthResult is returned by a successful login.  The token is opaque to
// callers; persisting it is the caller's job.
type AuthResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
