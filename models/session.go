package models

import "time"

// Session is the locally persisted user record. Its presence (with a
// non-empty token) is what makes authenticated actions possible; its absence
// is a first-class error condition for the action layer, never a crash.
type Session struct {
	// Email is the signed-in POC's email.
	Email string `json:"email"`

	// Token is the bearer token presented to the router backend.
	Token string `json:"token"`

	// Role distinguishes privileged admins from self-service POCs.
	Role string `json:"role"`

	// OrganizationID is the organization the signed-in POC administers.
	OrganizationID string `json:"organization_id"`

	// SavedAt records when the session was stored locally.
	SavedAt time.Time `json:"saved_at"`
}

// Privileged reports whether the session belongs to the privileged admin
// surface rather than the self-service one.
func (s Session) Privileged() bool {
	return s.Role == RoleAdmin
}

// Known session roles.
const (
	RoleAdmin = "admin"
	RolePOC   = "poc"
)
