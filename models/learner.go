package models

import "time"

// Learner is a single enrolled person as returned by the router backend.
type Learner struct {
	// Email is the learner's unique identifier within an organization.
	Email string `json:"email"`

	// Name is the learner's display name.
	Name string `json:"name"`

	// OrganizationID identifies the organization the learner belongs to.
	OrganizationID string `json:"organization_id"`

	// Courses lists the IDs of courses the learner is enrolled in.
	Courses []string `json:"courses,omitempty"`

	// CertificatesIssued is the number of certificates issued to the learner.
	CertificatesIssued int `json:"certificates_issued"`

	// LastActivityAt is the timestamp of the learner's most recent activity,
	// if the backend reported one.
	LastActivityAt *time.Time `json:"last_activity_at,omitempty"`
}

// LearnerUpdate carries the mutable learner fields accepted by the privileged
// admin surface. Nil pointers mean "leave unchanged".
type LearnerUpdate struct {
	Email   string    `json:"email"`
	Name    *string   `json:"name,omitempty"`
	Courses *[]string `json:"courses,omitempty"`
}
