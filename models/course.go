package models

// Course is a course definition administered through the console.
type Course struct {
	// ID is the backend-assigned course identifier.
	ID string `json:"id"`

	// Title is the human-readable course name.
	Title string `json:"title"`

	// OrganizationID identifies the owning organization.
	OrganizationID string `json:"organization_id"`

	// CertificateTemplate names the certificate template used on completion.
	CertificateTemplate string `json:"certificate_template,omitempty"`
}
