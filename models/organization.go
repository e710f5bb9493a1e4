package models

// Organization is the entity a POC (point of contact) administers.
type Organization struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// POCEmail is the email of the organization's point of contact.
	POCEmail string `json:"poc_email"`
}
