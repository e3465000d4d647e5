// Package entity contains the core business objects of the project.
package entity

// Identity is the session identity of a workflow participant.
// It is created once per session after a successful IIN check. RequestNumber
// comes from the launch configuration and never changes; Phone is filled in
// after the profile lookup and is then stable for the rest of the session.
type Identity struct {
	IIN           string // National identification number of the participant.
	RequestNumber string // Number of the government service request being delivered.
	Phone         string // Contact phone, captured from the profile lookup.
}

// Recipient is the profile of the person receiving the document,
// as returned by the remote profile lookup. Read-only once fetched.
type Recipient struct {
	FirstName  string `json:"firstName"`
	MiddleName string `json:"middleName"`
	LastName   string `json:"lastName"`
	Phone      string `json:"phone"`
}

// FullName returns "Lastname Firstname Middlename" for display.
func (r Recipient) FullName() string {
	return r.LastName + " " + r.FirstName + " " + r.MiddleName
}
