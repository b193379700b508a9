package models

// Coordinator is a club-level contact record. ID, when present, links to a
// User so the contact can be associated with a portal account.
type Coordinator struct {
	ID    string `json:"_id,omitempty"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// Club is an organizing club with its faculty and student contact lists.
type Club struct {
	ID                  string        `json:"_id"`
	Name                string        `json:"name"`
	FacultyCoordinators []Coordinator `json:"facultyCoordinators"`
	StudentCoordinators []Coordinator `json:"studentCoordinators"`
}
