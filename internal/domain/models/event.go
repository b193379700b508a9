package models

import "time"

// CoordinatorInfo is an event-level coordinator contact. The ID, when set,
// links to a User record so coordinators can be matched to the signed-in user.
type CoordinatorInfo struct {
	ID    string `json:"_id,omitempty"`
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// ClubRef is the shape the API uses when populating an event's clubs:
// id plus display name.
type ClubRef struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// Event is the fest API's event resource.
//
// Pricing: at most one fee mode is authoritative. FeePerPerson (when > 0)
// wins, then FeeStructure (when non-empty), then the flat Fee. The fee
// calculator in system/fees encodes the precedence; nothing else should.
//
// Invariant maintained by the API: 1 <= GroupSizeMin <= GroupSizeMax.
type Event struct {
	ID              string          `json:"_id"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	Poster          string          `json:"poster,omitempty"`
	Clubs           []ClubRef       `json:"clubs,omitempty"`
	IsCollaboration bool            `json:"isCollaboration,omitempty"`
	Venue           string          `json:"venue,omitempty"`
	StartDate       *time.Time      `json:"startDate,omitempty"`
	StartTime       string          `json:"startTime,omitempty"`
	EndDate         *time.Time      `json:"endDate,omitempty"`
	EndTime         string          `json:"endTime,omitempty"`
	Fee             float64         `json:"fee"`
	FeePerPerson    float64         `json:"feePerPerson,omitempty"`
	FeeStructure    map[string]float64 `json:"feeStructure,omitempty"`
	GroupSizeMin    int             `json:"groupSizeMin"`
	GroupSizeMax    int             `json:"groupSizeMax"`

	StudentCoordinators []CoordinatorInfo `json:"studentCoordinators,omitempty"`
	FacultyCoordinators []CoordinatorInfo `json:"facultyCoordinators,omitempty"`

	RegistrationsOpen bool `json:"registrationsOpen"`
	IsHidden          bool `json:"isHidden"`
	IsPinned          bool `json:"isPinned"`
}

// IsTeamEvent reports whether the event admits more than one member.
func (e *Event) IsTeamEvent() bool {
	return e.GroupSizeMax > 1
}

// HasCoordinator reports whether the given user id appears in either
// coordinator list. Used to scope coordinator access to assigned events.
func (e *Event) HasCoordinator(userID string) bool {
	if userID == "" {
		return false
	}
	for _, c := range e.StudentCoordinators {
		if c.ID == userID {
			return true
		}
	}
	for _, c := range e.FacultyCoordinators {
		if c.ID == userID {
			return true
		}
	}
	return false
}
