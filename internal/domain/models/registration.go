package models

// Payment status values for a registration. The portal only ever drives the
// forward transitions pending -> paid; there is no cancellation path.
const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
)

// Invitation statuses within a registration.
const (
	InvitePending  = "pending"
	InviteAccepted = "accepted"
	InviteDeclined = "declined"
)

// MemberRef is the populated shape the API returns for creator and team
// members on a registration.
type MemberRef struct {
	ID    string `json:"_id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// Invitation tracks a team member's acceptance state.
type Invitation struct {
	User   MemberRef `json:"userId"`
	Status string    `json:"status"`
}

// Registration links an event to a creating user and a team. The invariant
// that the team size falls within the event's bounds is enforced at creation
// time, partly client-side (system/regform) and authoritatively by the API.
type Registration struct {
	ID            string       `json:"_id"`
	Event         Event        `json:"event"`
	Creator       MemberRef    `json:"creator"`
	TeamMembers   []MemberRef  `json:"teamMembers"`
	Invitations   []Invitation `json:"invitationStatus,omitempty"`
	PaymentStatus string       `json:"paymentStatus"`
	PaymentID     string       `json:"paymentId,omitempty"`
}

// IsPaid reports whether the registration has completed payment.
func (r *Registration) IsPaid() bool { return r.PaymentStatus == PaymentPaid }

// TeamSize is the resolved member count, creator included.
func (r *Registration) TeamSize() int { return len(r.TeamMembers) }
