// Package regform holds the client-side state of an event registration form:
// the invitee email slots, the size-bound validation, and the status
// progression. It performs no I/O; the events feature drives it and submits
// the validated result to the fest API.
package regform

import (
	"fmt"
	"strings"

	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/domain/models"
)

// Status values for the local registration flow. Transitions are forward
// only: NotRegistered -> Pending -> Paid.
type Status string

const (
	NotRegistered Status = "not_registered"
	Pending       Status = "pending"
	Paid          Status = "paid"
)

// Form is the in-progress registration for one event. The creator occupies
// one team slot implicitly; Emails holds only invitees.
type Form struct {
	GroupSizeMin int
	GroupSizeMax int
	Emails       []string
	Status       Status
}

// New returns a form for the event with no invitee slots and status
// NotRegistered.
func New(event *models.Event) *Form {
	return &Form{
		GroupSizeMin: event.GroupSizeMin,
		GroupSizeMax: event.GroupSizeMax,
		Status:       NotRegistered,
	}
}

// MemberCount is the resolved team size: the creator plus every non-blank
// invitee email.
func (f *Form) MemberCount() int {
	n := 1
	for _, e := range f.Emails {
		if strings.TrimSpace(e) != "" {
			n++
		}
	}
	return n
}

// maxInvitees is the slot bound: the creator occupies one of the
// GroupSizeMax positions.
func (f *Form) maxInvitees() int {
	if f.GroupSizeMax < 1 {
		return 0
	}
	return f.GroupSizeMax - 1
}

// AddSlot appends an empty invitee slot. Exceeding the team-size bound is
// rejected with a user-visible warning and no state change.
func (f *Form) AddSlot() error {
	if len(f.Emails) >= f.maxInvitees() {
		return fmt.Errorf("teams for this event can have at most %d members", f.GroupSizeMax)
	}
	f.Emails = append(f.Emails, "")
	return nil
}

// RemoveSlot deletes the slot at i. Out-of-range indexes are ignored.
func (f *Form) RemoveSlot(i int) {
	if i < 0 || i >= len(f.Emails) {
		return
	}
	f.Emails = append(f.Emails[:i], f.Emails[i+1:]...)
}

// SetEmail stores the invitee email at slot i. Out-of-range indexes are
// ignored.
func (f *Form) SetEmail(i int, email string) {
	if i < 0 || i >= len(f.Emails) {
		return
	}
	f.Emails[i] = strings.TrimSpace(email)
}

// Validate checks the team size bounds locally. A failure means no network
// call should be made.
func (f *Form) Validate() error {
	n := f.MemberCount()
	if n < f.GroupSizeMin {
		return fmt.Errorf("this event requires at least %d team members", f.GroupSizeMin)
	}
	if f.GroupSizeMax >= 1 && n > f.GroupSizeMax {
		return fmt.Errorf("teams for this event can have at most %d members", f.GroupSizeMax)
	}
	return nil
}

// TeamEmails returns the non-blank invitee emails in slot order, for
// submission to the registration endpoint. The creator is identified by the
// bearer token and is never listed.
func (f *Form) TeamEmails() []string {
	out := make([]string, 0, len(f.Emails))
	for _, e := range f.Emails {
		if v := strings.TrimSpace(e); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// MarkPending records a successful submission. Only the forward transition
// from NotRegistered is honored.
func (f *Form) MarkPending() {
	if f.Status == NotRegistered {
		f.Status = Pending
	}
}

// MarkPaid records a successful payment. Only the forward transition from
// Pending is honored.
func (f *Form) MarkPaid() {
	if f.Status == Pending {
		f.Status = Paid
	}
}
