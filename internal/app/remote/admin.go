package remote

import "context"

// Stats is the aggregate registration/revenue summary for the admin
// dashboard. Coordinators receive figures scoped to their assigned events.
type Stats struct {
	TotalRevenue       float64 `json:"totalRevenue"`
	TotalRegistrations int     `json:"totalRegistrations"`
	PaidCount          int     `json:"paidCount"`
	UnpaidCount        int     `json:"unpaidCount"`
}

// EventSummary is one row of the admin events table: per-event registration
// counts, revenue, and the VITian/external split.
type EventSummary struct {
	ID              string  `json:"_id"`
	Name            string  `json:"name"`
	Registered      int     `json:"registered"`
	Paid            int     `json:"paid"`
	Unpaid          int     `json:"unpaid"`
	AmountCollected float64 `json:"amountCollected"`
	VITians         int     `json:"vitians"`
	NonVITians      int     `json:"nonVitians"`
}

// Participant is one team member row in the per-event participant export.
type Participant struct {
	RegistrationID string `json:"registrationId"`
	PaymentStatus  string `json:"paymentStatus"`
	UserID         string `json:"userId"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	RegNo          string `json:"regNo"`
	Phone          string `json:"phone"`
	IsVITian       bool   `json:"isVITian"`
}

// The admin endpoints wrap their payloads in {"success": ..., "data": ...}.
type statsEnvelope struct {
	Data Stats `json:"data"`
}

type summariesEnvelope struct {
	Data []EventSummary `json:"data"`
}

type participantsEnvelope struct {
	Event struct {
		ID   string `json:"_id"`
		Name string `json:"name"`
	} `json:"event"`
	Data []Participant `json:"data"`
}

// AdminStats fetches the aggregate summary.
func (c *Client) AdminStats(ctx context.Context) (Stats, error) {
	var env statsEnvelope
	err := c.get(ctx, "/admin/stats", &env)
	return env.Data, err
}

// AdminEvents fetches the per-event summaries, sorted by revenue by the API.
func (c *Client) AdminEvents(ctx context.Context) ([]EventSummary, error) {
	var env summariesEnvelope
	err := c.get(ctx, "/admin/events", &env)
	return env.Data, err
}

// EventParticipants fetches every team member registered for an event,
// flattened across registrations, plus the event's display name.
func (c *Client) EventParticipants(ctx context.Context, eventID string) (string, []Participant, error) {
	var env participantsEnvelope
	err := c.get(ctx, "/admin/events/"+eventID+"/participants", &env)
	return env.Event.Name, env.Data, err
}
