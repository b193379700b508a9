package remote

import (
	"context"

	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/domain/models"
)

// ListRegistrations fetches the caller's registrations (event, creator, and
// team members populated). Staff roles receive all registrations.
func (c *Client) ListRegistrations(ctx context.Context) ([]models.Registration, error) {
	var out []models.Registration
	err := c.get(ctx, "/registrations/", &out)
	return out, err
}

// CreateRegistration registers the caller for an event with the given
// invitee emails. The creator is identified by the bearer token and never
// appears in teamEmails. The API resolves emails to accounts and rejects
// unknown ones with a descriptive message.
func (c *Client) CreateRegistration(ctx context.Context, eventID string, teamEmails []string) (models.Registration, error) {
	if teamEmails == nil {
		teamEmails = []string{}
	}
	var out models.Registration
	err := c.post(ctx, "/registrations/", map[string]any{
		"event":      eventID,
		"teamEmails": teamEmails,
	}, &out)
	return out, err
}

// RespondInvitation accepts or declines a team invitation for the caller.
func (c *Client) RespondInvitation(ctx context.Context, registrationID string, accept bool) error {
	action := "accept"
	if !accept {
		action = "decline"
	}
	return c.post(ctx, "/registrations/accept", map[string]string{
		"registrationId": registrationID,
		"action":         action,
	}, nil)
}

// DeleteRegistration removes the caller's registration. A creator deletes
// the whole registration; a team member only leaves the team. The API
// decides which based on the bearer token.
func (c *Client) DeleteRegistration(ctx context.Context, id string) error {
	return c.delete(ctx, "/registrations/"+id)
}

// PaymentIntent is the handle the hosted payment element needs.
type PaymentIntent struct {
	ClientSecret string `json:"clientSecret"`
}

// CreatePaymentIntent asks the API for a payment intent covering the
// registration. The hosted payment form consumes the client secret; this
// portal never sees card data.
func (c *Client) CreatePaymentIntent(ctx context.Context, registrationID string, amount float64) (PaymentIntent, error) {
	var out PaymentIntent
	err := c.post(ctx, "/payments/create-intent", map[string]any{
		"registrationId": registrationID,
		"amount":         amount,
	}, &out)
	return out, err
}

// MarkPaid confirms payment for a registration after the payment element
// reports success.
func (c *Client) MarkPaid(ctx context.Context, registrationID, paymentID string) error {
	return c.post(ctx, "/registrations/"+registrationID+"/confirm-payment", map[string]string{
		"paymentId": paymentID,
	}, nil)
}
