package remote

import (
	"context"

	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/domain/models"
)

// ListEvents fetches all events, clubs populated.
func (c *Client) ListEvents(ctx context.Context) ([]models.Event, error) {
	var out []models.Event
	err := c.get(ctx, "/events/", &out)
	return out, err
}

// GetEvent fetches one event by id.
func (c *Client) GetEvent(ctx context.Context, id string) (models.Event, error) {
	var out models.Event
	err := c.get(ctx, "/events/"+id, &out)
	return out, err
}

// EventInput is the writable event shape for create and full update.
type EventInput struct {
	Name            string             `json:"name"`
	Description     string             `json:"description,omitempty"`
	Poster          string             `json:"poster,omitempty"`
	Clubs           []string           `json:"clubs,omitempty"`
	IsCollaboration bool               `json:"isCollaboration"`
	Venue           string             `json:"venue,omitempty"`
	StartDate       string             `json:"startDate,omitempty"`
	StartTime       string             `json:"startTime,omitempty"`
	EndDate         string             `json:"endDate,omitempty"`
	EndTime         string             `json:"endTime,omitempty"`
	Fee             float64            `json:"fee"`
	FeePerPerson    float64            `json:"feePerPerson,omitempty"`
	FeeStructure    map[string]float64 `json:"feeStructure,omitempty"`
	GroupSizeMin    int                `json:"groupSizeMin"`
	GroupSizeMax    int                `json:"groupSizeMax"`

	StudentCoordinators []models.CoordinatorInfo `json:"studentCoordinators,omitempty"`
	FacultyCoordinators []models.CoordinatorInfo `json:"facultyCoordinators,omitempty"`

	RegistrationsOpen bool `json:"registrationsOpen"`
	IsHidden          bool `json:"isHidden"`
	IsPinned          bool `json:"isPinned"`
}

// CreateEvent creates an event. Staff only; the API enforces the role.
func (c *Client) CreateEvent(ctx context.Context, in EventInput) (models.Event, error) {
	var out models.Event
	err := c.post(ctx, "/events/", in, &out)
	return out, err
}

// UpdateEvent replaces an event's writable fields.
func (c *Client) UpdateEvent(ctx context.Context, id string, in EventInput) (models.Event, error) {
	var out models.Event
	err := c.put(ctx, "/events/"+id, in, &out)
	return out, err
}

// PatchEvent applies a partial update, typically a single visibility flag
// (isPinned, isHidden, registrationsOpen). The API filters keys by role;
// coordinators for instance cannot pin.
func (c *Client) PatchEvent(ctx context.Context, id string, updates map[string]any) (models.Event, error) {
	var out models.Event
	err := c.patch(ctx, "/events/"+id, updates, &out)
	return out, err
}

// DeleteEvent removes an event.
func (c *Client) DeleteEvent(ctx context.Context, id string) error {
	return c.delete(ctx, "/events/"+id)
}
