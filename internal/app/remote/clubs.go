package remote

import (
	"context"

	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/domain/models"
)

// ListClubs fetches all clubs with their coordinator contact lists.
func (c *Client) ListClubs(ctx context.Context) ([]models.Club, error) {
	var out []models.Club
	err := c.get(ctx, "/clubs/", &out)
	return out, err
}

// ClubInput is the writable club shape.
type ClubInput struct {
	Name                string               `json:"name"`
	FacultyCoordinators []models.Coordinator `json:"facultyCoordinators"`
	StudentCoordinators []models.Coordinator `json:"studentCoordinators"`
}

// CreateClub creates a club.
func (c *Client) CreateClub(ctx context.Context, in ClubInput) (models.Club, error) {
	var out models.Club
	err := c.post(ctx, "/clubs/", in, &out)
	return out, err
}

// UpdateClub replaces a club's writable fields.
func (c *Client) UpdateClub(ctx context.Context, id string, in ClubInput) (models.Club, error) {
	var out models.Club
	err := c.put(ctx, "/clubs/"+id, in, &out)
	return out, err
}

// DeleteClub removes a club.
func (c *Client) DeleteClub(ctx context.Context, id string) error {
	return c.delete(ctx, "/clubs/"+id)
}
