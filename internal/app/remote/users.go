package remote

import (
	"context"

	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/domain/models"
)

// ListUsers fetches all users. Admin screens only; the API enforces the
// role on the token.
func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	var out []models.User
	err := c.get(ctx, "/users/", &out)
	return out, err
}

// UserCreateInput is the payload for provisioning a coordinator account.
// Empty optional fields are omitted so the API applies its defaults.
type UserCreateInput struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Role        string `json:"role"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	School      string `json:"school,omitempty"`
	Club        string `json:"club,omitempty"`
}

// CreateUser provisions a coordinator account. The API rejects tokens
// without user management rights.
func (c *Client) CreateUser(ctx context.Context, in UserCreateInput) (models.User, error) {
	var out models.User
	err := c.post(ctx, "/users/admin/create", in, &out)
	return out, err
}

// UpdateUserRole changes a user's role.
func (c *Client) UpdateUserRole(ctx context.Context, id, role string) (models.User, error) {
	var out models.User
	err := c.patch(ctx, "/users/"+id, map[string]string{"role": role}, &out)
	return out, err
}

// DeleteUser removes a user account.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.delete(ctx, "/users/"+id)
}
