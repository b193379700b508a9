package remote

import (
	"context"

	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/domain/models"
)

// ListMerch fetches all merchandise listings.
func (c *Client) ListMerch(ctx context.Context) ([]models.MerchItem, error) {
	var out []models.MerchItem
	err := c.get(ctx, "/merch/", &out)
	return out, err
}

// MerchInput is the writable merchandise shape.
type MerchInput struct {
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image,omitempty"`
	SalesOpen bool    `json:"salesOpen"`
}

// CreateMerchItem creates a listing.
func (c *Client) CreateMerchItem(ctx context.Context, in MerchInput) (models.MerchItem, error) {
	var out models.MerchItem
	err := c.post(ctx, "/merch/", in, &out)
	return out, err
}

// UpdateMerchItem replaces a listing's writable fields.
func (c *Client) UpdateMerchItem(ctx context.Context, id string, in MerchInput) (models.MerchItem, error) {
	var out models.MerchItem
	err := c.put(ctx, "/merch/"+id, in, &out)
	return out, err
}

// DeleteMerchItem removes a listing.
func (c *Client) DeleteMerchItem(ctx context.Context, id string) error {
	return c.delete(ctx, "/merch/"+id)
}
