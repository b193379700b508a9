package models

// MerchItem is a merchandise listing. SalesOpen gates the buy action in the
// storefront; the flag is toggled from the admin merch screen.
type MerchItem struct {
	ID        string  `json:"_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image,omitempty"`
	SalesOpen bool    `json:"salesOpen"`
}
