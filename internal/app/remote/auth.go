package remote

import (
	"context"

	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/domain/models"
)

// TokenResponse is the credential the API issues on a successful login.
// Token issuance itself is the API's concern; the portal only stores and
// forwards the opaque string.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (TokenResponse, error) {
	var out TokenResponse
	err := c.post(ctx, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &out)
	return out, err
}

// Signup creates an account and returns the issued token.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (TokenResponse, error) {
	var out TokenResponse
	err := c.post(ctx, "/auth/signup", req, &out)
	return out, err
}

// SignupRequest carries the fields collected by the signup screen.
type SignupRequest struct {
	Name               string `json:"name"`
	Email              string `json:"email"`
	Password           string `json:"password"`
	IsVITian           bool   `json:"isVITian"`
	RegistrationNumber string `json:"registrationNumber,omitempty"`
	PhoneNumber        string `json:"phoneNumber,omitempty"`
	CollegeName        string `json:"collegeName,omitempty"`
}

// GoogleExchange trades a federation credential (the Google ID token the
// login button produced) for a fest API bearer token.
func (c *Client) GoogleExchange(ctx context.Context, idToken string) (TokenResponse, error) {
	var out TokenResponse
	err := c.post(ctx, "/auth/google", map[string]string{"credential": idToken}, &out)
	return out, err
}

// Profile fetches the user the bearer token belongs to.
func (c *Client) Profile(ctx context.Context) (models.User, error) {
	var out models.User
	err := c.get(ctx, "/auth/me", &out)
	return out, err
}
