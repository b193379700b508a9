// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds app-level configuration for the fest portal.
//
// The portal keeps no database of its own; every entity lives behind the
// fest REST API, so the config surface is the API location, session
// cookie settings, Google OAuth credentials, and per-call timeouts for
// talking to the API.
//
// Fields are populated by LoadConfig from config files, environment
// variables (VITFEST_*), and command-line flags.
type AppConfig struct {
	// Fest API
	APIBaseURL string

	// Session cookie
	SessionKey    string
	SessionName   string
	SessionDomain string

	// Base URL of this portal, used to build the OAuth redirect URL.
	BaseURL string

	// Google OAuth (sign-in is hidden when either field is blank)
	GoogleClientID     string
	GoogleClientSecret string
	OAuthStateKey      string

	// API call timeouts
	APIPingTimeout   time.Duration
	APIShortTimeout  time.Duration
	APIMediumTimeout time.Duration
	APILongTimeout   time.Duration
}

// GoogleEnabled reports whether Google sign-in is fully configured.
func (c AppConfig) GoogleEnabled() bool {
	return c.GoogleClientID != "" && c.GoogleClientSecret != ""
}
