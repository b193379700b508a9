// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"net/url"
	"time"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for the fest portal.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: api_base_url, session_name, etc.
//   - Environment variables: VITFEST_API_BASE_URL, VITFEST_SESSION_NAME, etc.
//   - Command-line flags: --api_base_url, --session_name, etc.
var appConfigKeys = []config.AppKey{
	{Name: "api_base_url", Default: "http://localhost:8000", Desc: "Base URL of the fest REST API"},
	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Session signing key (must be strong in production)"},
	{Name: "session_name", Default: "fest_session", Desc: "Session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},

	// Base URL of this portal (OAuth redirect URLs are built from it)
	{Name: "base_url", Default: "http://localhost:3000", Desc: "Public base URL of this portal"},

	// Google OAuth configuration
	{Name: "google_client_id", Default: "", Desc: "Google OAuth2 client ID"},
	{Name: "google_client_secret", Default: "", Desc: "Google OAuth2 client secret"},
	{Name: "oauth_state_key", Default: "", Desc: "OAuth state cookie signing key (defaults to session_key)"},

	// Fest API timeouts
	{Name: "api_ping_timeout", Default: "2s", Desc: "Timeout for API reachability checks"},
	{Name: "api_short_timeout", Default: "5s", Desc: "Timeout for single-resource API fetches"},
	{Name: "api_medium_timeout", Default: "10s", Desc: "Timeout for API list fetches and writes"},
	{Name: "api_long_timeout", Default: "30s", Desc: "Timeout for multi-call API screens"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before the API client or handlers are built.
// CoreConfig comes from the shared WAFFLE layer; AppConfig is specific
// to this app and can be extended as the app grows.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, VITFEST_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "VITFEST", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		APIBaseURL: appValues.String("api_base_url"),

		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),

		BaseURL: appValues.String("base_url"),

		GoogleClientID:     appValues.String("google_client_id"),
		GoogleClientSecret: appValues.String("google_client_secret"),
		OAuthStateKey:      appValues.String("oauth_state_key"),

		APIPingTimeout:   appValues.Duration("api_ping_timeout", 2*time.Second),
		APIShortTimeout:  appValues.Duration("api_short_timeout", 5*time.Second),
		APIMediumTimeout: appValues.Duration("api_medium_timeout", 10*time.Second),
		APILongTimeout:   appValues.Duration("api_long_timeout", 30*time.Second),
	}

	// The state cookie is sealed with its own key when one is provided;
	// otherwise the session key covers both.
	if appCfg.OAuthStateKey == "" {
		appCfg.OAuthStateKey = appCfg.SessionKey
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// This is the right place to enforce required fields or invariants that
// involve both the core and app configs.
//
// The portal validates the API base URL format to catch configuration
// errors early, before attempting any requests.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	u, err := url.Parse(appCfg.APIBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		logger.Error("invalid API base URL", zap.String("api_base_url", appCfg.APIBaseURL))
		return fmt.Errorf("api_base_url must be an absolute http(s) URL, got %q", appCfg.APIBaseURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("api_base_url must use http or https, got %q", u.Scheme)
	}

	if len(appCfg.SessionKey) < 32 {
		return fmt.Errorf("session_key must be at least 32 characters")
	}

	// Google sign-in needs both halves of the credential pair.
	if (appCfg.GoogleClientID == "") != (appCfg.GoogleClientSecret == "") {
		return fmt.Errorf("google_client_id and google_client_secret must be set together")
	}

	return nil
}
