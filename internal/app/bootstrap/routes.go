// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	adminfeature "github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/features/admin"
	adminclubsfeature "github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/features/adminclubs"
	admineventsfeature "github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/features/adminevents"
	adminmerchfeature "github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/features/adminmerch"
	adminusersfeature "github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/features/adminusers"
	authgooglefeature "github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/features/authgoogle"
	dashboardfeature "github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/features/dashboard"
	errorsfeature "github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/features/errors"
	eventsfeature "github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/features/events"
	healthfeature "github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/features/health"
	homefeature "github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/features/home"
	loginfeature "github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/features/login"
	logoutfeature "github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/features/logout"
	merchfeature "github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/features/merch"
	noticesfeature "github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/features/notices"
	signupfeature "github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/features/signup"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/auth"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/notify"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, back-end connections, and any
// Startup hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: the fest API client bundled in APIDeps
//   - logger: the fully configured zap.Logger for this app
//
// This function should:
//  1. Create a router (chi, standard mux, etc.)
//  2. Mount feature routers for different parts of the application
//  3. Add any additional middleware needed for specific routes
//  4. Return the configured router as an http.Handler
//
// The portal initializes the template engine, applies session middleware,
// starts the notice hub, and mounts feature routers for the storefront
// (home, events, merch, dashboard), authentication, and the admin console.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps APIDeps, logger *zap.Logger) (http.Handler, error) {
	// Create the session manager using app config.
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, deps.FestAPI, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	// Per-session notice channels behind the toast endpoint. Scoping by
	// session keeps one visitor's toasts out of every other feed.
	hub := notify.NewHub()

	// Create error logger for handlers.
	errLog := errorsfeature.NewErrorLogger(logger)

	r := chi.NewRouter()

	// Global auth middleware: loads the session user into context if
	// signed in, making it available to all handlers via auth.CurrentUser.
	r.Use(sessionMgr.LoadSessionUser)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.FestAPI, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Storefront
	homeHandler := homefeature.NewHandler(deps.FestAPI, errLog, logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	eventsHandler := eventsfeature.NewHandler(deps.FestAPI, hub, errLog, logger)
	eventsRouter := eventsfeature.Routes(eventsHandler, sessionMgr)
	eventsRouter.Get("/", homeHandler.ServeEvents)
	r.Mount("/events", eventsRouter)

	merchHandler := merchfeature.NewHandler(deps.FestAPI, errLog, logger)
	r.Mount("/merch", merchfeature.Routes(merchHandler))

	// Authentication
	loginHandler := loginfeature.NewHandler(deps.FestAPI, sessionMgr, errLog, appCfg.GoogleEnabled(), logger)
	r.Mount("/login", loginfeature.Routes(loginHandler))

	signupHandler := signupfeature.NewHandler(deps.FestAPI, sessionMgr, errLog, logger)
	r.Mount("/signup", signupfeature.Routes(signupHandler))

	logoutHandler := logoutfeature.NewHandler(sessionMgr, logger)
	r.Mount("/logout", logoutfeature.Routes(logoutHandler, sessionMgr))

	googleHandler := authgooglefeature.NewHandler(deps.FestAPI, sessionMgr,
		appCfg.GoogleClientID, appCfg.GoogleClientSecret, appCfg.BaseURL, appCfg.OAuthStateKey, secure, logger)
	r.Mount("/auth/google", authgooglefeature.Routes(googleHandler))

	// Signed-in storefront
	dashboardHandler := dashboardfeature.NewHandler(deps.FestAPI, hub, errLog, logger)
	r.Mount("/dashboard", dashboardfeature.Routes(dashboardHandler, sessionMgr))

	// Notice feed polled by the toast script
	noticesHandler := noticesfeature.NewHandler(hub, logger)
	r.Mount("/notices", noticesfeature.Routes(noticesHandler))

	// Admin console
	adminHandler := adminfeature.NewHandler(deps.FestAPI, errLog, logger)
	r.Mount("/admin", adminfeature.Routes(adminHandler))

	adminEventsHandler := admineventsfeature.NewHandler(deps.FestAPI, hub, errLog, logger)
	r.Mount("/admin/events", admineventsfeature.Routes(adminEventsHandler, sessionMgr))

	adminClubsHandler := adminclubsfeature.NewHandler(deps.FestAPI, hub, errLog, logger)
	r.Mount("/admin/clubs", adminclubsfeature.Routes(adminClubsHandler, sessionMgr))

	adminMerchHandler := adminmerchfeature.NewHandler(deps.FestAPI, hub, errLog, logger)
	r.Mount("/admin/merch", adminmerchfeature.Routes(adminMerchHandler, sessionMgr))

	adminUsersHandler := adminusersfeature.NewHandler(deps.FestAPI, hub, errLog, logger)
	r.Mount("/admin/users", adminusersfeature.Routes(adminUsersHandler, sessionMgr))

	// Unknown routes get the styled not-found page.
	errorsHandler := errorsfeature.NewHandler()
	r.NotFound(errorsHandler.NotFound)

	return r, nil
}
