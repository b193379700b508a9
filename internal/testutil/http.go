package testutil

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/auth"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/domain/models"
)

// SessionToken is the bearer token carried by requests built with WithUser
// and WithPendingUser. Notice assertions key hub channels with it.
const SessionToken = "test-token"

// TestUser represents user data for testing HTTP handlers.
type TestUser struct {
	ID    string
	Name  string
	Email string
	Role  string
}

// AdminUser returns a TestUser with the admin role.
func AdminUser() TestUser {
	return TestUser{
		ID:    uuid.NewString(),
		Name:  "Test Admin",
		Email: "admin@test.com",
		Role:  models.RoleAdmin,
	}
}

// StudentUser returns a TestUser with the student role.
func StudentUser() TestUser {
	return TestUser{
		ID:    uuid.NewString(),
		Name:  "Test Student",
		Email: "student@test.com",
		Role:  models.RoleStudent,
	}
}

// CoordinatorUser returns a TestUser with the event coordinator role.
func CoordinatorUser() TestUser {
	return TestUser{
		ID:    uuid.NewString(),
		Name:  "Test Coordinator",
		Email: "coordinator@test.com",
		Role:  models.RoleCoordinator,
	}
}

// UserWithRole returns a TestUser carrying the given role.
func UserWithRole(role string) TestUser {
	return TestUser{
		ID:    uuid.NewString(),
		Name:  "Test " + role,
		Email: role + "@test.com",
		Role:  role,
	}
}

// WithUser adds a resolved session to the request context for testing
// authenticated handlers. This bypasses the session middleware.
func WithUser(r *http.Request, user TestUser) *http.Request {
	return auth.WithTestState(r, &auth.State{
		User: &models.User{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
		},
		Token: SessionToken,
	})
}

// WithPendingUser marks the request as carrying a token whose profile could
// not be resolved yet.
func WithPendingUser(r *http.Request) *http.Request {
	return auth.WithTestState(r, &auth.State{Token: SessionToken, Pending: true})
}

// NewAuthenticatedRequest creates an HTTP request with a user in context.
func NewAuthenticatedRequest(method, target string, user TestUser) *http.Request {
	return WithUser(httptest.NewRequest(method, target, nil), user)
}

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Render invokes fn and swallows the panic that waffle's template engine
// raises when it has not been booted. Handler logic that runs before the
// render still executes and can be asserted on.
func Render(fn func()) {
	defer func() {
		recover()
	}()
	fn()
}
