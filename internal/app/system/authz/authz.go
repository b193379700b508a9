// Package authz holds the role predicates every gated view shares. Screens
// never inspect roles directly; they go through these helpers (or the gates
// package, which renders the failure pages).
package authz

import (
	"net/http"

	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/auth"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/domain/models"
)

// UserCtx returns the user's role, name, id, and a found flag. Role is
// normalized; a signed-out request reports the "visitor" role with ok=false.
func UserCtx(r *http.Request) (role string, name string, userID string, ok bool) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		return "visitor", "", "", false
	}
	return models.NormalizeRole(user.Role), user.Name, user.ID, true
}

// IsAdmin reports whether the current user is an admin.
func IsAdmin(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && role == models.RoleAdmin
}

// IsSuperCoordinator reports whether the current user is a super coordinator.
func IsSuperCoordinator(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && role == models.RoleSuperCoordinator
}

// IsCoordinator reports whether the current user is an event coordinator.
func IsCoordinator(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && role == models.RoleCoordinator
}

// IsMerchCoordinator reports whether the current user is a merch coordinator.
func IsMerchCoordinator(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && role == models.RoleMerchCoordinator
}

// IsStaff reports whether the current user may enter the admin console at all.
func IsStaff(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && models.IsStaffRole(role)
}

// CanManageEvents reports whether the current user may reach the admin
// events screens. Coordinators are additionally scoped to assigned events
// by CanManageEvent.
func CanManageEvents(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	if !ok {
		return false
	}
	switch role {
	case models.RoleAdmin, models.RoleSuperCoordinator, models.RoleCoordinator:
		return true
	}
	return false
}

// CanManageEvent reports whether the current user may edit this particular
// event. Admins and super coordinators manage every event; coordinators only
// those they are assigned to.
func CanManageEvent(r *http.Request, event *models.Event) bool {
	role, _, userID, ok := UserCtx(r)
	if !ok {
		return false
	}
	switch role {
	case models.RoleAdmin, models.RoleSuperCoordinator:
		return true
	case models.RoleCoordinator:
		return event.HasCoordinator(userID)
	}
	return false
}

// CanPinEvents reports whether the current user may toggle isPinned.
// Plain coordinators cannot; the API enforces the same rule.
func CanPinEvents(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && (role == models.RoleAdmin || role == models.RoleSuperCoordinator)
}

// CanManageMerch reports whether the current user may reach the admin merch
// screens.
func CanManageMerch(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	if !ok {
		return false
	}
	switch role {
	case models.RoleAdmin, models.RoleSuperCoordinator, models.RoleMerchCoordinator:
		return true
	}
	return false
}

// CanManageUsers reports whether the current user may list and modify user
// accounts and clubs.
func CanManageUsers(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && (role == models.RoleAdmin || role == models.RoleSuperCoordinator)
}
