package models

import "strings"

// Role values mirror the fest API's role enum. Comparisons are always done
// on the lowercased form; use NormalizeRole before comparing raw API data.
const (
	RoleStudent                 = "student"
	RoleCoordinator             = "coordinator"
	RoleSuperCoordinator        = "super_coordinator"
	RoleRegistrationCoordinator = "registration_coordinator"
	RoleMerchCoordinator        = "merch_coordinator"
	RoleAdmin                   = "admin"
)

// NormalizeRole lowercases and trims a role string from the API.
func NormalizeRole(role string) string {
	return strings.ToLower(strings.TrimSpace(role))
}

// IsStaffRole reports whether a role grants access to any admin screen.
func IsStaffRole(role string) bool {
	switch NormalizeRole(role) {
	case RoleAdmin, RoleSuperCoordinator, RoleCoordinator,
		RoleRegistrationCoordinator, RoleMerchCoordinator:
		return true
	}
	return false
}

// User is the fest API's user resource. The portal never mutates users
// except through the API; instances are per-request copies.
type User struct {
	ID                 string `json:"_id"`
	Name               string `json:"name,omitempty"`
	Email              string `json:"email"`
	Role               string `json:"role"`
	IsVITian           bool   `json:"isVITian,omitempty"`
	RegistrationNumber string `json:"registrationNumber,omitempty"`
	PhoneNumber        string `json:"phoneNumber,omitempty"`
	CollegeName        string `json:"collegeName,omitempty"`
	School             string `json:"school,omitempty"`
	Club               string `json:"club,omitempty"`
}
