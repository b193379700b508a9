// Package viewdata provides the base view model embedded by every page.
package viewdata

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/httpnav"

	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/auth"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/authz"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/domain/models"
)

// SiteName is the portal's display name.
const SiteName = "VIT Chennai Events"

// BaseVM contains the fields every template's layout expects. Embed it in
// feature view models:
//
//	type pageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
type BaseVM struct {
	SiteName string

	// User context (from the session middleware)
	IsLoggedIn bool
	IsStaff    bool
	Role       string
	UserName   string

	// Page context
	Title       string
	BackURL     string
	CurrentPath string
}

// NewBaseVM builds a populated BaseVM for a page.
func NewBaseVM(r *http.Request, title, backDefault string) BaseVM {
	role, name, _, signedIn := authz.UserCtx(r)

	return BaseVM{
		SiteName:    SiteName,
		IsLoggedIn:  signedIn,
		IsStaff:     signedIn && models.IsStaffRole(role),
		Role:        role,
		UserName:    name,
		Title:       title,
		BackURL:     httpnav.ResolveBackURL(r, backDefault),
		CurrentPath: httpnav.CurrentPath(r),
	}
}

// CurrentUser re-exports the session lookup for templates-building code
// that already depends on viewdata.
func CurrentUser(r *http.Request) (*models.User, bool) {
	return auth.CurrentUser(r)
}
