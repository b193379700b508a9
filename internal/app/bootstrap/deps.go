// internal/app/bootstrap/deps.go
package bootstrap

import (
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/remote"
)

// APIDeps holds back-end dependencies for the app. The portal's only
// back end is the fest REST API, reached through the shared client here.
// Extend this struct as the app evolves.
type APIDeps struct {
	FestAPI *remote.Client
}
