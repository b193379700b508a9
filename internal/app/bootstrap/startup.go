// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/resources"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after back-end
// connections are established, but before the HTTP handler is built. It
// is the place to load shared resources (like templates), warm caches,
// or perform any app-wide setup that depends on config and backends.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps APIDeps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()

	timeouts.Configure(timeouts.Config{
		Ping:   appCfg.APIPingTimeout,
		Short:  appCfg.APIShortTimeout,
		Medium: appCfg.APIMediumTimeout,
		Long:   appCfg.APILongTimeout,
	})

	return nil
}
