// internal/app/bootstrap/shutdown.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Shutdown cleanly tears down back-end clients and other resources.
func Shutdown(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps APIDeps, logger *zap.Logger) error {
	if deps.FestAPI != nil {
		logger.Info("closing fest API client")
		deps.FestAPI.Close()
	}
	return nil
}
