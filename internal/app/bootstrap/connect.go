// internal/app/bootstrap/connect.go
package bootstrap

import (
	"context"
	"net/http"

	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/remote"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// ConnectDB builds the fest API client that every feature handler shares.
//
// A failed reachability check is logged but does not abort startup: the
// portal degrades screen by screen when the API is down, and the /health
// endpoint reports the live state for orchestrators.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (APIDeps, error) {
	client := remote.New(appCfg.APIBaseURL, &http.Client{}, logger)

	pingCtx, cancel := context.WithTimeout(ctx, appCfg.APIPingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx); err != nil {
		logger.Warn("fest API not reachable at startup",
			zap.String("api_base_url", appCfg.APIBaseURL),
			zap.Error(err))
	} else {
		logger.Info("fest API reachable", zap.String("api_base_url", appCfg.APIBaseURL))
	}

	return APIDeps{FestAPI: client}, nil
}

// EnsureSchema is a no-op: the fest API owns all data and its schema.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps APIDeps, logger *zap.Logger) error {
	return nil
}
