package app

import (
	"net/http"
	"time"

	"github.com/eslsoft/lingua/internal/adapter/httpapi"
	"github.com/eslsoft/lingua/internal/infrastructure/config"
)

func provideRewardLocation(cfg *config.Config) (*time.Location, error) {
	return cfg.RewardLocation()
}

func provideAPIRoutes(handler *httpapi.Handler) http.Handler {
	return handler.Routes()
}
