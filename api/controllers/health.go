package controllers

import (
	"context"
	"net/http"

	"github.com/angelmondragon/lotflow-backend/api/responses"
	"github.com/angelmondragon/lotflow-backend/pkg/config"
	pkgerrors "github.com/angelmondragon/lotflow-backend/pkg/errors"
	"github.com/angelmondragon/lotflow-backend/pkg/logger"
)

const envHeader = "X-Lotflow-Env"

type pinger interface {
	Ping(ctx context.Context) error
}

// Dependency is a named backing service checked by the readiness check.
type Dependency struct {
	Name   string
	Pinger pinger
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings every dependency and reports 503 when any is unreachable.
func HealthReady(cfg *config.Config, logg *logger.Logger, deps ...Dependency) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		for _, dep := range deps {
			if dep.Pinger == nil {
				continue
			}
			if err := dep.Pinger.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, dep.Name+" unavailable"))
				return
			}
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
