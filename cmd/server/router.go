package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/habitd/habitd/internal/auth"
	"github.com/habitd/habitd/internal/habit"
	"github.com/habitd/habitd/internal/status"
	"github.com/habitd/habitd/pkg/httpserver"
)

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(v)
}

type routerDeps struct {
	cfg       appConfig
	log       *slog.Logger
	authSvc   *auth.Service
	habitSvc  *habit.Service
	statusMod *status.Module
	readiness func(context.Context) error
}

func newRouter(deps routerDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.cfg.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// Infrastructure probe, outside the /api surface.
	r.Get("/healthz", httpserver.HealthCheckHandler(context.Background(), deps.log, deps.readiness))

	r.Route("/api", func(r chi.Router) {
		// Root and health return bare objects, not the data envelope, so
		// uptime checks can match on the exact body.
		r.Get("/", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(w, map[string]string{
				"message": deps.cfg.Name,
				"version": deps.cfg.Version,
			})
		})
		r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(w, map[string]string{"status": "healthy"})
		})

		r.Mount("/auth", auth.NewModule(deps.authSvc).Handle())

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAuth(deps.authSvc))
			r.Mount("/habits", habit.NewModule(deps.habitSvc).Handle())
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.OptionalAuth(deps.authSvc))
			r.Mount("/status", deps.statusMod.Handle())
		})
	})

	return r
}
