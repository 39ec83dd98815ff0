package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/venture-studio/engine/internal/api/handlers"
	mw "github.com/venture-studio/engine/internal/api/middleware"
	"github.com/venture-studio/engine/internal/services"
)

type Dependencies struct {
	Auth             services.AuthService
	AuthHandler      *handlers.AuthHandler
	VenturesHandler  *handlers.VenturesHandler
	DocumentsHandler *handlers.DocumentsHandler
	DashboardHandler *handlers.DashboardHandler
	AuditHandler     *handlers.AuditHandler
	RateLimitRPS     float64
	RateLimitBurst   int
}

func NewRouter(dep Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(mw.RequestID)
	r.Use(mw.Recovery)
	r.Use(mw.Metrics)
	r.Use(mw.Logging)
	r.Use(mw.CORS)
	r.Use(mw.RateLimit(dep.RateLimitRPS, dep.RateLimitBurst))

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(api chi.Router) {
		hh := handlers.NewHealthHandler()
		api.Get("/health", hh.Liveness)

		// Auth routes (public)
		api.Route("/auth", func(ar chi.Router) {
			ar.Post("/register", dep.AuthHandler.Register)
			ar.Post("/login", dep.AuthHandler.Login)
		})

		// Protected routes
		api.Group(func(protected chi.Router) {
			protected.Use(mw.Auth(dep.Auth))

			protected.Get("/dashboard/stats", dep.DashboardHandler.Stats)

			protected.Route("/ventures", func(vr chi.Router) {
				vr.Get("/", dep.VenturesHandler.List)
				vr.Post("/", dep.VenturesHandler.Create)
				vr.Get("/analytics", dep.VenturesHandler.Analytics)
				vr.Put("/{id}", dep.VenturesHandler.Update)
				vr.Delete("/{id}", dep.VenturesHandler.Delete)
			})

			protected.Route("/documents", func(dr chi.Router) {
				dr.Get("/", dep.DocumentsHandler.List)
				dr.Post("/", dep.DocumentsHandler.Create)
				dr.Get("/{id}", dep.DocumentsHandler.Get)
				dr.Get("/{id}/signatures", dep.DocumentsHandler.ListSignatures)
			})

			protected.Post("/signatures", dep.DocumentsHandler.Sign)

			protected.Get("/audit-trails", dep.AuditHandler.Trail)
		})
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeEnvelope(w, http.StatusNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeEnvelope(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	return r
}

func writeEnvelope(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"success":false,"error":"` + msg + `"}`))
}
