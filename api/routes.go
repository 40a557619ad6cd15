package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupRoutes wires the public site API, the token-protected admin API and
// the operational endpoints.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware, uploadDir string) {
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/metrics", promhttp.Handler())

	// Uploaded gallery files
	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadDir)))
	r.Get("/uploads/*", fileServer.ServeHTTP)

	r.Route("/api", func(r chi.Router) {
		r.Use(HTTPLoggingMiddleware)
		r.Use(MetricsMiddleware)

		// Auth endpoints
		r.Post("/auth/login", handlers.authHandler.login())
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.authenticate)
			r.Post("/auth/verify", handlers.authHandler.verify())
		})

		// Public site endpoints
		r.Get("/events", handlers.eventHandler.getAllEvents())
		r.Post("/events/{eventID}/register", handlers.eventHandler.registerForEvent())
		r.Get("/members", handlers.memberHandler.getCurrentMembers())
		r.Get("/projects", handlers.projectHandler.getCurrentProjects())
		r.Get("/projects/{projectID}", handlers.projectHandler.getProject())
		r.Get("/gallery", handlers.galleryHandler.getAllImages())
		r.Get("/metrics", handlers.metricHandler.getAllMetrics())

		// Admin endpoints, all behind the bearer-token check
		r.Route("/admin", func(r chi.Router) {
			r.Use(authMiddleware.authenticate)

			r.Post("/events", handlers.eventHandler.createEvent())
			r.Put("/events/{eventID}", handlers.eventHandler.updateEvent())
			r.Delete("/events/{eventID}", handlers.eventHandler.deleteEvent())
			r.Get("/events/{eventID}/registrations", handlers.eventHandler.getEventRegistrations())

			r.Post("/members", handlers.memberHandler.createMember())
			r.Put("/members/{memberID}", handlers.memberHandler.updateMember())
			r.Delete("/members/{memberID}", handlers.memberHandler.deleteMember())

			r.Post("/projects", handlers.projectHandler.createProject())
			r.Put("/projects/{projectID}", handlers.projectHandler.updateProject())
			r.Delete("/projects/{projectID}", handlers.projectHandler.deleteProject())

			r.Post("/gallery", handlers.galleryHandler.uploadImage())
			r.Delete("/gallery/{imageID}", handlers.galleryHandler.deleteImage())

			r.Post("/metrics", handlers.metricHandler.createMetric())
			r.Put("/metrics/{metricID}", handlers.metricHandler.updateMetric())
			r.Delete("/metrics/{metricID}", handlers.metricHandler.deleteMetric())
		})
	})
}
