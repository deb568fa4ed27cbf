package handlers

import (
	"net/http"

	"github.com/cesam-goiania/encontro-api/internal/auth"
	"github.com/cesam-goiania/encontro-api/internal/config"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func RegisterRoutes(r *chi.Mux, cfg *config.Config, authHandler *auth.AuthHandler,
	registrationHandler *RegistrationHandler, adminHandler *AdminHandler,
	exportHandler *ExportHandler, eventHandler *EventHandler) {

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	if cfg.EnableCORS {
		r.Use(corsMiddleware)
	}

	// Initialize Huma API
	humaConfig := huma.DefaultConfig("Encontro Pastoral API", "1.0.0")
	humaConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"cookieAuth": {
			Type: "apiKey",
			In:   "cookie",
			Name: auth.CookieName,
		},
	}
	api := humachi.New(r, humaConfig)

	secured := func(o *huma.Operation) {
		o.Security = []map[string][]string{{"cookieAuth": {}}}
	}

	// Public routes
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})
	huma.Get(api, "/event", eventHandler.HandleEventInfo)
	huma.Post(api, "/register", registrationHandler.HandleRegister)

	// Auth routes
	r.Post("/auth/login", authHandler.HandleLogin)
	r.Post("/auth/logout", authHandler.HandleLogout)
	huma.Get(api, "/auth/me", authHandler.HandleMe, secured)

	// Admin panel
	huma.Get(api, "/admin/participants", adminHandler.HandleList, secured)
	huma.Post(api, "/admin/participants", adminHandler.HandleCreate, secured)
	huma.Put(api, "/admin/participants/{id}", adminHandler.HandleUpdate, secured)
	huma.Delete(api, "/admin/participants/{id}", adminHandler.HandleDelete, secured)
	huma.Patch(api, "/admin/participants/{id}/consent", adminHandler.HandleSetConsent, secured)
	huma.Get(api, "/admin/summary", adminHandler.HandleSummary, secured)
	huma.Put(api, "/admin/capacity", adminHandler.HandleSetCapacity, secured)

	// File downloads go through the cookie middleware instead of huma.
	r.Group(func(r chi.Router) {
		r.Use(authHandler.AuthMiddleware)
		r.Get("/admin/export/csv", exportHandler.HandleCSV)
		r.Get("/admin/export/pdf", exportHandler.HandlePDF)
	})
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Cookie")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
