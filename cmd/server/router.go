package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/gobidev/ems-api/internal/api"
	apiMiddleware "github.com/gobidev/ems-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Create API handlers using the application's services
	authHandler := api.NewAuthHandler(app.employeeService)
	employeeHandler := api.NewEmployeeHandler(app.employeeService)
	roleHandler := api.NewRoleHandler(app.roleService)
	skillHandler := api.NewSkillHandler(app.skillService)
	accountHandler := api.NewAccountHandler(app.accountService)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api/v1", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			// Employee profile endpoints
			r.Post("/employees", employeeHandler.AddDetails)
			r.Get("/employees", employeeHandler.List)
			r.Get("/employees/{id}", employeeHandler.Get)
			r.Put("/employees", employeeHandler.Update)
			r.Delete("/employees/{id}", employeeHandler.Delete)

			// Role endpoints
			r.Post("/employees/{id}/role", roleHandler.Add)
			r.Get("/employees/{id}/role", roleHandler.Get)
			r.Put("/employees/{id}/role", roleHandler.Update)
			r.Delete("/employees/{id}/role", roleHandler.Delete)

			// Skill endpoints
			r.Post("/employees/{id}/skills", skillHandler.Add)
			r.Get("/employees/{id}/skills", skillHandler.List)
			r.Put("/skills", skillHandler.Update)
			r.Delete("/employees/{id}/skills", skillHandler.DeleteAll)
			r.Delete("/employees/{id}/skills/{skillId}", skillHandler.Delete)

			// Account endpoints
			r.Post("/employees/{id}/account", accountHandler.Add)
			r.Get("/employees/{id}/account", accountHandler.Get)
			r.Put("/employees/{id}/account", accountHandler.Update)
			r.Delete("/employees/{id}/account", accountHandler.Delete)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
