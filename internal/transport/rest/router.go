package rest

import (
	"database/sql"
	"log/slog"
	"strings"

	"github.com/go-chi/chi"
	"github.com/go-chi/cors"
	"github.com/tenanthub/company-management/internal/auth"
	"github.com/tenanthub/company-management/internal/company"
	"github.com/tenanthub/company-management/internal/invitation"
	"github.com/tenanthub/company-management/internal/role"
	"github.com/tenanthub/company-management/internal/transport/middleware"
	"github.com/tenanthub/company-management/internal/transport/openapi"
	"github.com/tenanthub/company-management/internal/user"
)

// Handlers groups every domain handler the router mounts.
type Handlers struct {
	Auth       *auth.Handler
	User       *user.Handler
	Company    *company.Handler
	Role       *role.Handler
	Invitation *invitation.Handler
}

// RegisterAllRoutes mounts the whole API surface under /api/v1.
func RegisterAllRoutes(router *chi.Mux, db *sql.DB, h Handlers, rbac *auth.RBACAuthorization, allowedOrigins string, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   splitOrigins(allowedOrigins),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Trace-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	// OpenAPI document and Swagger UI live outside the API prefix.
	router.Get("/openapi.yml", openapi.SpecHandler("./api/openapi.yml"))
	router.Handle("/swagger/*", openapi.SwaggerHandler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Route("/auth", func(sr chi.Router) {
			sr.Post("/login", h.Auth.Login)
			sr.Post("/register", h.Auth.Register)
			sr.Post("/join", h.Auth.Join)
			sr.Post("/refresh", h.Auth.RefreshToken)
			sr.Post("/logout", h.Auth.Logout)
		})

		// Protected routes that require authentication.
		r.Group(func(pr chi.Router) {
			pr.Use(h.Auth.AuthMiddleware)

			pr.Get("/users/me", h.User.GetCurrentUser)

			pr.Group(func(ur chi.Router) {
				ur.Use(rbac.RequirePermission("users:read"))
				ur.Get("/users", h.User.ListCompanyUsers)
			})

			pr.Route("/companies", func(cr chi.Router) {
				cr.Get("/current", h.Company.GetCurrent)

				cr.Group(func(mr chi.Router) {
					mr.Use(rbac.RequirePermission("company:manage"))
					mr.Patch("/current", h.Company.UpdateCurrent)
				})
			})

			pr.Route("/roles", func(rr chi.Router) {
				rr.Get("/", h.Role.ListRoles)

				rr.Group(func(mr chi.Router) {
					mr.Use(rbac.RequirePermission("roles:manage"))
					mr.Post("/", h.Role.CreateRole)
					mr.Post("/{name}/permissions", h.Role.AttachPermission)
				})
			})

			pr.Route("/permissions", func(rr chi.Router) {
				rr.Get("/", h.Role.ListPermissions)

				rr.Group(func(mr chi.Router) {
					mr.Use(rbac.RequirePermission("roles:manage"))
					mr.Post("/", h.Role.CreatePermission)
				})
			})

			pr.Route("/invitations", func(ir chi.Router) {
				ir.Use(rbac.RequirePermission("invitations:manage"))
				ir.Post("/", h.Invitation.CreateInvitation)
				ir.Get("/", h.Invitation.ListInvitations)
				ir.Delete("/{id}", h.Invitation.RevokeInvitation)
			})
		})
	})
}

func splitOrigins(allowedOrigins string) []string {
	if allowedOrigins == "" {
		return []string{"*"}
	}

	parts := strings.Split(allowedOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
