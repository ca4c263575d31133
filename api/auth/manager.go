package auth

import (
	"bigode_server/api/middleware"
	"bigode_server/services"
	"bigode_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type AuthRoutesManager struct {
	logger      *gecho.Logger
	authService *services.AuthService
	cfg         *structs.Config
	mw          *middleware.Middleware
}

func NewAuthRoutesManager(
	logger *gecho.Logger,
	authService *services.AuthService,
	cfg *structs.Config,
	mw *middleware.Middleware,
) *AuthRoutesManager {
	return &AuthRoutesManager{
		logger:      logger,
		authService: authService,
		cfg:         cfg,
		mw:          mw,
	}
}

func (rrm *AuthRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		// Public routes
		r.Post("/login", rrm.HandleLogin)
		r.Post("/logout", rrm.HandleLogout)
		r.Post("/refresh", rrm.HandleRefresh)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(rrm.mw.UserAuthMiddleware)
			r.Get("/me", rrm.HandleMe)
		})
	})
}
