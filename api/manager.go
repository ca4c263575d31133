package api

import (
	"bigode_server/api/admin"
	"bigode_server/api/auth"
	"bigode_server/api/health"
	"bigode_server/api/realtime"
	"bigode_server/api/storefront"

	"github.com/go-chi/chi/v5"
)

type routerManager struct {
	storefrontRoutes *storefront.StorefrontRoutesManager
	healthRoutes     *health.HealthRoutesManager
	authRoutes       *auth.AuthRoutesManager
	adminRoutes      *admin.AdminRoutesManager
	realtimeRoutes   *realtime.RealtimeRoutesManager
}

func NewRouterManager(
	storefrontRoutes *storefront.StorefrontRoutesManager,
	healthRoutes *health.HealthRoutesManager,
	authRoutes *auth.AuthRoutesManager,
	adminRoutes *admin.AdminRoutesManager,
	realtimeRoutes *realtime.RealtimeRoutesManager,
) *routerManager {
	return &routerManager{
		storefrontRoutes: storefrontRoutes,
		healthRoutes:     healthRoutes,
		authRoutes:       authRoutes,
		adminRoutes:      adminRoutes,
		realtimeRoutes:   realtimeRoutes,
	}
}

func (rm *routerManager) RegisterRoutes(r chi.Router) {
	rm.storefrontRoutes.RegisterRoutes(r)
	rm.healthRoutes.RegisterRoutes(r)
	rm.authRoutes.RegisterRoutes(r)
	rm.adminRoutes.RegisterRoutes(r)
	rm.realtimeRoutes.RegisterRoutes(r)
}
