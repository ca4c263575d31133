package storefront

import (
	"bigode_server/services"
	"bigode_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// StorefrontRoutesManager serves the public, unauthenticated surface: the
// menu, checkout, order tracking, and the promotional wheel.
type StorefrontRoutesManager struct {
	logger               *gecho.Logger
	cfg                  *structs.Config
	catalogService       *services.CatalogService
	establishmentService *services.EstablishmentService
	orderService         *services.OrderService
	wheelService         *services.WheelService
}

func NewStorefrontRoutesManager(
	logger *gecho.Logger,
	cfg *structs.Config,
	catalogService *services.CatalogService,
	establishmentService *services.EstablishmentService,
	orderService *services.OrderService,
	wheelService *services.WheelService,
) *StorefrontRoutesManager {
	return &StorefrontRoutesManager{
		logger:               logger,
		cfg:                  cfg,
		catalogService:       catalogService,
		establishmentService: establishmentService,
		orderService:         orderService,
		wheelService:         wheelService,
	}
}

func (srm *StorefrontRoutesManager) RegisterRoutes(r chi.Router) {
	r.Get("/menu", srm.HandleGetMenu)

	r.Route("/orders", func(r chi.Router) {
		r.Post("/", srm.HandleCreateOrder)
		r.Get("/{id}/track", srm.HandleTrackOrder)
	})

	r.Route("/wheel", func(r chi.Router) {
		r.Get("/segments", srm.HandleGetSegments)
		r.Get("/eligibility", srm.HandleCheckEligibility)
		r.Post("/spin", srm.HandleSpin)
	})
}
