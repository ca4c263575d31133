package realtime

import (
	"bigode_server/services"
	"bigode_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type RealtimeRoutesManager struct {
	logger          *gecho.Logger
	cfg             *structs.Config
	realtimeService *services.RealtimeService
}

func NewRealtimeRoutesManager(
	logger *gecho.Logger,
	cfg *structs.Config,
	realtimeService *services.RealtimeService,
) *RealtimeRoutesManager {
	return &RealtimeRoutesManager{
		logger:          logger,
		cfg:             cfg,
		realtimeService: realtimeService,
	}
}

func (rrm *RealtimeRoutesManager) RegisterRoutes(r chi.Router) {
	r.Get("/ws/orders", rrm.HandleOrdersFeed)
}
