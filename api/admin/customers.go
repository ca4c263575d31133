package admin

import (
	"net/http"

	"bigode_server/handling"

	"github.com/MonkyMars/gecho"
)

func (arm *AdminRoutesManager) HandleListCustomers(w http.ResponseWriter, r *http.Request) {
	profiles, err := arm.customerService.ListProfiles(r.Context())
	if err != nil {
		handling.HandleError(err, "Failed to build customer profiles", arm.logger, w)
		return
	}

	gecho.Success(w, gecho.WithData(profiles), gecho.Send())
}

func (arm *AdminRoutesManager) HandleCustomerStats(w http.ResponseWriter, r *http.Request) {
	stats, err := arm.customerService.Stats(r.Context())
	if err != nil {
		handling.HandleError(err, "Failed to compute customer stats", arm.logger, w)
		return
	}

	gecho.Success(w, gecho.WithData(stats), gecho.Send())
}
