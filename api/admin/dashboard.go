package admin

import (
	"net/http"

	"bigode_server/handling"

	"github.com/MonkyMars/gecho"
)

func (arm *AdminRoutesManager) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := arm.dashboardService.Stats(r.Context())
	if err != nil {
		handling.HandleError(err, "Failed to compute dashboard stats", arm.logger, w)
		return
	}

	gecho.Success(w, gecho.WithData(stats), gecho.Send())
}
