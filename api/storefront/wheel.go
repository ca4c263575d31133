package storefront

import (
	"net/http"

	"bigode_server/api/health"
	"bigode_server/lib"
	"bigode_server/services"

	"github.com/MonkyMars/gecho"
)

func (srm *StorefrontRoutesManager) HandleGetSegments(w http.ResponseWriter, r *http.Request) {
	gecho.Success(w,
		gecho.WithData(services.WheelSegments),
		gecho.Send(),
	)
}

func (srm *StorefrontRoutesManager) HandleCheckEligibility(w http.ResponseWriter, r *http.Request) {
	eligibility, err := srm.wheelService.CheckEligibility(r.Context(), lib.ClientIP(r))
	if err != nil {
		srm.logger.Error("Failed to check spin eligibility", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage("Failed to check eligibility"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(eligibility),
		gecho.Send(),
	)
}

func (srm *StorefrontRoutesManager) HandleSpin(w http.ResponseWriter, r *http.Request) {
	result, err := srm.wheelService.Spin(r.Context(), lib.ClientIP(r))
	if err != nil {
		srm.logger.Warn("Spin rejected", gecho.Field("error", err), gecho.Field("ip", lib.ClientIP(r)))
		gecho.BadRequest(w, gecho.WithMessage(err.Error()), gecho.Send())
		return
	}

	health.WheelSpins.Inc()

	gecho.Success(w,
		gecho.WithMessage("You won!"),
		gecho.WithData(result),
		gecho.Send(),
	)
}
