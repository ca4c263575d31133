package admin

import (
	"net/http"

	"bigode_server/handling"
	"bigode_server/lib"
	"bigode_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (arm *AdminRoutesManager) HandleListDrivers(w http.ResponseWriter, r *http.Request) {
	drivers, err := arm.deliveryService.ListDrivers(r.Context())
	if err != nil {
		handling.HandleError(err, "Failed to fetch drivers", arm.logger, w)
		return
	}

	gecho.Success(w, gecho.WithData(drivers), gecho.Send())
}

func (arm *AdminRoutesManager) HandleCreateDriver(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.DriverRequest](r)
	if err != nil {
		arm.logger.Warn("Invalid driver payload", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check the driver fields"), gecho.Send())
		return
	}

	driver, err := arm.deliveryService.CreateDriver(r.Context(), body)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage(err.Error()), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Driver created"),
		gecho.WithData(driver),
		gecho.Send(),
	)
}

func (arm *AdminRoutesManager) HandleUpdateDriver(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid driver id"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.DriverRequest](r)
	if err != nil {
		arm.logger.Warn("Invalid driver payload", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check the driver fields"), gecho.Send())
		return
	}

	driver, err := arm.deliveryService.UpdateDriver(r.Context(), id, body)
	if err != nil {
		gecho.NotFound(w, gecho.WithMessage(err.Error()), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Driver updated"),
		gecho.WithData(driver),
		gecho.Send(),
	)
}

func (arm *AdminRoutesManager) HandleDeleteDriver(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid driver id"), gecho.Send())
		return
	}

	if err := arm.deliveryService.DeleteDriver(r.Context(), id); err != nil {
		gecho.NotFound(w, gecho.WithMessage(err.Error()), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Driver deleted"),
		gecho.Send(),
	)
}

func (arm *AdminRoutesManager) HandleDriverSummaries(w http.ResponseWriter, r *http.Request) {
	summaries, err := arm.deliveryService.DriverSummaries(r.Context())
	if err != nil {
		handling.HandleError(err, "Failed to summarize drivers", arm.logger, w)
		return
	}

	gecho.Success(w, gecho.WithData(summaries), gecho.Send())
}
