package admin

import (
	"net/http"

	"bigode_server/handling"
	"bigode_server/lib"
	"bigode_server/structs"
	"bigode_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (arm *AdminRoutesManager) HandleListDeliveries(w http.ResponseWriter, r *http.Request) {
	deliveries, err := arm.deliveryService.ListDeliveries(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		handling.HandleError(err, "Failed to fetch deliveries", arm.logger, w)
		return
	}

	gecho.Success(w, gecho.WithData(deliveries), gecho.Send())
}

func (arm *AdminRoutesManager) HandleCreateDelivery(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.DeliveryRequest](r)
	if err != nil {
		arm.logger.Warn("Invalid delivery payload", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check the delivery fields"), gecho.Send())
		return
	}

	delivery, err := arm.deliveryService.CreateDelivery(r.Context(), body)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage(err.Error()), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Delivery assigned"),
		gecho.WithData(delivery),
		gecho.Send(),
	)
}

func (arm *AdminRoutesManager) HandleUpdateDeliveryStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid delivery id"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.DeliveryStatusRequest](r)
	if err != nil {
		arm.logger.Warn("Invalid delivery status payload", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Invalid delivery status"), gecho.Send())
		return
	}

	delivery, err := arm.deliveryService.UpdateDeliveryStatus(r.Context(), id, tables.DeliveryStatus(body.Status))
	if err != nil {
		gecho.NotFound(w, gecho.WithMessage(err.Error()), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Delivery status updated"),
		gecho.WithData(delivery),
		gecho.Send(),
	)
}
