package storefront

import (
	"net/http"

	"bigode_server/api/health"
	"bigode_server/lib"
	"bigode_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (srm *StorefrontRoutesManager) HandleCreateOrder(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.OrderRequest](r)
	if err != nil {
		srm.logger.Warn("Invalid checkout payload", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check your order and try again"), gecho.Send())
		return
	}

	establishment, err := srm.establishmentService.GetCurrent(r.Context())
	if err != nil {
		gecho.InternalServerError(w, gecho.WithMessage("Store is not available right now"), gecho.Send())
		return
	}

	order, err := srm.orderService.CreateOrder(r.Context(), body, establishment.Id)
	if err != nil {
		srm.logger.Warn("Checkout rejected", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage(err.Error()), gecho.Send())
		return
	}

	health.OrdersCreated.Inc()

	gecho.Success(w,
		gecho.WithMessage("Order placed"),
		gecho.WithData(order),
		gecho.Send(),
	)
}

// HandleTrackOrder is the public tracking page lookup. The order id works as
// a capability: anyone with the UUID can see the order, nobody can list them.
func (srm *StorefrontRoutesManager) HandleTrackOrder(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid order id"), gecho.Send())
		return
	}

	order, err := srm.orderService.GetOrderWithItems(r.Context(), id)
	if err != nil {
		gecho.NotFound(w, gecho.WithMessage("Order not found"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(order),
		gecho.Send(),
	)
}
