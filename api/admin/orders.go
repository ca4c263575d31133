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

func (arm *AdminRoutesManager) HandleListOrders(w http.ResponseWriter, r *http.Request) {
	opts, err := handling.ParseOrderListOptions(r)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid query parameters"), gecho.Send())
		return
	}

	result, err := arm.orderService.ListOrders(r.Context(), opts)
	if err != nil {
		handling.HandleError(err, "Failed to fetch orders", arm.logger, w)
		return
	}

	gecho.Success(w, gecho.WithData(result), gecho.Send())
}

func (arm *AdminRoutesManager) HandleGetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid order id"), gecho.Send())
		return
	}

	order, err := arm.orderService.GetOrderWithItems(r.Context(), id)
	if err != nil {
		gecho.NotFound(w, gecho.WithMessage("Order not found"), gecho.Send())
		return
	}

	gecho.Success(w, gecho.WithData(order), gecho.Send())
}

func (arm *AdminRoutesManager) HandleKanban(w http.ResponseWriter, r *http.Request) {
	columns, err := arm.orderService.KanbanColumns(r.Context())
	if err != nil {
		handling.HandleError(err, "Failed to build kanban columns", arm.logger, w)
		return
	}

	gecho.Success(w, gecho.WithData(columns), gecho.Send())
}

func (arm *AdminRoutesManager) HandleUpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid order id"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.StatusUpdateRequest](r)
	if err != nil {
		arm.logger.Warn("Invalid status payload", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Invalid order status"), gecho.Send())
		return
	}

	order, err := arm.orderService.UpdateStatus(r.Context(), id, tables.OrderStatus(body.Status))
	if err != nil {
		gecho.NotFound(w, gecho.WithMessage(err.Error()), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Order status updated"),
		gecho.WithData(order),
		gecho.Send(),
	)
}

func (arm *AdminRoutesManager) HandleDeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid order id"), gecho.Send())
		return
	}

	if err := arm.orderService.DeleteOrder(r.Context(), id); err != nil {
		gecho.NotFound(w, gecho.WithMessage(err.Error()), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Order deleted"),
		gecho.Send(),
	)
}

// HandleOrderWhatsAppLink builds the wa.me link for the order's customer
// with the canned message for its current status.
func (arm *AdminRoutesManager) HandleOrderWhatsAppLink(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid order id"), gecho.Send())
		return
	}

	order, err := arm.orderService.GetOrderWithItems(r.Context(), id)
	if err != nil {
		gecho.NotFound(w, gecho.WithMessage("Order not found"), gecho.Send())
		return
	}

	link, err := arm.whatsAppService.OrderLink(order)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage(err.Error()), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]string{"link": link}),
		gecho.Send(),
	)
}
