package storefront

import (
	"net/http"

	"bigode_server/handling"

	"github.com/MonkyMars/gecho"
)

func (srm *StorefrontRoutesManager) HandleGetMenu(w http.ResponseWriter, r *http.Request) {
	menu, err := srm.catalogService.GetMenu(r.Context(), srm.establishmentService)
	if err != nil {
		handling.HandleError(err, "Failed to fetch menu", srm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(menu),
		gecho.Send(),
	)
}
