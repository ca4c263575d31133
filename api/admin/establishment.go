package admin

import (
	"net/http"

	"bigode_server/handling"
	"bigode_server/lib"
	"bigode_server/structs"

	"github.com/MonkyMars/gecho"
)

func (arm *AdminRoutesManager) HandleGetEstablishment(w http.ResponseWriter, r *http.Request) {
	establishment, err := arm.establishmentService.GetCurrent(r.Context())
	if err != nil {
		handling.HandleError(err, "Failed to fetch establishment", arm.logger, w)
		return
	}

	gecho.Success(w, gecho.WithData(establishment), gecho.Send())
}

func (arm *AdminRoutesManager) HandleUpdateEstablishment(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.EstablishmentRequest](r)
	if err != nil {
		arm.logger.Warn("Invalid establishment payload", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check the establishment fields"), gecho.Send())
		return
	}

	fields := map[string]any{
		"name":     body.Name,
		"logo_url": body.LogoURL,
		"phone":    body.Phone,
		"address":  body.Address,
	}
	if body.ThemeColor != "" {
		fields["theme_color"] = body.ThemeColor
	}

	establishment, err := arm.establishmentService.Update(r.Context(), fields)
	if err != nil {
		handling.HandleError(err, "Failed to update establishment", arm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Establishment updated"),
		gecho.WithData(establishment),
		gecho.Send(),
	)
}
