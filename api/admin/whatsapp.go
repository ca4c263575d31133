package admin

import (
	"net/http"

	"bigode_server/lib"

	"github.com/MonkyMars/gecho"
)

type whatsAppLinkRequest struct {
	Phone   string `json:"phone" validate:"required,min=10,max=20"`
	Message string `json:"message" validate:"required,max=1000"`
}

// HandleCustomWhatsAppLink builds a wa.me link with a free-form message for
// the contact panel.
func (arm *AdminRoutesManager) HandleCustomWhatsAppLink(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[whatsAppLinkRequest](r)
	if err != nil {
		arm.logger.Warn("Invalid WhatsApp link payload", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check the phone and message"), gecho.Send())
		return
	}

	link, err := arm.whatsAppService.CustomLink(body.Phone, body.Message)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage(err.Error()), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]string{"link": link}),
		gecho.Send(),
	)
}
