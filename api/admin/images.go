package admin

import (
	"net/http"

	"github.com/MonkyMars/gecho"
)

// HandleUploadImage accepts a multipart product image and returns the public
// URL to store on the product. The 32 MB here bounds multipart parsing only;
// the storage service enforces the real image size cap.
func (arm *AdminRoutesManager) HandleUploadImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid multipart request"), gecho.Send())
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Missing image file"), gecho.Send())
		return
	}
	defer file.Close()

	url, err := arm.storageService.UploadProductImage(r.Context(), file, header.Size)
	if err != nil {
		arm.logger.Warn("Image upload rejected",
			gecho.Field("error", err),
			gecho.Field("filename", header.Filename),
		)
		gecho.BadRequest(w, gecho.WithMessage(err.Error()), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Image uploaded"),
		gecho.WithData(map[string]string{"url": url}),
		gecho.Send(),
	)
}
