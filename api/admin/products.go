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

func (arm *AdminRoutesManager) HandleListProducts(w http.ResponseWriter, r *http.Request) {
	opts, err := handling.ParseProductListOptions(r)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid query parameters"), gecho.Send())
		return
	}

	result, err := arm.catalogService.ListProducts(r.Context(), opts)
	if err != nil {
		handling.HandleError(err, "Failed to fetch products", arm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(result),
		gecho.Send(),
	)
}

func (arm *AdminRoutesManager) HandleGetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid product id"), gecho.Send())
		return
	}

	product, err := arm.catalogService.GetProductByID(r.Context(), id)
	if err != nil {
		gecho.NotFound(w, gecho.WithMessage("Product not found"), gecho.Send())
		return
	}

	gecho.Success(w, gecho.WithData(product), gecho.Send())
}

func (arm *AdminRoutesManager) HandleCreateProduct(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.ProductRequest](r)
	if err != nil {
		arm.logger.Warn("Invalid product payload", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check the product fields"), gecho.Send())
		return
	}

	establishment, err := arm.establishmentService.GetCurrent(r.Context())
	if err != nil {
		handling.HandleError(err, "Failed to resolve establishment", arm.logger, w)
		return
	}

	product, err := arm.catalogService.CreateProduct(r.Context(), body, establishment.Id)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage(err.Error()), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Product created"),
		gecho.WithData(product),
		gecho.Send(),
	)
}

func (arm *AdminRoutesManager) HandleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid product id"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.ProductRequest](r)
	if err != nil {
		arm.logger.Warn("Invalid product payload", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check the product fields"), gecho.Send())
		return
	}

	product, err := arm.catalogService.UpdateProduct(r.Context(), id, body)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage(err.Error()), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Product updated"),
		gecho.WithData(product),
		gecho.Send(),
	)
}

// HandleDeleteProduct removes the product row first, then tries to clean up
// the stored image. Storage cleanup failures never surface to the caller.
func (arm *AdminRoutesManager) HandleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid product id"), gecho.Send())
		return
	}

	imageURL, err := arm.catalogService.DeleteProduct(r.Context(), id)
	if err != nil {
		gecho.NotFound(w, gecho.WithMessage(err.Error()), gecho.Send())
		return
	}

	if imageURL != "" {
		arm.storageService.DeleteImage(r.Context(), imageURL)
	}

	gecho.Success(w,
		gecho.WithMessage("Product deleted"),
		gecho.Send(),
	)
}
