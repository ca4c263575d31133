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

func (arm *AdminRoutesManager) HandleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := arm.catalogService.ListCategories(r.Context())
	if err != nil {
		handling.HandleError(err, "Failed to fetch categories", arm.logger, w)
		return
	}

	gecho.Success(w, gecho.WithData(categories), gecho.Send())
}

func (arm *AdminRoutesManager) HandleCreateCategory(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.CategoryRequest](r)
	if err != nil {
		arm.logger.Warn("Invalid category payload", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check the category fields"), gecho.Send())
		return
	}

	establishment, err := arm.establishmentService.GetCurrent(r.Context())
	if err != nil {
		handling.HandleError(err, "Failed to resolve establishment", arm.logger, w)
		return
	}

	category, err := arm.catalogService.CreateCategory(r.Context(), body, establishment.Id)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage(err.Error()), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Category created"),
		gecho.WithData(category),
		gecho.Send(),
	)
}

func (arm *AdminRoutesManager) HandleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid category id"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.CategoryRequest](r)
	if err != nil {
		arm.logger.Warn("Invalid category payload", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check the category fields"), gecho.Send())
		return
	}

	category, err := arm.catalogService.UpdateCategory(r.Context(), id, body)
	if err != nil {
		gecho.NotFound(w, gecho.WithMessage(err.Error()), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Category updated"),
		gecho.WithData(category),
		gecho.Send(),
	)
}

func (arm *AdminRoutesManager) HandleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid category id"), gecho.Send())
		return
	}

	if err := arm.catalogService.DeleteCategory(r.Context(), id); err != nil {
		gecho.NotFound(w, gecho.WithMessage(err.Error()), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Category deleted"),
		gecho.Send(),
	)
}
