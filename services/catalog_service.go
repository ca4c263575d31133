package services

import (
	"context"
	"fmt"
	"time"

	"bigode_server/database"
	"bigode_server/structs"
	"bigode_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CatalogService owns categories and products. Mutations invalidate the
// storefront menu cache.
type CatalogService struct {
	logger       *gecho.Logger
	db           *database.DB
	cacheService *CacheService
}

func NewCatalogService(logger *gecho.Logger, db *database.DB, cacheService *CacheService) *CatalogService {
	return &CatalogService{
		logger:       logger,
		db:           db,
		cacheService: cacheService,
	}
}

// Menu is the composed public storefront payload.
type Menu struct {
	Establishment *tables.Establishment `json:"establishment"`
	Categories    []tables.Category     `json:"categories"`
	Products      []tables.Product      `json:"products"`
}

// GetMenu returns the public menu: the establishment, all categories, and
// active products only. Served from cache when possible.
func (cs *CatalogService) GetMenu(ctx context.Context, establishmentService *EstablishmentService) (*Menu, error) {
	var cached Menu
	hit, err := cs.cacheService.GetJSON(MenuCacheKey, &cached)
	if err != nil {
		cs.logger.Warn("Failed to read menu cache", gecho.Field("error", err))
	} else if hit {
		return &cached, nil
	}

	establishment, err := establishmentService.GetCurrent(ctx)
	if err != nil {
		return nil, err
	}

	categories, err := cs.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	products, err := database.Query[tables.Product](cs.db).
		Where("active", true).
		OrderBy("name", database.ASC).
		Timeout(5 * time.Second).
		All(ctx)
	if err != nil {
		cs.logger.Error("Failed to fetch active products", gecho.Field("error", err))
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	menu := &Menu{
		Establishment: establishment,
		Categories:    categories,
		Products:      products,
	}

	if err := cs.cacheService.SetJSON(MenuCacheKey, menu, cs.cacheService.config.Cache.MenuTTL); err != nil {
		cs.logger.Warn("Failed to cache menu", gecho.Field("error", err))
	}

	return menu, nil
}

func (cs *CatalogService) ListCategories(ctx context.Context) ([]tables.Category, error) {
	categories, err := database.Query[tables.Category](cs.db).
		OrderBy("name", database.ASC).
		Timeout(5 * time.Second).
		All(ctx)
	if err != nil {
		cs.logger.Error("Failed to fetch categories", gecho.Field("error", err))
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	return categories, nil
}

func (cs *CatalogService) CreateCategory(ctx context.Context, req *structs.CategoryRequest, establishmentId uuid.UUID) (*tables.Category, error) {
	category := &tables.Category{
		Id:              uuid.New(),
		Name:            req.Name,
		Description:     req.Description,
		EstablishmentId: establishmentId,
		CreatedAt:       time.Now(),
	}

	created, err := database.Query[tables.Category](cs.db).Insert(ctx, category)
	if err != nil {
		cs.logger.Error("Failed to create category", gecho.Field("error", err), gecho.Field("name", req.Name))
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	cs.cacheService.InvalidateMenu()
	return created, nil
}

func (cs *CatalogService) UpdateCategory(ctx context.Context, id uuid.UUID, req *structs.CategoryRequest) (*tables.Category, error) {
	rows, err := database.Query[tables.Category](cs.db).
		Where("id", id).
		UpdateReturning(ctx, map[string]any{
			"name":        req.Name,
			"description": req.Description,
		})
	if err != nil {
		cs.logger.Error("Failed to update category", gecho.Field("error", err), gecho.Field("id", id))
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("category not found")
	}

	cs.cacheService.InvalidateMenu()
	return &rows[0], nil
}

// DeleteCategory removes the category row only. Products referencing it keep
// their category_id; there is no cascade and no FK enforcement on this path,
// matching the storefront's tolerance for dangling references.
func (cs *CatalogService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	affected, err := database.Query[tables.Category](cs.db).
		Where("id", id).
		Delete(ctx)
	if err != nil {
		cs.logger.Error("Failed to delete category", gecho.Field("error", err), gecho.Field("id", id))
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("category not found")
	}

	cs.cacheService.InvalidateMenu()
	return nil
}

// ProductListOptions filters the admin product list.
type ProductListOptions struct {
	CategoryId *uuid.UUID
	Active     *bool
	Search     string
	Page       int
	PageSize   int
}

func (cs *CatalogService) ListProducts(ctx context.Context, opts *ProductListOptions) (*database.PaginationResult[tables.Product], error) {
	if opts == nil {
		opts = &ProductListOptions{}
	}

	query := database.Query[tables.Product](cs.db).
		OrderBy("created_at", database.DESC).
		Timeout(10 * time.Second)

	if opts.CategoryId != nil {
		query = query.Where("category_id", *opts.CategoryId)
	}
	if opts.Active != nil {
		query = query.Where("active", *opts.Active)
	}
	if opts.Search != "" {
		query = query.WhereLike("name", "%"+opts.Search+"%")
	}

	result, err := database.Paginate(query, ctx, opts.Page, opts.PageSize)
	if err != nil {
		cs.logger.Error("Failed to fetch products", gecho.Field("error", err))
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	return result, nil
}

func (cs *CatalogService) GetProductByID(ctx context.Context, id uuid.UUID) (*tables.Product, error) {
	product, err := database.Query[tables.Product](cs.db).
		Where("id", id).
		Timeout(5 * time.Second).
		First(ctx)
	if err != nil {
		cs.logger.Error("Failed to fetch product", gecho.Field("error", err), gecho.Field("id", id))
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}
	if product == nil {
		return nil, fmt.Errorf("product not found")
	}
	return product, nil
}

// GetProductsByIds fetches the product rows referenced by a checkout cart.
func (cs *CatalogService) GetProductsByIds(ctx context.Context, ids []uuid.UUID) ([]tables.Product, error) {
	values := make([]any, len(ids))
	for i, id := range ids {
		values[i] = id
	}

	products, err := database.Query[tables.Product](cs.db).
		WhereIn("id", values).
		Timeout(5 * time.Second).
		All(ctx)
	if err != nil {
		cs.logger.Error("Failed to fetch products by ids", gecho.Field("error", err))
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	return products, nil
}

func (cs *CatalogService) CreateProduct(ctx context.Context, req *structs.ProductRequest, establishmentId uuid.UUID) (*tables.Product, error) {
	price, cost, categoryId, err := parseProductFields(req)
	if err != nil {
		return nil, err
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	now := time.Now()
	product := &tables.Product{
		Id:              uuid.New(),
		Name:            req.Name,
		Description:     req.Description,
		Price:           price,
		Cost:            cost,
		Stock:           req.Stock,
		ImageURL:        req.ImageURL,
		CategoryId:      categoryId,
		EstablishmentId: establishmentId,
		Active:          active,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := database.Query[tables.Product](cs.db).Insert(ctx, product)
	if err != nil {
		cs.logger.Error("Failed to create product", gecho.Field("error", err), gecho.Field("name", req.Name))
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	cs.cacheService.InvalidateMenu()
	return created, nil
}

func (cs *CatalogService) UpdateProduct(ctx context.Context, id uuid.UUID, req *structs.ProductRequest) (*tables.Product, error) {
	price, cost, categoryId, err := parseProductFields(req)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{
		"name":        req.Name,
		"description": req.Description,
		"price":       price,
		"cost":        cost,
		"stock":       req.Stock,
		"image_url":   req.ImageURL,
		"category_id": categoryId,
		"updated_at":  time.Now(),
	}
	if req.Active != nil {
		fields["active"] = *req.Active
	}

	rows, err := database.Query[tables.Product](cs.db).
		Where("id", id).
		UpdateReturning(ctx, fields)
	if err != nil {
		cs.logger.Error("Failed to update product", gecho.Field("error", err), gecho.Field("id", id))
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("product not found")
	}

	cs.cacheService.InvalidateMenu()
	return &rows[0], nil
}

// DeleteProduct removes the product row and returns the image URL that was
// attached to it, so the caller can attempt storage cleanup afterwards.
func (cs *CatalogService) DeleteProduct(ctx context.Context, id uuid.UUID) (imageURL string, err error) {
	rows, err := database.Query[tables.Product](cs.db).
		Where("id", id).
		DeleteReturning(ctx)
	if err != nil {
		cs.logger.Error("Failed to delete product", gecho.Field("error", err), gecho.Field("id", id))
		return "", fmt.Errorf("failed to delete product: %w", err)
	}
	if len(rows) == 0 {
		return "", fmt.Errorf("product not found")
	}

	cs.cacheService.InvalidateMenu()
	return rows[0].ImageURL, nil
}

// CountProducts and CountCategories back the dashboard cards.
func (cs *CatalogService) CountProducts(ctx context.Context) (int, error) {
	return database.Query[tables.Product](cs.db).Count(ctx)
}

func (cs *CatalogService) CountCategories(ctx context.Context) (int, error) {
	return database.Query[tables.Category](cs.db).Count(ctx)
}

// CountLowStock counts products at or below the low-stock threshold the
// dashboard highlights.
func (cs *CatalogService) CountLowStock(ctx context.Context, threshold int) (int, error) {
	return database.Query[tables.Product](cs.db).
		WhereOp("stock", "<=", threshold).
		Where("active", true).
		Count(ctx)
}

func parseProductFields(req *structs.ProductRequest) (price, cost decimal.Decimal, categoryId uuid.UUID, err error) {
	price, err = decimal.NewFromString(req.Price)
	if err != nil || price.IsNegative() {
		return decimal.Zero, decimal.Zero, uuid.Nil, fmt.Errorf("invalid price: %q", req.Price)
	}

	cost = decimal.Zero
	if req.Cost != "" {
		cost, err = decimal.NewFromString(req.Cost)
		if err != nil || cost.IsNegative() {
			return decimal.Zero, decimal.Zero, uuid.Nil, fmt.Errorf("invalid cost: %q", req.Cost)
		}
	}

	categoryId, err = uuid.Parse(req.CategoryId)
	if err != nil {
		return decimal.Zero, decimal.Zero, uuid.Nil, fmt.Errorf("invalid category id: %q", req.CategoryId)
	}

	return price, cost, categoryId, nil
}
