package admin

import (
	"bigode_server/api/middleware"
	"bigode_server/services"
	"bigode_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// AdminRoutesManager mounts the back-office surface under /admin. Everything
// here sits behind staff auth; destructive operations additionally require
// the admin role.
type AdminRoutesManager struct {
	logger               *gecho.Logger
	cfg                  *structs.Config
	catalogService       *services.CatalogService
	customerService      *services.CustomerService
	dashboardService     *services.DashboardService
	deliveryService      *services.DeliveryService
	establishmentService *services.EstablishmentService
	orderService         *services.OrderService
	reportService        *services.ReportService
	storageService       *services.StorageService
	whatsAppService      *services.WhatsAppService
	mw                   *middleware.Middleware
}

func NewAdminRoutesManager(
	logger *gecho.Logger,
	cfg *structs.Config,
	sm *services.ServiceManager,
	mw *middleware.Middleware,
) *AdminRoutesManager {
	return &AdminRoutesManager{
		logger:               logger,
		cfg:                  cfg,
		catalogService:       sm.CatalogService,
		customerService:      sm.CustomerService,
		dashboardService:     sm.DashboardService,
		deliveryService:      sm.DeliveryService,
		establishmentService: sm.EstablishmentService,
		orderService:         sm.OrderService,
		reportService:        sm.ReportService,
		storageService:       sm.StorageService,
		whatsAppService:      sm.WhatsAppService,
		mw:                   mw,
	}
}

func (arm *AdminRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		r.Use(arm.mw.UserAuthMiddleware)

		r.Get("/dashboard", arm.HandleDashboard)

		r.Route("/products", func(r chi.Router) {
			r.Get("/", arm.HandleListProducts)
			r.Post("/", arm.HandleCreateProduct)
			r.Post("/images", arm.HandleUploadImage)
			r.Get("/{id}", arm.HandleGetProduct)
			r.Put("/{id}", arm.HandleUpdateProduct)
			r.With(arm.mw.AdminAuthMiddleware).Delete("/{id}", arm.HandleDeleteProduct)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", arm.HandleListCategories)
			r.Post("/", arm.HandleCreateCategory)
			r.Put("/{id}", arm.HandleUpdateCategory)
			r.With(arm.mw.AdminAuthMiddleware).Delete("/{id}", arm.HandleDeleteCategory)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", arm.HandleListOrders)
			r.Get("/kanban", arm.HandleKanban)
			r.Get("/{id}", arm.HandleGetOrder)
			r.Patch("/{id}/status", arm.HandleUpdateOrderStatus)
			r.Get("/{id}/whatsapp", arm.HandleOrderWhatsAppLink)
			r.With(arm.mw.AdminAuthMiddleware).Delete("/{id}", arm.HandleDeleteOrder)
		})

		r.Route("/drivers", func(r chi.Router) {
			r.Get("/", arm.HandleListDrivers)
			r.Post("/", arm.HandleCreateDriver)
			r.Get("/summary", arm.HandleDriverSummaries)
			r.Put("/{id}", arm.HandleUpdateDriver)
			r.With(arm.mw.AdminAuthMiddleware).Delete("/{id}", arm.HandleDeleteDriver)
		})

		r.Route("/deliveries", func(r chi.Router) {
			r.Get("/", arm.HandleListDeliveries)
			r.Post("/", arm.HandleCreateDelivery)
			r.Patch("/{id}/status", arm.HandleUpdateDeliveryStatus)
		})

		r.Route("/customers", func(r chi.Router) {
			r.Get("/", arm.HandleListCustomers)
			r.Get("/stats", arm.HandleCustomerStats)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/", arm.HandleReport)
			r.Get("/export", arm.HandleExportReport)
		})

		r.Route("/establishment", func(r chi.Router) {
			r.Get("/", arm.HandleGetEstablishment)
			r.Put("/", arm.HandleUpdateEstablishment)
		})

		r.Post("/whatsapp/link", arm.HandleCustomWhatsAppLink)
	})
}
