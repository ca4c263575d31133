package services

import (
	"bigode_server/database"
	"bigode_server/structs"

	"github.com/MonkyMars/gecho"
)

type ServiceManager struct {
	AuthService          *AuthService
	CacheService         *CacheService
	CatalogService       *CatalogService
	CustomerService      *CustomerService
	DashboardService     *DashboardService
	DeliveryService      *DeliveryService
	EstablishmentService *EstablishmentService
	HealthService        *HealthService
	NotificationService  *NotificationService
	OrderService         *OrderService
	RealtimeService      *RealtimeService
	ReportService        *ReportService
	StorageService       *StorageService
	WheelService         *WheelService
	WhatsAppService      *WhatsAppService
}

func NewServiceManager(logger *gecho.Logger, cfg *structs.Config, db *database.DB) *ServiceManager {
	cacheService := NewCacheService(logger, cfg)
	realtimeService := NewRealtimeService(logger)
	notificationService := NewNotificationService(logger, cfg)

	authService := NewAuthService(logger, cfg, db)
	catalogService := NewCatalogService(logger, db, cacheService)
	orderService := NewOrderService(logger, cfg, db, catalogService, realtimeService, notificationService)
	customerService := NewCustomerService(logger, db)
	dashboardService := NewDashboardService(logger, db, catalogService)
	deliveryService := NewDeliveryService(logger, db)
	establishmentService := NewEstablishmentService(logger, db)
	healthService := NewHealthService(logger, db, cacheService)
	reportService := NewReportService(logger, db)
	storageService := NewStorageService(logger, cfg)
	wheelService := NewWheelService(logger, db, cacheService)
	whatsAppService := NewWhatsAppService(logger)

	return &ServiceManager{
		AuthService:          authService,
		CacheService:         cacheService,
		CatalogService:       catalogService,
		CustomerService:      customerService,
		DashboardService:     dashboardService,
		DeliveryService:      deliveryService,
		EstablishmentService: establishmentService,
		HealthService:        healthService,
		NotificationService:  notificationService,
		OrderService:         orderService,
		RealtimeService:      realtimeService,
		ReportService:        reportService,
		StorageService:       storageService,
		WheelService:         wheelService,
		WhatsAppService:      whatsAppService,
	}
}
