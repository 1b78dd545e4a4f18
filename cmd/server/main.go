package main

import (
	"log"
	"strings"

	"kiosk-backend/internal/admin"
	"kiosk-backend/internal/assets"
	"kiosk-backend/internal/audit"
	"kiosk-backend/internal/auth"
	"kiosk-backend/internal/config"
	"kiosk-backend/internal/database"
	"kiosk-backend/internal/delivery"
	"kiosk-backend/internal/history"
	"kiosk-backend/internal/models"
	"kiosk-backend/internal/orders"
	"kiosk-backend/internal/search"
	"kiosk-backend/internal/stats"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	// Audit geri alma sonrası kiosk projeksiyonunun tazelenmesi
	audit.ResyncKiosk = history.ResyncAfterMutation

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Beklenmeyen sunucu hatası",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/register-super-admin", auth.RegisterSuperAdminHandler(cfg))
	api.Post("/auth/login", auth.LoginHandler(cfg))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())

	// Varlıklar
	protected.Get("/assets", assets.ListKiosksHandler())
	protected.Post("/assets", assets.CreateKioskHandler())
	protected.Post("/assets/bulk", assets.BulkImportHandler())
	protected.Post("/assets/sync-delivery-dates", assets.SyncDeliveryDatesHandler())
	protected.Get("/assets/:id", assets.GetKioskHandler())
	protected.Put("/assets/:id", assets.UpdateKioskHandler())
	protected.Delete("/assets/:id", assets.DeleteKioskHandler())

	// Hareket kayıtları + senkronizasyon
	protected.Get("/assets/:id/history", history.ListHistoryHandler())
	protected.Post("/assets/:id/history", history.AddHistoryHandler())
	protected.Post("/assets/:id/sync-latest", history.SyncLatestHandler())
	protected.Put("/history/:id", history.UpdateHistoryHandler())
	protected.Delete("/history/:id", history.DeleteHistoryHandler())

	// Sipariş süreçleri
	protected.Post("/order-processes", orders.CreateOrderProcessHandler())
	protected.Get("/order-processes", orders.ListOrderProcessesHandler())
	protected.Get("/order-processes/:id", orders.GetOrderProcessHandler())
	protected.Put("/order-processes/:id", orders.UpdateOrderProcessHandler())
	protected.Post("/order-processes/:id/complete-step", orders.CompleteStepHandler())
	protected.Delete("/order-processes/:id", orders.DeleteOrderProcessHandler())

	// Sevkiyat süreçleri
	protected.Post("/delivery-processes", delivery.CreateDeliveryProcessHandler())
	protected.Get("/delivery-processes", delivery.ListDeliveryProcessesHandler())
	protected.Get("/delivery-processes/:id", delivery.GetDeliveryProcessHandler())
	protected.Put("/delivery-processes/:id", delivery.UpdateDeliveryProcessHandler())
	protected.Post("/delivery-processes/:id/complete-step", delivery.CompleteStepHandler())
	protected.Delete("/delivery-processes/:id", delivery.DeleteDeliveryProcessHandler())
	protected.Get("/delivery-processes/:id/erp-request", delivery.ErpRequestHandler())
	protected.Get("/delivery-processes/:id/metrics-window", delivery.MetricsWindowHandler())

	// İstatistik ve arama
	protected.Get("/statistics", stats.StatisticsHandler())
	protected.Post("/ai-search", search.AiSearchHandler())
	protected.Get("/ai-search", search.SearchStatsHandler())

	// Denetim kayıtları
	protected.Get("/audit-logs", audit.ListAuditLogsHandler())
	protected.Post("/audit-logs/:id/undo", audit.UndoAuditLogHandler())

	// Super admin routes
	adminRoutes := protected.Group("/admin")
	adminRoutes.Use(auth.RequireRole(models.RoleSuperAdmin))

	adminRoutes.Post("/operators", auth.CreateOperatorHandler())

	// Bayi yönetimi
	adminRoutes.Post("/partners", admin.CreatePartnerHandler())
	adminRoutes.Get("/partners", admin.ListPartnersHandler())
	adminRoutes.Get("/partners/:id", admin.GetPartnerHandler())
	adminRoutes.Put("/partners/:id", admin.UpdatePartnerHandler())
	adminRoutes.Delete("/partners/:id", admin.DeletePartnerHandler())

	// FC ve şirketler
	adminRoutes.Post("/fcs", admin.CreateFCHandler())
	adminRoutes.Get("/fcs", admin.ListFCsHandler())
	adminRoutes.Put("/fcs/:id", admin.UpdateFCHandler())
	adminRoutes.Delete("/fcs/:id", admin.DeleteFCHandler())
	adminRoutes.Post("/corporations", admin.CreateCorporationHandler())
	adminRoutes.Get("/corporations", admin.ListCorporationsHandler())
	adminRoutes.Put("/corporations/:id", admin.UpdateCorporationHandler())
	adminRoutes.Delete("/corporations/:id", admin.DeleteCorporationHandler())

	// Şube yönetimi
	adminRoutes.Post("/branches", admin.CreateBranchHandler())
	adminRoutes.Get("/branches", admin.ListBranchesHandler())
	adminRoutes.Get("/branches/:id", admin.GetBranchHandler())
	adminRoutes.Put("/branches/:id", admin.UpdateBranchHandler())
	adminRoutes.Delete("/branches/:id", admin.DeleteBranchHandler())

	// Bölge / bölge ofisi
	adminRoutes.Post("/regions", admin.CreateRegionHandler())
	adminRoutes.Get("/regions", admin.ListRegionsHandler())
	adminRoutes.Put("/regions/:id", admin.UpdateRegionHandler())
	adminRoutes.Delete("/regions/:id", admin.DeleteRegionHandler())
	adminRoutes.Post("/areas", admin.CreateAreaHandler())
	adminRoutes.Get("/areas", admin.ListAreasHandler())
	adminRoutes.Put("/areas/:id", admin.UpdateAreaHandler())
	adminRoutes.Delete("/areas/:id", admin.DeleteAreaHandler())

	// Leasing şirketleri
	adminRoutes.Post("/lease-companies", admin.CreateLeaseCompanyHandler())
	adminRoutes.Get("/lease-companies", admin.ListLeaseCompaniesHandler())
	adminRoutes.Put("/lease-companies/:id", admin.UpdateLeaseCompanyHandler())
	adminRoutes.Delete("/lease-companies/:id", admin.DeleteLeaseCompanyHandler())

	log.Printf("Sunucu %s portunda dinliyor", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
