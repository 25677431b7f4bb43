package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/centurialsign/sgpg-api/internal/audit"
	"github.com/centurialsign/sgpg-api/internal/cache"
	"github.com/centurialsign/sgpg-api/internal/config"
	"github.com/centurialsign/sgpg-api/internal/handlers"
	infraRepo "github.com/centurialsign/sgpg-api/internal/infra/repository"
	"github.com/centurialsign/sgpg-api/internal/middleware"
	"github.com/centurialsign/sgpg-api/internal/payments"
	"github.com/centurialsign/sgpg-api/internal/storage"
	ucOrder "github.com/centurialsign/sgpg-api/internal/usecase/order"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) error {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	orderRepo := infraRepo.NewServiceOrderGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	statsCache := cache.NewStatsCache(cfg.RedisAddr, cfg.RedisPassword)
	artworkStorage := storage.NewArtworkStorage(cfg)

	mp, err := payments.NewMercadoPago(cfg.MercadoPagoToken)
	if err != nil {
		return err
	}

	// ======================================================
	// 🧠 USE CASES — ORDENS DE SERVIÇO
	// ======================================================
	createOrderUC := ucOrder.NewCreateOrder(
		orderRepo,
		auditDispatcher,
	)

	updateOrderUC := ucOrder.NewUpdateOrder(
		orderRepo,
		auditDispatcher,
	)

	changeStatusUC := ucOrder.NewChangeStatus(
		orderRepo,
		nil, // guarda padrão: qualquer transição
		auditDispatcher,
	)

	deleteOrderUC := ucOrder.NewDeleteOrder(
		orderRepo,
		auditDispatcher,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	clientHandler := handlers.NewClientHandler(db, auditDispatcher)

	orderHandler := handlers.NewOrderHandler(
		orderRepo,
		createOrderUC,
		updateOrderUC,
		changeStatusUC,
		deleteOrderUC,
		statsCache,
		artworkStorage,
		mp,
		auditDispatcher,
	)

	dashboardHandler := handlers.NewDashboardHandler(orderRepo, statsCache)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/clients", clientHandler.List)
			secured.POST("/me/clients", clientHandler.Create)
			secured.PATCH("/me/clients/:id", clientHandler.Update)

			// ------------------------------
			// ORDENS DE SERVIÇO
			// ------------------------------
			secured.GET("/me/orders", orderHandler.List)
			secured.POST("/me/orders", orderHandler.Create)
			secured.GET("/me/orders/:id", orderHandler.Get)
			secured.PATCH("/me/orders/:id", orderHandler.Update)
			secured.PATCH("/me/orders/:id/status", orderHandler.ChangeStatus)
			secured.DELETE("/me/orders/:id", orderHandler.Delete)
			secured.GET("/me/orders/:id/history", orderHandler.History)
			secured.POST("/me/orders/:id/art", orderHandler.UploadArt)
			secured.POST("/me/orders/:id/payment-link", orderHandler.CreatePaymentLink)

			// ------------------------------
			// DASHBOARD
			// ------------------------------
			secured.GET("/me/dashboard/stats", dashboardHandler.Stats)
			secured.GET("/me/dashboard/activity", dashboardHandler.Activity)
			secured.GET("/me/dashboard/urgent", dashboardHandler.Urgent)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}

	return nil
}
