package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mpilco/inventario-api/internal/application/auth"
	"github.com/mpilco/inventario-api/internal/application/forecast"
	"github.com/mpilco/inventario-api/internal/application/report"
	"github.com/mpilco/inventario-api/internal/application/usecase"
	"github.com/mpilco/inventario-api/internal/domain/entity"
	"github.com/mpilco/inventario-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC       *usecase.ProductUseCase
	PurchaseOrderUC *usecase.PurchaseOrderUseCase
	AlertUC         *usecase.AlertUseCase
	ForecastUC      *forecast.UseCase
	OrdersReportUC  *report.OrdersReportUseCase
	AuthUC          *auth.AuthUseCase
	JWTSecret       string
	Log             *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido; altas y bajas solo para admin)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.Log)
	products.Get("/", productHandler.List)
	products.Get("/:codigo", productHandler.GetByCodigo)
	products.Post("/", RequireRole(entity.RoleAdmin), productHandler.Create)
	products.Put("/:codigo", RequireRole(entity.RoleAdmin), productHandler.Update)
	products.Delete("/:codigo", RequireRole(entity.RoleAdmin), productHandler.Delete)

	// Purchase orders (protegido), anidadas bajo el producto
	poHandler := NewPurchaseOrderHandler(deps.PurchaseOrderUC, deps.Log)
	products.Post("/:codigo/orders", poHandler.Submit)
	products.Get("/:codigo/orders", poHandler.ListByProduct)
	products.Get("/:codigo/orders/report", NewReportHandler(deps.OrdersReportUC, deps.Log).OrdersReport)
	products.Get("/:codigo/orders/:mes/:anio", poHandler.GetByKey)
	products.Post("/:codigo/orders/:mes/:anio/cancel", poHandler.Cancel)
	products.Delete("/:codigo/orders/:mes/:anio", RequireRole(entity.RoleAdmin), poHandler.Delete)

	// Forecast (protegido)
	forecastHandler := NewForecastHandler(deps.ForecastUC, deps.Log)
	products.Get("/:codigo/forecast", forecastHandler.Forecast)

	// Alerts (protegido)
	alerts := protected.Group("/alerts")
	alertHandler := NewAlertHandler(deps.AlertUC, deps.Log)
	alerts.Get("/", alertHandler.List)
	alerts.Post("/:id/read", alertHandler.MarkRead)
}
