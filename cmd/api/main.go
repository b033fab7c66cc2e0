package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/mpilco/inventario-api/internal/application/auth"
	appforecast "github.com/mpilco/inventario-api/internal/application/forecast"
	"github.com/mpilco/inventario-api/internal/application/report"
	"github.com/mpilco/inventario-api/internal/application/usecase"
	infraforecast "github.com/mpilco/inventario-api/internal/infrastructure/forecast"
	"github.com/mpilco/inventario-api/internal/infrastructure/mailer"
	infrapdf "github.com/mpilco/inventario-api/internal/infrastructure/pdf"
	"github.com/mpilco/inventario-api/internal/infrastructure/postgres"
	httpRouter "github.com/mpilco/inventario-api/internal/interfaces/http"
	"github.com/mpilco/inventario-api/pkg/config"
	"github.com/mpilco/inventario-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	poRepo := postgres.NewPurchaseOrderRepository(pool)
	alertRepo := postgres.NewAlertRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Correo de alertas: deshabilitado si SMTP_HOST está vacío.
	var mailSender usecase.MailSender
	if cfg.SMTP.Host != "" {
		mailSender = mailer.NewGomailSender(cfg.SMTP, cfg.App.URL)
	} else {
		log.Warn().Msg("SMTP_HOST vacío, correo de alertas deshabilitado")
	}

	productUC := usecase.NewProductUseCase(productRepo)
	poUC := usecase.NewPurchaseOrderUseCase(txRunner, poRepo, productRepo)
	alertUC := usecase.NewAlertUseCase(alertRepo, mailSender, log)

	engine := infraforecast.NewPythonEngine(cfg.Forecast.PythonBin, cfg.Forecast.ScriptPath, cfg.Forecast.Timeout)
	forecastUC := appforecast.NewUseCase(productRepo, poRepo, engine, alertUC, log)

	ordersReportUC := report.NewOrdersReportUseCase(productRepo, poRepo, infrapdf.NewMarotoOrdersReport())

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventario API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:       productUC,
		PurchaseOrderUC: poUC,
		AlertUC:         alertUC,
		ForecastUC:      forecastUC,
		OrdersReportUC:  ordersReportUC,
		AuthUC:          authUC,
		JWTSecret:       cfg.JWT.Secret,
		Log:             log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
