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

	appanalytics "github.com/tu-usuario/inventario-kardex/internal/application/analytics"
	"github.com/tu-usuario/inventario-kardex/internal/application/auth"
	"github.com/tu-usuario/inventario-kardex/internal/application/importer"
	"github.com/tu-usuario/inventario-kardex/internal/application/inventory"
	"github.com/tu-usuario/inventario-kardex/internal/application/report"
	"github.com/tu-usuario/inventario-kardex/internal/application/usecase"
	"github.com/tu-usuario/inventario-kardex/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/inventario-kardex/internal/interfaces/http"
	"github.com/tu-usuario/inventario-kardex/pkg/config"
	"github.com/tu-usuario/inventario-kardex/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
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

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	registerMovementUC := inventory.NewRegisterMovementUseCase(txRunner, productRepo, locationRepo)
	traceUC := inventory.NewTraceUseCase(productRepo, movementRepo, stockRepo, userRepo, locationRepo)
	importProcessor := importer.NewProcessor(txRunner, registerMovementUC, locationRepo, log)
	productUC := usecase.NewProductUseCase(productRepo)
	locationUC := usecase.NewLocationUseCase(locationRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	reportUC := report.NewUseCase(movementRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo, stockRepo)
	authUC := auth.NewUseCase(userRepo, auth.Config{
		Secret:     cfg.JWT.Secret,
		Issuer:     cfg.JWT.Issuer,
		Expiration: cfg.JWT.Expiration,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	const swaggerFile = "./docs/swagger.json"
	if swaggerAvailable(swaggerFile) {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Inventario Kardex API",
		}))
	} else {
		log.Warn().Str("file", swaggerFile).Msg("swagger.json no encontrado, UI de docs deshabilitada")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:           authUC,
		ProductUC:        productUC,
		LocationUC:       locationUC,
		UserUC:           userUC,
		RegisterMovement: registerMovementUC,
		TraceUC:          traceUC,
		Importer:         importProcessor,
		ReportUC:         reportUC,
		DashboardUC:      dashboardUC,
		JWTSecret:        cfg.JWT.Secret,
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

// swaggerAvailable indica si existe el swagger.json generado. El middleware de
// swagger hace panic al arrancar si el archivo no está; sin él la API funciona
// igual, solo que sin UI de documentación.
func swaggerAvailable(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
