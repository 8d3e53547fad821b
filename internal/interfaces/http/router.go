package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/inventario-kardex/internal/application/analytics"
	"github.com/tu-usuario/inventario-kardex/internal/application/auth"
	"github.com/tu-usuario/inventario-kardex/internal/application/importer"
	"github.com/tu-usuario/inventario-kardex/internal/application/inventory"
	"github.com/tu-usuario/inventario-kardex/internal/application/report"
	"github.com/tu-usuario/inventario-kardex/internal/application/usecase"
	"github.com/tu-usuario/inventario-kardex/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC           *auth.UseCase
	ProductUC        *usecase.ProductUseCase
	LocationUC       *usecase.LocationUseCase
	UserUC           *usecase.UserUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	TraceUC          *inventory.TraceUseCase
	Importer         *importer.Processor
	ReportUC         *report.UseCase
	DashboardUC      *analytics.DashboardUseCase
	JWTSecret        string
}

// Router registra las rutas de la API. Lecturas con cualquier perfil
// autenticado; movimientos y cargas masivas requieren opera; catálogo,
// ubicaciones y usuarios requieren admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Productos
	products := protected.Group("/productos")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/buscar", productHandler.Search)
	products.Get("/:cod_venta", productHandler.GetBySaleCode)
	products.Post("/", RequireRole(entity.RoleAdmin), productHandler.Save)
	products.Delete("/:cod_venta", RequireRole(entity.RoleAdmin), productHandler.Delete)

	// Ubicaciones
	locations := protected.Group("/ubicaciones")
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Get("/", locationHandler.List)
	locations.Post("/", RequireRole(entity.RoleAdmin), locationHandler.Create)
	locations.Put("/:id", RequireRole(entity.RoleAdmin), locationHandler.Update)

	// Inventario: movimientos manuales y Kardex
	inv := protected.Group("/inventario")
	inventoryHandler := NewInventoryHandler(deps.RegisterMovement, deps.TraceUC)
	inv.Post("/movimientos", RequireRole(entity.RoleOpera), inventoryHandler.RegisterMovement)
	inv.Get("/kardex/:cod_venta", inventoryHandler.Kardex)

	// Cargas masivas CSV
	imports := protected.Group("/importar", RequireRole(entity.RoleOpera))
	importHandler := NewImportHandler(deps.Importer)
	imports.Post("/carga-inicial", importHandler.InitialLoad)
	imports.Post("/traslados", importHandler.Transfers)
	imports.Post("/ventas-diarias", importHandler.DailySales)

	// Reportes y dashboard
	reportHandler := NewReportHandler(deps.ReportUC)
	protected.Get("/reportes/movimientos", reportHandler.Movements)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Data)

	// Usuarios (sólo admin)
	users := protected.Group("/usuarios", RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)
}
