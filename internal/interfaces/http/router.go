package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/embalse/deposito-api/internal/application/auth"
	"github.com/embalse/deposito-api/internal/application/usecase"
	"github.com/embalse/deposito-api/internal/application/warehouse"
	"github.com/embalse/deposito-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	DepotUC     *usecase.DepotUseCase
	ClientUC    *usecase.ClientUseCase
	ProductUC   *usecase.ProductUseCase
	UserUC      *usecase.UserUseCase
	DashboardUC *usecase.DashboardUseCase
	RackUC      *warehouse.RackUseCase
	RemitoUC    *warehouse.RemitoUseCase
	MovementUC  *warehouse.MovementUseCase
	OccupancyUC *warehouse.OccupancyUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Aprobación y administración de racks: solo ADMIN y ENCARGADO
	supervisor := RequireRole(entity.RoleAdmin, entity.RoleEncargado)

	// Depots, racks, ubicaciones y ocupación
	depots := protected.Group("/depots")
	depotHandler := NewDepotHandler(deps.DepotUC, deps.RackUC, deps.OccupancyUC)
	remitoHandler := NewRemitoHandler(deps.RemitoUC)
	depots.Post("/", supervisor, depotHandler.Create)
	depots.Get("/", depotHandler.List)
	depots.Get("/:id", depotHandler.GetByID)
	depots.Put("/:id", supervisor, depotHandler.Update)
	depots.Post("/:id/racks", supervisor, depotHandler.CreateRack)
	depots.Get("/:id/racks", depotHandler.ListRacks)
	depots.Get("/:id/occupancy", depotHandler.Occupancy)
	depots.Get("/:id/free-slots", remitoHandler.FreeSlots)

	racks := protected.Group("/racks")
	racks.Delete("/:id", supervisor, depotHandler.DeleteRack)
	racks.Get("/:id/slots", depotHandler.ListSlots)

	// Remitos: cualquier usuario autenticado registra; aprueba/anula el
	// encargado o el admin
	remitos := protected.Group("/remitos")
	remitos.Post("/ingresos", remitoHandler.CreateIngreso)
	remitos.Post("/egresos", remitoHandler.CreateEgreso)
	remitos.Get("/", remitoHandler.List)
	remitos.Get("/:id", remitoHandler.GetByID)
	remitos.Post("/:id/aprobar", supervisor, remitoHandler.Aprobar)
	remitos.Post("/:id/anular", supervisor, remitoHandler.Anular)

	// Pallets activos por cliente y depósito
	protected.Get("/pallets", remitoHandler.ActivePallets)

	// Movimientos internos
	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.MovementUC)
	movements.Post("/", movementHandler.Move)
	movements.Get("/", movementHandler.List)

	// Clients
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", supervisor, clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", supervisor, clientHandler.Update)
	clients.Delete("/:id", supervisor, clientHandler.Delete)

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", supervisor, productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", supervisor, productHandler.Update)
	products.Delete("/:id", supervisor, productHandler.Delete)

	// Users (solo ADMIN)
	users := protected.Group("/users", RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Summary)
}
