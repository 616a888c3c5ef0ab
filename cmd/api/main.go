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

	"github.com/embalse/deposito-api/internal/application/auth"
	"github.com/embalse/deposito-api/internal/application/usecase"
	"github.com/embalse/deposito-api/internal/application/warehouse"
	"github.com/embalse/deposito-api/internal/infrastructure/postgres"
	httpRouter "github.com/embalse/deposito-api/internal/interfaces/http"
	"github.com/embalse/deposito-api/pkg/config"
	"github.com/embalse/deposito-api/pkg/logger"
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

	depotRepo := postgres.NewDepotRepository(pool)
	rackRepo := postgres.NewRackRepository(pool)
	slotRepo := postgres.NewSlotRepository(pool)
	palletRepo := postgres.NewPalletRepository(pool)
	remitoRepo := postgres.NewRemitoRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	rackUC := warehouse.NewRackUseCase(txRunner, depotRepo, rackRepo, slotRepo)
	remitoUC := warehouse.NewRemitoUseCase(txRunner, remitoRepo, clientRepo, depotRepo, slotRepo, palletRepo)
	movementUC := warehouse.NewMovementUseCase(txRunner, movementRepo)
	occupancyUC := warehouse.NewOccupancyUseCase(depotRepo, slotRepo)

	depotUC := usecase.NewDepotUseCase(depotRepo, rackRepo, slotRepo)
	clientUC := usecase.NewClientUseCase(clientRepo)
	productUC := usecase.NewProductUseCase(productRepo, clientRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	dashboardUC := usecase.NewDashboardUseCase(depotRepo, slotRepo, clientRepo, productRepo, remitoRepo)

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
		Title:    "Depósito API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		DepotUC:     depotUC,
		ClientUC:    clientUC,
		ProductUC:   productUC,
		UserUC:      userUC,
		DashboardUC: dashboardUC,
		RackUC:      rackUC,
		RemitoUC:    remitoUC,
		MovementUC:  movementUC,
		OccupancyUC: occupancyUC,
		JWTSecret:   cfg.JWT.Secret,
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
