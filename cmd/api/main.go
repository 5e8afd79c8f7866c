package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gmslog/insumos-api/internal/application/access"
	"github.com/gmslog/insumos-api/internal/application/ledger"
	"github.com/gmslog/insumos-api/internal/domain/catalog"
	"github.com/gmslog/insumos-api/internal/infrastructure/identity"
	"github.com/gmslog/insumos-api/internal/infrastructure/postgres"
	httpRouter "github.com/gmslog/insumos-api/internal/interfaces/http"
	"github.com/gmslog/insumos-api/pkg/config"
	"github.com/gmslog/insumos-api/pkg/logger"
	"github.com/gmslog/insumos-api/pkg/metrics"
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migrações do banco")
	}
	log.Info().Msg("migrações aplicadas")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	cat := catalog.New(cfg.Catalog.Lojas, cfg.Catalog.Produtos, cfg.Catalog.Unidades)

	balanceRepo := postgres.NewBalanceRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)
	identityProvider := identity.NewProvider(pool)

	ledgerUC := ledger.NewLedgerUseCase(txRunner, balanceRepo, movementRepo, cat, log)
	accessUC := access.NewAccessUseCase(userRepo, identityProvider, cat, access.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, log)

	registry := prometheus.NewRegistry()
	var movementMetrics *metrics.MovementMetrics
	if cfg.Metrics.Enabled {
		movementMetrics = metrics.NewMovementMetrics(registry)
	} else {
		movementMetrics = metrics.NewMovementMetrics(nil)
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Controle de Insumos API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	if cfg.Metrics.Enabled {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		LedgerUC:  ledgerUC,
		AccessUC:  accessUC,
		Catalog:   cat,
		Metrics:   movementMetrics,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
