package http

import (
	"github.com/gmslog/insumos-api/internal/application/access"
	"github.com/gmslog/insumos-api/internal/application/ledger"
	"github.com/gmslog/insumos-api/internal/domain/catalog"
	"github.com/gmslog/insumos-api/internal/domain/entity"
	"github.com/gmslog/insumos-api/pkg/metrics"
	"github.com/gofiber/fiber/v2"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	LedgerUC  *ledger.LedgerUseCase
	AccessUC  *access.AccessUseCase
	Catalog   *catalog.Catalog
	Metrics   *metrics.MovementMetrics
	JWTSecret string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AccessUC)
	api.Post("/auth/login", authHandler.Login)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	ledgerHandler := NewLedgerHandler(deps.LedgerUC, deps.Catalog, deps.Metrics)

	// Estoque e movimentações (operador e admin; escopo por VD dentro do caso de uso)
	protected.Get("/catalogo", ledgerHandler.GetCatalogo)
	protected.Get("/estoque", ledgerHandler.ListEstoque)
	protected.Get("/estoque/saldo", ledgerHandler.GetSaldo)
	protected.Post("/movimentacoes", ledgerHandler.RegisterMovimentacao)

	// Ações administrativas
	admin := protected.Group("/", RequireRole(string(entity.RoleAdmin)))
	admin.Get("/historico", ledgerHandler.ListHistorico)
	admin.Post("/vinculos", ledgerHandler.CreateVinculo)
	admin.Delete("/vinculos/:id", ledgerHandler.DeleteVinculo)

	userHandler := NewUserHandler(deps.AccessUC)
	admin.Post("/usuarios", userHandler.Provision)
}
