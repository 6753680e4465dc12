package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "perfumaria/internal/application/analytics"
	"perfumaria/internal/application/auth"
	"perfumaria/internal/application/financial"
	"perfumaria/internal/application/sales"
	"perfumaria/internal/application/usecase"
)

// RouterDeps dependências do router.
type RouterDeps struct {
	ProductUC     *usecase.ProductUseCase
	ClientUC      *usecase.ClientUseCase
	InstallmentUC *usecase.InstallmentUseCase
	SaleUC        *sales.SaleUseCase
	QuoteUC       *sales.QuoteUseCase
	CarneUC       *sales.CarneUseCase
	DashboardUC   *appanalytics.DashboardUseCase
	IRUC          *financial.IRUseCase
	AuthUC        *auth.AuthUseCase
	JWTSecret     string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Catálogos (público: os formulários carregam antes do login)
	catalogHandler := NewCatalogHandler(deps.IRUC)
	catalogs := api.Group("/catalogos")
	catalogs.Get("/", catalogHandler.Get)
	catalogs.Get("/ir", catalogHandler.Brackets)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Produtos (protegido)
	products := protected.Group("/produtos")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Clientes (protegido)
	clients := protected.Group("/clientes")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	// Vendas (protegido). A simulação vem antes de /:id para não colidir.
	saleHandler := NewSaleHandler(deps.SaleUC, deps.QuoteUC, deps.CarneUC)
	installmentHandler := NewInstallmentHandler(deps.InstallmentUC)
	salesGroup := protected.Group("/vendas")
	salesGroup.Post("/simulacao", saleHandler.Quote)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Put("/:id", saleHandler.Update)
	salesGroup.Delete("/:id", saleHandler.Delete)
	salesGroup.Get("/:id/carne", saleHandler.Carne)
	salesGroup.Get("/:id/parcelas", installmentHandler.ListBySale)

	// Parcelas (protegido)
	installments := protected.Group("/parcelas")
	installments.Put("/:id", installmentHandler.Update)
	installments.Post("/:id/recebimento", installmentHandler.Receive)
	installments.Delete("/:id/recebimento", installmentHandler.Reopen)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Get)

	// Financeiro (protegido)
	financialHandler := NewFinancialHandler(deps.IRUC)
	financeiro := protected.Group("/financeiro")
	financeiro.Post("/ir", financialHandler.Simulate)
}
