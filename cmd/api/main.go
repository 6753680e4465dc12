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

	appanalytics "perfumaria/internal/application/analytics"
	"perfumaria/internal/application/auth"
	"perfumaria/internal/application/financial"
	"perfumaria/internal/application/sales"
	"perfumaria/internal/application/usecase"
	infrapdf "perfumaria/internal/infrastructure/pdf"
	"perfumaria/internal/infrastructure/postgres"
	httpRouter "perfumaria/internal/interfaces/http"
	"perfumaria/pkg/config"
	"perfumaria/pkg/logger"
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

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	installmentRepo := postgres.NewInstallmentRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	productUC := usecase.NewProductUseCase(productRepo)
	clientUC := usecase.NewClientUseCase(clientRepo)
	installmentUC := usecase.NewInstallmentUseCase(installmentRepo, saleRepo)
	saleUC := sales.NewSaleUseCase(txRunner, saleRepo, clientRepo, log.Zerolog())
	quoteUC := sales.NewQuoteUseCase(productRepo)

	// PDF: carnê de parcelas entregue ao cliente no pix parcelado
	carneGenerator := infrapdf.NewMarotoCarneGenerator()
	carneUC := sales.NewCarneUseCase(saleRepo, clientRepo, productRepo, installmentRepo, carneGenerator)

	dashboardUC := appanalytics.NewDashboardUseCase(saleRepo, productRepo, cfg.Estoque.LimiteBaixo)
	irUC := financial.NewIRUseCase(saleRepo)
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

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Perfumaria API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:     productUC,
		ClientUC:      clientUC,
		InstallmentUC: installmentUC,
		SaleUC:        saleUC,
		QuoteUC:       quoteUC,
		CarneUC:       carneUC,
		DashboardUC:   dashboardUC,
		IRUC:          irUC,
		AuthUC:        authUC,
		JWTSecret:     cfg.JWT.Secret,
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
