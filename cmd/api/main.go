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

	appanalytics "github.com/Moein-9/optica-api/internal/application/analytics"
	"github.com/Moein-9/optica-api/internal/application/auth"
	"github.com/Moein-9/optica-api/internal/application/billing"
	"github.com/Moein-9/optica-api/internal/application/receipts"
	"github.com/Moein-9/optica-api/internal/application/usecase"
	infrapdf "github.com/Moein-9/optica-api/internal/infrastructure/pdf"
	"github.com/Moein-9/optica-api/internal/infrastructure/postgres"
	"github.com/Moein-9/optica-api/internal/infrastructure/session"
	"github.com/Moein-9/optica-api/internal/infrastructure/thermal"
	httpRouter "github.com/Moein-9/optica-api/internal/interfaces/http"
	"github.com/Moein-9/optica-api/pkg/config"
	"github.com/Moein-9/optica-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	patientRepo := postgres.NewPatientRepository(pool)
	frameRepo := postgres.NewFrameRepository(pool)
	lensRepo := postgres.NewLensCatalogRepository(pool)
	contactRepo := postgres.NewContactLensRepository(pool)
	serviceRepo := postgres.NewServiceRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	reportsRepo := postgres.NewReportsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Workflow sessions: Redis when configured, in-memory otherwise. A single
	// register works fine off the in-memory store; Redis survives restarts.
	sessionTTL := time.Duration(cfg.Redis.SessionTTL) * time.Minute
	var sessions billing.SessionStore
	if cfg.Redis.Addr != "" {
		redisStore := session.NewRedisStore(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, sessionTTL)
		if err := redisStore.Ping(ctx); err != nil {
			log.Fatal().Err(err).Msg("Redis connection")
		}
		defer redisStore.Close()
		sessions = redisStore
		log.Info().Str("addr", cfg.Redis.Addr).Msg("using Redis session store")
	} else {
		sessions = session.NewMemoryStore(sessionTTL)
		log.Info().Msg("using in-memory session store")
	}

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	patientUC := usecase.NewPatientUseCase(patientRepo)
	catalogUC := usecase.NewCatalogUseCase(frameRepo, lensRepo, contactRepo, serviceRepo)
	workflowUC := billing.NewWorkflowUseCase(
		sessions, patientRepo, frameRepo, lensRepo, contactRepo, serviceRepo, txRunner,
	)
	invoiceUC := billing.NewInvoiceUseCase(invoiceRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(reportsRepo)

	storeInfo := receipts.StoreInfo{
		Name:       cfg.Store.Name,
		NameArabic: cfg.Store.NameArabic,
		Phone:      cfg.Store.Phone,
		Address:    cfg.Store.Address,
		Currency:   cfg.Store.Currency,
	}
	receiptUC := receipts.NewReceiptUseCase(
		invoiceRepo, infrapdf.NewInvoiceRenderer(), thermal.NewRenderer(), storeInfo,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Optica API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		PatientUC:   patientUC,
		CatalogUC:   catalogUC,
		WorkflowUC:  workflowUC,
		InvoiceUC:   invoiceUC,
		ReceiptUC:   receiptUC,
		DashboardUC: dashboardUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
