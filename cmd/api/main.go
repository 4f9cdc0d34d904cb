package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/SharuLucky21/Hospital-Management-System/internal/application/analytics"
	"github.com/SharuLucky21/Hospital-Management-System/internal/application/auth"
	"github.com/SharuLucky21/Hospital-Management-System/internal/application/billing"
	"github.com/SharuLucky21/Hospital-Management-System/internal/application/facility"
	"github.com/SharuLucky21/Hospital-Management-System/internal/application/inventory"
	"github.com/SharuLucky21/Hospital-Management-System/internal/application/patients"
	"github.com/SharuLucky21/Hospital-Management-System/internal/infrastructure/edi"
	infrapdf "github.com/SharuLucky21/Hospital-Management-System/internal/infrastructure/pdf"
	"github.com/SharuLucky21/Hospital-Management-System/internal/infrastructure/postgres"
	httpRouter "github.com/SharuLucky21/Hospital-Management-System/internal/interfaces/http"
	"github.com/SharuLucky21/Hospital-Management-System/pkg/config"
	"github.com/SharuLucky21/Hospital-Management-System/pkg/logger"
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
	directory := postgres.NewPatientDirectory(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	claimRepo := postgres.NewClaimRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	purchaseRepo := postgres.NewPurchaseRepository(pool)
	appointmentRepo := postgres.NewAppointmentRepository(pool)
	complaintRepo := postgres.NewComplaintRepository(pool)
	surgeryRepo := postgres.NewSurgeryRepository(pool)
	roomRepo := postgres.NewRoomRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	hospital := billing.HospitalInfo{
		Name:    cfg.Hospital.Name,
		Tagline: cfg.Hospital.Tagline,
		Address: cfg.Hospital.Address,
		Phone:   cfg.Hospital.Phone,
	}
	renderer := infrapdf.NewMarotoInvoiceRenderer()
	claimExporter := edi.NewClaimBatchExporter(cfg.Hospital.Name)

	authUC := auth.NewUseCase(userRepo, cfg.JWT, log)
	patientUC := patients.NewUseCase(patientRepo, directory)
	createInvoiceUC := billing.NewCreateInvoiceUseCase(invoiceRepo, claimRepo, directory, log)
	invoicePDFUC := billing.NewPDFUseCase(invoiceRepo, claimRepo, renderer, hospital)
	claimsUC := billing.NewClaimsUseCase(claimRepo, directory, claimExporter)
	inventoryUC := inventory.NewUseCase(inventoryRepo, purchaseRepo, txRunner, log)
	appointmentUC := facility.NewAppointmentUseCase(appointmentRepo, directory)
	complaintUC := facility.NewComplaintUseCase(complaintRepo)
	surgeryUC := facility.NewSurgeryUseCase(surgeryRepo)
	roomUC := facility.NewRoomUseCase(roomRepo)
	analyticsUC := analytics.NewUseCase(analyticsRepo, invoiceRepo, appointmentRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		PatientUC:     patientUC,
		CreateInvoice: createInvoiceUC,
		InvoicePDF:    invoicePDFUC,
		ClaimsUC:      claimsUC,
		InventoryUC:   inventoryUC,
		AppointmentUC: appointmentUC,
		ComplaintUC:   complaintUC,
		SurgeryUC:     surgeryUC,
		RoomUC:        roomUC,
		AnalyticsUC:   analyticsUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
