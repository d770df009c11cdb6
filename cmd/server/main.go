// @title Factura API
// @version 1.0
// @description Invoice management and sharing API.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"factura/internal/config"
	"factura/internal/email/noop"
	"factura/internal/email/ses"
	"factura/internal/handler"
	"factura/internal/invoice"
	"factura/internal/pdf"
	"factura/internal/port"
	"factura/internal/repository/postgres"
	"factura/internal/router"
	"factura/internal/service"
	s3storage "factura/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	invoiceRepo := postgres.NewInvoiceRepo(db)
	shareRepo := postgres.NewShareRepo(db)

	// Initialize storage
	s3Client, err := s3storage.New(context.Background(), &cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize email sender
	var emailSender port.EmailSender
	switch cfg.Email.Provider {
	case "ses":
		emailSender, err = ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	default:
		emailSender = noop.NewNoopSender()
	}

	symbols := invoice.DefaultSymbols()
	gen := invoice.NewGenerator(time.Now)

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	invoiceSvc := service.NewInvoiceService(invoiceRepo, gen)
	shareSvc := service.NewShareService(shareRepo, invoiceRepo, emailSender, symbols, cfg.Share.FrontendURL)
	exportSvc := service.NewExportService(invoiceRepo, pdf.NewRenderer(symbols), s3Client, symbols, cfg.S3)

	// Initialize handlers
	authH := handler.NewAuthHandler(authSvc)
	invoiceH := handler.NewInvoiceHandler(invoiceSvc, exportSvc)
	shareH := handler.NewShareHandler(shareSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(authSvc, authH, invoiceH, shareH, healthH, cfg.CORS.AllowedOrigins)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
