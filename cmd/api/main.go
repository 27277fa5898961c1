package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/villagekitchen/billing/internal/catalog"
	"github.com/villagekitchen/billing/internal/config"
	billingHttp "github.com/villagekitchen/billing/internal/http"
	catalogHandler "github.com/villagekitchen/billing/internal/http/catalog"
	invoiceHandler "github.com/villagekitchen/billing/internal/http/invoice"
	orderHandler "github.com/villagekitchen/billing/internal/http/order"
	"github.com/villagekitchen/billing/internal/invoice"
	"github.com/villagekitchen/billing/internal/pdf"
	"github.com/villagekitchen/billing/internal/session"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	brand := invoice.Brand{
		Name:          cfg.Brand.Name,
		Tagline:       cfg.Brand.Tagline,
		Phone:         cfg.Brand.Phone,
		CurrencyLabel: cfg.Brand.Currency,
	}

	var (
		menu           = catalog.Default()
		billingSession = session.New()
		projector      = invoice.NewProjector(brand, func() invoice.Canvas { return pdf.New() })
		invoiceService = invoice.NewService(projector, brand)
	)

	var (
		catalogH = catalogHandler.NewHandler(menu)
		orderH   = orderHandler.NewHandler(billingSession, menu)
		invoiceH = invoiceHandler.NewHandler(invoiceService, billingSession)
	)

	router := billingHttp.New(catalogH, orderH, invoiceH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
