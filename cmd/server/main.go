package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	webAdapter "invoice-dashboard/internal/adapters/web"
	"invoice-dashboard/internal/app"
	"invoice-dashboard/internal/config"
	"invoice-dashboard/internal/core"
	"invoice-dashboard/internal/db"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.Server.LogLevel,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.Database)
	if err != nil {
		slog.Error("database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	invoiceService := core.NewInvoiceService(pool)
	customerService := core.NewCustomerService(pool)
	dashboardService := core.NewDashboardService(pool)

	// The page cache doubles as the Revalidator the application service
	// notifies after every successful write.
	cache := webAdapter.NewPageCache(cfg.Server.PageCacheTTL)

	svc := app.NewAppService(invoiceService, customerService, dashboardService, cache, logger)
	handler := webAdapter.NewHandler(svc, cache, cfg.Server.AllowedOrigins)

	slog.Info("server starting", "port", cfg.Server.Port)
	if err := http.ListenAndServe(":"+cfg.Server.Port, handler); err != nil {
		slog.Error("server", "error", err)
		os.Exit(1)
	}
}
