package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/lakeviewsainik/hostel-gobackend/internal/config"
	"github.com/lakeviewsainik/hostel-gobackend/internal/handlers"
	"github.com/lakeviewsainik/hostel-gobackend/internal/services"
	"github.com/lakeviewsainik/hostel-gobackend/internal/storage/mongodb"
	"github.com/lakeviewsainik/hostel-gobackend/pkg/logging"
)

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	client, err := mongodb.Connect(ctx, cfg.MongoURL)
	if err != nil {
		slog.Error("failed to connect to MongoDB", "error", err)
		os.Exit(1)
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			slog.Error("error disconnecting from MongoDB", "error", err)
		}
	}()
	slog.Info("connected to MongoDB", "database", cfg.DBName)

	db := client.Database(cfg.DBName)

	residentService := services.NewResidentService(mongodb.NewResidentStore(db))
	adminService := services.NewAdminService(mongodb.NewAdminStore(db), cfg.AdminUsername, cfg.AdminPassword)

	if err := residentService.SeedSampleData(ctx); err != nil {
		slog.Error("failed to seed resident data", "error", err)
		os.Exit(1)
	}
	if err := adminService.SeedAdmin(ctx); err != nil {
		slog.Error("failed to seed admin record", "error", err)
		os.Exit(1)
	}

	handler := handlers.NewHandler(
		handlers.NewResidentHandler(residentService),
		handlers.NewAdminHandler(adminService),
		adminService,
		cfg.Origins(),
	)

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	slog.Info("server running", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
