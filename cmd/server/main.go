package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kiosk/internal/clock"
	"kiosk/internal/config"
	"kiosk/internal/infrastructure/logger"
	"kiosk/internal/infrastructure/sqlite"
	"kiosk/internal/member"
	"kiosk/internal/product"
	"kiosk/internal/report"
	"kiosk/internal/restock"
	"kiosk/internal/restock/parser"
	"kiosk/internal/sale"
	"kiosk/internal/server"
	"kiosk/internal/suggestion"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Missing .env is fine; the environment wins either way.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := sqlite.NewConnection(cfg.Database)
	if err != nil {
		zapLogger.Fatal("opening database", zap.Error(err))
	}
	defer db.Close()
	zapLogger.Info("database ready", zap.String("path", cfg.Database.Path))

	clk := clock.System{}

	ctrls := server.Controllers{
		Members:     member.NewModule(db, zapLogger),
		Products:    product.NewModule(db, zapLogger),
		Sales:       sale.NewModule(db, clk, zapLogger),
		Restocks:    restock.NewModule(db, parser.NewLineParser(), clk, zapLogger),
		Suggestions: suggestion.NewModule(db, clk, zapLogger),
		Reports:     report.NewModule(db, clk, zapLogger),
	}

	router := server.NewRouter(ctrls, cfg.CORS)

	srv := server.New(cfg.Server.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}
