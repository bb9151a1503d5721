package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ledgerworks/banking-ledger/internal/adapter/http/controller"
	"github.com/ledgerworks/banking-ledger/internal/adapter/http/router"
	"github.com/ledgerworks/banking-ledger/internal/adapter/repository/gormstore"
	"github.com/ledgerworks/banking-ledger/internal/adapter/repository/migrate"
	"github.com/ledgerworks/banking-ledger/internal/config"
	"github.com/ledgerworks/banking-ledger/internal/logger"
	"github.com/ledgerworks/banking-ledger/internal/usecase/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	startupCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := migrate.Run(startupCtx, cfg.DatabaseDSN, cfg.MigrationsDir); err != nil {
		log.Fatalf("run migrations: %v", err)
	}

	db, sqlDB, err := gormstore.Open(startupCtx, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	defer sqlDB.Close()

	store := gormstore.New(db)
	ledger := services.NewLedgerService(store)
	accounts := controller.NewAccountController(ledger)
	mux := router.New(accounts)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	logger.Info("banking ledger server started", logger.Fields{"addr": cfg.HTTPAddr})

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server: %v", err)
		}
	case sig := <-sigCh:
		logger.Info("shutting down", logger.Fields{"signal": sig.String()})

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", err, nil)
		}
	}
}
