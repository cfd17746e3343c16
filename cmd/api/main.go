package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/rituraj-gharat/trackmycash/internal/auth"
	"github.com/rituraj-gharat/trackmycash/internal/config"
	"github.com/rituraj-gharat/trackmycash/internal/database"
	tmcHttp "github.com/rituraj-gharat/trackmycash/internal/http"
	importHandler "github.com/rituraj-gharat/trackmycash/internal/http/importcsv"
	ledgerHandler "github.com/rituraj-gharat/trackmycash/internal/http/ledger"
	txHandler "github.com/rituraj-gharat/trackmycash/internal/http/transaction"
	"github.com/rituraj-gharat/trackmycash/internal/importer"
	"github.com/rituraj-gharat/trackmycash/internal/transaction"
	txStore "github.com/rituraj-gharat/trackmycash/internal/transaction/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		transactionService = transaction.NewService(txStore.New(db))
		importService      = importer.NewService()
	)

	var authMiddleware func(http.Handler) http.Handler
	if cfg.Auth.SingleUser {
		authMiddleware = auth.StaticIdentity(auth.Identity{
			UserID: cfg.Auth.DefaultOwner,
			Name:   cfg.Auth.DefaultOwner,
		})
	} else {
		verifier := auth.NewVerifier(cfg.Auth.GoogleClientID, auth.NewGoogleKeys())
		authMiddleware = auth.Middleware(verifier)
	}

	var (
		transactionH = txHandler.NewHandler(transactionService)
		ledgerH      = ledgerHandler.NewHandler(transactionService)
		importH      = importHandler.NewHandler(importService, transactionService)
	)

	router := tmcHttp.New(authMiddleware, cfg.Server.AllowedOrigins, transactionH, ledgerH, importH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port, "single_user", cfg.Auth.SingleUser)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
