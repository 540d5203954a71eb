package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"golang-stock-screener/internal/screener/config"
	delivery "golang-stock-screener/internal/screener/delivery/http"
	_ "golang-stock-screener/internal/screener/docs"
	"golang-stock-screener/internal/screener/repository"
	"golang-stock-screener/internal/screener/scoring"
	"golang-stock-screener/internal/screener/service"
	"golang-stock-screener/pkg/logger"
	"golang-stock-screener/pkg/telegram"

	"github.com/spf13/cobra"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the screener API",
	Run:   runServe,
}

// app holds the wired services shared by every command.
type app struct {
	cfg      *config.Config
	logger   *logger.Logger
	services delivery.Services
}

func bootstrap(ctx context.Context) *app {
	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// Initialize snapshot store
	if !cfg.KV.Configured() {
		appLogger.Warn("KV credentials missing, storage endpoints will answer with an error",
			logger.StringField("backend", cfg.KV.Backend))
	}
	store, err := repository.NewSnapshotStore(cfg.KV, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize snapshot store", logger.ErrorField(err))
	}
	if pinger, ok := store.(repository.Pinger); ok {
		if err := pinger.Ping(ctx); err != nil {
			appLogger.Warn("Snapshot store is not reachable yet", logger.ErrorField(err))
		}
	}

	// Initialize notifier
	var notifier telegram.Notifier = telegram.NopNotifier{}
	if cfg.Telegram.BotToken != "" {
		notifier, err = telegram.NewClient(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if err != nil {
			appLogger.Fatal("Failed to initialize Telegram notifier", logger.ErrorField(err))
		}
	}

	// Initialize repositories
	yahooRepo := repository.NewYahooFinanceRepository(cfg.Yahoo, appLogger)

	// Initialize services
	quoteSvc := service.NewQuoteService(yahooRepo, appLogger)
	snapshotSvc := service.NewSnapshotService(cfg.KV, store, appLogger)
	scoreSvc := service.NewScoreService(cfg.Session, cfg.Scanner.Weights, appLogger)
	scanSvc := service.NewScanService(cfg.Scanner, quoteSvc, scoreSvc, snapshotSvc,
		scoring.DefaultScorers(cfg.Scanner.Seed), notifier, cfg.Telegram.TopN, appLogger)

	return &app{
		cfg:    cfg,
		logger: appLogger,
		services: delivery.Services{
			Quote:    quoteSvc,
			Snapshot: snapshotSvc,
			Score:    scoreSvc,
			Scan:     scanSvc,
		},
	}
}

func runServe(cmd *cobra.Command, args []string) {
	// Create a context that is canceled on interrupt signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := bootstrap(ctx)
	defer func() { _ = a.logger.Sync() }()

	a.logger.Info("Starting Screener Service",
		logger.Field("name", a.cfg.App.Name),
		logger.Field("kv_configured", a.cfg.KV.Configured()))

	shutdownTimeout, err := time.ParseDuration(a.cfg.API.ShutdownTimeout)
	if err != nil {
		a.logger.Fatal("Invalid shutdown timeout", logger.ErrorField(err))
	}

	if err := a.services.Scan.StartSchedule(ctx); err != nil {
		a.logger.Fatal("Failed to start scan schedule", logger.ErrorField(err))
	}

	e := delivery.NewRouter(a.services, a.cfg.API.AllowedOrigins, a.logger)

	// Start server
	go func() {
		addr := net.JoinHostPort(a.cfg.API.Host, strconv.Itoa(a.cfg.API.Port))
		a.logger.Info("HTTP server starting", logger.Field("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			a.logger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop() // trigger shutdown
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()

	a.logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		a.logger.Fatal("Server forced to shutdown", logger.ErrorField(err))
	}

	a.logger.Info("Server exiting")
}

// @title Stock Screener API
// @version 1.0
// @description Quote proxy, scan snapshot persistence and composite ranking for the small-cap screener dashboard.
// @BasePath /api
func main() {
	rootCmd := &cobra.Command{
		Use:   "screener-service",
		Short: "Small-cap stock screener backend",
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs/config-screener.yaml", "Path to the configuration file")

	scanCmd.Flags().BoolVar(&saveScan, "save", false, "Save the result as the latest snapshot")
	scanCmd.Flags().IntVar(&scanTop, "top", 0, "Only print the first N stocks (0 prints all)")

	rootCmd.AddCommand(serveCmd, scanCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing screener-service CLI: %s\n", err)
		os.Exit(1)
	}
}
