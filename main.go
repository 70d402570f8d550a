package main

import (
	"net/http"
	"os"

	"rent-analyzer/config"
	"rent-analyzer/scraper"
	"rent-analyzer/server"
	"rent-analyzer/services"
	"rent-analyzer/utils"
)

func main() {
	cfg := config.Load()
	logger := utils.NewLogger(cfg.Debug)

	logger.Info("=== Rent Fairness Analyzer starting ===")
	logger.Info("Config — addr: %s | csv: %s | postgres: %v | fetch timeout: %v",
		cfg.HTTPAddr, cfg.CSVPath, cfg.PostgresEnabled, cfg.FetchTimeout())

	dataset := services.NewDatasetService(cfg, logger)
	defer dataset.Close()
	table := dataset.Load()

	estimator := services.NewEstimator(logger)
	if err := estimator.Train(table); err != nil {
		logger.Error("Training failed: %v", err)
		os.Exit(1)
	}

	summary := services.NewMarketService(logger).Summarize(table)

	srv, err := server.New(cfg, logger, table, summary, estimator,
		scraper.New(cfg, logger), services.NewSessionManager())
	if err != nil {
		logger.Error("Failed to build server: %v", err)
		os.Exit(1)
	}

	logger.Info("Listening on %s", cfg.HTTPAddr)
	if err := http.ListenAndServe(cfg.HTTPAddr, srv.Router()); err != nil {
		logger.Error("Server stopped: %v", err)
		os.Exit(1)
	}
}
