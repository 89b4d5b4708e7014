package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"rozetka-scraper/browser"
	"rozetka-scraper/config"
	"rozetka-scraper/scraper/rozetka"
	"rozetka-scraper/storage"
	"rozetka-scraper/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger := utils.NewLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("Scrape failed: %v", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *utils.Logger) error {
	logger.Info("=== Rozetka scraper starting ===")
	logger.Info("Config — listing: %s | mode: %s | output: %s",
		cfg.ListingURL, cfg.FetchMode, cfg.OutputPath)

	opts := browser.DefaultOptions()
	opts.ExecPath = cfg.ChromeBin
	opts.UserAgent = cfg.UserAgent
	opts.NavTimeout = cfg.NavTimeout

	session, err := browser.NewChrome(opts, logger)
	if err != nil {
		return err
	}
	defer session.Close()
	logger.Info("Driver initialized")

	writers := []storage.ProductWriter{}

	csvWriter, err := storage.NewCSVWriter(cfg.OutputPath)
	if err != nil {
		return err
	}
	writers = append(writers, csvWriter)

	if cfg.PostgresDSN != "" {
		pgWriter, err := storage.NewPostgresWriter(cfg.PostgresDSN)
		if err != nil {
			_ = csvWriter.Close()
			return err
		}
		writers = append(writers, pgWriter)
		logger.Info("Mirroring products to PostgreSQL (table: products)")
	}

	writer := storage.NewMultiWriter(writers...)

	fetcher, err := rozetka.NewFetcher(cfg, session, logger)
	if err != nil {
		_ = writer.Close()
		return err
	}

	n, runErr := rozetka.New(cfg, session, fetcher, writer, logger).Run(ctx)
	if err := writer.Close(); err != nil && runErr == nil {
		runErr = err
	}
	if runErr != nil {
		logger.Warn("%d products were written to %s before the failure", n, cfg.OutputPath)
		return runErr
	}

	rows, err := storage.CountRows(cfg.OutputPath)
	if err != nil {
		return err
	}
	logger.Info("Output file has: %d lines", rows)
	return nil
}
