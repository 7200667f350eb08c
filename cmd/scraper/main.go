// Command scraper runs one collection pass over the configured targets
// and appends the captured price observations to the database.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"comparador_server/config"
	"comparador_server/database"
	"comparador_server/scraper"
	"comparador_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func main() {
	envErr := godotenv.Load()

	cfg := config.GetConfig()
	logger := config.InitializeLogger()

	if envErr != nil {
		logger.Warn("No .env file found or error loading .env file, proceeding with system environment variables")
	}

	if err := database.Initialize(); err != nil {
		logger.Fatal("Failed to initialize database", gecho.Field("error", err))
	}
	defer database.CloseInstance()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	targets, err := scraper.LoadTargets(cfg.Scraper.TargetsFile)
	if err != nil {
		logger.Fatal("Failed to load scrape targets", gecho.Field("error", err))
	}

	runID := uuid.New()
	logger.Info("Starting scrape run",
		gecho.Field("run_id", runID.String()),
		gecho.Field("targets", len(targets)),
	)

	observations := scraper.NewScraper(logger, cfg.Scraper).Run(ctx, targets)
	if len(observations) == 0 {
		logger.Warn("Scrape run produced no observations")
		return
	}

	scrapeService := services.NewScrapeService(logger, database.GetInstance())
	saved, err := scrapeService.SaveBatch(ctx, runID, observations)
	if err != nil {
		logger.Fatal("Failed to persist scrape run", gecho.Field("error", err))
	}

	logger.Info("Scrape run finished",
		gecho.Field("run_id", runID.String()),
		gecho.Field("saved", saved),
	)
}
