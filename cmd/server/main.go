package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/amirasaad/countrypulse/infra/database"
	"github.com/amirasaad/countrypulse/infra/provider/openexchange"
	"github.com/amirasaad/countrypulse/infra/provider/restcountries"
	countryinfra "github.com/amirasaad/countrypulse/infra/repository/country"
	"github.com/amirasaad/countrypulse/pkg/config"
	countrysvc "github.com/amirasaad/countrypulse/pkg/service/country"
	refreshsvc "github.com/amirasaad/countrypulse/pkg/service/refresh"
	summarysvc "github.com/amirasaad/countrypulse/pkg/service/summary"
	"github.com/amirasaad/countrypulse/webapi"
	log "github.com/charmbracelet/log"
)

// @title Country Pulse API
// @version 1.0.0
// @description Country reference data enriched with exchange rates and a synthetic GDP estimate
// @host localhost:8080
// @BasePath /
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	logger := setupLogger(cfg.Log)
	slog.SetDefault(logger)

	db, err := database.New(cfg.DB, cfg.Env)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	repo := countryinfra.New(db)
	countrySource := restcountries.New(cfg.Sources, logger)
	rateSource := openexchange.New(cfg.Sources, logger)
	summarySvc := summarysvc.New(repo, cfg.Summary.ImagePath, logger)
	refreshSvc := refreshsvc.New(countrySource, rateSource, repo, summarySvc, refreshsvc.UniformMultiplier{}, logger)
	countrySvc := countrysvc.New(repo, logger)

	app := webapi.New(webapi.Deps{
		CountrySvc: countrySvc,
		RefreshSvc: refreshSvc,
		ImagePath:  cfg.Summary.ImagePath,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting server", "env", cfg.Env, "address", addr)
	return app.Listen(addr)
}

func setupLogger(cfg *config.Log) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.Level(cfg.Level)}
	if cfg.Format == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}
