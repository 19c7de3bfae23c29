package main

import (
	"context"

	"github.com/litetable/litetable-bigtable/internal/app"
	"github.com/litetable/litetable-bigtable/internal/config"
	"github.com/litetable/litetable-bigtable/internal/emulator"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	application, err := initialize()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize")
	}

	if err = application.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("application stopped with errors")
	}
}

func initialize() (*app.App, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	// clients connect with BIGTABLE_EMULATOR_HOST set to the logged address
	srv, err := emulator.New(&emulator.Config{
		Project:  cfg.Project,
		Instance: cfg.Instance,
		Address:  cfg.Address,
		Port:     cfg.Port,
		Tables:   cfg.Tables,
	})
	if err != nil {
		return nil, err
	}

	return app.CreateApp(&app.Config{
		ServiceName: "LiteTable Bigtable Emulator",
		StopTimeout: cfg.StopTimeout,
	}, srv)
}
