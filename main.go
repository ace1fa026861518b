package main

import (
	"log/slog"
	"os"

	"github.com/ha1tch/blobilism/internal/app"
	"github.com/ha1tch/blobilism/internal/config"
	"github.com/ha1tch/blobilism/internal/logging"
	"github.com/ha1tch/blobilism/internal/rlbackend"
)

func main() {
	cfg, envErr := config.FromEnv()
	log := logging.New(os.Stderr, cfg.LogLevel)
	if envErr != nil {
		log.Warn("ignoring environment", "err", envErr)
	}
	if err := cfg.Validate(); err != nil {
		log.Error("invalid config", "err", err)
		os.Exit(1)
	}
	slog.SetDefault(log)

	a := app.New(cfg.Width, cfg.Height, log)
	rlbackend.Run(cfg, a.Setup, a.Step)
}
