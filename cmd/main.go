// Package main is the entry point for the check-in service.
package main

import (
	"github.com/rs/zerolog/log"

	"github.com/guttosm/checkin-service/config"
	"github.com/guttosm/checkin-service/internal/app"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
