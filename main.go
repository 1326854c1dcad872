package main

import (
	"embed"
	"flag"
	"log"

	"go.uber.org/zap"

	"emperor/internal/config"
	"emperor/internal/server"
)

//go:embed web/static
var static embed.FS

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	port := flag.Int("port", cfg.Port, "HTTP listen port")
	seats := flag.Int("seats", cfg.Seats, "seats per match (4-9)")
	debug := flag.Bool("debug", cfg.Debug, "development logging")
	flag.Parse()
	cfg.Port, cfg.Seats, cfg.Debug = *port, *seats, *debug

	var logger *zap.Logger
	if cfg.Debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	srv := server.New(cfg, static, logger)
	if err := srv.Start(); err != nil {
		logger.Fatal("server", zap.Error(err))
	}
}
