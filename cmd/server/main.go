package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lodeworks/tileworld-server/internal/server"
	"github.com/lodeworks/tileworld-server/internal/server/config"
)

func main() {
	cfg := config.DefaultConfig()

	flag.IntVar(&cfg.Port, "port", cfg.Port, "server port")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "world seed")
	flag.IntVar(&cfg.KeepDistance, "keep-distance", cfg.KeepDistance, "chunk eviction radius around the view center")
	flag.IntVar(&cfg.RoadWidth, "road-width", cfg.RoadWidth, "road half-width in tiles")
	configPath := flag.String("config", "config.json", "path to config file")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	fromFile := config.DefaultConfig()
	if err := config.Load(*configPath, fromFile); err != nil {
		log.Error("load config", "path", *configPath, "error", err)
		os.Exit(1)
	}
	explicit := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
	config.Merge(cfg, fromFile, explicit)

	if err := cfg.Validate(); err != nil {
		log.Error("invalid config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	srv := server.New(cfg, log)
	if err := srv.Start(ctx); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
