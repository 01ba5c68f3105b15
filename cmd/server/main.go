package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"team-lab/allocator"
	"team-lab/internal"
	"team-lab/repositories"
	"team-lab/services"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires the web form and blocks until SIGINT/SIGTERM. Deferred cleanup runs before main exits.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)
	allocatorConfig, err := config.AllocatorConfig()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	// 2. Export store (in memory, one download per export)
	db, err := repositories.OpenInMemory()
	if err != nil {
		return fmt.Errorf("export store opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing export store...")
		_ = db.Close()
	}()
	exports := repositories.NewExportRepository(db, log, config.ExportTTL)

	// 3. Allocation
	teamAllocator, err := allocator.New(log, allocatorConfig, allocator.NewRandomShuffler())
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	service := services.NewTeamService(log, teamAllocator)

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. Serve
	log.Info("Team builder configured",
		"ratio", allocatorConfig.Ratio.String(),
		"max_team_size", allocatorConfig.MaxGroupSize,
		"enforce_composition", allocatorConfig.EnforceComposition)
	server := internal.NewServer(log, service, exports, int64(config.MaxUploadBytes))
	if err = server.Run(ctx, config.Address()); err != nil {
		return err
	}
	log.Info("Program stopped cleanly")
	return nil
}
