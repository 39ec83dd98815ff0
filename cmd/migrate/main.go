package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/venture-studio/engine/internal/migrations"
	"github.com/venture-studio/engine/pkg/config"
	"github.com/venture-studio/engine/pkg/database"
	"github.com/venture-studio/engine/pkg/logger"
)

// Usage: migrate [up|down|status]
func main() {
	cfg := config.MustLoad()
	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cmd := "up"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	ctx := context.Background()
	db, err := database.Open(ctx, cfg.DatabasePath)
	if err != nil {
		log.Fatal("failed to open database", zap.Error(err))
	}
	defer db.Close()

	switch cmd {
	case "up":
		err = migrations.Up(ctx, db)
	case "down":
		err = migrations.Down(ctx, db)
	case "status":
		err = migrations.Status(ctx, db)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q (want up, down, or status)\n", cmd)
		os.Exit(2)
	}
	if err != nil {
		log.Fatal("migration failed", zap.String("command", cmd), zap.Error(err))
	}

	fmt.Fprintln(os.Stdout, "migrations completed")
}
