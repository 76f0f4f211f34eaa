package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/cmlabs-hris/hris-attendance-core/internal/cli"
	"github.com/cmlabs-hris/hris-attendance-core/internal/config"
	"github.com/cmlabs-hris/hris-attendance-core/internal/pkg/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading config:", err)
		os.Exit(2)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	db := database.NewHandle(cfg.DatabaseURL())
	defer db.Close()

	app := &cli.App{Config: cfg, DB: db}
	if err := cli.NewRootCommand(app).Execute(); err != nil {
		db.Close()
		os.Exit(1)
	}
}
