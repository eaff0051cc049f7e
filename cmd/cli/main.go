package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/azim218/RentMyWaifu/internal/cli"
	"github.com/azim218/RentMyWaifu/internal/config"
	"github.com/azim218/RentMyWaifu/internal/logging"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}
