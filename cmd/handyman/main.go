package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/toolshed/handyman/internal/handyman/app"
)

func main() {
	application, err := app.New(app.LoadConfig())
	if err != nil {
		slog.Error("startup failed", "err", err)
		os.Exit(1)
	}

	if err := application.Run(context.Background()); err != nil {
		slog.Error("server exited", "err", err)
		os.Exit(1)
	}
}
