// Command server runs the time tracking HTTP API.
//
// Configuration is read from config.yml and environment variables; see
// internal/config for the full list. The server shuts down gracefully on
// SIGINT and SIGTERM.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/molcom/timeclock-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("run: %v", err)
	}
}
