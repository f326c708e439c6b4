// Command server runs the CPD tracking HTTP API.
//
// Configuration is read from CONFIG_PATH (default ./config.yaml) and the
// environment. SIGINT or SIGTERM drains in-flight requests and exits.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/cpdtrack/cpd-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Printf("server: %v", err)
		stop()
		os.Exit(1)
	}
}
