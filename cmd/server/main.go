// Command server serves Swedish synonym lookups over HTTP.
//
//	GET /api/synonyms?word=glad
//	GET /live, /ready, /health
//
// Configuration comes from CONFIG_PATH (default ./config.yaml) and the
// environment. The process stops gracefully on SIGINT or SIGTERM.
//
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/synonymer/internal/app"
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
