// Command footstats ingests api-football data into postgres and prints
// reports of what is stored.
//
// Usage:
//
//	footstats init-db
//	footstats fetch-season England "Premier League" 2023 --with-stats
//	footstats show-standings "Premier League" 2023
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr, defaultBackend())
	stop()

	os.Exit(code)
}
