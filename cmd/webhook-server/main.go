package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"docinho/internal/config"
	"docinho/internal/storage"
	"docinho/internal/webhook"
)

func main() {
	cfg, err := config.Load()
	must(err)

	db, err := storage.Open(cfg.DBPath)
	must(err)
	defer db.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	must(webhook.Run(ctx, cfg, db))
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
