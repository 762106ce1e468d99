package webhook

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"docinho/internal/catalog"
	"docinho/internal/config"
	"docinho/internal/intake"
	"docinho/internal/notify"
	"docinho/internal/sheets"
	"docinho/internal/storage"
)

// Run wires the full intake stack and serves until ctx is cancelled.
func Run(ctx context.Context, cfg config.Config, db *storage.DB) error {
	store := catalog.Seeded()

	client, err := sheets.NewClient(ctx, cfg)
	if err != nil {
		return err
	}

	if cfg.ReloadOnStart {
		if err := sheets.ReloadCatalog(ctx, client, store); err != nil {
			// Seed data keeps the bot answering until the sheet is reachable.
			log.Printf("catalog reload failed, using seed data: %v", err)
		} else {
			log.Printf("catalog loaded: products=%d ingredients=%d", store.ProductCount(), store.IngredientCount())
			if err := db.SetMetadata("catalog.last_reload", time.Now().UTC().Format(time.RFC3339)); err != nil {
				log.Printf("metadata write failed: %v", err)
			}
		}
	}

	notifier, err := notify.NewClient(cfg)
	if err != nil {
		return err
	}

	svc := intake.NewService(store, sheets.NewLedger(client), notifier, db)
	router := SetupRouter(cfg, NewHandler(svc))

	server := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("webhook listening on %s", cfg.HTTPAddr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
