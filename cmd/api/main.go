package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/minsplit/minsplit/backend/internal/config"
	"github.com/minsplit/minsplit/backend/internal/handler"
	"github.com/minsplit/minsplit/backend/internal/model/persona"
	debateService "github.com/minsplit/minsplit/backend/internal/service/debate"
	"github.com/minsplit/minsplit/backend/internal/store"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Pick the conversation store: Postgres when DATABASE_URL is set and
	// reachable, the in-memory store otherwise.
	var convStore store.Store
	storeKind := "memory"
	if cfg.Database.Configured() {
		pg, err := store.NewPostgres(ctx, cfg.Database.URL)
		if err != nil {
			log.Printf("warning: failed to connect to database: %v", err)
			log.Println("continuing with the in-memory conversation store")
		} else if err := pg.EnsureSchema(ctx); err != nil {
			log.Printf("warning: failed to ensure database schema: %v", err)
			pg.Close()
			log.Println("continuing with the in-memory conversation store")
		} else {
			defer pg.Close()
			convStore = pg
			storeKind = "postgres"
			log.Println("conversation store backed by Postgres")
		}
	} else {
		log.Println("DATABASE_URL not set, conversations are kept in memory")
	}
	if convStore == nil {
		convStore = store.NewMemoryStore()
	}

	personaStore := persona.NewMemoryStore(persona.Seed())
	debateSvc := debateService.NewService(convStore)

	router := handler.NewRouter(personaStore, debateSvc, handler.Diagnostics{
		ConvStore:          convStore,
		StoreKind:          storeKind,
		DatabaseConfigured: cfg.Database.Configured(),
	})

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	srv := &http.Server{
		Addr:              serverCfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("MinSplit backend listening on %s", serverCfg.Addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
