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

	"github.com/cardapio-pos/web/internal/backend"
	"github.com/cardapio-pos/web/internal/cart"
	"github.com/cardapio-pos/web/internal/config"
	"github.com/cardapio-pos/web/internal/router"
	"github.com/cardapio-pos/web/internal/session"
	"github.com/cardapio-pos/web/internal/store"
)

func main() {
	cfg := config.Load()

	st, err := newStore(cfg)
	if err != nil {
		log.Fatalf("store: %v", err)
	}

	api := backend.New(cfg.BackendURL)
	sessions := session.NewManager(st)
	carts := cart.NewManager(st)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router.New(cfg, api, sessions, carts),
	}

	go func() {
		log.Printf("Starting server on :%s (backend: %s)", cfg.Port, cfg.BackendURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("ERROR: shutdown: %v", err)
	}
	log.Println("Server stopped")
}

// newStore picks Redis when configured, the file store otherwise.
func newStore(cfg *config.Config) (store.Store, error) {
	if cfg.RedisAddr != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return store.NewRedis(ctx, cfg.RedisAddr)
	}
	return store.NewFile(cfg.DataDir)
}
