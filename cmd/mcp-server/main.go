// cmd/mcp-server/main.go: HTTP MCP server for gosigma
//
// Exposes the Σ-basis tools as an HTTP endpoint for AI agent frameworks.
//
// Usage:
//   go run ./cmd/mcp-server -n 4 -addr :8080 -cache ~/.gosigma/products.db [-purge]
//
// Tool call endpoint: POST /tool
// Schema endpoint:    GET  /schema
// Ring endpoint:      GET  /ring
// Health endpoint:    GET  /health
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/njchilds90/gosigma"
	"github.com/njchilds90/gosigma/internal/config"
	"github.com/njchilds90/gosigma/internal/store"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	degree := flag.Int("n", cfg.Degree, "Number of variables")
	addr := flag.String("addr", cfg.Addr, "Address to listen on")
	cachePath := flag.String("cache", cfg.CachePath, "sqlite product cache (empty: in memory)")
	purge := flag.Bool("purge", false, "Drop cached products for -n before serving")
	flag.Parse()

	cache, closeCache, err := openCache(context.Background(), *cachePath, *degree, *purge)
	if err != nil {
		return err
	}
	defer closeCache()

	ring, err := gosigma.NewRing(*degree, gosigma.WithProductCache(cache))
	if err != nil {
		return fmt.Errorf("invalid ring: %w", err)
	}

	srv := &http.Server{
		Addr:              *addr,
		Handler:           newRouter(ring),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("gosigma MCP server listening on %s (%s)", *addr, ring)
		log.Printf("  POST /tool   — execute a tool call")
		log.Printf("  GET  /schema — tool schema for agent registration")
		log.Printf("  GET  /ring   — ring configuration")
		log.Printf("  GET  /health — health check")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		log.Printf("shutdown signal received: %s", sig)
	case err := <-errCh:
		log.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("http shutdown error: %v", err)
	}
	log.Println("server stopped")
	return nil
}

// openCache returns the product cache for path: in memory when path is
// empty, sqlite otherwise. With purge set, products cached for n are dropped first.
func openCache(ctx context.Context, path string, n int, purge bool) (gosigma.ProductCache, func(), error) {
	if path == "" {
		return gosigma.NewMemoryCache(), func() {}, nil
	}
	c, err := store.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open product cache: %w", err)
	}
	closeCache := func() {
		if err := c.Close(); err != nil {
			log.Printf("close product cache: %v", err)
		}
	}
	if purge {
		removed, err := c.Purge(ctx, n)
		if err != nil {
			closeCache()
			return nil, nil, err
		}
		log.Printf("purged %d cached products for n=%d", removed, n)
	}
	total, err := c.Len(ctx)
	if err != nil {
		closeCache()
		return nil, nil, err
	}
	log.Printf("product cache %s: %d entries", path, total)
	return c, closeCache, nil
}
