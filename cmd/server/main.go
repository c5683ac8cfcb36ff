/*
main.go - Application entry point

PURPOSE:
  Starts the statutory calculator API server. Wires configuration, the
  statute catalog, logging, and graceful shutdown.

STARTUP SEQUENCE:
  1. Load .env (optional) and parse flags with env fallback
  2. Pick the statute catalog: built-in tables, or a SQLite file when
     -rates-db is set (seeded with the built-in figures on first run)
  3. Configure the router and start the server, then shut down gracefully
     on SIGINT/SIGTERM

COMMAND-LINE FLAGS:
  -port      HTTP server port            (env PORT, default 8080)
  -rates-db  SQLite statute catalog path (env RATES_DB, empty = built-in)

EXAMPLES:
  # Built-in tables
  ./server

  # File-backed catalog with revised figures
  ./server -rates-db=./data/rates.db

SEE ALSO:
  - api/server.go: Router configuration
  - store/sqlite: File-backed catalog
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/shootingstar112/startup-hr-sub000/api"
	"github.com/shootingstar112/startup-hr-sub000/statute"
	"github.com/shootingstar112/startup-hr-sub000/store/sqlite"
)

func main() {
	_ = godotenv.Load()

	port := flag.Int("port", envInt("PORT", 8080), "HTTP server port")
	ratesDB := flag.String("rates-db", os.Getenv("RATES_DB"), "SQLite statute catalog path (empty = built-in tables)")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	var catalog statute.Catalog = statute.BuiltinCatalog{}
	if *ratesDB != "" {
		store, err := sqlite.New(*ratesDB)
		if err != nil {
			log.Fatal().Err(err).Str("path", *ratesDB).Msg("open statute catalog")
		}
		defer store.Close()
		if err := store.Seed(context.Background()); err != nil {
			log.Fatal().Err(err).Msg("seed statute catalog")
		}
		catalog = store
		log.Info().Str("path", *ratesDB).Msg("using file-backed statute catalog")
	}

	handler := api.NewHandler(catalog, log)
	router := api.NewRouter(handler)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Int("port", *port).Int("default_year", statute.DefaultYear).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}

	log.Info().Msg("server stopped")
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
