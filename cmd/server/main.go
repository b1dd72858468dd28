package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"collabpad/internal/routers"
	"collabpad/internal/store"
)

// Indirections for tests.
var (
	listenAndServe = http.ListenAndServe
	exitFunc       = func(err error) { log.Fatal(err) }

	defaultPort       = "8080"
	defaultBackend    = "sqlite"
	defaultRedisAddr  = "redis:6379"
	defaultSQLitePath = "collabpad.db"
)

func main() {
	if err := run(context.Background()); err != nil {
		exitFunc(err)
	}
}

func run(_ context.Context) error {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	st, err := store.New(store.Config{
		Backend:    getEnv("STORE_BACKEND", defaultBackend),
		RedisAddr:  getEnv("REDIS_ADDR", defaultRedisAddr),
		SQLitePath: getEnv("SQLITE_PATH", defaultSQLitePath),
	})
	if err != nil {
		return err
	}

	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Logger,
		middleware.Recoverer,
	)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Mount("/", routers.New(logger, st))

	addr := ":" + getEnv("PORT", defaultPort)
	logger.Info("collabpad listening", zap.String("addr", addr))
	return listenAndServe(addr, r)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
