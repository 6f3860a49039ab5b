package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/thatmoosee/Study-Buddy/server/handler"
	"github.com/thatmoosee/Study-Buddy/server/logging"
	"github.com/thatmoosee/Study-Buddy/server/repository"

	"github.com/joho/godotenv"
)

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// Development stand-in for the Study Buddy backend. State lives in memory
// and is lost on exit.
func main() {
	_ = godotenv.Load()
	logging.Setup()

	addr := getEnv("DEV_ADDR", ":5000")
	secret := getEnv("JWT_SECRET", "dev-secret")
	if secret == "dev-secret" {
		slog.Warn("JWT_SECRET not set, using the development default")
	}

	router := handler.NewRouter(repository.NewDatabase(), secret)

	slog.Info("dev server listening", "address", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
