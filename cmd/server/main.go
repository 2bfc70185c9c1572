package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"

	"codeinterview/internal/exec"
	"codeinterview/internal/routers"
	"codeinterview/internal/store"
	"codeinterview/internal/utils"
)

var (
	listenAndServe = http.ListenAndServe
	exitFunc       = func(err error) { log.Fatal(err) }
)

func run(_ context.Context) error {
	logger := utils.NewLogger()

	var st store.RoomStore
	if getEnv("STORE", "memory") == "redis" {
		rdb := redis.NewClient(&redis.Options{Addr: getEnv("REDIS_ADDR", "localhost:6379")})
		st = store.NewRedis(rdb)
	} else {
		st = store.NewMemory()
	}

	runner := exec.NewClient(os.Getenv("RUNNER_URL"))
	guestPlaceholder := getEnv("GUEST_PLACEHOLDER", "Anonymous")

	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Logger,
		middleware.Recoverer,
		middleware.Timeout(60*time.Second),
	)
	r.Mount("/", routers.New(logger, st, runner, guestPlaceholder))

	addr := ":" + getEnv("PORT", "8080")
	logger.Info("interview-svc listening", "addr", addr)
	return listenAndServe(addr, r)
}

func main() {
	if err := run(context.Background()); err != nil {
		exitFunc(err)
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
