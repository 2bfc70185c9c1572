package routers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"codeinterview/internal/api"
	"codeinterview/internal/exec"
	"codeinterview/internal/store"
	"codeinterview/internal/utils"
)

func New(log *utils.Logger, st store.RoomStore, runner *exec.Client, guestPlaceholder string) http.Handler {
	h := api.NewHandlers(log, st, runner, guestPlaceholder)
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}))

	r.Get("/healthz", h.Health)

	r.Route("/api/rooms", func(r chi.Router) {
		r.Post("/", h.CreateRoom)
		r.Get("/{id}", h.GetRoom)
		r.Put("/{id}/code", h.UpdateCode)
		r.Put("/{id}/task", h.UpdateTask)
		r.Put("/{id}/language", h.UpdateLanguage)
		r.Get("/{id}/participants", h.ListParticipants)
		r.Post("/{id}/execute", h.Execute)
	})

	r.Get("/ws/rooms/{id}", h.RoomWS)

	return r
}
