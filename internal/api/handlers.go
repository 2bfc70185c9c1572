package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"codeinterview/internal/exec"
	"codeinterview/internal/models"
	"codeinterview/internal/session"
	"codeinterview/internal/store"
	"codeinterview/internal/utils"
)

type Handlers struct {
	log              *utils.Logger
	store            store.RoomStore
	hub              *session.Hub
	runner           *exec.Client
	guestPlaceholder string
}

func NewHandlers(log *utils.Logger, st store.RoomStore, runner *exec.Client, guestPlaceholder string) *Handlers {
	return &Handlers{
		log:              log,
		store:            st,
		hub:              session.NewHub(),
		runner:           runner,
		guestPlaceholder: guestPlaceholder,
	}
}

func (h *Handlers) Health(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("ok"))
}

type createRoomRequest struct {
	Language models.Language `json:"language"`
}

func (h *Handlers) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req createRoomRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}
	if req.Language == "" {
		req.Language = models.DefaultLanguage
	}
	if !req.Language.Valid() {
		http.Error(w, "unsupported language", http.StatusBadRequest)
		return
	}

	room, err := h.store.CreateRoom(r.Context(), req.Language)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.log.Info("room created", "room", room.ID, "language", room.Language)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(room)
}

func (h *Handlers) GetRoom(w http.ResponseWriter, r *http.Request) {
	room, err := h.store.GetRoom(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, room)
}

type updateCodeRequest struct {
	Code string `json:"code"`
}

func (h *Handlers) UpdateCode(w http.ResponseWriter, r *http.Request) {
	var req updateCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	room, err := h.store.SetCode(r.Context(), chi.URLParam(r, "id"), req.Code)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, room)
}

type updateTaskRequest struct {
	Task  string  `json:"task"`
	Title *string `json:"title"`
}

func (h *Handlers) UpdateTask(w http.ResponseWriter, r *http.Request) {
	var req updateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	room, err := h.store.SetTask(r.Context(), chi.URLParam(r, "id"), req.Task, req.Title)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, room)
}

type updateLanguageRequest struct {
	Language models.Language `json:"language"`
}

func (h *Handlers) UpdateLanguage(w http.ResponseWriter, r *http.Request) {
	var req updateLanguageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	room, err := h.store.SetLanguage(r.Context(), chi.URLParam(r, "id"), req.Language)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, room)
}

func (h *Handlers) ListParticipants(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.hub.Participants(chi.URLParam(r, "id")))
}

type executeRequest struct {
	Code     string          `json:"code"`
	Language models.Language `json:"language"`
}

func (h *Handlers) Execute(w http.ResponseWriter, r *http.Request) {
	var req executeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if !req.Language.Valid() {
		http.Error(w, "unsupported language", http.StatusBadRequest)
		return
	}
	if _, err := h.store.GetRoom(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeStoreError(w, err)
		return
	}

	result, err := h.runner.Execute(r.Context(), req.Code, req.Language)
	if err != nil {
		h.log.Error("execution relay failed", "error", err.Error())
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	writeJSON(w, result)
}

/*** Room WebSocket: shared code/task/roster/chat fan-out ***/

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

func (h *Handlers) RoomWS(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "id")

	if utils.RoomAuthEnabled() {
		claims, err := utils.ValidateRoomToken(r.URL.Query().Get("token"))
		if err != nil || claims.RoomID != roomID {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	client := session.NewClient(conn)
	room := h.hub.GetOrCreate(roomID)
	room.Join(client)
	defer h.cleanup(room, client)

	ctx := context.Background()
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var ev models.Event
		if err := json.Unmarshal(msg, &ev); err != nil {
			// Malformed frames are dropped; the connection stays open.
			continue
		}

		switch ev.Type {
		case models.EventCodeUpdate:
			var (
				updated models.Room
				uerr    error
			)
			room.Update(func() {
				updated, uerr = h.store.SetCode(ctx, roomID, ev.Code)
			})
			if uerr != nil {
				h.log.Debug("code update dropped", "room", roomID, "error", uerr.Error())
				continue
			}
			room.Broadcast(client, models.CodeFrame{Type: "code", Code: updated.Code})

		case models.EventTaskUpdate:
			var (
				updated models.Room
				uerr    error
			)
			room.Update(func() {
				updated, uerr = h.store.SetTask(ctx, roomID, ev.Task, ev.Title)
			})
			if uerr != nil {
				h.log.Debug("task update dropped", "room", roomID, "error", uerr.Error())
				continue
			}
			room.Broadcast(client, models.TaskFrame{Type: "task", Task: updated.Task, Title: ev.Title})

		case models.EventJoin:
			p := room.AddParticipant(ev.Name, h.guestPlaceholder)
			client.SetParticipant(p.ID, p.Name)
			room.BroadcastAll(models.ParticipantsFrame{Type: "participants", Participants: room.Participants()})
			_ = client.Send(models.MeFrame{Type: "me", ID: p.ID, Name: p.Name})

		case models.EventChatMessage:
			room.BroadcastAll(models.ChatFrame{
				Type:      "chat",
				UserName:  h.chatSender(client, ev),
				Text:      ev.Text,
				Timestamp: time.Now().UTC().Format(time.RFC3339),
			})

		case models.EventOutputUpdate:
			if _, err := h.store.GetRoom(ctx, roomID); err != nil {
				continue
			}
			room.Broadcast(client, models.OutputFrame{
				Type:          "output",
				Output:        ev.Output,
				Error:         ev.Error,
				ExecutionTime: ev.ExecutionTime,
			})

		default:
			// Unknown types are dropped silently.
		}
	}
}

// chatSender resolves the display name for a chat line: the joined
// participant name when there is one, else the caller-supplied name,
// else the reserved placeholder.
func (h *Handlers) chatSender(client *session.Client, ev models.Event) string {
	if _, name, ok := client.Participant(); ok {
		return name
	}
	if ev.Name != "" {
		return ev.Name
	}
	return h.guestPlaceholder
}

// cleanup tears down a closed connection: drop it from the room, and if
// it had joined, remove its participant and push the new roster to the
// remaining peers. Safe to run after a racing removal.
func (h *Handlers) cleanup(room *session.Room, client *session.Client) {
	room.Leave(client)
	id, name, ok := client.Participant()
	if !ok {
		return
	}
	if room.RemoveParticipant(id) {
		h.log.Info("participant left", "room", room.ID, "participant", name)
		room.BroadcastAll(models.ParticipantsFrame{Type: "participants", Participants: room.Participants()})
	}
}

func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		http.Error(w, "Not Found", http.StatusNotFound)
	case errors.Is(err, store.ErrInvalidLanguage):
		http.Error(w, "unsupported language", http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
