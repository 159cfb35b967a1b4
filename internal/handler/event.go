package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/juanignaciozaffalon-ops/calendariowfg/internal/auth"
	"github.com/juanignaciozaffalon-ops/calendariowfg/internal/model"
	"github.com/juanignaciozaffalon-ops/calendariowfg/internal/store"
)

type EventHandler struct {
	events store.EventStore
	logger *slog.Logger
}

func NewEventHandler(events store.EventStore, logger *slog.Logger) *EventHandler {
	return &EventHandler{events: events, logger: logger}
}

type eventRequest struct {
	Date     string  `json:"date" validate:"required,datetime=2006-01-02"`
	Time     string  `json:"time" validate:"required,datetime=15:04"`
	Title    string  `json:"title" validate:"required"`
	Channel  *string `json:"channel"`
	Platform *string `json:"platform"`
	Notes    *string `json:"notes"`
}

func (h *EventHandler) parseAndValidate(w http.ResponseWriter, r *http.Request) (*eventRequest, bool) {
	var req eventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return nil, false
	}

	req.Title = strings.TrimSpace(req.Title)
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return nil, false
	}

	return &req, true
}

func (req *eventRequest) input() model.EventInput {
	return model.EventInput{
		Date:     req.Date,
		Time:     req.Time,
		Title:    req.Title,
		Channel:  req.Channel,
		Platform: req.Platform,
		Notes:    req.Notes,
	}
}

func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := h.parseAndValidate(w, r)
	if !ok {
		return
	}

	in := req.input()
	if email := auth.UserEmail(r.Context()); email != "" {
		in.CreatedBy = &email
	}

	event, err := h.events.Create(r.Context(), in)
	if err != nil {
		h.logger.Error("create event", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create event")
		return
	}

	writeJSON(w, http.StatusCreated, event)
}

func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")

	if start == "" || end == "" {
		writeError(w, http.StatusBadRequest, "start and end query parameters are required")
		return
	}
	if _, err := time.Parse("2006-01-02", start); err != nil {
		writeError(w, http.StatusBadRequest, "start must be in YYYY-MM-DD format")
		return
	}
	if _, err := time.Parse("2006-01-02", end); err != nil {
		writeError(w, http.StatusBadRequest, "end must be in YYYY-MM-DD format")
		return
	}

	events, err := h.events.ListRange(r.Context(), start, end)
	if err != nil {
		h.logger.Error("list events", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list events")
		return
	}

	writeJSON(w, http.StatusOK, events)
}

func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	event, err := h.events.GetByID(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "event not found")
		return
	}
	if err != nil {
		h.logger.Error("get event", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to get event")
		return
	}

	writeJSON(w, http.StatusOK, event)
}

func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	req, ok := h.parseAndValidate(w, r)
	if !ok {
		return
	}

	event, err := h.events.Update(r.Context(), id, req.input())
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "event not found")
		return
	}
	if err != nil {
		h.logger.Error("update event", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to update event")
		return
	}

	writeJSON(w, http.StatusOK, event)
}

func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	err = h.events.Delete(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "event not found")
		return
	}
	if err != nil {
		h.logger.Error("delete event", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete event")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
