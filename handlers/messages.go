// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/celebrate/middleware"
	"github.com/danielhkuo/celebrate/models"
	"github.com/danielhkuo/celebrate/store"
)

type MessageHandler struct {
	store *store.Store
}

func NewMessageHandler(s *store.Store) *MessageHandler {
	return &MessageHandler{store: s}
}

// SubmitMessage handles POST /api/messages/{userId}
// Every submission is stored as a new message
func (h *MessageHandler) SubmitMessage(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}

	var req models.SubmitMessageRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	msg, err := h.store.SubmitMessage(r.Context(), userID, req.MessageText)
	if err != nil {
		writeStoreError(w, err, "submit message")
		return
	}

	slog.Info("message submitted", "user_id", userID, "message_id", msg.ID)

	w.WriteHeader(http.StatusNoContent)
}

// GetUserMessages handles GET /api/messages/{userId}
func (h *MessageHandler) GetUserMessages(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}

	messages, err := h.store.GetUserMessages(r.Context(), userID)
	if err != nil {
		writeStoreError(w, err, "query messages")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, messages)
}
