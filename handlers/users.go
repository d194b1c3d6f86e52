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

type UserHandler struct {
	store *store.Store
}

func NewUserHandler(s *store.Store) *UserHandler {
	return &UserHandler{store: s}
}

// Register handles POST /api/users/register
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterUserRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	user, err := h.store.RegisterUser(r.Context(), req.Name)
	if err != nil {
		writeStoreError(w, err, "register user")
		return
	}

	slog.Info("user registered", "user_id", user.ID)

	middleware.JSONResponse(w, http.StatusCreated, user)
}

// GetUser handles GET /api/users/{id}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	user, err := h.store.GetUser(r.Context(), userID)
	if err != nil {
		writeStoreError(w, err, "query user")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, user)
}
