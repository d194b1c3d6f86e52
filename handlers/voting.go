// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/celebrate/cliparse"
	"github.com/danielhkuo/celebrate/fingerprint"
	"github.com/danielhkuo/celebrate/middleware"
	"github.com/danielhkuo/celebrate/models"
	"github.com/danielhkuo/celebrate/store"
)

type VotingHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewVotingHandler(s *store.Store, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{store: s, cfg: cfg}
}

// ListActivities handles GET /api/voting/activities
// Activities and their options come back sorted by order
func (h *VotingHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := h.store.ListActivities(r.Context())
	if err != nil {
		writeStoreError(w, err, "list activities")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, activities)
}

// GetActivity handles GET /api/voting/activities/{id}
func (h *VotingHandler) GetActivity(w http.ResponseWriter, r *http.Request) {
	activityID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	activity, err := h.store.GetActivity(r.Context(), activityID)
	if err != nil {
		writeStoreError(w, err, "query activity")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, activity)
}

// GetStatus handles GET /api/voting/status
func (h *VotingHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.store.VotingStatus(r.Context())
	if err != nil {
		writeStoreError(w, err, "query voting status")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, status)
}

// SubmitVote handles POST /api/voting/vote/{userId}
// A repeat vote for the same activity replaces the earlier choice
func (h *VotingHandler) SubmitVote(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}

	var req models.SubmitVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.ActivityID <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "activity_id is required")
		return
	}
	if req.OptionID <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "option_id is required")
		return
	}

	ipHash, userAgent := fingerprint.FromRequest(r, h.cfg.IPHashSalt)

	err := h.store.SubmitVote(r.Context(), userID, req.ActivityID, req.OptionID, store.VoteMeta{
		IPHash:    ipHash,
		UserAgent: userAgent,
	})
	if err != nil {
		writeStoreError(w, err, "submit vote")
		return
	}

	slog.Info("vote submitted", "user_id", userID, "activity_id", req.ActivityID, "option_id", req.OptionID)

	w.WriteHeader(http.StatusNoContent)
}

// GetUserVotes handles GET /api/voting/user-votes/{userId}
func (h *VotingHandler) GetUserVotes(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}

	votes, err := h.store.GetUserVotes(r.Context(), userID)
	if err != nil {
		writeStoreError(w, err, "query votes")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, votes)
}
