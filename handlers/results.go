// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/celebrate/middleware"
	"github.com/danielhkuo/celebrate/store"
)

// ResultsHandler serves the read-only admin results page.
type ResultsHandler struct {
	store *store.Store
}

func NewResultsHandler(s *store.Store) *ResultsHandler {
	return &ResultsHandler{store: s}
}

// GetResults handles GET /api/anniversary-celebration-results/activities
// Every option appears in vote_counts, including options nobody picked
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	results, err := h.store.GetResults(r.Context())
	if err != nil {
		writeStoreError(w, err, "compute results")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, results)
}

// GetMessages handles GET /api/anniversary-celebration-results/messages
func (h *ResultsHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.store.GetMessages(r.Context())
	if err != nil {
		writeStoreError(w, err, "query messages")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, messages)
}
