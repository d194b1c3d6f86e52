// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/celebrate/middleware"
	"github.com/danielhkuo/celebrate/store"
)

// pathID reads a positive integer path parameter.
// Writes a 400 and returns false when it is missing or malformed.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, name+" must be a positive integer")
		return 0, false
	}
	return id, true
}

// writeStoreError maps store errors onto HTTP responses.
// Unexpected errors are logged with op and reported as a generic database error.
func writeStoreError(w http.ResponseWriter, err error, op string) {
	var (
		validationErr *store.ValidationError
		notFoundErr   *store.NotFoundError
		conflictErr   *store.ConflictError
	)

	switch {
	case errors.As(err, &validationErr):
		middleware.ErrorResponse(w, http.StatusBadRequest, validationErr.Error())
	case errors.As(err, &notFoundErr):
		middleware.ErrorResponse(w, http.StatusNotFound, notFoundErr.Error())
	case errors.Is(err, store.ErrVotingClosed):
		middleware.ErrorResponse(w, http.StatusForbidden, "Voting is closed")
	case errors.As(err, &conflictErr):
		middleware.ErrorResponse(w, http.StatusConflict, conflictErr.Error())
	default:
		slog.Error("failed to "+op, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
	}
}
