// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/celebrate/cliparse"
	"github.com/danielhkuo/celebrate/handlers"
	"github.com/danielhkuo/celebrate/middleware"
	"github.com/danielhkuo/celebrate/models"
	"github.com/danielhkuo/celebrate/store"
)

func NewRouter(s *store.Store, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	userHandler := handlers.NewUserHandler(s)
	votingHandler := handlers.NewVotingHandler(s, cfg)
	messageHandler := handlers.NewMessageHandler(s)
	resultsHandler := handlers.NewResultsHandler(s)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Users
	mux.HandleFunc("POST /api/users/register", middleware.WithLogging(userHandler.Register))
	mux.HandleFunc("GET /api/users/{id}", middleware.WithLogging(userHandler.GetUser))

	// Voting
	mux.HandleFunc("GET /api/voting/activities", middleware.WithLogging(votingHandler.ListActivities))
	mux.HandleFunc("GET /api/voting/activities/{id}", middleware.WithLogging(votingHandler.GetActivity))
	mux.HandleFunc("GET /api/voting/status", middleware.WithLogging(votingHandler.GetStatus))
	mux.HandleFunc("POST /api/voting/vote/{userId}", middleware.WithLogging(votingHandler.SubmitVote))
	mux.HandleFunc("GET /api/voting/user-votes/{userId}", middleware.WithLogging(votingHandler.GetUserVotes))

	// Messages
	mux.HandleFunc("POST /api/messages/{userId}", middleware.WithLogging(messageHandler.SubmitMessage))
	mux.HandleFunc("GET /api/messages/{userId}", middleware.WithLogging(messageHandler.GetUserMessages))

	// Admin results (unauthenticated, obscure path)
	mux.HandleFunc("GET /api/anniversary-celebration-results/activities", middleware.WithLogging(resultsHandler.GetResults))
	mux.HandleFunc("GET /api/anniversary-celebration-results/messages", middleware.WithLogging(resultsHandler.GetMessages))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		middleware.JSONResponse(w, http.StatusOK, models.StatusResponse{
			Message: "Anniversary Voting App API",
			Status:  "running",
		})
	})

	return middleware.CORS(cfg.AllowedOrigins)(mux)
}
