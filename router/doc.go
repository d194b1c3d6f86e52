// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the celebration API.

# Route Registration

NewRouter returns the mux wrapped in CORS for the configured origins:

	h := router.NewRouter(store.New(conn), cfg)

# Endpoints

Health:

	GET /health
	GET /

Users:

	POST /api/users/register - Register guest by name
	GET  /api/users/{id}     - Look up guest

Voting:

	GET  /api/voting/activities          - Active activities with options
	GET  /api/voting/activities/{id}     - Single activity
	GET  /api/voting/status              - Whether votes are accepted
	POST /api/voting/vote/{userId}       - Create or replace a vote
	GET  /api/voting/user-votes/{userId} - Guest's current votes

Messages:

	POST /api/messages/{userId} - Leave a message
	GET  /api/messages/{userId} - Guest's messages

Results (no auth, known only to the hosts):

	GET /api/anniversary-celebration-results/activities
	GET /api/anniversary-celebration-results/messages

Every route except /health and / goes through middleware.WithLogging.
*/
package router
