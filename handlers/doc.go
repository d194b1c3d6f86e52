// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the celebration API.

# Handler Types

Each handler is a struct wrapping the store:

  - UserHandler: Guest registration and lookup
  - VotingHandler: Activities, voting status and vote submission
  - MessageHandler: Guest messages
  - ResultsHandler: Vote tallies and all messages for the admin page

Handlers are created via constructor functions:

	votingHandler := handlers.NewVotingHandler(s, cfg)

# Guest Flow

	POST /api/users/register            → Register (returns id)
	GET  /api/voting/activities         → ListActivities
	POST /api/voting/vote/{userId}      → SubmitVote (create or replace)
	GET  /api/voting/user-votes/{userId} → GetUserVotes
	POST /api/messages/{userId}         → SubmitMessage

The user id comes from the client and is only checked for existence.

# Errors

Store errors map to status codes:

  - ValidationError → 400
  - NotFoundError   → 404
  - ErrVotingClosed → 403
  - ConflictError   → 409
  - anything else   → 500, logged

Malformed JSON and non-numeric path ids are rejected with 400 before
reaching the store.
*/
package handlers
