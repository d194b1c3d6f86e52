// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store implements the celebration operations on top of database/sql.

	s := store.New(conn)
	user, err := s.RegisterUser(ctx, "Alice")
	err = s.SubmitVote(ctx, user.ID, activityID, optionID, store.VoteMeta{})

# Operations

Registration: RegisterUser, GetUser.

Voting: ListActivities, GetActivity, SubmitVote, GetUserVotes,
VotingStatus, SetVotingClosed, SetVotingEndTime.

Messaging: SubmitMessage, GetUserMessages.

Aggregation: GetResults, GetMessages.

# Errors

Operations return typed errors that the HTTP layer maps to status codes:

  - *ValidationError: empty input, or an option that does not belong to the activity
  - *NotFoundError: unknown user or activity
  - ErrVotingClosed: vote submitted while voting is closed

Anything else is an unexpected database failure.

# Ordering

Activities, options and results are returned sorted by their order
field. Messages are returned oldest first.
*/
package store
