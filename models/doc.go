// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - RegisterUserRequest: name
  - SubmitVoteRequest: activity_id, option_id
  - SubmitMessageRequest: message_text

# Domain Types

  - User: registered guest
  - Activity: question with its ordered options
  - Option: one choice within an activity
  - Vote: a guest's current choice for an activity
  - Message: free-text note from a guest

# Result Types

  - ActivityResult: per-option vote counts and the activity total
  - VoteCount: count for a single option
  - VotingStatus: whether votes are currently accepted

Vote audit fields (IPHash, UserAgent) are never serialized.
*/
package models
