package models

import "time"

// Request types

type RegisterUserRequest struct {
	Name string `json:"name"`
}

type SubmitVoteRequest struct {
	ActivityID int64 `json:"activity_id"`
	OptionID   int64 `json:"option_id"`
}

type SubmitMessageRequest struct {
	MessageText string `json:"message_text"`
}

// Domain types

type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type Option struct {
	ID         int64  `json:"id"`
	ActivityID int64  `json:"-"`
	OptionText string `json:"option_text"`
	Order      int    `json:"order"`
}

type Activity struct {
	ID       int64    `json:"id"`
	Question string   `json:"question"`
	Order    int      `json:"order"`
	Options  []Option `json:"options"`
}

type Vote struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	ActivityID int64     `json:"activity_id"`
	OptionID   int64     `json:"option_id"`
	IPHash     *string   `json:"-"` // Never expose in JSON
	UserAgent  *string   `json:"-"` // Never expose in JSON
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type Message struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	MessageText string    `json:"message_text"`
	CreatedAt   time.Time `json:"created_at"`
}

// Result types

type VoteCount struct {
	OptionID   int64  `json:"option_id"`
	OptionText string `json:"option_text"`
	VoteCount  int    `json:"vote_count"`
}

type ActivityResult struct {
	ActivityID int64       `json:"activity_id"`
	Question   string      `json:"question"`
	Order      int         `json:"order"`
	VoteCounts []VoteCount `json:"vote_counts"`
	TotalVotes int         `json:"total_votes"`
}

type VotingStatus struct {
	IsVotingOpen  bool       `json:"is_voting_open"`
	VotingEndTime *time.Time `json:"voting_end_time"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// StatusResponse is the root banner.
type StatusResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}
