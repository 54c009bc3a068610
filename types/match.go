package types

import (
	"time"

	"github.com/hicampus/hicampus/errs"
	"github.com/hicampus/hicampus/validator"
)

type MatchStatus string

const (
	MatchStatusActive    MatchStatus = "active"
	MatchStatusCompleted MatchStatus = "completed"
	MatchStatusCancelled MatchStatus = "cancelled"
)

type Match struct {
	ID           int64       `json:"id" db:"id"`
	MentorUserID int64       `json:"mentor_user_id" db:"mentor_user_id"`
	MenteeUserID int64       `json:"mentee_user_id" db:"mentee_user_id"`
	SchoolID     int64       `json:"school_id" db:"school_id"`
	RequestID    int64       `json:"request_id" db:"request_id"`
	Status       MatchStatus `json:"status" db:"status"`
	StartedAt    time.Time   `json:"started_at" db:"started_at"`
	EndedAt      *time.Time  `json:"ended_at" db:"ended_at"`
}

type OfferMatch struct {
	RequestID    int64
	MentorUserID int64 `json:"mentor_user_id"`
}

func (in *OfferMatch) Validate() error {
	v := validator.New()
	v.Check(in.RequestID > 0, "request_id", "invalid request_id")
	v.Check(in.MentorUserID > 0, "mentor_user_id", "mentor_user_id required")
	return v.AsError()
}

type Offered struct {
	RequestID int64              `json:"request_id" db:"id"`
	Status    MatchRequestStatus `json:"status" db:"status"`
	OfferedTo int64              `json:"offered_to" db:"offered_to_user_id"`
}

type AcceptMatch struct {
	RequestID    int64
	MentorUserID int64 `json:"mentor_user_id"`
}

// Validate only checks the request id. The mentor is checked once the
// request is known to exist and to be offered.
func (in *AcceptMatch) Validate() error {
	v := validator.New()
	v.Check(in.RequestID > 0, "request_id", "invalid request_id")
	return v.AsError()
}

// MentorError reports a missing mentor or one other than offeredTo.
func (in AcceptMatch) MentorError(offeredTo *int64) error {
	if in.MentorUserID <= 0 {
		return errs.NewInvalidArgumentError("mentor_user_id", "mentor_user_id required")
	}

	if offeredTo == nil || *offeredTo != in.MentorUserID {
		return errs.NewInvalidArgumentError("mentor_user_id", "mentor_user_id does not match the offered mentor")
	}

	return nil
}

type Accepted struct {
	MatchID        int64 `json:"match_id"`
	ConversationID int64 `json:"conversation_id"`
}
