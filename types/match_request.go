package types

import (
	"slices"
	"time"

	"github.com/hicampus/hicampus/textutil"
	"github.com/hicampus/hicampus/validator"
)

// MatchRequestStatus is the lifecycle state of a [MatchRequest].
// The only way to move between states is through [MatchRequestStatus.CanTransitionTo].
type MatchRequestStatus string

const (
	MatchRequestStatusPending   MatchRequestStatus = "pending"
	MatchRequestStatusOffered   MatchRequestStatus = "offered"
	MatchRequestStatusAccepted  MatchRequestStatus = "accepted"
	MatchRequestStatusRejected  MatchRequestStatus = "rejected"
	MatchRequestStatusCancelled MatchRequestStatus = "cancelled"
)

var matchRequestTransitions = map[MatchRequestStatus][]MatchRequestStatus{
	MatchRequestStatusPending: {
		MatchRequestStatusOffered,
		MatchRequestStatusRejected,
		MatchRequestStatusCancelled,
	},
	MatchRequestStatusOffered: {
		MatchRequestStatusAccepted,
		MatchRequestStatusRejected,
		MatchRequestStatusCancelled,
	},
}

func (s MatchRequestStatus) Valid() bool {
	switch s {
	case MatchRequestStatusPending,
		MatchRequestStatusOffered,
		MatchRequestStatusAccepted,
		MatchRequestStatusRejected,
		MatchRequestStatusCancelled:
		return true
	}
	return false
}

func (s MatchRequestStatus) IsTerminal() bool {
	return s.Valid() && len(matchRequestTransitions[s]) == 0
}

func (s MatchRequestStatus) CanTransitionTo(to MatchRequestStatus) bool {
	return slices.Contains(matchRequestTransitions[s], to)
}

// SourceStatuses lists, in a stable order, the states a request
// must be in to move into the given one.
func (s MatchRequestStatus) SourceStatuses() []MatchRequestStatus {
	var out []MatchRequestStatus
	for _, from := range []MatchRequestStatus{MatchRequestStatusPending, MatchRequestStatusOffered} {
		if from.CanTransitionTo(s) {
			out = append(out, from)
		}
	}
	return out
}

type PreferredGender string

const (
	PreferredGenderAny    PreferredGender = "any"
	PreferredGenderMale   PreferredGender = "male"
	PreferredGenderFemale PreferredGender = "female"
)

func (g PreferredGender) Valid() bool {
	return g == PreferredGenderAny || g == PreferredGenderMale || g == PreferredGenderFemale
}

// Gender returns the concrete gender to filter helpers by.
// It returns false for "any".
func (g PreferredGender) Gender() (Gender, bool) {
	switch g {
	case PreferredGenderMale:
		return GenderMale, true
	case PreferredGenderFemale:
		return GenderFemale, true
	}
	return "", false
}

type MatchRequest struct {
	ID                 int64              `json:"id" db:"id"`
	RequesterUserID    int64              `json:"requester_user_id" db:"requester_user_id"`
	PreferredCollegeID *int64             `json:"preferred_college_id" db:"preferred_college_id"`
	PreferredGender    PreferredGender    `json:"preferred_gender" db:"preferred_gender"`
	Notes              *string            `json:"notes" db:"notes"`
	Status             MatchRequestStatus `json:"status" db:"status"`
	OfferedToUserID    *int64             `json:"offered_to" db:"offered_to_user_id"`
	CreatedAt          time.Time          `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at" db:"updated_at"`
}

const maxNotesLength = 500

type CreateMatchRequest struct {
	PreferredCollegeID *int64          `json:"preferred_college_id"`
	PreferredGender    PreferredGender `json:"preferred_gender"`
	Notes              *string         `json:"notes"`

	loggedInUserID int64
}

func (in *CreateMatchRequest) SetLoggedInUserID(userID int64) {
	in.loggedInUserID = userID
}

func (in CreateMatchRequest) LoggedInUserID() int64 {
	return in.loggedInUserID
}

func (in *CreateMatchRequest) Validate() error {
	v := validator.New()

	if in.PreferredGender == "" {
		in.PreferredGender = PreferredGenderAny
	}
	in.Notes = textutil.NilIfBlank(in.Notes)

	v.Check(in.PreferredGender.Valid(), "preferred_gender", "preferred_gender must be male, female or any")
	if in.PreferredCollegeID != nil {
		v.Check(*in.PreferredCollegeID > 0, "preferred_college_id", "invalid preferred_college_id")
	}
	if in.Notes != nil {
		v.Check(textutil.RuneCountAtMost(*in.Notes, maxNotesLength), "notes", "notes must be at most 500 characters")
	}

	return v.AsError()
}

type MatchRequestCreated struct {
	ID     int64              `json:"id" db:"id"`
	Status MatchRequestStatus `json:"status" db:"status"`
}

type RetrieveMatchRequest struct {
	RequestID int64

	loggedInUserID int64
}

func (in *RetrieveMatchRequest) SetLoggedInUserID(userID int64) {
	in.loggedInUserID = userID
}

func (in RetrieveMatchRequest) LoggedInUserID() int64 {
	return in.loggedInUserID
}

func (in *RetrieveMatchRequest) Validate() error {
	v := validator.New()
	v.Check(in.RequestID > 0, "request_id", "invalid request_id")
	return v.AsError()
}

// MatchRequestsLimit caps the listing of a user's own requests.
const MatchRequestsLimit = 50

type ListMatchRequests struct {
	loggedInUserID int64
}

func (in *ListMatchRequests) SetLoggedInUserID(userID int64) {
	in.loggedInUserID = userID
}

func (in ListMatchRequests) LoggedInUserID() int64 {
	return in.loggedInUserID
}

// UpdateMatchRequest moves a request into To using compare-and-set
// against To's source statuses.
type UpdateMatchRequest struct {
	RequestID       int64
	To              MatchRequestStatus
	OfferedToUserID *int64
}

// CancelMatchRequest is issued by the requester.
type CancelMatchRequest struct {
	RequestID int64

	loggedInUserID int64
}

func (in *CancelMatchRequest) SetLoggedInUserID(userID int64) {
	in.loggedInUserID = userID
}

func (in CancelMatchRequest) LoggedInUserID() int64 {
	return in.loggedInUserID
}

func (in *CancelMatchRequest) Validate() error {
	v := validator.New()
	v.Check(in.RequestID > 0, "request_id", "invalid request_id")
	return v.AsError()
}

// RejectMatchRequest is issued by a helper turning the request down.
type RejectMatchRequest struct {
	RequestID int64

	loggedInUserID int64
}

func (in *RejectMatchRequest) SetLoggedInUserID(userID int64) {
	in.loggedInUserID = userID
}

func (in RejectMatchRequest) LoggedInUserID() int64 {
	return in.loggedInUserID
}

func (in *RejectMatchRequest) Validate() error {
	v := validator.New()
	v.Check(in.RequestID > 0, "request_id", "invalid request_id")
	return v.AsError()
}
