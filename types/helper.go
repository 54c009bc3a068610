package types

import (
	"github.com/hicampus/hicampus/ptr"
	"github.com/hicampus/hicampus/validator"
)

const (
	DefaultHelpersLimit uint = 10
	MaxHelpersLimit     uint = 50
)

type FindHelpers struct {
	RequestID int64
	Limit     *uint
}

func (in *FindHelpers) Validate() error {
	v := validator.New()

	v.Check(in.RequestID > 0, "request_id", "invalid request_id")
	if in.Limit != nil {
		v.Check(*in.Limit > 0, "limit", "limit must be positive")
		if *in.Limit > MaxHelpersLimit {
			in.Limit = ptr.From(MaxHelpersLimit)
		}
	}

	return v.AsError()
}

// HelperFilter narrows the helper directory.
// Nil fields do not filter.
type HelperFilter struct {
	Language  *string
	Gender    *Gender
	CollegeID *int64
	Limit     uint
}
