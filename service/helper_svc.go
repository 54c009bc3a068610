package service

import (
	"context"

	"github.com/hicampus/hicampus/auth"
	"github.com/hicampus/hicampus/errs"
	"github.com/hicampus/hicampus/ptr"
	"github.com/hicampus/hicampus/types"
)

// FindHelpers lists helpers suitable for a match request: speaking the
// requester's main language, of the preferred gender unless "any", and
// studying in the preferred college when one was given.
func (svc *Service) FindHelpers(ctx context.Context, in types.FindHelpers) ([]types.UserPreview, error) {
	if _, loggedIn := auth.UserFromContext(ctx); !loggedIn {
		return nil, errs.Unauthenticated
	}

	if err := in.Validate(); err != nil {
		return nil, err
	}

	req, err := svc.Store.MatchRequest(ctx, in.RequestID)
	if err != nil {
		return nil, err
	}

	requester, err := svc.Store.User(ctx, req.RequesterUserID)
	if err != nil {
		return nil, err
	}

	filter := types.HelperFilter{
		Language:  ptr.NilIfZero(requester.MainLanguage),
		CollegeID: req.PreferredCollegeID,
		Limit:     ptr.Or(in.Limit, types.DefaultHelpersLimit),
	}

	if gender, ok := req.PreferredGender.Gender(); ok {
		filter.Gender = &gender
	}

	return svc.Store.Helpers(ctx, filter)
}
