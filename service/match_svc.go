package service

import (
	"context"

	"github.com/hicampus/hicampus/auth"
	"github.com/hicampus/hicampus/errs"
	"github.com/hicampus/hicampus/types"
)

var (
	ErrMentorNotFound  = errs.NewNotFoundError("mentor not found")
	ErrMentorNotHelper = errs.NewInvalidArgumentError("mentor_user_id", "mentor must be a helper")
)

// OfferMatch offers a pending request to a helper.
func (svc *Service) OfferMatch(ctx context.Context, in types.OfferMatch) (types.Offered, error) {
	var out types.Offered

	if _, loggedIn := auth.UserFromContext(ctx); !loggedIn {
		return out, errs.Unauthenticated
	}

	if err := in.Validate(); err != nil {
		return out, err
	}

	if _, err := svc.Store.MatchRequest(ctx, in.RequestID); err != nil {
		return out, err
	}

	mentor, err := svc.Store.User(ctx, in.MentorUserID)
	if errs.IsNotFound(err) {
		return out, ErrMentorNotFound
	}

	if err != nil {
		return out, err
	}

	if !mentor.IsHelper {
		return out, ErrMentorNotHelper
	}

	req, err := svc.transition(ctx, types.UpdateMatchRequest{
		RequestID:       in.RequestID,
		To:              types.MatchRequestStatusOffered,
		OfferedToUserID: &mentor.ID,
	})
	if err != nil {
		return out, err
	}

	return types.Offered{
		RequestID: req.ID,
		Status:    req.Status,
		OfferedTo: mentor.ID,
	}, nil
}

// AcceptMatch confirms an offered request. The match, its conversation
// and both participants are created together or not at all.
func (svc *Service) AcceptMatch(ctx context.Context, in types.AcceptMatch) (types.Accepted, error) {
	var out types.Accepted

	if _, loggedIn := auth.UserFromContext(ctx); !loggedIn {
		return out, errs.Unauthenticated
	}

	if err := in.Validate(); err != nil {
		return out, err
	}

	out, err := svc.Store.AcceptMatchRequest(ctx, in)
	if err != nil {
		return out, err
	}

	svc.Metrics.MatchRequestTransition(string(types.MatchRequestStatusAccepted))

	return out, nil
}
