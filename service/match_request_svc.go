package service

import (
	"context"

	"github.com/hicampus/hicampus/auth"
	"github.com/hicampus/hicampus/errs"
	"github.com/hicampus/hicampus/types"
)

var (
	ErrHelperCannotRequest    = errs.NewPermissionDeniedError("helpers cannot create match requests")
	ErrNotRequester           = errs.NewPermissionDeniedError("only the requester can do this")
	ErrOnlyHelpersCanReject   = errs.NewPermissionDeniedError("only helpers can reject match requests")
	ErrOfferedToAnotherHelper = errs.NewPermissionDeniedError("match request was offered to another helper")
)

// CreateMatchRequest opens a new pending request for the logged in seeker.
func (svc *Service) CreateMatchRequest(ctx context.Context, in types.CreateMatchRequest) (types.MatchRequestCreated, error) {
	var out types.MatchRequestCreated

	loggedInUser, loggedIn := auth.UserFromContext(ctx)
	if !loggedIn {
		return out, errs.Unauthenticated
	}

	if err := in.Validate(); err != nil {
		return out, err
	}

	if loggedInUser.IsHelper {
		return out, ErrHelperCannotRequest
	}

	in.SetLoggedInUserID(loggedInUser.ID)

	out, err := svc.Store.CreateMatchRequest(ctx, in)
	if err != nil {
		return out, err
	}

	svc.Metrics.MatchRequestTransition(string(out.Status))

	return out, nil
}

// MatchRequest is visible to its requester and to helpers.
func (svc *Service) MatchRequest(ctx context.Context, in types.RetrieveMatchRequest) (types.MatchRequest, error) {
	var out types.MatchRequest

	loggedInUser, loggedIn := auth.UserFromContext(ctx)
	if !loggedIn {
		return out, errs.Unauthenticated
	}

	if err := in.Validate(); err != nil {
		return out, err
	}

	out, err := svc.Store.MatchRequest(ctx, in.RequestID)
	if err != nil {
		return out, err
	}

	if out.RequesterUserID != loggedInUser.ID && !loggedInUser.IsHelper {
		return types.MatchRequest{}, errs.PermissionDenied
	}

	return out, nil
}

func (svc *Service) MatchRequests(ctx context.Context, in types.ListMatchRequests) ([]types.MatchRequest, error) {
	loggedInUser, loggedIn := auth.UserFromContext(ctx)
	if !loggedIn {
		return nil, errs.Unauthenticated
	}

	in.SetLoggedInUserID(loggedInUser.ID)

	return svc.Store.MatchRequests(ctx, in)
}

// CancelMatchRequest lets the requester withdraw a pending or offered request.
func (svc *Service) CancelMatchRequest(ctx context.Context, in types.CancelMatchRequest) (types.MatchRequest, error) {
	var out types.MatchRequest

	loggedInUser, loggedIn := auth.UserFromContext(ctx)
	if !loggedIn {
		return out, errs.Unauthenticated
	}

	if err := in.Validate(); err != nil {
		return out, err
	}

	in.SetLoggedInUserID(loggedInUser.ID)

	req, err := svc.Store.MatchRequest(ctx, in.RequestID)
	if err != nil {
		return out, err
	}

	if req.RequesterUserID != in.LoggedInUserID() {
		return out, ErrNotRequester
	}

	return svc.transition(ctx, types.UpdateMatchRequest{
		RequestID: in.RequestID,
		To:        types.MatchRequestStatusCancelled,
	})
}

// RejectMatchRequest lets a helper turn down a pending request,
// or an offered one if the offer was made to them.
func (svc *Service) RejectMatchRequest(ctx context.Context, in types.RejectMatchRequest) (types.MatchRequest, error) {
	var out types.MatchRequest

	loggedInUser, loggedIn := auth.UserFromContext(ctx)
	if !loggedIn {
		return out, errs.Unauthenticated
	}

	if err := in.Validate(); err != nil {
		return out, err
	}

	if !loggedInUser.IsHelper {
		return out, ErrOnlyHelpersCanReject
	}

	in.SetLoggedInUserID(loggedInUser.ID)

	req, err := svc.Store.MatchRequest(ctx, in.RequestID)
	if err != nil {
		return out, err
	}

	if req.OfferedToUserID != nil && *req.OfferedToUserID != in.LoggedInUserID() {
		return out, ErrOfferedToAnotherHelper
	}

	return svc.transition(ctx, types.UpdateMatchRequest{
		RequestID: in.RequestID,
		To:        types.MatchRequestStatusRejected,
	})
}

func (svc *Service) transition(ctx context.Context, in types.UpdateMatchRequest) (types.MatchRequest, error) {
	out, err := svc.Store.UpdateMatchRequest(ctx, in)
	if err != nil {
		return out, err
	}

	svc.Metrics.MatchRequestTransition(string(out.Status))

	return out, nil
}
