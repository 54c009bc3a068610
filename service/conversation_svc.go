package service

import (
	"context"

	"github.com/hicampus/hicampus/auth"
	"github.com/hicampus/hicampus/errs"
	"github.com/hicampus/hicampus/types"
)

func (svc *Service) Conversations(ctx context.Context, in types.ListConversations) ([]types.ConversationSummary, error) {
	loggedInUser, loggedIn := auth.UserFromContext(ctx)
	if !loggedIn {
		return nil, errs.Unauthenticated
	}

	in.SetLoggedInUserID(loggedInUser.ID)

	return svc.Store.Conversations(ctx, in)
}

func (svc *Service) SendMessage(ctx context.Context, in types.SendMessage) (types.MessageCreated, error) {
	var out types.MessageCreated

	loggedInUser, loggedIn := auth.UserFromContext(ctx)
	if !loggedIn {
		return out, errs.Unauthenticated
	}

	if err := in.Validate(); err != nil {
		return out, err
	}

	in.SetLoggedInUserID(loggedInUser.ID)

	out, err := svc.Store.CreateMessage(ctx, in)
	if err != nil {
		return out, err
	}

	svc.Metrics.MessageSent()

	return out, nil
}

func (svc *Service) Messages(ctx context.Context, in types.ListMessages) ([]types.Message, error) {
	loggedInUser, loggedIn := auth.UserFromContext(ctx)
	if !loggedIn {
		return nil, errs.Unauthenticated
	}

	if err := in.Validate(); err != nil {
		return nil, err
	}

	in.SetLoggedInUserID(loggedInUser.ID)

	return svc.Store.Messages(ctx, in)
}
