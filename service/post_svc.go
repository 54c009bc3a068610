package service

import (
	"context"

	"github.com/hicampus/hicampus/auth"
	"github.com/hicampus/hicampus/errs"
	"github.com/hicampus/hicampus/types"
)

// Posts are public, anonymous authors stay hidden.
func (svc *Service) Posts(ctx context.Context, in types.ListPosts) ([]types.Post, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	return svc.Store.Posts(ctx, in)
}

// CreatePost tags the post with the author's main language
// so readers know what it was written in.
func (svc *Service) CreatePost(ctx context.Context, in types.CreatePost) (types.Created, error) {
	var out types.Created

	loggedInUser, loggedIn := auth.UserFromContext(ctx)
	if !loggedIn {
		return out, errs.Unauthenticated
	}

	if err := in.Validate(); err != nil {
		return out, err
	}

	in.SetLoggedInUserID(loggedInUser.ID)
	in.SetOriginalLang(loggedInUser.MainLanguage)

	return svc.Store.CreatePost(ctx, in)
}
