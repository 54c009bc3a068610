package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/hako/branca"
	"golang.org/x/crypto/bcrypt"

	"github.com/hicampus/hicampus/auth"
	"github.com/hicampus/hicampus/errs"
	"github.com/hicampus/hicampus/types"
)

const tokenType = "bearer"

var (
	ErrInvalidToken       = errs.NewUnauthenticatedError("invalid token")
	ErrExpiredToken       = errs.NewUnauthenticatedError("expired token")
	ErrInvalidCredentials = errs.NewUnauthenticatedError("invalid email or password")
)

func (svc *Service) Register(ctx context.Context, in types.Register) (types.AuthOutput, error) {
	var out types.AuthOutput

	if err := in.Validate(); err != nil {
		return out, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), svc.bcryptCost)
	if err != nil {
		return out, fmt.Errorf("hash password: %w", err)
	}

	created, err := svc.Store.CreateUser(ctx, in, string(hash))
	if err != nil {
		return out, err
	}

	user, err := svc.Store.User(ctx, created.ID)
	if err != nil {
		return out, err
	}

	return svc.authOutput(user)
}

func (svc *Service) Login(ctx context.Context, in types.Login) (types.AuthOutput, error) {
	var out types.AuthOutput

	if err := in.Validate(); err != nil {
		return out, err
	}

	creds, err := svc.Store.CredentialsByEmail(ctx, in.Email)
	if errs.IsNotFound(err) {
		svc.Metrics.Login(false)
		return out, ErrInvalidCredentials
	}

	if err != nil {
		return out, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte(in.Password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		svc.Metrics.Login(false)
		return out, ErrInvalidCredentials
	}

	if err != nil {
		return out, fmt.Errorf("compare password hash: %w", err)
	}

	user, err := svc.Store.User(ctx, creds.UserID)
	if err != nil {
		return out, err
	}

	svc.Metrics.Login(true)

	return svc.authOutput(user)
}

// LoggedInUser returns the principal attached to ctx.
func (svc *Service) LoggedInUser(ctx context.Context) (types.User, error) {
	user, ok := auth.UserFromContext(ctx)
	if !ok {
		return user, errs.Unauthenticated
	}
	return user, nil
}

// AuthUserFromToken resolves a bearer token into its user.
func (svc *Service) AuthUserFromToken(ctx context.Context, token string) (types.User, error) {
	var user types.User

	raw, err := svc.codec().DecodeToString(token)
	if err != nil {
		if _, ok := err.(*branca.ErrExpiredToken); ok {
			return user, ErrExpiredToken
		}

		// Anything else, from a bad encoding to a token sealed with
		// another key, is just an invalid token.
		return user, ErrInvalidToken
	}

	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || userID <= 0 {
		return user, ErrInvalidToken
	}

	user, err = svc.Store.User(ctx, userID)
	if errs.IsNotFound(err) {
		return user, ErrInvalidToken
	}

	return user, err
}

func (svc *Service) authOutput(user types.User) (types.AuthOutput, error) {
	var out types.AuthOutput

	token, err := svc.codec().EncodeToString(strconv.FormatInt(user.ID, 10))
	if err != nil {
		return out, fmt.Errorf("could not create auth token: %w", err)
	}

	out.Token = token
	out.TokenType = tokenType
	out.ExpiresAt = time.Now().Add(svc.tokenTTL)
	out.User = user

	return out, nil
}

func (svc *Service) codec() *branca.Branca {
	cdc := branca.NewBranca(svc.tokenKey)
	cdc.SetTTL(uint32(svc.tokenTTL.Seconds()))
	return cdc
}
