package service

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/hicampus/hicampus/metrics"
	"github.com/hicampus/hicampus/types"
)

const defaultTokenTTL = time.Hour * 24

// Store is the transactional persistence the service works on.
// Each method is its own unit of work: nothing outside a call
// shares a transaction with it.
type Store interface {
	Ping(ctx context.Context) error

	CreateUser(ctx context.Context, in types.Register, passwordHash string) (types.Created, error)
	User(ctx context.Context, userID int64) (types.User, error)
	CredentialsByEmail(ctx context.Context, email string) (types.Credentials, error)

	Helpers(ctx context.Context, in types.HelperFilter) ([]types.UserPreview, error)

	CreateMatchRequest(ctx context.Context, in types.CreateMatchRequest) (types.MatchRequestCreated, error)
	MatchRequest(ctx context.Context, requestID int64) (types.MatchRequest, error)
	MatchRequests(ctx context.Context, in types.ListMatchRequests) ([]types.MatchRequest, error)
	UpdateMatchRequest(ctx context.Context, in types.UpdateMatchRequest) (types.MatchRequest, error)
	AcceptMatchRequest(ctx context.Context, in types.AcceptMatch) (types.Accepted, error)

	Conversations(ctx context.Context, in types.ListConversations) ([]types.ConversationSummary, error)
	CreateMessage(ctx context.Context, in types.SendMessage) (types.MessageCreated, error)
	Messages(ctx context.Context, in types.ListMessages) ([]types.Message, error)

	Posts(ctx context.Context, in types.ListPosts) ([]types.Post, error)
	CreatePost(ctx context.Context, in types.CreatePost) (types.Created, error)
}

type Config struct {
	Store   Store
	Metrics *metrics.Metrics
	// TokenKey must be 32 bytes long.
	TokenKey   string
	TokenTTL   time.Duration
	BcryptCost int
}

type Service struct {
	Store   Store
	Metrics *metrics.Metrics

	tokenKey   string
	tokenTTL   time.Duration
	bcryptCost int
}

func New(cfg Config) *Service {
	svc := &Service{
		Store:   cfg.Store,
		Metrics: cfg.Metrics,

		tokenKey:   cfg.TokenKey,
		tokenTTL:   cfg.TokenTTL,
		bcryptCost: cfg.BcryptCost,
	}

	if svc.tokenTTL <= 0 {
		svc.tokenTTL = defaultTokenTTL
	}

	if svc.bcryptCost == 0 {
		svc.bcryptCost = bcrypt.DefaultCost
	}

	return svc
}

// Health reports whether the store is reachable.
func (svc *Service) Health(ctx context.Context) error {
	return svc.Store.Ping(ctx)
}
