// Package auth carries the authenticated principal through a request context.
package auth

import (
	"context"
	"strings"

	"github.com/hicampus/hicampus/types"
)

var ctxKeyUser = struct{ name string }{name: "ctx-key-user"}

func ContextWithUser(ctx context.Context, user types.User) context.Context {
	return context.WithValue(ctx, ctxKeyUser, user)
}

func UserFromContext(ctx context.Context) (types.User, bool) {
	user, ok := ctx.Value(ctxKeyUser).(types.User)
	return user, ok
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)
	return token, token != ""
}
