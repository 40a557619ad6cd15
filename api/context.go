package api

import (
	"context"

	"github.com/vasavi-eco-club/club-site-backend/auth"
)

type keyType string

const principalKey keyType = "principal"

// ctxWithPrincipal stores the verified token claims on the request context.
func ctxWithPrincipal(ctx context.Context, claims auth.Claims) context.Context {
	return context.WithValue(ctx, principalKey, claims)
}

// ctxGetPrincipal retrieves the verified claims placed by the auth
// middleware; ok is false on unprotected routes.
func ctxGetPrincipal(ctx context.Context) (auth.Claims, bool) {
	claims, ok := ctx.Value(principalKey).(auth.Claims)
	return claims, ok
}
