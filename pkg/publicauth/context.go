// Copyright 2026 Vantage Analytics Ltd.
// SPDX-License-Identifier: AGPL-3.0

package publicauth

import "context"

// Private custom types to avoid collisions
type identityContextKey struct{}
type userContextKey struct{}
type publicAccessContextKey struct{}

var identityKey = identityContextKey{}
var userKey = userContextKey{}
var publicAccessKey = publicAccessContextKey{}

// WithIdentity returns a new context carrying the public interview identity.
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFromContext retrieves the public interview identity, if any.
func IdentityFromContext(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(identityKey).(*Identity)
	return id, ok
}

// WithUser returns a new context carrying the generic user marker.
func WithUser(ctx context.Context, u User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

// UserFromContext retrieves the generic user marker, if any.
func UserFromContext(ctx context.Context) (User, bool) {
	u, ok := ctx.Value(userKey).(User)
	return u, ok
}

// WithPublicAccess marks the request as authenticated through the public
// interview path. The scope enforcer only acts on marked requests.
func WithPublicAccess(ctx context.Context) context.Context {
	return context.WithValue(ctx, publicAccessKey, true)
}

// IsPublicAccess reports whether the request went through the public path.
func IsPublicAccess(ctx context.Context) bool {
	v, ok := ctx.Value(publicAccessKey).(bool)
	return ok && v
}
