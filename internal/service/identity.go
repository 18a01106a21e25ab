package service

import (
	"context"
	"time"
)

// Identity is the authenticated caller, resolved from the bearer token and
// the current database row on every request.
type Identity struct {
	UserID    int64
	Email     string
	Roles     []string
	TokenID   string
	ExpiresAt time.Time
}

// HasRole reports whether the caller holds the named role.
func (i *Identity) HasRole(name string) bool {
	if i == nil {
		return false
	}
	for _, r := range i.Roles {
		if r == name {
			return true
		}
	}
	return false
}

type identityKey struct{}

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFrom extracts the caller stored by WithIdentity.
func IdentityFrom(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(*Identity)
	return id, ok && id != nil
}
