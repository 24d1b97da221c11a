package context

import "context"

// KeyIdentity is the key for storing the authenticated caller in context.
const KeyIdentity ContextKey = "identity"

// Identity is the caller established by a verified bearer token.
type Identity struct {
	UserID int64
}

// WithIdentity returns a new context carrying the authenticated caller.
func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, KeyIdentity, identity)
}

// GetIdentity reports the authenticated caller, if the request passed the auth middleware.
func GetIdentity(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(KeyIdentity).(Identity)

	return identity, ok
}
