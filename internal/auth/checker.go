package auth

import "context"

// Checker answers whether a session token belongs to a logged-in user.
// The auth middleware depends on this instead of the concrete redis
// backed implementation.
type Checker interface {
	IsLogged(ctx context.Context, token string) (bool, error)
}

var (
	_ Checker = (*LoginChecker)(nil)
	_ Checker = (*LoginTestChecker)(nil)
)
