package app

import (
	"context"

	"github.com/uaifood/client-go/internal/session/domain"
)

// Authenticator is what the session holder needs from the backend: exchange
// credentials for a token, and resolve the profile behind the current token.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (string, error)
	Me(ctx context.Context) (domain.User, error)
}

// Storage persists the opaque credential token across restarts.
type Storage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
