package adapter

import (
	"context"

	"github.com/uaifood/client-go/internal/api"
	"github.com/uaifood/client-go/internal/session/domain"
)

// APIAuthenticator satisfies the session Authenticator port over the
// backend client.
type APIAuthenticator struct {
	client *api.Client
}

func NewAPIAuthenticator(client *api.Client) *APIAuthenticator {
	return &APIAuthenticator{client: client}
}

func (a *APIAuthenticator) Login(ctx context.Context, email, password string) (string, error) {
	return a.client.Login(ctx, email, password)
}

func (a *APIAuthenticator) Me(ctx context.Context) (domain.User, error) {
	user, err := a.client.Me(ctx)
	if err != nil {
		return domain.User{}, err
	}
	return domain.User{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Phone: user.Phone,
		Type:  domain.Role(user.Type),
	}, nil
}
