package storeclient

import (
	"context"
	"net/http"
	"net/url"

	storedomain "github.com/vfg2006/backoffice-api/infrastructure/integrator/store/domain"
)

// ListUsers lista usuários; username não vazio filtra por igualdade exata
// (usado na checagem de duplicidade do cadastro e no login)
func (c *StoreClient) ListUsers(ctx context.Context, username string) ([]*storedomain.User, error) {
	var query url.Values
	if username != "" {
		query = url.Values{}
		query.Set("username", username)
	}

	var users []*storedomain.User
	_, err := c.do(ctx, http.MethodGet, "/users", query, nil, &users)
	if err != nil {
		return nil, err
	}

	return users, nil
}

func (c *StoreClient) CreateUser(ctx context.Context, user *storedomain.User) (*storedomain.User, error) {
	var created storedomain.User

	_, err := c.do(ctx, http.MethodPost, "/users", nil, user, &created)
	if err != nil {
		return nil, err
	}

	return &created, nil
}
