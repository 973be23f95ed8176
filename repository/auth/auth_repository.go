package auth

import (
	"context"
	"net/http"

	"github.com/muhammadheryan/watch-storefront/model"
	"github.com/muhammadheryan/watch-storefront/thirdparty/backend"
)

type AuthRepository interface {
	SignIn(ctx context.Context, req *model.SignInRequest) (*model.SignInResult, error)
	Logout(ctx context.Context, token string) error
}

type REST struct {
	client *backend.Client
}

func NewAuthRepository(client *backend.Client) AuthRepository {
	return &REST{client: client}
}

func (r *REST) SignIn(ctx context.Context, req *model.SignInRequest) (*model.SignInResult, error) {
	var res model.SignInResult
	err := r.client.Do(ctx, backend.Request{
		Method: http.MethodPost,
		Path:   "/auth/sign-in",
		Body:   req,
	}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *REST) Logout(ctx context.Context, token string) error {
	return r.client.Do(ctx, backend.Request{
		Method: http.MethodGet,
		Path:   "/auth/logout",
		Token:  token,
	}, nil)
}
