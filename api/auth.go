package api

import (
	"context"

	"clementus360/ai-helper-client/types"
)

type Auth struct {
	r Requester
}

func NewAuth(r Requester) *Auth {
	return &Auth{r: r}
}

func (a *Auth) Login(ctx context.Context, req types.LoginRequest) (types.AuthResponse, error) {
	var resp types.AuthResponse
	err := a.r.Post(ctx, "/auth/login", req, &resp)
	return resp, err
}

func (a *Auth) Register(ctx context.Context, req types.RegisterRequest) (types.User, error) {
	var user types.User
	err := a.r.Post(ctx, "/auth/register", req, &user)
	return user, err
}

func (a *Auth) Logout(ctx context.Context) error {
	return a.r.Post(ctx, "/auth/logout", nil, nil)
}
