package adapter

import (
	"context"

	"github.com/dwikikusuma/storefront/internal/identity/domain"
	"github.com/dwikikusuma/storefront/pkg/paging"
	"github.com/dwikikusuma/storefront/pkg/storeapi"
)

// Gateway serves both the identity and the user-management ports.
type Gateway struct {
	api *storeapi.Client
}

func NewGateway(api *storeapi.Client) *Gateway {
	return &Gateway{api: api}
}

func (g *Gateway) Login(ctx context.Context, f domain.LoginForm) (domain.User, error) {
	u, err := g.api.Login(ctx, storeapi.LoginRequest{Email: f.Email, Password: f.Password})
	if err != nil {
		return domain.User{}, err
	}
	return toDomain(u), nil
}

func (g *Gateway) Register(ctx context.Context, f domain.RegisterForm) error {
	return g.api.Register(ctx, storeapi.RegisterRequest{
		FirstName: f.FirstName,
		LastName:  f.LastName,
		Email:     f.Email,
		Password:  f.Password,
	})
}

func (g *Gateway) List(ctx context.Context, token string, q paging.Query) ([]domain.User, int, error) {
	page, err := g.api.Users(ctx, token, storeapi.PageQuery{Page: q.Page, Limit: q.Limit, Filter: q.Filter})
	if err != nil {
		return nil, 0, err
	}
	out := make([]domain.User, 0, len(page.Users))
	for _, u := range page.Users {
		out = append(out, toDomain(u))
	}
	return out, page.Total, nil
}

func (g *Gateway) Create(ctx context.Context, token string, f domain.UserForm) error {
	return g.api.CreateUser(ctx, token, toInput(f))
}

func (g *Gateway) Update(ctx context.Context, token, id string, f domain.UserForm) error {
	return g.api.UpdateUser(ctx, token, id, toInput(f))
}

func (g *Gateway) Delete(ctx context.Context, token, id string) error {
	return g.api.DeleteUser(ctx, token, id)
}

func toInput(f domain.UserForm) storeapi.UserInput {
	return storeapi.UserInput{
		FirstName: f.FirstName,
		LastName:  f.LastName,
		Email:     f.Email,
		Password:  f.Password,
		Role:      f.Role,
	}
}

func toDomain(u storeapi.User) domain.User {
	return domain.User{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Role:      u.Role,
		Token:     u.Token,
	}
}
