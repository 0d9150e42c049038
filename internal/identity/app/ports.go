package app

import (
	"context"

	"github.com/dwikikusuma/storefront/internal/identity/domain"
	"github.com/dwikikusuma/storefront/pkg/paging"
)

type IdentityGateway interface {
	Login(ctx context.Context, f domain.LoginForm) (domain.User, error)
	Register(ctx context.Context, f domain.RegisterForm) error
}

type UserGateway interface {
	List(ctx context.Context, token string, q paging.Query) ([]domain.User, int, error)
	Create(ctx context.Context, token string, f domain.UserForm) error
	Update(ctx context.Context, token, id string, f domain.UserForm) error
	Delete(ctx context.Context, token, id string) error
}
