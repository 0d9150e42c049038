package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dwikikusuma/storefront/internal/identity/domain"
	"github.com/dwikikusuma/storefront/pkg/confirm"
	"github.com/dwikikusuma/storefront/pkg/paging"
	"github.com/dwikikusuma/storefront/pkg/validation"
)

var (
	ErrLoginFailed    = errors.New("login failed")
	ErrRegisterFailed = errors.New("registration failed")
	ErrNoToken        = errors.New("identity provider returned no token")
)

type Service struct {
	identity IdentityGateway
	users    UserGateway
}

func NewService(identity IdentityGateway, users UserGateway) *Service {
	return &Service{identity: identity, users: users}
}

func (s *Service) Login(ctx context.Context, f domain.LoginForm) (domain.User, error) {
	f.Email = strings.TrimSpace(f.Email)
	if err := f.Validate(); err != nil {
		return domain.User{}, err
	}
	u, err := s.identity.Login(ctx, f)
	if err != nil {
		return domain.User{}, fmt.Errorf("%w: %w", ErrLoginFailed, err)
	}
	if u.Token == "" {
		return domain.User{}, fmt.Errorf("%w: %w", ErrLoginFailed, ErrNoToken)
	}
	return u, nil
}

func (s *Service) Register(ctx context.Context, f domain.RegisterForm) error {
	f.Email = strings.TrimSpace(f.Email)
	if err := f.Validate(); err != nil {
		return err
	}
	if err := s.identity.Register(ctx, f); err != nil {
		return fmt.Errorf("%w: %w", ErrRegisterFailed, err)
	}
	return nil
}

func (s *Service) ListUsers(ctx context.Context, token string, q paging.Query) (paging.Page[domain.User], error) {
	q = q.Normalize()
	q.Filter = strings.TrimSpace(q.Filter)

	users, total, err := s.users.List(ctx, token, q)
	if err != nil {
		return paging.Page[domain.User]{}, err
	}
	return paging.New(users, q, total), nil
}

func (s *Service) CreateUser(ctx context.Context, token string, f domain.UserForm) error {
	if err := f.Validate(true); err != nil {
		return err
	}
	return s.users.Create(ctx, token, f)
}

func (s *Service) UpdateUser(ctx context.Context, token, id string, f domain.UserForm) error {
	err := validation.Check(validation.Required("id", id), f.Validate(false))
	if err != nil {
		return err
	}
	return s.users.Update(ctx, token, id, f)
}

func (s *Service) DeleteUser(ctx context.Context, token, id string, confirmed bool) error {
	if err := validation.Required("id", id); err != nil {
		return err
	}
	if err := confirm.Gate(confirmed, "Are you sure you want to delete this user?"); err != nil {
		return err
	}
	return s.users.Delete(ctx, token, id)
}
