package domain

import (
	"time"

	"github.com/dwikikusuma/storefront/pkg/validation"
	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Token     string `json:"token,omitempty"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Expired reports whether the bearer token carries an exp claim in the past.
// Opaque tokens never expire on this side.
func (u User) Expired(now time.Time) bool {
	exp, ok := TokenExpiry(u.Token)
	return ok && !now.Before(exp)
}

// TokenExpiry decodes the exp claim without verifying the signature. The
// identity provider is the only party that validates tokens.
func TokenExpiry(token string) (time.Time, bool) {
	if token == "" {
		return time.Time{}, false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

type LoginForm struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (f LoginForm) Validate() error {
	return validation.Check(
		validation.Email("email", f.Email),
		validation.Required("password", f.Password),
	)
}

type RegisterForm struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

func (f RegisterForm) Validate() error {
	return validation.Check(
		validation.Required("firstName", f.FirstName),
		validation.Required("lastName", f.LastName),
		validation.Email("email", f.Email),
		validation.Required("password", f.Password),
	)
}

// UserForm is the admin create/edit form. Password is only required when
// creating; an empty password on edit leaves it unchanged.
type UserForm struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
}

func (f UserForm) Validate(creating bool) error {
	password := error(nil)
	if creating {
		password = validation.Required("password", f.Password)
	}
	return validation.Check(
		validation.Required("firstName", f.FirstName),
		validation.Required("lastName", f.LastName),
		validation.Email("email", f.Email),
		password,
		validation.OneOf("role", f.Role, RoleUser, RoleAdmin),
	)
}
