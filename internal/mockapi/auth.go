package mockapi

import (
	"context"
	"errors"
	"strings"

	"github.com/iliyamo/renttrack/internal/api"
	"github.com/iliyamo/renttrack/internal/latency"
	"github.com/iliyamo/renttrack/internal/model"
	"github.com/iliyamo/renttrack/internal/repository"
	"github.com/iliyamo/renttrack/internal/utils"
)

// Demo accounts with a fixed role.  Every other email signs in as ADMIN.
const (
	LandlordEmail = "landlord@renttrack.local"
	TenantEmail   = "tenant@renttrack.local"
)

// RoleForEmail maps a login email to its session role.
func RoleForEmail(email string) model.Role {
	switch strings.ToLower(strings.TrimSpace(email)) {
	case LandlordEmail:
		return model.SessionLandlord
	case TenantEmail:
		return model.SessionTenant
	}
	return model.SessionAdmin
}

func displayName(role model.Role) string {
	switch role {
	case model.SessionLandlord:
		return "Demo Landlord"
	case model.SessionTenant:
		return "Demo Tenant"
	}
	return repository.DemoAdmin.Name
}

func defaultEmail(role model.Role) string {
	switch role {
	case model.SessionLandlord:
		return LandlordEmail
	case model.SessionTenant:
		return TenantEmail
	}
	return repository.DemoAdmin.Email
}

func userFromClaims(c utils.Claims, email string) model.User {
	if email == "" {
		email = defaultEmail(c.Role)
	}
	return model.User{ID: c.Subject, Name: displayName(c.Role), Email: email, Role: c.Role}
}

// Login checks the shared password and issues a session token.  The token
// is not persisted here.
func (f *Facade) Login(ctx context.Context, email, password string) (model.AuthResult, error) {
	if err := f.wait(ctx, latency.OpLogin); err != nil {
		return model.AuthResult{}, err
	}
	if !utils.VerifyPassword(f.hash, password) {
		return model.AuthResult{}, api.ErrInvalidCredentials
	}
	role := RoleForEmail(email)
	token, claims, err := f.tokens.Issue(role)
	if err != nil {
		return model.AuthResult{}, err
	}
	user := userFromClaims(claims, strings.TrimSpace(email))
	now := f.now().UTC()
	user.LastLogin = &now
	return model.AuthResult{Token: token, User: user}, nil
}

// ForgotPassword always succeeds.
func (f *Facade) ForgotPassword(ctx context.Context, email string) error {
	return f.wait(ctx, latency.OpForgotPassword)
}

// CurrentUser resolves the token stored in the session.
func (f *Facade) CurrentUser(ctx context.Context) (model.User, error) {
	if err := f.wait(ctx, latency.OpCurrentUser); err != nil {
		return model.User{}, err
	}
	token, err := f.session.Token(ctx)
	if err != nil {
		return model.User{}, err
	}
	return f.UserForToken(token)
}

// UserForToken resolves a bearer token to its user without any delay.
func (f *Facade) UserForToken(token string) (model.User, error) {
	if strings.TrimSpace(token) == "" {
		return model.User{}, api.ErrNotAuthenticated
	}
	claims, err := f.tokens.Parse(token)
	if errors.Is(err, utils.ErrInvalidToken) {
		return model.User{}, api.ErrNotAuthenticated
	}
	if err != nil {
		return model.User{}, err
	}
	return userFromClaims(claims, ""), nil
}
