package commands

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"np-reserve/internal/domain/user"
	"np-reserve/internal/infra"
	"np-reserve/internal/pkg/clock"
	"np-reserve/internal/pkg/jwt"
	"np-reserve/internal/pkg/password"
)

var ErrAuthenticationFailed = errors.New("invalid email or password")

type AuthCommands struct {
	stores Stores
	tokens *jwt.Service
	clock  clock.Clock
}

func NewAuthCommands(stores Stores, tokens *jwt.Service, clk clock.Clock) *AuthCommands {
	return &AuthCommands{stores: stores, tokens: tokens, clock: clk}
}

type AuthResult struct {
	Token      string
	UserID     uuid.UUID
	Role       user.Role
	BoutiqueID *uuid.UUID
}

// Login exchanges credentials for a signed token. A wrong email and a wrong
// password answer identically.
func (c *AuthCommands) Login(ctx context.Context, email, plainPassword string) (AuthResult, error) {
	creds, err := user.NewCredentials(email, plainPassword)
	if err != nil {
		return AuthResult{}, ErrAuthenticationFailed
	}

	u, err := c.stores.Users.FindByEmail(ctx, creds.Email())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return AuthResult{}, ErrAuthenticationFailed
		}
		return AuthResult{}, err
	}
	if err := password.ComparePassword(u.PasswordHash(), creds.Password().Value()); err != nil {
		return AuthResult{}, ErrAuthenticationFailed
	}

	token, err := c.tokens.GenerateToken(u.ID(), u.Role(), u.BoutiqueID())
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{
		Token:      token,
		UserID:     u.ID(),
		Role:       u.Role(),
		BoutiqueID: u.BoutiqueID(),
	}, nil
}

// Signup registers a shop manager account with no boutique yet; an admin
// binds the boutique later through provisioning. Admin accounts are never
// created here.
func (c *AuthCommands) Signup(ctx context.Context, email, plainPassword string, displayName *string) (AuthResult, error) {
	creds, err := user.NewCredentials(email, plainPassword)
	if err != nil {
		return AuthResult{}, err
	}
	hash, err := password.HashPassword(creds.Password().Value())
	if err != nil {
		return AuthResult{}, err
	}

	u, err := user.NewUser(creds.Email(), hash, user.RoleGerant, nil, displayName, c.clock.Now())
	if err != nil {
		return AuthResult{}, err
	}
	if err := c.stores.Users.Create(ctx, u); err != nil {
		return AuthResult{}, err
	}

	token, err := c.tokens.GenerateToken(u.ID(), u.Role(), nil)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{Token: token, UserID: u.ID(), Role: u.Role()}, nil
}
