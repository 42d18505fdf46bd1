package commands

import (
	"context"

	"github.com/google/uuid"

	"np-reserve/internal/domain/user"
	"np-reserve/internal/pkg/clock"
	"np-reserve/internal/pkg/password"
)

type GerantCommands struct {
	stores Stores
	clock  clock.Clock
}

func NewGerantCommands(stores Stores, clk clock.Clock) *GerantCommands {
	return &GerantCommands{stores: stores, clock: clk}
}

type ProvisionGerantInput struct {
	Email       string
	Password    string
	BoutiqueID  uuid.UUID
	DisplayName *string
}

// Provision creates or refreshes the manager account for a shop. Keyed by
// email: re-provisioning an existing manager rotates the password and may
// move them to another shop, without changing their identity.
func (c *GerantCommands) Provision(ctx context.Context, actor Actor, in ProvisionGerantInput) (uuid.UUID, error) {
	if !actor.isAdmin() {
		return uuid.Nil, ErrForbidden
	}

	creds, err := user.NewCredentials(in.Email, in.Password)
	if err != nil {
		return uuid.Nil, err
	}
	if _, err := c.stores.Boutiques.FindByID(ctx, in.BoutiqueID); err != nil {
		return uuid.Nil, err
	}

	hash, err := password.HashPassword(creds.Password().Value())
	if err != nil {
		return uuid.Nil, err
	}

	boutiqueID := in.BoutiqueID
	u, err := user.NewUser(creds.Email(), hash, user.RoleGerant, &boutiqueID, in.DisplayName, c.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}
	if err := c.stores.Users.Upsert(ctx, u); err != nil {
		return uuid.Nil, err
	}

	// The stored id wins on conflict; look the account up by email so the
	// caller always gets the real identity back.
	stored, err := c.stores.Users.FindByEmail(ctx, creds.Email())
	if err != nil {
		return uuid.Nil, err
	}
	return stored.ID(), nil
}

func (c *GerantCommands) Revoke(ctx context.Context, actor Actor, id uuid.UUID) error {
	if !actor.isAdmin() {
		return ErrForbidden
	}
	return c.stores.Users.Delete(ctx, id)
}
