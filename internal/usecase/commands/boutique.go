package commands

import (
	"context"

	"github.com/google/uuid"

	"np-reserve/internal/domain/boutique"
	"np-reserve/internal/infra/watch"
	"np-reserve/internal/pkg/clock"
)

type BoutiqueCommands struct {
	stores Stores
	hub    *watch.Hub
	clock  clock.Clock
}

func NewBoutiqueCommands(stores Stores, hub *watch.Hub, clk clock.Clock) *BoutiqueCommands {
	return &BoutiqueCommands{stores: stores, hub: hub, clock: clk}
}

type BoutiqueInput struct {
	Nom       string
	Ville     string
	Adresse   *string
	Telephone *string
	Actif     bool
}

func (c *BoutiqueCommands) Create(ctx context.Context, actor Actor, in BoutiqueInput) (uuid.UUID, error) {
	if !actor.isAdmin() {
		return uuid.Nil, ErrForbidden
	}

	b, err := boutique.NewBoutique(in.Nom, in.Ville, in.Adresse, in.Telephone, in.Actif, c.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}
	if err := c.stores.Boutiques.Create(ctx, b); err != nil {
		return uuid.Nil, err
	}

	c.hub.Publish(watch.Event{Collection: watch.Boutiques})
	return b.ID(), nil
}

func (c *BoutiqueCommands) Update(ctx context.Context, actor Actor, id uuid.UUID, in BoutiqueInput) error {
	if !actor.isAdmin() {
		return ErrForbidden
	}

	existing, err := c.stores.Boutiques.FindByID(ctx, id)
	if err != nil {
		return err
	}
	// Re-run entity validation, then keep the original identity.
	validated, err := boutique.NewBoutique(in.Nom, in.Ville, in.Adresse, in.Telephone, in.Actif, existing.CreatedAt())
	if err != nil {
		return err
	}
	updated := boutique.ReconstructBoutique(
		existing.ID(), validated.Nom(), validated.Ville(),
		validated.Adresse(), validated.Telephone(), validated.Actif(),
		existing.CreatedAt(),
	)
	if err := c.stores.Boutiques.Update(ctx, updated); err != nil {
		return err
	}

	c.hub.Publish(watch.Event{Collection: watch.Boutiques})
	return nil
}

func (c *BoutiqueCommands) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	if !actor.isAdmin() {
		return ErrForbidden
	}
	if err := c.stores.Boutiques.Delete(ctx, id); err != nil {
		return err
	}

	c.hub.Publish(watch.Event{Collection: watch.Boutiques})
	return nil
}
