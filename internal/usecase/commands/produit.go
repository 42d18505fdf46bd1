package commands

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"np-reserve/internal/domain/produit"
	"np-reserve/internal/infra/watch"
	"np-reserve/internal/pkg/clock"
)

var ErrCategorieLimitReached = errors.New("categorie listing limit reached")

type ProduitCommands struct {
	stores Stores
	tx     TxRunner
	hub    *watch.Hub
	clock  clock.Clock
}

func NewProduitCommands(stores Stores, tx TxRunner, hub *watch.Hub, clk clock.Clock) *ProduitCommands {
	return &ProduitCommands{stores: stores, tx: tx, hub: hub, clock: clk}
}

type ProduitInput struct {
	Nom                string
	Description        string
	Photos             []string
	Prix               float64
	Categorie          produit.Categorie
	StockTotal         int
	StockParTaille     map[string]int
	Status             produit.Status
	JoursAvantArrivage int
	BoutiqueIDs        []uuid.UUID
	AI                 produit.AISidecar
}

// Create lists a new produit. Managers are capped at MaxPerCategorie active
// produits per categorie; the count and the insert share a transaction so
// two concurrent creates cannot both slip under the cap.
func (c *ProduitCommands) Create(ctx context.Context, actor Actor, in ProduitInput) (uuid.UUID, error) {
	refs, err := c.resolveBoutiqueRefs(ctx, in.BoutiqueIDs)
	if err != nil {
		return uuid.Nil, err
	}

	p, err := produit.NewProduit(produit.NewProduitParams{
		Nom:                in.Nom,
		Description:        in.Description,
		Photos:             in.Photos,
		Prix:               in.Prix,
		Categorie:          in.Categorie,
		StockTotal:         in.StockTotal,
		StockParTaille:     in.StockParTaille,
		Status:             in.Status,
		JoursAvantArrivage: in.JoursAvantArrivage,
		BoutiqueIDs:        in.BoutiqueIDs,
		Boutiques:          refs,
		AI:                 in.AI,
		CreatedBy:          actor.ID,
	}, c.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	err = c.tx.WithinTx(ctx, func(ctx context.Context, s Stores) error {
		if !actor.isAdmin() {
			count, err := s.Produits.CountByCreatorAndCategorie(ctx, actor.ID, p.Categorie())
			if err != nil {
				return err
			}
			if count >= produit.MaxPerCategorie {
				return ErrCategorieLimitReached
			}
		}
		return s.Produits.Create(ctx, p)
	})
	if err != nil {
		return uuid.Nil, err
	}

	c.hub.Publish(watch.Event{Collection: watch.Produits})
	return p.ID(), nil
}

func (c *ProduitCommands) Update(ctx context.Context, actor Actor, id uuid.UUID, in ProduitInput) error {
	existing, err := c.stores.Produits.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !actor.isAdmin() && existing.CreatedBy() != actor.ID {
		return ErrForbidden
	}

	refs, err := c.resolveBoutiqueRefs(ctx, in.BoutiqueIDs)
	if err != nil {
		return err
	}

	validated, err := produit.NewProduit(produit.NewProduitParams{
		Nom:                in.Nom,
		Description:        in.Description,
		Photos:             in.Photos,
		Prix:               in.Prix,
		Categorie:          in.Categorie,
		StockTotal:         in.StockTotal,
		StockParTaille:     in.StockParTaille,
		Status:             in.Status,
		JoursAvantArrivage: in.JoursAvantArrivage,
		BoutiqueIDs:        in.BoutiqueIDs,
		Boutiques:          refs,
		AI:                 in.AI,
		CreatedBy:          existing.CreatedBy(),
	}, existing.CreatedAt())
	if err != nil {
		return err
	}
	updated := produit.ReconstructProduit(existing.ID(), produit.NewProduitParams{
		Nom:                validated.Nom(),
		Description:        validated.Description(),
		Photos:             validated.Photos(),
		Prix:               validated.Prix(),
		Categorie:          validated.Categorie(),
		StockTotal:         validated.StockTotal(),
		StockParTaille:     validated.StockParTaille(),
		Status:             validated.Status(),
		JoursAvantArrivage: validated.JoursAvantArrivage(),
		BoutiqueIDs:        validated.BoutiqueIDs(),
		Boutiques:          validated.Boutiques(),
		AI:                 validated.AI(),
		CreatedBy:          validated.CreatedBy(),
	}, existing.CreatedAt())

	if err := c.stores.Produits.Update(ctx, updated); err != nil {
		return err
	}

	c.hub.Publish(watch.Event{Collection: watch.Produits})
	return nil
}

func (c *ProduitCommands) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	existing, err := c.stores.Produits.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !actor.isAdmin() && existing.CreatedBy() != actor.ID {
		return ErrForbidden
	}

	if err := c.stores.Produits.Delete(ctx, id); err != nil {
		return err
	}

	c.hub.Publish(watch.Event{Collection: watch.Produits})
	return nil
}

// resolveBoutiqueRefs snapshots the referenced shops for embedded display.
func (c *ProduitCommands) resolveBoutiqueRefs(ctx context.Context, ids []uuid.UUID) ([]produit.BoutiqueRef, error) {
	refs := make([]produit.BoutiqueRef, 0, len(ids))
	for _, id := range ids {
		b, err := c.stores.Boutiques.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		refs = append(refs, produit.BoutiqueRef{
			ID:    b.ID().String(),
			Nom:   b.Nom(),
			Ville: b.Ville(),
		})
	}
	return refs, nil
}
