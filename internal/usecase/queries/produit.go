package queries

import (
	"context"

	"github.com/google/uuid"

	"np-reserve/internal/domain/produit"
)

type ProduitReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*produit.Produit, error)
	List(ctx context.Context) ([]*produit.Produit, error)
	ListByBoutique(ctx context.Context, boutiqueID uuid.UUID) ([]*produit.Produit, error)
}

type ProduitQueries struct {
	produits ProduitReader
}

func NewProduitQueries(produits ProduitReader) *ProduitQueries {
	return &ProduitQueries{produits: produits}
}

func (q *ProduitQueries) Get(ctx context.Context, id uuid.UUID) (ProduitView, error) {
	p, err := q.produits.FindByID(ctx, id)
	if err != nil {
		return ProduitView{}, err
	}
	return ToProduitView(p), nil
}

func (q *ProduitQueries) List(ctx context.Context) ([]ProduitView, error) {
	ps, err := q.produits.List(ctx)
	if err != nil {
		return nil, err
	}
	return toProduitViews(ps), nil
}

func (q *ProduitQueries) ListByBoutique(ctx context.Context, boutiqueID uuid.UUID) ([]ProduitView, error) {
	ps, err := q.produits.ListByBoutique(ctx, boutiqueID)
	if err != nil {
		return nil, err
	}
	return toProduitViews(ps), nil
}

func toProduitViews(ps []*produit.Produit) []ProduitView {
	views := make([]ProduitView, 0, len(ps))
	for _, p := range ps {
		views = append(views, ToProduitView(p))
	}
	return views
}

func ToProduitView(p *produit.Produit) ProduitView {
	return ProduitView{
		ID:                 p.ID(),
		Nom:                p.Nom(),
		Description:        p.Description(),
		Photos:             p.Photos(),
		Prix:               p.Prix(),
		Categorie:          p.Categorie(),
		StockTotal:         p.StockTotal(),
		StockParTaille:     p.StockParTaille(),
		Status:             p.Status(),
		JoursAvantArrivage: p.JoursAvantArrivage(),
		BoutiqueIDs:        p.BoutiqueIDs(),
		Boutiques:          p.Boutiques(),
		AI:                 p.AI(),
		CreatedBy:          p.CreatedBy(),
		CreatedAt:          p.CreatedAt(),
	}
}
