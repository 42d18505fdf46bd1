package queries

import (
	"context"

	"github.com/google/uuid"

	"np-reserve/internal/domain/boutique"
)

type BoutiqueReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*boutique.Boutique, error)
	List(ctx context.Context) ([]*boutique.Boutique, error)
}

type BoutiqueQueries struct {
	boutiques BoutiqueReader
}

func NewBoutiqueQueries(boutiques BoutiqueReader) *BoutiqueQueries {
	return &BoutiqueQueries{boutiques: boutiques}
}

func (q *BoutiqueQueries) Get(ctx context.Context, id uuid.UUID) (BoutiqueView, error) {
	b, err := q.boutiques.FindByID(ctx, id)
	if err != nil {
		return BoutiqueView{}, err
	}
	return toBoutiqueView(b), nil
}

func (q *BoutiqueQueries) List(ctx context.Context) ([]BoutiqueView, error) {
	bs, err := q.boutiques.List(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]BoutiqueView, 0, len(bs))
	for _, b := range bs {
		views = append(views, toBoutiqueView(b))
	}
	return views, nil
}

func toBoutiqueView(b *boutique.Boutique) BoutiqueView {
	return BoutiqueView{
		ID:        b.ID(),
		Nom:       b.Nom(),
		Ville:     b.Ville(),
		Adresse:   b.Adresse(),
		Telephone: b.Telephone(),
		Actif:     b.Actif(),
		CreatedAt: b.CreatedAt(),
	}
}
