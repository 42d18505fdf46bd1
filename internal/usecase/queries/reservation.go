package queries

import (
	"context"

	"github.com/google/uuid"

	"np-reserve/internal/domain/produit"
	"np-reserve/internal/domain/reservation"
	"np-reserve/internal/infra/repository"
)

type ReservationReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	List(ctx context.Context, filter repository.ListFilter) ([]*reservation.Reservation, error)
}

type ReservationQueries struct {
	reservations ReservationReader
	produits     ProduitReader
}

func NewReservationQueries(reservations ReservationReader, produits ProduitReader) *ReservationQueries {
	return &ReservationQueries{reservations: reservations, produits: produits}
}

func (q *ReservationQueries) Get(ctx context.Context, id uuid.UUID) (ReservationView, error) {
	r, err := q.reservations.FindByID(ctx, id)
	if err != nil {
		return ReservationView{}, err
	}
	return ToReservationView(r), nil
}

// List returns reservations, scoped to one shop when boutiqueID is set.
// Managers see only their own shop; admins pass nil. Archived reservations
// (refused or delivered) are excluded unless includeArchived asks for the
// full history.
func (q *ReservationQueries) List(ctx context.Context, boutiqueID *uuid.UUID, includeArchived bool) ([]ReservationView, error) {
	rs, err := q.reservations.List(ctx, repository.ListFilter{BoutiqueID: boutiqueID, IncludeArchived: includeArchived})
	if err != nil {
		return nil, err
	}
	views := make([]ReservationView, 0, len(rs))
	for _, r := range rs {
		views = append(views, ToReservationView(r))
	}
	return views, nil
}

// Groups builds the shipment preparation view from every validated,
// non-archived reservation.
func (q *ReservationQueries) Groups(ctx context.Context) ([]ProductGroup, error) {
	statut := reservation.StatutValidee
	rs, err := q.reservations.List(ctx, repository.ListFilter{Statut: &statut})
	if err != nil {
		return nil, err
	}

	ps, err := q.produits.List(ctx)
	if err != nil {
		return nil, err
	}
	index := make(map[uuid.UUID]*produit.Produit, len(ps))
	for _, p := range ps {
		index[p.ID()] = p
	}

	return GroupReservations(rs, index), nil
}

func ToReservationView(r *reservation.Reservation) ReservationView {
	return ReservationView{
		ID:          r.ID(),
		ProduitID:   r.ProduitID(),
		BoutiqueID:  r.BoutiqueID(),
		Nom:         r.Nom(),
		Email:       r.Email(),
		Telephone:   r.Telephone(),
		Taille:      r.Taille(),
		Quantite:    r.Quantite(),
		Acompte:     r.Acompte(),
		Statut:      r.Statut().String(),
		NotifyEmail: r.NotifyEmail(),
		NotifyPush:  r.NotifyPush(),
		Tracking:    r.Tracking(),
		Archived:    r.Archived(),
		CreatedAt:   r.CreatedAt(),
	}
}
