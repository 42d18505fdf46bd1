package commands

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"np-reserve/internal/domain/reservation"
	"np-reserve/internal/infra/watch"
	"np-reserve/internal/notify"
	"np-reserve/internal/pkg/clock"
)

var (
	ErrProduitNotSoldAtBoutique = errors.New("produit is not sold at the requested boutique")
	ErrDeliveryNotConfirmed     = errors.New("delivery must be explicitly confirmed")
)

type ReservationCommands struct {
	stores Stores
	tx     TxRunner
	hub    *watch.Hub
	clock  clock.Clock
}

func NewReservationCommands(stores Stores, tx TxRunner, hub *watch.Hub, clk clock.Clock) *ReservationCommands {
	return &ReservationCommands{stores: stores, tx: tx, hub: hub, clock: clk}
}

type ReservationInput struct {
	BoutiqueID  *uuid.UUID
	Nom         string
	Email       string
	Telephone   *string
	Taille      string
	Quantite    int
	Acompte     float64
	NotifyEmail bool
	NotifyPush  bool
	PushToken   *string
}

// CreatePublic takes an unauthenticated reservation against a produit. When
// the customer did not pick a shop, the produit's first shop is used.
func (c *ReservationCommands) CreatePublic(ctx context.Context, produitID uuid.UUID, in ReservationInput) (uuid.UUID, error) {
	p, err := c.stores.Produits.FindByID(ctx, produitID)
	if err != nil {
		return uuid.Nil, err
	}

	boutiqueID, ok := p.FirstBoutiqueID()
	if !ok {
		return uuid.Nil, ErrProduitNotSoldAtBoutique
	}
	if in.BoutiqueID != nil {
		if !containsID(p.BoutiqueIDs(), *in.BoutiqueID) {
			return uuid.Nil, ErrProduitNotSoldAtBoutique
		}
		boutiqueID = *in.BoutiqueID
	}

	r, err := reservation.NewReservation(reservation.NewReservationParams{
		ProduitID:   produitID,
		BoutiqueID:  boutiqueID,
		Nom:         in.Nom,
		Email:       in.Email,
		Telephone:   in.Telephone,
		Taille:      in.Taille,
		Quantite:    in.Quantite,
		Acompte:     in.Acompte,
		NotifyEmail: in.NotifyEmail,
		NotifyPush:  in.NotifyPush,
		PushToken:   in.PushToken,
	}, c.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	if err := c.stores.Reservations.Create(ctx, r); err != nil {
		return uuid.Nil, err
	}

	c.hub.Publish(watch.Event{Collection: watch.Reservations})
	return r.ID(), nil
}

// CreateWalkIn records a reservation taken at the counter. Managers book
// for their own shop; admins must name one.
func (c *ReservationCommands) CreateWalkIn(ctx context.Context, actor Actor, produitID uuid.UUID, in ReservationInput) (uuid.UUID, error) {
	boutiqueID := in.BoutiqueID
	if boutiqueID == nil {
		boutiqueID = actor.BoutiqueID
	}
	if boutiqueID == nil {
		return uuid.Nil, ErrProduitNotSoldAtBoutique
	}
	if !actor.canManageBoutique(*boutiqueID) {
		return uuid.Nil, ErrForbidden
	}

	p, err := c.stores.Produits.FindByID(ctx, produitID)
	if err != nil {
		return uuid.Nil, err
	}
	if !containsID(p.BoutiqueIDs(), *boutiqueID) {
		return uuid.Nil, ErrProduitNotSoldAtBoutique
	}

	scoped := in
	scoped.BoutiqueID = boutiqueID
	return c.CreatePublic(ctx, produitID, scoped)
}

// Validate accepts a pending reservation and queues its notifications in
// the same transaction.
func (c *ReservationCommands) Validate(ctx context.Context, actor Actor, id uuid.UUID) error {
	return c.transition(ctx, actor, id, func(r *reservation.Reservation) error {
		return r.Valider()
	})
}

// Refuse rejects a pending reservation. Terminal.
func (c *ReservationCommands) Refuse(ctx context.Context, actor Actor, id uuid.UUID) error {
	return c.transition(ctx, actor, id, func(r *reservation.Reservation) error {
		return r.Refuser()
	})
}

// MarkDelivered closes out a shipped reservation and archives it. The
// caller must confirm explicitly; archiving cannot be undone.
func (c *ReservationCommands) MarkDelivered(ctx context.Context, actor Actor, id uuid.UUID, confirm bool) error {
	if !confirm {
		return ErrDeliveryNotConfirmed
	}
	return c.transition(ctx, actor, id, func(r *reservation.Reservation) error {
		return r.Livrer()
	})
}

func (c *ReservationCommands) transition(ctx context.Context, actor Actor, id uuid.UUID, apply func(*reservation.Reservation) error) error {
	err := c.tx.WithinTx(ctx, func(ctx context.Context, s Stores) error {
		r, err := s.Reservations.FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if !actor.canManageBoutique(r.BoutiqueID()) {
			return ErrForbidden
		}
		if err := apply(r); err != nil {
			return err
		}
		if err := s.Reservations.UpdateState(ctx, r); err != nil {
			return err
		}
		return s.Notifications.Enqueue(ctx, notify.JobsForStatusChange(r, c.clock.Now()))
	})
	if err != nil {
		return err
	}

	c.hub.Publish(watch.Event{Collection: watch.Reservations})
	return nil
}

func containsID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
