// Package commands holds the write side: every mutation, its invariants,
// and its transactional boundaries.
package commands

import (
	"context"

	"github.com/google/uuid"

	"np-reserve/internal/domain/boutique"
	"np-reserve/internal/domain/produit"
	"np-reserve/internal/domain/reservation"
	"np-reserve/internal/domain/user"
	"np-reserve/internal/notify"
)

type BoutiqueStore interface {
	Create(ctx context.Context, b *boutique.Boutique) error
	Update(ctx context.Context, b *boutique.Boutique) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*boutique.Boutique, error)
}

type ProduitStore interface {
	Create(ctx context.Context, p *produit.Produit) error
	Update(ctx context.Context, p *produit.Produit) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*produit.Produit, error)
	CountByCreatorAndCategorie(ctx context.Context, createdBy uuid.UUID, categorie produit.Categorie) (int, error)
}

type ReservationStore interface {
	Create(ctx context.Context, r *reservation.Reservation) error
	FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	UpdateState(ctx context.Context, r *reservation.Reservation) error
}

type UserStore interface {
	Create(ctx context.Context, u *user.User) error
	Upsert(ctx context.Context, u *user.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	FindByEmail(ctx context.Context, email user.Email) (*user.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type NotificationStore interface {
	Enqueue(ctx context.Context, jobs []notify.Job) error
}

// Stores bundles every store bound to one database handle, either the
// shared pool or a single transaction.
type Stores struct {
	Boutiques     BoutiqueStore
	Produits      ProduitStore
	Reservations  ReservationStore
	Users         UserStore
	Notifications NotificationStore
}

// TxRunner executes fn inside one transaction; fn's stores all share it.
// An error from fn rolls everything back.
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, s Stores) error) error
}
