package repository

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"

	"np-reserve/internal/domain/reservation"
	"np-reserve/internal/infra"
)

type ReservationRepository struct {
	db DBTX
}

func NewReservationRepository(db DBTX) *ReservationRepository {
	return &ReservationRepository{db: db}
}

func (r *ReservationRepository) WithTx(tx DBTX) *ReservationRepository {
	return &ReservationRepository{db: tx}
}

// ListFilter narrows List. Nil fields match everything; archived rows are
// excluded unless IncludeArchived is set.
type ListFilter struct {
	BoutiqueID      *uuid.UUID
	Statut          *reservation.Statut
	IncludeArchived bool
}

const reservationColumns = `id, produit_id, boutique_id, nom, email, telephone, taille,
	quantite, acompte, statut, notify_email, notify_push, push_token, tracking,
	archived, created_at`

func scanReservation(row interface{ Scan(dest ...any) error }) (*reservation.Reservation, error) {
	var (
		id, produitID, boutiqueID      uuid.UUID
		nom, email, taille             string
		telephone, pushToken, tracking *string
		quantite                       int
		acompte                        float64
		statut                         reservation.Statut
		notifyEmail, notifyPush        bool
		archived                       bool
		createdAt                      time.Time
	)
	if err := row.Scan(
		&id, &produitID, &boutiqueID, &nom, &email, &telephone, &taille,
		&quantite, &acompte, &statut, &notifyEmail, &notifyPush, &pushToken,
		&tracking, &archived, &createdAt,
	); err != nil {
		return nil, err
	}
	return reservation.ReconstructReservation(
		id, produitID, boutiqueID, nom, email, telephone, taille,
		quantite, acompte, statut, notifyEmail, notifyPush,
		pushToken, tracking, archived, createdAt,
	), nil
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO reservations (`+reservationColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		res.ID(), res.ProduitID(), res.BoutiqueID(), res.Nom(), res.Email(),
		res.Telephone(), res.Taille(), res.Quantite(), res.Acompte(), res.Statut(),
		res.NotifyEmail(), res.NotifyPush(), res.PushToken(), res.Tracking(),
		res.Archived(), res.CreatedAt(),
	)
	if err != nil {
		return wrapQueryErr("failed to insert reservation", err)
	}
	return nil
}

// UpdateState persists the mutable lifecycle fields after a domain transition.
func (r *ReservationRepository) UpdateState(ctx context.Context, res *reservation.Reservation) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE reservations
		SET statut = $2, tracking = $3, archived = $4
		WHERE id = $1`,
		res.ID(), res.Statut(), res.Tracking(), res.Archived(),
	)
	if err != nil {
		return wrapQueryErr("failed to update reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "reservation not found", nil)
	}
	return nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row := r.db.QueryRow(ctx, "SELECT "+reservationColumns+" FROM reservations WHERE id = $1", id)
	res, err := scanReservation(row)
	if err != nil {
		return nil, wrapQueryErr("failed to find reservation", err)
	}
	return res, nil
}

// FindByIDForUpdate locks the row for the lifetime of the surrounding
// transaction. Used by batch shipment so concurrent transitions serialize.
func (r *ReservationRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row := r.db.QueryRow(ctx, "SELECT "+reservationColumns+" FROM reservations WHERE id = $1 FOR UPDATE", id)
	res, err := scanReservation(row)
	if err != nil {
		return nil, wrapQueryErr("failed to lock reservation", err)
	}
	return res, nil
}

func (r *ReservationRepository) List(ctx context.Context, filter ListFilter) ([]*reservation.Reservation, error) {
	query := "SELECT " + reservationColumns + " FROM reservations WHERE 1=1"
	var args []any
	if !filter.IncludeArchived {
		query += " AND archived = false"
	}
	if filter.BoutiqueID != nil {
		args = append(args, *filter.BoutiqueID)
		query += " AND boutique_id = $" + strconv.Itoa(len(args))
	}
	if filter.Statut != nil {
		args = append(args, *filter.Statut)
		query += " AND statut = $" + strconv.Itoa(len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapQueryErr("failed to list reservations", err)
	}
	defer rows.Close()

	var out []*reservation.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, wrapQueryErr("failed to scan reservation", err)
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr("failed to iterate reservations", err)
	}
	return out, nil
}
