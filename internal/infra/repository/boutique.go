package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"np-reserve/internal/domain/boutique"
	"np-reserve/internal/infra"
)

type BoutiqueRepository struct {
	db DBTX
}

func NewBoutiqueRepository(db DBTX) *BoutiqueRepository {
	return &BoutiqueRepository{db: db}
}

// WithTx returns a copy bound to the given transaction.
func (r *BoutiqueRepository) WithTx(tx DBTX) *BoutiqueRepository {
	return &BoutiqueRepository{db: tx}
}

const boutiqueColumns = "id, nom, ville, adresse, telephone, actif, created_at"

func scanBoutique(row interface{ Scan(dest ...any) error }) (*boutique.Boutique, error) {
	var (
		id                 uuid.UUID
		nom, ville         string
		adresse, telephone *string
		actif              bool
		createdAt          time.Time
	)
	if err := row.Scan(&id, &nom, &ville, &adresse, &telephone, &actif, &createdAt); err != nil {
		return nil, err
	}
	return boutique.ReconstructBoutique(id, nom, ville, adresse, telephone, actif, createdAt), nil
}

func (r *BoutiqueRepository) Create(ctx context.Context, b *boutique.Boutique) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO boutiques (id, nom, ville, adresse, telephone, actif, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		b.ID(), b.Nom(), b.Ville(), b.Adresse(), b.Telephone(), b.Actif(), b.CreatedAt(),
	)
	if err != nil {
		return wrapQueryErr("failed to insert boutique", err)
	}
	return nil
}

func (r *BoutiqueRepository) Update(ctx context.Context, b *boutique.Boutique) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE boutiques
		SET nom = $2, ville = $3, adresse = $4, telephone = $5, actif = $6
		WHERE id = $1`,
		b.ID(), b.Nom(), b.Ville(), b.Adresse(), b.Telephone(), b.Actif(),
	)
	if err != nil {
		return wrapQueryErr("failed to update boutique", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "boutique not found", nil)
	}
	return nil
}

func (r *BoutiqueRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM boutiques WHERE id = $1", id)
	if err != nil {
		return wrapQueryErr("failed to delete boutique", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "boutique not found", nil)
	}
	return nil
}

func (r *BoutiqueRepository) FindByID(ctx context.Context, id uuid.UUID) (*boutique.Boutique, error) {
	row := r.db.QueryRow(ctx, "SELECT "+boutiqueColumns+" FROM boutiques WHERE id = $1", id)
	b, err := scanBoutique(row)
	if err != nil {
		return nil, wrapQueryErr("failed to find boutique", err)
	}
	return b, nil
}

func (r *BoutiqueRepository) List(ctx context.Context) ([]*boutique.Boutique, error) {
	rows, err := r.db.Query(ctx, "SELECT "+boutiqueColumns+" FROM boutiques ORDER BY created_at DESC")
	if err != nil {
		return nil, wrapQueryErr("failed to list boutiques", err)
	}
	defer rows.Close()

	var out []*boutique.Boutique
	for rows.Next() {
		b, err := scanBoutique(rows)
		if err != nil {
			return nil, wrapQueryErr("failed to scan boutique", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr("failed to iterate boutiques", err)
	}
	return out, nil
}
