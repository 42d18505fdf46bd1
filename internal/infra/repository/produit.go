package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"np-reserve/internal/domain/produit"
	"np-reserve/internal/infra"
)

type ProduitRepository struct {
	db DBTX
}

func NewProduitRepository(db DBTX) *ProduitRepository {
	return &ProduitRepository{db: db}
}

func (r *ProduitRepository) WithTx(tx DBTX) *ProduitRepository {
	return &ProduitRepository{db: tx}
}

const produitColumns = `id, nom, description, photos, prix, categorie, stock_total,
	stock_par_taille, status, jours_avant_arrivage, boutique_ids, boutiques, ai,
	created_by, created_at`

func scanProduit(row interface{ Scan(dest ...any) error }) (*produit.Produit, error) {
	var (
		id        uuid.UUID
		params    produit.NewProduitParams
		createdAt time.Time
	)
	if err := row.Scan(
		&id, &params.Nom, &params.Description, &params.Photos, &params.Prix,
		&params.Categorie, &params.StockTotal, &params.StockParTaille,
		&params.Status, &params.JoursAvantArrivage, &params.BoutiqueIDs,
		&params.Boutiques, &params.AI, &params.CreatedBy, &createdAt,
	); err != nil {
		return nil, err
	}
	return produit.ReconstructProduit(id, params, createdAt), nil
}

func (r *ProduitRepository) Create(ctx context.Context, p *produit.Produit) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO produits (`+produitColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		p.ID(), p.Nom(), p.Description(), p.Photos(), p.Prix(), p.Categorie(),
		p.StockTotal(), p.StockParTaille(), p.Status(), p.JoursAvantArrivage(),
		p.BoutiqueIDs(), p.Boutiques(), p.AI(), p.CreatedBy(), p.CreatedAt(),
	)
	if err != nil {
		return wrapQueryErr("failed to insert produit", err)
	}
	return nil
}

func (r *ProduitRepository) Update(ctx context.Context, p *produit.Produit) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE produits
		SET nom = $2, description = $3, photos = $4, prix = $5, categorie = $6,
		    stock_total = $7, stock_par_taille = $8, status = $9,
		    jours_avant_arrivage = $10, boutique_ids = $11, boutiques = $12, ai = $13
		WHERE id = $1`,
		p.ID(), p.Nom(), p.Description(), p.Photos(), p.Prix(), p.Categorie(),
		p.StockTotal(), p.StockParTaille(), p.Status(), p.JoursAvantArrivage(),
		p.BoutiqueIDs(), p.Boutiques(), p.AI(),
	)
	if err != nil {
		return wrapQueryErr("failed to update produit", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "produit not found", nil)
	}
	return nil
}

func (r *ProduitRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM produits WHERE id = $1", id)
	if err != nil {
		return wrapQueryErr("failed to delete produit", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "produit not found", nil)
	}
	return nil
}

func (r *ProduitRepository) FindByID(ctx context.Context, id uuid.UUID) (*produit.Produit, error) {
	row := r.db.QueryRow(ctx, "SELECT "+produitColumns+" FROM produits WHERE id = $1", id)
	p, err := scanProduit(row)
	if err != nil {
		return nil, wrapQueryErr("failed to find produit", err)
	}
	return p, nil
}

func (r *ProduitRepository) List(ctx context.Context) ([]*produit.Produit, error) {
	rows, err := r.db.Query(ctx, "SELECT "+produitColumns+" FROM produits ORDER BY created_at DESC")
	if err != nil {
		return nil, wrapQueryErr("failed to list produits", err)
	}
	defer rows.Close()
	return collectProduits(rows)
}

// ListByBoutique returns the produits sold at one shop, oldest first, which
// is the stable order the kiosk carousel expects.
func (r *ProduitRepository) ListByBoutique(ctx context.Context, boutiqueID uuid.UUID) ([]*produit.Produit, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+produitColumns+` FROM produits
		WHERE $1 = ANY (boutique_ids)
		ORDER BY created_at ASC`,
		boutiqueID,
	)
	if err != nil {
		return nil, wrapQueryErr("failed to list produits by boutique", err)
	}
	defer rows.Close()
	return collectProduits(rows)
}

// CountByCreatorAndCategorie backs the per-manager listing cap.
func (r *ProduitRepository) CountByCreatorAndCategorie(ctx context.Context, createdBy uuid.UUID, categorie produit.Categorie) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		"SELECT count(*) FROM produits WHERE created_by = $1 AND categorie = $2",
		createdBy, categorie,
	).Scan(&count)
	if err != nil {
		return 0, wrapQueryErr("failed to count produits", err)
	}
	return count, nil
}

func collectProduits(rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}) ([]*produit.Produit, error) {
	var out []*produit.Produit
	for rows.Next() {
		p, err := scanProduit(rows)
		if err != nil {
			return nil, wrapQueryErr("failed to scan produit", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr("failed to iterate produits", err)
	}
	return out, nil
}
