// Package queries holds the read side: list/detail views and the
// reservation grouping used to prepare shipment batches.
package queries

import (
	"time"

	"github.com/google/uuid"

	"np-reserve/internal/domain/produit"
)

type BoutiqueView struct {
	ID        uuid.UUID `json:"id"`
	Nom       string    `json:"nom"`
	Ville     string    `json:"ville"`
	Adresse   *string   `json:"adresse,omitempty"`
	Telephone *string   `json:"telephone,omitempty"`
	Actif     bool      `json:"actif"`
	CreatedAt time.Time `json:"created_at"`
}

type ProduitView struct {
	ID                 uuid.UUID             `json:"id"`
	Nom                string                `json:"nom"`
	Description        string                `json:"description"`
	Photos             []string              `json:"photos"`
	Prix               float64               `json:"prix"`
	Categorie          produit.Categorie     `json:"categorie"`
	StockTotal         int                   `json:"stock_total"`
	StockParTaille     map[string]int        `json:"stock_par_taille"`
	Status             produit.Status        `json:"status"`
	JoursAvantArrivage int                   `json:"jours_avant_arrivage"`
	BoutiqueIDs        []uuid.UUID           `json:"boutique_ids"`
	Boutiques          []produit.BoutiqueRef `json:"boutiques"`
	AI                 produit.AISidecar     `json:"ai"`
	CreatedBy          uuid.UUID             `json:"created_by"`
	CreatedAt          time.Time             `json:"created_at"`
}

type ReservationView struct {
	ID          uuid.UUID `json:"id"`
	ProduitID   uuid.UUID `json:"produit_id"`
	BoutiqueID  uuid.UUID `json:"boutique_id"`
	Nom         string    `json:"nom"`
	Email       string    `json:"email"`
	Telephone   *string   `json:"telephone,omitempty"`
	Taille      string    `json:"taille"`
	Quantite    int       `json:"quantite"`
	Acompte     float64   `json:"acompte"`
	Statut      string    `json:"statut"`
	NotifyEmail bool      `json:"notify_email"`
	NotifyPush  bool      `json:"notify_push"`
	Tracking    *string   `json:"tracking,omitempty"`
	Archived    bool      `json:"archived"`
	CreatedAt   time.Time `json:"created_at"`
}

type UserView struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	BoutiqueID  *uuid.UUID `json:"boutique_id,omitempty"`
	DisplayName *string    `json:"display_name,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// SizeCount is one taille line inside a boutique group.
type SizeCount struct {
	Taille string `json:"taille"`
	Pieces int    `json:"pieces"`
}

// BoutiqueGroup collects the validated demand for one produit at one shop.
type BoutiqueGroup struct {
	BoutiqueID     uuid.UUID   `json:"boutique_id"`
	Tailles        []SizeCount `json:"tailles"`
	ReservationIDs []uuid.UUID `json:"reservation_ids"`
}

// ProductGroup is one produit's shippable demand across all shops.
type ProductGroup struct {
	ProduitID   uuid.UUID       `json:"produit_id"`
	ProduitNom  string          `json:"produit_nom"`
	Photo       *string         `json:"photo,omitempty"`
	TotalPieces int             `json:"total_pieces"`
	Boutiques   []BoutiqueGroup `json:"boutiques"`
}
