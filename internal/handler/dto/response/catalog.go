package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"np-reserve/internal/domain/produit"
	"np-reserve/internal/usecase/queries"
)

type BoutiqueResponse struct {
	ID        uuid.UUID `json:"id"`
	Nom       string    `json:"nom"`
	Ville     string    `json:"ville"`
	Adresse   *string   `json:"adresse,omitempty"`
	Telephone *string   `json:"telephone,omitempty"`
	Actif     bool      `json:"actif"`
	CreatedAt time.Time `json:"created_at"`
}

type ProduitResponse struct {
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
	CreatedAt          time.Time             `json:"created_at"`
}

func FromBoutiqueView(v queries.BoutiqueView) BoutiqueResponse {
	var resp BoutiqueResponse
	_ = copier.Copy(&resp, &v)
	return resp
}

func FromBoutiqueViews(vs []queries.BoutiqueView) []BoutiqueResponse {
	out := make([]BoutiqueResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromBoutiqueView(v))
	}
	return out
}

func FromProduitView(v queries.ProduitView) ProduitResponse {
	var resp ProduitResponse
	_ = copier.Copy(&resp, &v)
	return resp
}

func FromProduitViews(vs []queries.ProduitView) []ProduitResponse {
	out := make([]ProduitResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromProduitView(v))
	}
	return out
}
