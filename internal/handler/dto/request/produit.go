package request

import (
	"github.com/google/uuid"

	"np-reserve/internal/domain/produit"
	"np-reserve/internal/usecase/commands"
)

type ProduitRequest struct {
	Nom                string             `json:"nom" binding:"required"`
	Description        string             `json:"description"`
	Photos             []string           `json:"photos"`
	Prix               float64            `json:"prix"`
	Categorie          string             `json:"categorie" binding:"required"`
	StockTotal         int                `json:"stock_total"`
	StockParTaille     map[string]int     `json:"stock_par_taille"`
	Status             string             `json:"status" binding:"required"`
	JoursAvantArrivage int                `json:"jours_avant_arrivage"`
	BoutiqueIDs        []uuid.UUID        `json:"boutique_ids" binding:"required"`
	AI                 *produit.AISidecar `json:"ai,omitempty"`
}

func (r ProduitRequest) ToInput() commands.ProduitInput {
	in := commands.ProduitInput{
		Nom:                r.Nom,
		Description:        r.Description,
		Photos:             r.Photos,
		Prix:               r.Prix,
		Categorie:          produit.Categorie(r.Categorie),
		StockTotal:         r.StockTotal,
		StockParTaille:     r.StockParTaille,
		Status:             produit.Status(r.Status),
		JoursAvantArrivage: r.JoursAvantArrivage,
		BoutiqueIDs:        r.BoutiqueIDs,
	}
	if r.AI != nil {
		in.AI = *r.AI
	}
	return in
}
