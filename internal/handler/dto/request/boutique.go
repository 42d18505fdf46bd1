package request

import (
	"np-reserve/internal/usecase/commands"
)

type BoutiqueRequest struct {
	Nom       string  `json:"nom" binding:"required"`
	Ville     string  `json:"ville" binding:"required"`
	Adresse   *string `json:"adresse,omitempty"`
	Telephone *string `json:"telephone,omitempty"`
	Actif     *bool   `json:"actif,omitempty"`
}

func (r BoutiqueRequest) ToInput() commands.BoutiqueInput {
	actif := true
	if r.Actif != nil {
		actif = *r.Actif
	}
	return commands.BoutiqueInput{
		Nom:       r.Nom,
		Ville:     r.Ville,
		Adresse:   r.Adresse,
		Telephone: r.Telephone,
		Actif:     actif,
	}
}
