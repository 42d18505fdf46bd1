package request

import (
	"github.com/google/uuid"

	"np-reserve/internal/usecase/commands"
)

type CreateReservationRequest struct {
	BoutiqueID  *uuid.UUID `json:"boutique_id,omitempty"`
	Nom         string     `json:"nom" binding:"required"`
	Email       string     `json:"email" binding:"required"`
	Telephone   *string    `json:"telephone,omitempty"`
	Taille      string     `json:"taille" binding:"required"`
	Quantite    int        `json:"quantite" binding:"required"`
	Acompte     float64    `json:"acompte"`
	NotifyEmail *bool      `json:"notify_email,omitempty"`
	NotifyPush  bool       `json:"notify_push"`
	PushToken   *string    `json:"push_token,omitempty"`
}

func (r CreateReservationRequest) ToInput() commands.ReservationInput {
	notifyEmail := true
	if r.NotifyEmail != nil {
		notifyEmail = *r.NotifyEmail
	}
	return commands.ReservationInput{
		BoutiqueID:  r.BoutiqueID,
		Nom:         r.Nom,
		Email:       r.Email,
		Telephone:   r.Telephone,
		Taille:      r.Taille,
		Quantite:    r.Quantite,
		Acompte:     r.Acompte,
		NotifyEmail: notifyEmail,
		NotifyPush:  r.NotifyPush,
		PushToken:   r.PushToken,
	}
}

type DeliverRequest struct {
	Confirm bool `json:"confirm"`
}

type SendShipmentRequest struct {
	ProduitID      uuid.UUID   `json:"produit_id" binding:"required"`
	BoutiqueID     uuid.UUID   `json:"boutique_id" binding:"required"`
	Tracking       string      `json:"tracking" binding:"required"`
	ReservationIDs []uuid.UUID `json:"reservation_ids" binding:"required"`
}

func (r SendShipmentRequest) ToInput() commands.SendShipmentInput {
	return commands.SendShipmentInput{
		ProduitID:      r.ProduitID,
		BoutiqueID:     r.BoutiqueID,
		Tracking:       r.Tracking,
		ReservationIDs: r.ReservationIDs,
	}
}
