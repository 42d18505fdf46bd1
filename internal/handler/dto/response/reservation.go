package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"np-reserve/internal/usecase/commands"
	"np-reserve/internal/usecase/queries"
)

type ReservationResponse struct {
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

type ShipmentResponse struct {
	Tracking string `json:"tracking"`
	Shipped  int    `json:"shipped"`
}

func FromReservationView(v queries.ReservationView) ReservationResponse {
	var resp ReservationResponse
	_ = copier.Copy(&resp, &v)
	return resp
}

func FromReservationViews(vs []queries.ReservationView) []ReservationResponse {
	out := make([]ReservationResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromReservationView(v))
	}
	return out
}

func FromShipmentResult(result commands.ShipmentResult) ShipmentResponse {
	return ShipmentResponse{Tracking: result.Tracking, Shipped: result.Shipped}
}
