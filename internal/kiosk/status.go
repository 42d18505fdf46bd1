package kiosk

import (
	"strconv"

	"np-reserve/internal/domain/produit"
)

// StatusLabel renders the availability badge shown under a produit on the
// in-store screen.
func StatusLabel(p *produit.Produit) string {
	switch p.Status() {
	case produit.StatusSoldout:
		return "Soldout"
	case produit.StatusArrivage:
		return "-" + strconv.Itoa(p.JoursAvantArrivage()) + " jours avant arrivage"
	default:
		return "Stock: " + strconv.Itoa(p.StockTotal())
	}
}
