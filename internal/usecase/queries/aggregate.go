package queries

import (
	"sort"

	"github.com/google/uuid"

	"np-reserve/internal/domain/produit"
	"np-reserve/internal/domain/reservation"
)

// GroupReservations turns validated, non-archived reservations into the
// per-produit shipping view: total pieces across shops, then a breakdown by
// shop and taille. Reservations in any other state are ignored, so callers
// may pass an unfiltered list.
//
// Produits may be missing from the index (deleted since the reservation was
// taken); such groups keep the raw produit id as their display name.
func GroupReservations(reservations []*reservation.Reservation, produits map[uuid.UUID]*produit.Produit) []ProductGroup {
	type shopAcc struct {
		sizes  map[string]int
		resIDs []uuid.UUID
	}
	type productAcc struct {
		total int
		shops map[uuid.UUID]*shopAcc
	}

	acc := make(map[uuid.UUID]*productAcc)
	for _, r := range reservations {
		if r.Statut() != reservation.StatutValidee || r.Archived() {
			continue
		}
		pa, ok := acc[r.ProduitID()]
		if !ok {
			pa = &productAcc{shops: make(map[uuid.UUID]*shopAcc)}
			acc[r.ProduitID()] = pa
		}
		sa, ok := pa.shops[r.BoutiqueID()]
		if !ok {
			sa = &shopAcc{sizes: make(map[string]int)}
			pa.shops[r.BoutiqueID()] = sa
		}
		sa.sizes[r.Taille()] += r.Quantite()
		sa.resIDs = append(sa.resIDs, r.ID())
		pa.total += r.Quantite()
	}

	groups := make([]ProductGroup, 0, len(acc))
	for produitID, pa := range acc {
		group := ProductGroup{
			ProduitID:   produitID,
			ProduitNom:  produitID.String(),
			TotalPieces: pa.total,
		}
		if p, ok := produits[produitID]; ok {
			group.ProduitNom = p.Nom()
			if photos := p.Photos(); len(photos) > 0 {
				photo := photos[0]
				group.Photo = &photo
			}
		}

		for boutiqueID, sa := range pa.shops {
			bg := BoutiqueGroup{
				BoutiqueID:     boutiqueID,
				ReservationIDs: sa.resIDs,
			}
			for taille, pieces := range sa.sizes {
				bg.Tailles = append(bg.Tailles, SizeCount{Taille: taille, Pieces: pieces})
			}
			sort.Slice(bg.Tailles, func(i, j int) bool {
				return bg.Tailles[i].Taille < bg.Tailles[j].Taille
			})
			group.Boutiques = append(group.Boutiques, bg)
		}
		sort.Slice(group.Boutiques, func(i, j int) bool {
			return group.Boutiques[i].BoutiqueID.String() < group.Boutiques[j].BoutiqueID.String()
		})

		groups = append(groups, group)
	}

	sort.Slice(groups, func(i, j int) bool {
		if groups[i].ProduitNom != groups[j].ProduitNom {
			return groups[i].ProduitNom < groups[j].ProduitNom
		}
		return groups[i].ProduitID.String() < groups[j].ProduitID.String()
	})
	return groups
}
