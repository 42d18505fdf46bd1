package reservation

type Statut string

const (
	StatutEnAttente   Statut = "en_attente"
	StatutValidee     Statut = "validee"
	StatutRefusee     Statut = "refusee"
	StatutEnLivraison Statut = "en_livraison"
	StatutLivree      Statut = "livree"
)

func (s Statut) String() string {
	return string(s)
}

func (s Statut) IsValid() bool {
	switch s {
	case StatutEnAttente, StatutValidee, StatutRefusee, StatutEnLivraison, StatutLivree:
		return true
	default:
		return false
	}
}

// CanTransitionTo encodes the reservation lifecycle:
// en_attente -> validee | refusee, validee -> en_livraison,
// en_livraison -> livree. refusee and livree are terminal and
// nothing ever returns to en_attente.
func (s Statut) CanTransitionTo(next Statut) bool {
	switch s {
	case StatutEnAttente:
		return next == StatutValidee || next == StatutRefusee
	case StatutValidee:
		return next == StatutEnLivraison
	case StatutEnLivraison:
		return next == StatutLivree
	default:
		return false
	}
}
