package produit

type Status string

const (
	StatusDisponible Status = "disponible"
	StatusSoldout    Status = "soldout"
	StatusArrivage   Status = "arrivage"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusDisponible, StatusSoldout, StatusArrivage:
		return true
	default:
		return false
	}
}

type Categorie string

const (
	CategoriePromo     Categorie = "promo"
	CategorieNouveaute Categorie = "nouveaute"
)

func (c Categorie) String() string {
	return string(c)
}

func (c Categorie) IsValid() bool {
	switch c {
	case CategoriePromo, CategorieNouveaute:
		return true
	default:
		return false
	}
}

type AIStatus string

const (
	AIStatusIdle       AIStatus = "idle"
	AIStatusProcessing AIStatus = "processing"
	AIStatusDone       AIStatus = "done"
)

// AISidecar tracks the optional AI-upscaled photo variants of a produit.
type AISidecar struct {
	Enabled  bool     `json:"enabled"`
	Status   AIStatus `json:"status"`
	Variants []string `json:"variants"`
}

// BoutiqueRef is the denormalized shop snapshot embedded in a produit for display.
type BoutiqueRef struct {
	ID    string `json:"id"`
	Nom   string `json:"nom"`
	Ville string `json:"ville"`
}
