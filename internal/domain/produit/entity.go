package produit

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName        = errors.New("produit name cannot be empty")
	ErrNegativePrice    = errors.New("produit price cannot be negative")
	ErrNegativeStock    = errors.New("produit stock cannot be negative")
	ErrInvalidStatus    = errors.New("invalid produit status")
	ErrInvalidCategorie = errors.New("invalid produit categorie")
	ErrNoBoutique       = errors.New("produit must belong to at least one boutique")
)

// MaxPerCategorie caps active produits a single manager may list per categorie.
const MaxPerCategorie = 3

type Produit struct {
	id                 uuid.UUID
	nom                string
	description        string
	photos             []string
	prix               float64
	categorie          Categorie
	stockTotal         int
	stockParTaille     map[string]int
	status             Status
	joursAvantArrivage int
	boutiqueIDs        []uuid.UUID
	boutiques          []BoutiqueRef
	ai                 AISidecar
	createdBy          uuid.UUID
	createdAt          time.Time
}

type NewProduitParams struct {
	Nom                string
	Description        string
	Photos             []string
	Prix               float64
	Categorie          Categorie
	StockTotal         int
	StockParTaille     map[string]int
	Status             Status
	JoursAvantArrivage int
	BoutiqueIDs        []uuid.UUID
	Boutiques          []BoutiqueRef
	AI                 AISidecar
	CreatedBy          uuid.UUID
}

func NewProduit(p NewProduitParams, now time.Time) (*Produit, error) {
	nom := strings.TrimSpace(p.Nom)
	if nom == "" {
		return nil, ErrEmptyName
	}
	if p.Prix < 0 {
		return nil, ErrNegativePrice
	}
	if p.StockTotal < 0 {
		return nil, ErrNegativeStock
	}
	for _, qty := range p.StockParTaille {
		if qty < 0 {
			return nil, ErrNegativeStock
		}
	}
	if !p.Categorie.IsValid() {
		return nil, ErrInvalidCategorie
	}
	if !p.Status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if len(p.BoutiqueIDs) == 0 {
		return nil, ErrNoBoutique
	}

	// The arrival countdown only means something for incoming produits.
	jours := p.JoursAvantArrivage
	if p.Status != StatusArrivage {
		jours = 0
	}

	ai := p.AI
	if ai.Status == "" {
		ai.Status = AIStatusIdle
	}
	if ai.Variants == nil {
		ai.Variants = []string{}
	}

	stockParTaille := make(map[string]int, len(p.StockParTaille))
	for taille, qty := range p.StockParTaille {
		stockParTaille[taille] = qty
	}

	return &Produit{
		id:                 uuid.New(),
		nom:                nom,
		description:        strings.TrimSpace(p.Description),
		photos:             append([]string{}, p.Photos...),
		prix:               p.Prix,
		categorie:          p.Categorie,
		stockTotal:         p.StockTotal,
		stockParTaille:     stockParTaille,
		status:             p.Status,
		joursAvantArrivage: jours,
		boutiqueIDs:        append([]uuid.UUID{}, p.BoutiqueIDs...),
		boutiques:          append([]BoutiqueRef{}, p.Boutiques...),
		ai:                 ai,
		createdBy:          p.CreatedBy,
		createdAt:          now,
	}, nil
}

func ReconstructProduit(
	id uuid.UUID,
	p NewProduitParams,
	createdAt time.Time,
) *Produit {
	jours := p.JoursAvantArrivage
	if p.Status != StatusArrivage {
		jours = 0
	}
	return &Produit{
		id:                 id,
		nom:                p.Nom,
		description:        p.Description,
		photos:             p.Photos,
		prix:               p.Prix,
		categorie:          p.Categorie,
		stockTotal:         p.StockTotal,
		stockParTaille:     p.StockParTaille,
		status:             p.Status,
		joursAvantArrivage: jours,
		boutiqueIDs:        p.BoutiqueIDs,
		boutiques:          p.Boutiques,
		ai:                 p.AI,
		createdBy:          p.CreatedBy,
		createdAt:          createdAt,
	}
}

func (p *Produit) ID() uuid.UUID               { return p.id }
func (p *Produit) Nom() string                 { return p.nom }
func (p *Produit) Description() string         { return p.description }
func (p *Produit) Photos() []string            { return p.photos }
func (p *Produit) Prix() float64               { return p.prix }
func (p *Produit) Categorie() Categorie        { return p.categorie }
func (p *Produit) StockTotal() int             { return p.stockTotal }
func (p *Produit) StockParTaille() map[string]int { return p.stockParTaille }
func (p *Produit) Status() Status              { return p.status }
func (p *Produit) JoursAvantArrivage() int     { return p.joursAvantArrivage }
func (p *Produit) BoutiqueIDs() []uuid.UUID    { return p.boutiqueIDs }
func (p *Produit) Boutiques() []BoutiqueRef    { return p.boutiques }
func (p *Produit) AI() AISidecar               { return p.ai }
func (p *Produit) CreatedBy() uuid.UUID        { return p.createdBy }
func (p *Produit) CreatedAt() time.Time        { return p.createdAt }

// FirstBoutiqueID returns the shop a public reservation is attributed to.
func (p *Produit) FirstBoutiqueID() (uuid.UUID, bool) {
	if len(p.boutiqueIDs) == 0 {
		return uuid.Nil, false
	}
	return p.boutiqueIDs[0], true
}
