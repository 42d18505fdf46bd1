package boutique

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName = errors.New("boutique name cannot be empty")
	ErrEmptyCity = errors.New("boutique city cannot be empty")
)

type Boutique struct {
	id        uuid.UUID
	nom       string
	ville     string
	adresse   *string
	telephone *string
	actif     bool
	createdAt time.Time
}

func NewBoutique(nom, ville string, adresse, telephone *string, actif bool, now time.Time) (*Boutique, error) {
	nom = strings.TrimSpace(nom)
	ville = strings.TrimSpace(ville)
	if nom == "" {
		return nil, ErrEmptyName
	}
	if ville == "" {
		return nil, ErrEmptyCity
	}

	return &Boutique{
		id:        uuid.New(),
		nom:       nom,
		ville:     ville,
		adresse:   adresse,
		telephone: telephone,
		actif:     actif,
		createdAt: now,
	}, nil
}

func ReconstructBoutique(id uuid.UUID, nom, ville string, adresse, telephone *string, actif bool, createdAt time.Time) *Boutique {
	return &Boutique{
		id:        id,
		nom:       nom,
		ville:     ville,
		adresse:   adresse,
		telephone: telephone,
		actif:     actif,
		createdAt: createdAt,
	}
}

func (b *Boutique) ID() uuid.UUID        { return b.id }
func (b *Boutique) Nom() string          { return b.nom }
func (b *Boutique) Ville() string        { return b.ville }
func (b *Boutique) Adresse() *string     { return b.adresse }
func (b *Boutique) Telephone() *string   { return b.telephone }
func (b *Boutique) Actif() bool          { return b.actif }
func (b *Boutique) CreatedAt() time.Time { return b.createdAt }
