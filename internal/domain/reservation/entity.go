package reservation

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyCustomerName   = errors.New("customer name cannot be empty")
	ErrEmptyCustomerEmail  = errors.New("customer email cannot be empty")
	ErrEmptyTaille         = errors.New("size cannot be empty")
	ErrInvalidQuantite     = errors.New("quantity must be at least 1")
	ErrNegativeAcompte     = errors.New("deposit cannot be negative")
	ErrInvalidStatut       = errors.New("invalid reservation status")
	ErrInvalidTransition   = errors.New("invalid reservation status transition")
	ErrEmptyTracking       = errors.New("tracking code cannot be empty")
	ErrMissingPushToken    = errors.New("push notifications require a push token")
)

type Reservation struct {
	id          uuid.UUID
	produitID   uuid.UUID
	boutiqueID  uuid.UUID
	nom         string
	email       string
	telephone   *string
	taille      string
	quantite    int
	acompte     float64
	statut      Statut
	notifyEmail bool
	notifyPush  bool
	pushToken   *string
	tracking    *string
	archived    bool
	createdAt   time.Time
}

type NewReservationParams struct {
	ProduitID   uuid.UUID
	BoutiqueID  uuid.UUID
	Nom         string
	Email       string
	Telephone   *string
	Taille      string
	Quantite    int
	Acompte     float64
	NotifyEmail bool
	NotifyPush  bool
	PushToken   *string
}

func NewReservation(p NewReservationParams, now time.Time) (*Reservation, error) {
	nom := strings.TrimSpace(p.Nom)
	email := strings.TrimSpace(p.Email)
	taille := strings.TrimSpace(p.Taille)

	if nom == "" {
		return nil, ErrEmptyCustomerName
	}
	if email == "" {
		return nil, ErrEmptyCustomerEmail
	}
	if taille == "" {
		return nil, ErrEmptyTaille
	}
	if p.Quantite < 1 {
		return nil, ErrInvalidQuantite
	}
	if p.Acompte < 0 {
		return nil, ErrNegativeAcompte
	}
	if p.NotifyPush && (p.PushToken == nil || strings.TrimSpace(*p.PushToken) == "") {
		return nil, ErrMissingPushToken
	}

	return &Reservation{
		id:          uuid.New(),
		produitID:   p.ProduitID,
		boutiqueID:  p.BoutiqueID,
		nom:         nom,
		email:       email,
		telephone:   p.Telephone,
		taille:      taille,
		quantite:    p.Quantite,
		acompte:     p.Acompte,
		statut:      StatutEnAttente,
		notifyEmail: p.NotifyEmail,
		notifyPush:  p.NotifyPush,
		pushToken:   p.PushToken,
		createdAt:   now,
	}, nil
}

func ReconstructReservation(
	id, produitID, boutiqueID uuid.UUID,
	nom, email string,
	telephone *string,
	taille string,
	quantite int,
	acompte float64,
	statut Statut,
	notifyEmail, notifyPush bool,
	pushToken, tracking *string,
	archived bool,
	createdAt time.Time,
) *Reservation {
	return &Reservation{
		id:          id,
		produitID:   produitID,
		boutiqueID:  boutiqueID,
		nom:         nom,
		email:       email,
		telephone:   telephone,
		taille:      taille,
		quantite:    quantite,
		acompte:     acompte,
		statut:      statut,
		notifyEmail: notifyEmail,
		notifyPush:  notifyPush,
		pushToken:   pushToken,
		tracking:    tracking,
		archived:    archived,
		createdAt:   createdAt,
	}
}

// Valider marks a pending reservation as accepted.
func (r *Reservation) Valider() error {
	return r.transition(StatutValidee)
}

// Refuser marks a pending reservation as rejected. Terminal.
func (r *Reservation) Refuser() error {
	return r.transition(StatutRefusee)
}

// Expedier puts a validated reservation into shipping with the given
// tracking code and clears the archived flag; a reservation must never
// be shipping and archived at the same time.
func (r *Reservation) Expedier(tracking string) error {
	tracking = strings.TrimSpace(tracking)
	if tracking == "" {
		return ErrEmptyTracking
	}
	if err := r.transition(StatutEnLivraison); err != nil {
		return err
	}
	r.tracking = &tracking
	r.archived = false
	return nil
}

// Livrer confirms delivery and archives the reservation, removing it
// from every active operational view. Irreversible.
func (r *Reservation) Livrer() error {
	if err := r.transition(StatutLivree); err != nil {
		return err
	}
	r.archived = true
	return nil
}

func (r *Reservation) transition(next Statut) error {
	if !r.statut.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	r.statut = next
	return nil
}

func (r *Reservation) ID() uuid.UUID         { return r.id }
func (r *Reservation) ProduitID() uuid.UUID  { return r.produitID }
func (r *Reservation) BoutiqueID() uuid.UUID { return r.boutiqueID }
func (r *Reservation) Nom() string           { return r.nom }
func (r *Reservation) Email() string         { return r.email }
func (r *Reservation) Telephone() *string    { return r.telephone }
func (r *Reservation) Taille() string        { return r.taille }
func (r *Reservation) Quantite() int         { return r.quantite }
func (r *Reservation) Acompte() float64      { return r.acompte }
func (r *Reservation) Statut() Statut        { return r.statut }
func (r *Reservation) NotifyEmail() bool     { return r.notifyEmail }
func (r *Reservation) NotifyPush() bool      { return r.notifyPush }
func (r *Reservation) PushToken() *string    { return r.pushToken }
func (r *Reservation) Tracking() *string     { return r.tracking }
func (r *Reservation) Archived() bool        { return r.archived }
func (r *Reservation) CreatedAt() time.Time  { return r.createdAt }
