// Package kiosk drives the in-store display: a two-level carousel rotating
// through a shop's produits and, inside each produit, through its photos.
package kiosk

import (
	"sync"

	"github.com/google/uuid"

	"np-reserve/internal/domain/produit"
)

// Slide is what the screen renders between two ticks. ProduitIndex and
// ProduitCount feed the "{n}/{total}" position indicator.
type Slide struct {
	ProduitID    uuid.UUID `json:"produit_id"`
	Nom          string    `json:"nom"`
	Prix         float64   `json:"prix"`
	Photo        string    `json:"photo"`
	PhotoIndex   int       `json:"photo_index"`
	PhotoCount   int       `json:"photo_count"`
	ProduitIndex int       `json:"produit_index"`
	ProduitCount int       `json:"produit_count"`
	StatusLabel  string    `json:"status_label"`
	QRDataURL    string    `json:"qr_data_url"`
}

// Engine holds the rotation state for one shop. All methods are safe for
// concurrent use; the tick loop and slide requests race by design.
type Engine struct {
	mu         sync.Mutex
	produits   []*produit.Produit
	produitIdx int
	photoIdx   int
	qrDataURL  string
}

func NewEngine(qrDataURL string) *Engine {
	return &Engine{qrDataURL: qrDataURL}
}

// SetProduits swaps in a fresh product list and restarts the rotation from
// the first photo of the first produit. The reset applies even when the id
// sequence is unchanged: an edited produit must show its new photos from
// the start, not from a stale position.
func (e *Engine) SetProduits(ps []*produit.Produit) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.produits = ps
	e.produitIdx = 0
	e.photoIdx = 0
}

// Advance moves one tick: the next photo of the current produit, or the
// first photo of the next produit once its photos run out. The produit
// cycle wraps around.
func (e *Engine) Advance() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.produits) == 0 {
		return
	}
	current := e.produits[e.produitIdx]
	if e.photoIdx+1 < len(current.Photos()) {
		e.photoIdx++
		return
	}
	e.photoIdx = 0
	e.produitIdx = (e.produitIdx + 1) % len(e.produits)
}

// Current returns the slide under display, or false while the shop has no
// produits.
func (e *Engine) Current() (Slide, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.produits) == 0 {
		return Slide{}, false
	}
	p := e.produits[e.produitIdx]

	photo := ""
	photos := p.Photos()
	if len(photos) > 0 {
		photo = photos[e.photoIdx]
	}
	return Slide{
		ProduitID:    p.ID(),
		Nom:          p.Nom(),
		Prix:         p.Prix(),
		Photo:        photo,
		PhotoIndex:   e.photoIdx,
		PhotoCount:   len(photos),
		ProduitIndex: e.produitIdx,
		ProduitCount: len(e.produits),
		StatusLabel:  StatusLabel(p),
		QRDataURL:    e.qrDataURL,
	}, true
}
