package kiosk

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"np-reserve/internal/domain/produit"
	"np-reserve/internal/infra/watch"
)

// ProduitSource supplies a shop's current produit list, oldest first.
type ProduitSource interface {
	ListByBoutique(ctx context.Context, boutiqueID uuid.UUID) ([]*produit.Produit, error)
}

type ManagerConfig struct {
	SlideInterval time.Duration
	QRSize        int
	PublicOrigin  string
}

// Manager runs one carousel engine per shop. Engines start lazily on the
// first slide request and advance together on a shared cadence; a produit
// or boutique change reloads every active engine.
type Manager struct {
	cfg      ManagerConfig
	produits ProduitSource
	hub      *watch.Hub

	mu      sync.Mutex
	engines map[uuid.UUID]*Engine
}

func NewManager(cfg ManagerConfig, produits ProduitSource, hub *watch.Hub) *Manager {
	return &Manager{
		cfg:      cfg,
		produits: produits,
		hub:      hub,
		engines:  make(map[uuid.UUID]*Engine),
	}
}

// Slide returns the current slide for a shop, spinning its engine up on
// first use. ok is false while the shop has nothing to display.
func (m *Manager) Slide(ctx context.Context, boutiqueID uuid.UUID) (Slide, bool, error) {
	engine, err := m.engine(ctx, boutiqueID)
	if err != nil {
		return Slide{}, false, err
	}
	slide, ok := engine.Current()
	return slide, ok, nil
}

// Run advances every engine on the slide cadence and reloads them when the
// catalog changes. Blocks until ctx is done.
func (m *Manager) Run(ctx context.Context) {
	events, unsubscribe := m.hub.Subscribe()
	defer unsubscribe()

	ticker := time.NewTicker(m.cfg.SlideInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.advanceAll()
		case e, ok := <-events:
			if !ok {
				return
			}
			if e.Collection == watch.Produits || e.Collection == watch.Boutiques {
				m.reloadAll(ctx)
			}
		}
	}
}

func (m *Manager) engine(ctx context.Context, boutiqueID uuid.UUID) (*Engine, error) {
	m.mu.Lock()
	if engine, ok := m.engines[boutiqueID]; ok {
		m.mu.Unlock()
		return engine, nil
	}
	m.mu.Unlock()

	ps, err := m.produits.ListByBoutique(ctx, boutiqueID)
	if err != nil {
		return nil, err
	}

	qrDataURL, err := QRDataURL(m.cfg.PublicOrigin+"/shop/"+boutiqueID.String(), m.cfg.QRSize)
	if err != nil {
		// The screen still rotates without its QR corner.
		slog.Error("failed to build kiosk qr code", "boutique_id", boutiqueID, "error", err)
		qrDataURL = ""
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if engine, ok := m.engines[boutiqueID]; ok {
		return engine, nil
	}
	engine := NewEngine(qrDataURL)
	engine.SetProduits(ps)
	m.engines[boutiqueID] = engine
	return engine, nil
}

func (m *Manager) advanceAll() {
	m.mu.Lock()
	engines := make([]*Engine, 0, len(m.engines))
	for _, e := range m.engines {
		engines = append(engines, e)
	}
	m.mu.Unlock()

	for _, e := range engines {
		e.Advance()
	}
}

func (m *Manager) reloadAll(ctx context.Context) {
	m.mu.Lock()
	ids := make([]uuid.UUID, 0, len(m.engines))
	for id := range m.engines {
		ids = append(ids, id)
	}
	m.mu.Unlock()

	for _, id := range ids {
		ps, err := m.produits.ListByBoutique(ctx, id)
		if err != nil {
			slog.Error("failed to reload kiosk produits", "boutique_id", id, "error", err)
			continue
		}
		m.mu.Lock()
		engine, ok := m.engines[id]
		m.mu.Unlock()
		if ok {
			engine.SetProduits(ps)
		}
	}
}
