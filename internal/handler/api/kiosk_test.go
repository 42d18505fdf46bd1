//go:build unit

package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"np-reserve/internal/domain/produit"
	"np-reserve/internal/handler/api"
	"np-reserve/internal/infra/watch"
	"np-reserve/internal/kiosk"
)

type stubProduitSource struct {
	produits map[uuid.UUID][]*produit.Produit
}

func (s *stubProduitSource) ListByBoutique(_ context.Context, boutiqueID uuid.UUID) ([]*produit.Produit, error) {
	return s.produits[boutiqueID], nil
}

func kioskRouter(t *testing.T, source *stubProduitSource) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hub := watch.NewHub()
	t.Cleanup(hub.Close)

	manager := kiosk.NewManager(kiosk.ManagerConfig{
		SlideInterval: 5 * time.Second,
		QRSize:        160,
		PublicOrigin:  "http://localhost:3000",
	}, source, hub)

	router := gin.New()
	handler := api.NewKioskHandler(manager)
	router.GET("/api/kiosk/:boutiqueId/slide", handler.Slide)
	return router
}

func TestKioskSlide(t *testing.T) {
	boutiqueID := uuid.New()
	p, err := produit.NewProduit(produit.NewProduitParams{
		Nom:         "Veste denim",
		Photos:      []string{"/uploads/veste.jpg"},
		Prix:        89.9,
		Categorie:   produit.CategorieNouveaute,
		StockTotal:  4,
		Status:      produit.StatusDisponible,
		BoutiqueIDs: []uuid.UUID{boutiqueID},
		CreatedBy:   uuid.New(),
	}, time.Now())
	require.NoError(t, err)

	source := &stubProduitSource{produits: map[uuid.UUID][]*produit.Produit{
		boutiqueID: {p},
	}}
	router := kioskRouter(t, source)

	t.Run("returns the current slide", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/kiosk/"+boutiqueID.String()+"/slide", nil)
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var slide kiosk.Slide
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &slide))
		assert.Equal(t, p.ID(), slide.ProduitID)
		assert.Equal(t, "Veste denim", slide.Nom)
		assert.Equal(t, "/uploads/veste.jpg", slide.Photo)
		assert.Equal(t, "Stock: 4", slide.StatusLabel)
		assert.Contains(t, slide.QRDataURL, "data:image/png;base64,")
	})

	t.Run("204 when the shop has nothing to display", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/kiosk/"+uuid.NewString()+"/slide", nil)
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("400 on a malformed boutique id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/kiosk/not-a-uuid/slide", nil)
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
