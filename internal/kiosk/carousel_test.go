//go:build unit

package kiosk_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"np-reserve/internal/domain/produit"
	"np-reserve/internal/kiosk"
)

func makeProduit(t *testing.T, nom string, photos []string, status produit.Status, stock, jours int) *produit.Produit {
	t.Helper()
	p, err := produit.NewProduit(produit.NewProduitParams{
		Nom:                nom,
		Photos:             photos,
		Prix:               30,
		Categorie:          produit.CategoriePromo,
		StockTotal:         stock,
		Status:             status,
		JoursAvantArrivage: jours,
		BoutiqueIDs:        []uuid.UUID{uuid.New()},
		CreatedBy:          uuid.New(),
	}, time.Now())
	require.NoError(t, err)
	return p
}

func TestStatusLabel(t *testing.T) {
	tests := []struct {
		name    string
		produit *produit.Produit
		want    string
	}{
		{
			name:    "available shows remaining stock",
			produit: makeProduit(t, "Pull", nil, produit.StatusDisponible, 7, 0),
			want:    "Stock: 7",
		},
		{
			name:    "soldout",
			produit: makeProduit(t, "Pull", nil, produit.StatusSoldout, 0, 0),
			want:    "Soldout",
		},
		{
			name:    "incoming shows the countdown",
			produit: makeProduit(t, "Pull", nil, produit.StatusArrivage, 0, 5),
			want:    "-5 jours avant arrivage",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, kiosk.StatusLabel(tt.produit))
		})
	}
}

// currentKey identifies the displayed photo as "nom/photo" for assertions.
func currentKey(t *testing.T, e *kiosk.Engine) string {
	t.Helper()
	slide, ok := e.Current()
	require.True(t, ok)
	return slide.Nom + "/" + slide.Photo
}

func TestEngineRotation(t *testing.T) {
	// A has two photos, B has one: the cycle is A/a1, A/a2, B/b1, A/a1, ...
	a := makeProduit(t, "A", []string{"a1", "a2"}, produit.StatusDisponible, 1, 0)
	b := makeProduit(t, "B", []string{"b1"}, produit.StatusDisponible, 1, 0)

	e := kiosk.NewEngine("")
	e.SetProduits([]*produit.Produit{a, b})

	want := []string{"A/a1", "A/a2", "B/b1", "A/a1", "A/a2", "B/b1", "A/a1"}
	var got []string
	for range want {
		got = append(got, currentKey(t, e))
		e.Advance()
	}
	assert.Equal(t, want, got)
}

func TestEnginePositionIndicator(t *testing.T) {
	a := makeProduit(t, "A", []string{"a1"}, produit.StatusDisponible, 1, 0)
	b := makeProduit(t, "B", []string{"b1"}, produit.StatusDisponible, 1, 0)
	c := makeProduit(t, "C", []string{"c1"}, produit.StatusDisponible, 1, 0)

	e := kiosk.NewEngine("")
	e.SetProduits([]*produit.Produit{a, b, c})

	// The screen renders "{ProduitIndex+1}/{ProduitCount}".
	for i := 0; i < 3; i++ {
		slide, ok := e.Current()
		require.True(t, ok)
		assert.Equal(t, i, slide.ProduitIndex)
		assert.Equal(t, 3, slide.ProduitCount)
		e.Advance()
	}
}

func TestEnginePhotolessProduit(t *testing.T) {
	a := makeProduit(t, "A", nil, produit.StatusDisponible, 1, 0)
	b := makeProduit(t, "B", []string{"b1"}, produit.StatusDisponible, 1, 0)

	e := kiosk.NewEngine("")
	e.SetProduits([]*produit.Produit{a, b})

	// A photoless produit still gets one slide, with an empty photo.
	assert.Equal(t, "A/", currentKey(t, e))
	e.Advance()
	assert.Equal(t, "B/b1", currentKey(t, e))
	e.Advance()
	assert.Equal(t, "A/", currentKey(t, e))
}

func TestEngineSnapshotResets(t *testing.T) {
	a := makeProduit(t, "A", []string{"a1", "a2"}, produit.StatusDisponible, 1, 0)
	b := makeProduit(t, "B", []string{"b1"}, produit.StatusDisponible, 1, 0)
	c := makeProduit(t, "C", []string{"c1"}, produit.StatusDisponible, 1, 0)

	e := kiosk.NewEngine("")
	e.SetProduits([]*produit.Produit{a, b})
	e.Advance() // A/a2

	// A different sequence restarts from the top.
	e.SetProduits([]*produit.Produit{a, b, c})
	assert.Equal(t, "A/a1", currentKey(t, e))

	// So does an identical sequence: every snapshot restarts the rotation.
	e.Advance() // A/a2
	e.SetProduits([]*produit.Produit{a, b, c})
	assert.Equal(t, "A/a1", currentKey(t, e))
}

func TestEngineEditedProduitResets(t *testing.T) {
	a := makeProduit(t, "A", []string{"a1", "a2"}, produit.StatusDisponible, 1, 0)
	b := makeProduit(t, "B", []string{"b1"}, produit.StatusDisponible, 1, 0)

	e := kiosk.NewEngine("")
	e.SetProduits([]*produit.Produit{a, b})
	e.Advance() // A/a2

	// A has its photos replaced; same id sequence, fresh snapshot.
	edited := produit.ReconstructProduit(a.ID(), produit.NewProduitParams{
		Nom:         "A",
		Photos:      []string{"x1", "x2"},
		Prix:        a.Prix(),
		Categorie:   a.Categorie(),
		StockTotal:  a.StockTotal(),
		Status:      a.Status(),
		BoutiqueIDs: a.BoutiqueIDs(),
		CreatedBy:   a.CreatedBy(),
	}, a.CreatedAt())
	e.SetProduits([]*produit.Produit{edited, b})

	slide, ok := e.Current()
	require.True(t, ok)
	assert.Equal(t, "x1", slide.Photo)
	assert.Equal(t, 0, slide.PhotoIndex)
	assert.Equal(t, 0, slide.ProduitIndex)
}

func TestEngineEmptyList(t *testing.T) {
	e := kiosk.NewEngine("")
	e.SetProduits(nil)

	_, ok := e.Current()
	assert.False(t, ok)
	e.Advance() // must not panic

	a := makeProduit(t, "A", []string{"a1"}, produit.StatusDisponible, 1, 0)
	e.SetProduits([]*produit.Produit{a})
	assert.Equal(t, "A/a1", currentKey(t, e))
}

func TestQRDataURL(t *testing.T) {
	url, err := kiosk.QRDataURL("https://reserve.example.com/shop/abc", 160)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "data:image/png;base64,"))
	assert.Greater(t, len(url), len("data:image/png;base64,"))
}
