//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"np-reserve/internal/domain/boutique"
	"np-reserve/internal/domain/produit"
	"np-reserve/internal/domain/reservation"
	"np-reserve/internal/domain/user"
	"np-reserve/internal/infra/watch"
	"np-reserve/internal/notify"
	"np-reserve/internal/pkg/clock"
	"np-reserve/internal/usecase/commands"
)

func newReservationCommands(f *fixture) *commands.ReservationCommands {
	hub := watch.NewHub()
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	return commands.NewReservationCommands(f.stores(), f, hub, clk)
}

func seedProduit(t *testing.T, f *fixture, boutiqueIDs ...uuid.UUID) *produit.Produit {
	t.Helper()
	p, err := produit.NewProduit(produit.NewProduitParams{
		Nom:         "Robe fleurie",
		Prix:        79.0,
		Categorie:   produit.CategorieNouveaute,
		Status:      produit.StatusDisponible,
		BoutiqueIDs: boutiqueIDs,
		CreatedBy:   uuid.New(),
	}, time.Now())
	require.NoError(t, err)
	require.NoError(t, f.produits.Create(context.Background(), p))
	return p
}

func TestCreatePublicReservation(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to the produit's first shop", func(t *testing.T) {
		f := newFixture()
		cmd := newReservationCommands(f)
		shopA, shopB := uuid.New(), uuid.New()
		p := seedProduit(t, f, shopA, shopB)

		id, err := cmd.CreatePublic(ctx, p.ID(), commands.ReservationInput{
			Nom:      "Julie Blanc",
			Email:    "julie@example.com",
			Taille:   "S",
			Quantite: 1,
		})
		require.NoError(t, err)

		stored, err := f.reservations.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, shopA, stored.BoutiqueID())
		assert.Equal(t, reservation.StatutEnAttente, stored.Statut())
	})

	t.Run("honors an explicit shop choice", func(t *testing.T) {
		f := newFixture()
		cmd := newReservationCommands(f)
		shopA, shopB := uuid.New(), uuid.New()
		p := seedProduit(t, f, shopA, shopB)

		id, err := cmd.CreatePublic(ctx, p.ID(), commands.ReservationInput{
			BoutiqueID: &shopB,
			Nom:        "Julie Blanc",
			Email:      "julie@example.com",
			Taille:     "S",
			Quantite:   1,
		})
		require.NoError(t, err)

		stored, err := f.reservations.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, shopB, stored.BoutiqueID())
	})

	t.Run("rejects a shop the produit is not sold at", func(t *testing.T) {
		f := newFixture()
		cmd := newReservationCommands(f)
		p := seedProduit(t, f, uuid.New())
		other := uuid.New()

		_, err := cmd.CreatePublic(ctx, p.ID(), commands.ReservationInput{
			BoutiqueID: &other,
			Nom:        "Julie Blanc",
			Email:      "julie@example.com",
			Taille:     "S",
			Quantite:   1,
		})
		require.ErrorIs(t, err, commands.ErrProduitNotSoldAtBoutique)
	})
}

func TestReservationTransitions(t *testing.T) {
	ctx := context.Background()

	t.Run("validate queues a notification", func(t *testing.T) {
		f := newFixture()
		cmd := newReservationCommands(f)
		r := seedReservation(t, f, reservation.StatutEnAttente)

		require.NoError(t, cmd.Validate(ctx, adminActor, r.ID()))

		stored, err := f.reservations.FindByID(ctx, r.ID())
		require.NoError(t, err)
		assert.Equal(t, reservation.StatutValidee, stored.Statut())

		require.Len(t, f.notifications.jobs, 1)
		job := f.notifications.jobs[0]
		assert.Equal(t, notify.KindEmail, job.Kind)
		assert.Equal(t, "Votre reservation est validee.", job.Payload.Body)
	})

	t.Run("a manager cannot touch another shop's reservation", func(t *testing.T) {
		f := newFixture()
		cmd := newReservationCommands(f)
		r := seedReservation(t, f, reservation.StatutEnAttente)
		otherShop := uuid.New()
		gerant := commands.Actor{ID: uuid.New(), Role: user.RoleGerant, BoutiqueID: &otherShop}

		err := cmd.Validate(ctx, gerant, r.ID())
		require.ErrorIs(t, err, commands.ErrForbidden)

		stored, err := f.reservations.FindByID(ctx, r.ID())
		require.NoError(t, err)
		assert.Equal(t, reservation.StatutEnAttente, stored.Statut())
	})

	t.Run("refuse is terminal", func(t *testing.T) {
		f := newFixture()
		cmd := newReservationCommands(f)
		r := seedReservation(t, f, reservation.StatutEnAttente)

		require.NoError(t, cmd.Refuse(ctx, adminActor, r.ID()))
		err := cmd.Validate(ctx, adminActor, r.ID())
		require.ErrorIs(t, err, reservation.ErrInvalidTransition)
	})

	t.Run("delivery needs explicit confirmation", func(t *testing.T) {
		f := newFixture()
		cmd := newReservationCommands(f)
		r := seedReservation(t, f, reservation.StatutValidee)
		require.NoError(t, f.reservations.byID[r.ID()].Expedier("TRK-9"))

		err := cmd.MarkDelivered(ctx, adminActor, r.ID(), false)
		require.ErrorIs(t, err, commands.ErrDeliveryNotConfirmed)

		require.NoError(t, cmd.MarkDelivered(ctx, adminActor, r.ID(), true))
		stored, err := f.reservations.FindByID(ctx, r.ID())
		require.NoError(t, err)
		assert.Equal(t, reservation.StatutLivree, stored.Statut())
		assert.True(t, stored.Archived())
	})
}

func TestProduitCategorieLimit(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	hub := watch.NewHub()
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	cmd := commands.NewProduitCommands(f.stores(), f, hub, clk)

	b, err := boutique.NewBoutique("Maison Nord", "Lille", nil, nil, true, time.Now())
	require.NoError(t, err)
	require.NoError(t, f.boutiques.Create(ctx, b))
	shopID := b.ID()

	gerant := commands.Actor{ID: uuid.New(), Role: user.RoleGerant, BoutiqueID: &shopID}
	input := commands.ProduitInput{
		Nom:         "Echarpe",
		Prix:        25,
		Categorie:   produit.CategoriePromo,
		Status:      produit.StatusDisponible,
		BoutiqueIDs: []uuid.UUID{shopID},
	}

	for i := 0; i < produit.MaxPerCategorie; i++ {
		_, err := cmd.Create(ctx, gerant, input)
		require.NoError(t, err)
	}

	_, err = cmd.Create(ctx, gerant, input)
	require.ErrorIs(t, err, commands.ErrCategorieLimitReached)

	// The cap is per categorie, not global.
	input.Categorie = produit.CategorieNouveaute
	_, err = cmd.Create(ctx, gerant, input)
	require.NoError(t, err)

	// Admins are not capped.
	input.Categorie = produit.CategoriePromo
	_, err = cmd.Create(ctx, adminActor, input)
	require.NoError(t, err)
}
