//go:build integration

package repository_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"np-reserve/internal/domain/produit"
	"np-reserve/internal/domain/reservation"
	"np-reserve/internal/infra"
	"np-reserve/internal/infra/db"
	"np-reserve/internal/infra/repository"
	"np-reserve/internal/notify"
	"np-reserve/internal/usecase/commands"
)

func setupPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("np_reserve_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	sqlDB, err := sql.Open("pgx", dsn)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations(sqlDB))
	require.NoError(t, sqlDB.Close())

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func seedReservation(t *testing.T, repo *repository.ReservationRepository, statut reservation.Statut) *reservation.Reservation {
	t.Helper()
	r, err := reservation.NewReservation(reservation.NewReservationParams{
		ProduitID:   uuid.New(),
		BoutiqueID:  uuid.New(),
		Nom:         "Client Integration",
		Email:       "client@example.com",
		Taille:      "M",
		Quantite:    2,
		Acompte:     10,
		NotifyEmail: true,
	}, time.Now().UTC())
	require.NoError(t, err)

	if statut != reservation.StatutEnAttente {
		require.NoError(t, r.Valider())
	}
	require.NoError(t, repo.Create(context.Background(), r))
	return r
}

func TestReservationRepository(t *testing.T) {
	pool := setupPool(t)
	repo := repository.NewReservationRepository(pool)
	ctx := context.Background()

	t.Run("roundtrip", func(t *testing.T) {
		r := seedReservation(t, repo, reservation.StatutEnAttente)

		stored, err := repo.FindByID(ctx, r.ID())
		require.NoError(t, err)
		assert.Equal(t, r.ID(), stored.ID())
		assert.Equal(t, "Client Integration", stored.Nom())
		assert.Equal(t, reservation.StatutEnAttente, stored.Statut())
		assert.Equal(t, 2, stored.Quantite())
		assert.False(t, stored.Archived())
	})

	t.Run("missing id yields not found", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("update state persists lifecycle fields", func(t *testing.T) {
		r := seedReservation(t, repo, reservation.StatutValidee)
		require.NoError(t, r.Expedier("TRK-100"))
		require.NoError(t, repo.UpdateState(ctx, r))

		stored, err := repo.FindByID(ctx, r.ID())
		require.NoError(t, err)
		assert.Equal(t, reservation.StatutEnLivraison, stored.Statut())
		require.NotNil(t, stored.Tracking())
		assert.Equal(t, "TRK-100", *stored.Tracking())
	})

	t.Run("list filters by statut and excludes archived", func(t *testing.T) {
		r := seedReservation(t, repo, reservation.StatutValidee)
		delivered := seedReservation(t, repo, reservation.StatutValidee)
		require.NoError(t, delivered.Expedier("TRK-200"))
		require.NoError(t, delivered.Livrer())
		require.NoError(t, repo.UpdateState(ctx, delivered))

		statut := reservation.StatutValidee
		got, err := repo.List(ctx, repository.ListFilter{Statut: &statut})
		require.NoError(t, err)

		ids := make(map[uuid.UUID]bool, len(got))
		for _, res := range got {
			ids[res.ID()] = true
		}
		assert.True(t, ids[r.ID()])
		assert.False(t, ids[delivered.ID()], "archived reservations must not appear")
	})
}

func TestShipmentBatchAtomicity(t *testing.T) {
	pool := setupPool(t)
	repo := repository.NewReservationRepository(pool)
	tx := repository.NewTxManager(pool)
	ctx := context.Background()

	validated := seedReservation(t, repo, reservation.StatutValidee)
	pending := seedReservation(t, repo, reservation.StatutEnAttente)

	err := tx.WithinTx(ctx, func(ctx context.Context, s commands.Stores) error {
		for _, id := range []uuid.UUID{validated.ID(), pending.ID()} {
			r, err := s.Reservations.FindByIDForUpdate(ctx, id)
			if err != nil {
				return err
			}
			if err := r.Expedier("TRK-300"); err != nil {
				return err
			}
			if err := s.Reservations.UpdateState(ctx, r); err != nil {
				return err
			}
		}
		return nil
	})
	require.ErrorIs(t, err, reservation.ErrInvalidTransition)

	// The first update must have been rolled back with the batch.
	stored, err := repo.FindByID(ctx, validated.ID())
	require.NoError(t, err)
	assert.Equal(t, reservation.StatutValidee, stored.Statut())
	assert.Nil(t, stored.Tracking())
}

func TestProduitRepositoryJSONColumns(t *testing.T) {
	pool := setupPool(t)
	repo := repository.NewProduitRepository(pool)
	ctx := context.Background()

	shopA, shopB := uuid.New(), uuid.New()
	p, err := produit.NewProduit(produit.NewProduitParams{
		Nom:            "Manteau laine",
		Description:    "Manteau d'hiver",
		Photos:         []string{"/uploads/a.jpg", "/uploads/b.jpg"},
		Prix:           149.5,
		Categorie:      produit.CategorieNouveaute,
		StockTotal:     6,
		StockParTaille: map[string]int{"S": 2, "M": 4},
		Status:         produit.StatusDisponible,
		BoutiqueIDs:    []uuid.UUID{shopA, shopB},
		Boutiques: []produit.BoutiqueRef{
			{ID: shopA.String(), Nom: "Nord", Ville: "Lille"},
			{ID: shopB.String(), Nom: "Sud", Ville: "Nice"},
		},
		AI:        produit.AISidecar{Enabled: true, Status: produit.AIStatusDone, Variants: []string{"/uploads/a_hd.jpg"}},
		CreatedBy: uuid.New(),
	}, time.Now().UTC())
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, p))

	stored, err := repo.FindByID(ctx, p.ID())
	require.NoError(t, err)
	assert.Equal(t, p.Photos(), stored.Photos())
	assert.Equal(t, p.StockParTaille(), stored.StockParTaille())
	assert.Equal(t, p.BoutiqueIDs(), stored.BoutiqueIDs())
	assert.Equal(t, p.Boutiques(), stored.Boutiques())
	assert.Equal(t, p.AI(), stored.AI())

	forShopB, err := repo.ListByBoutique(ctx, shopB)
	require.NoError(t, err)
	require.Len(t, forShopB, 1)
	assert.Equal(t, p.ID(), forShopB[0].ID())

	none, err := repo.ListByBoutique(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestNotificationJobQueue(t *testing.T) {
	pool := setupPool(t)
	repo := repository.NewNotificationJobRepository(pool)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Millisecond)
	makeJob := func(topic string, runAt time.Time) notify.Job {
		return notify.Job{
			ID:    uuid.New(),
			Kind:  notify.KindEmail,
			Topic: topic,
			Payload: notify.Payload{
				Title:         "Mise a jour reservation",
				Body:          notify.StatusBody(reservation.StatutValidee),
				ReservationID: uuid.New(),
			},
			RunAt: runAt,
		}
	}

	older := makeJob("older@example.com", now.Add(-2*time.Minute))
	newer := makeJob("newer@example.com", now.Add(-time.Minute))
	future := makeJob("future@example.com", now.Add(time.Hour))
	require.NoError(t, repo.Enqueue(ctx, []notify.Job{newer, older, future}))

	// Due jobs come back oldest first; the future one waits its turn.
	due, err := repo.ListPending(ctx, 10)
	require.NoError(t, err)
	require.Len(t, due, 2)
	assert.Equal(t, older.ID, due[0].ID)
	assert.Equal(t, newer.ID, due[1].ID)
	assert.Equal(t, "Mise a jour reservation", due[0].Payload.Title)

	limited, err := repo.ListPending(ctx, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, older.ID, limited[0].ID)
}
