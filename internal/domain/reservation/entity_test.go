//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"np-reserve/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validParams() reservation.NewReservationParams {
	return reservation.NewReservationParams{
		ProduitID:   uuid.New(),
		BoutiqueID:  uuid.New(),
		Nom:         "Alice Martin",
		Email:       "alice@example.com",
		Taille:      "M",
		Quantite:    2,
		NotifyEmail: true,
	}
}

func TestNewReservation(t *testing.T) {
	now := time.Now()

	t.Run("basic success case", func(t *testing.T) {
		r, err := reservation.NewReservation(validParams(), now)
		require.NoError(t, err)
		require.NotNil(t, r)

		assert.NotEqual(t, uuid.Nil, r.ID())
		assert.Equal(t, reservation.StatutEnAttente, r.Statut())
		assert.False(t, r.Archived())
		assert.Nil(t, r.Tracking())
		assert.Equal(t, now, r.CreatedAt())
	})

	t.Run("field validation", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*reservation.NewReservationParams)
			errIs  error
		}{
			{
				name:   "empty customer name",
				mutate: func(p *reservation.NewReservationParams) { p.Nom = "  " },
				errIs:  reservation.ErrEmptyCustomerName,
			},
			{
				name:   "empty email",
				mutate: func(p *reservation.NewReservationParams) { p.Email = "" },
				errIs:  reservation.ErrEmptyCustomerEmail,
			},
			{
				name:   "empty size",
				mutate: func(p *reservation.NewReservationParams) { p.Taille = "" },
				errIs:  reservation.ErrEmptyTaille,
			},
			{
				name:   "zero quantity",
				mutate: func(p *reservation.NewReservationParams) { p.Quantite = 0 },
				errIs:  reservation.ErrInvalidQuantite,
			},
			{
				name:   "negative deposit",
				mutate: func(p *reservation.NewReservationParams) { p.Acompte = -1 },
				errIs:  reservation.ErrNegativeAcompte,
			},
			{
				name:   "push opt-in without token",
				mutate: func(p *reservation.NewReservationParams) { p.NotifyPush = true },
				errIs:  reservation.ErrMissingPushToken,
			},
			{
				name: "minimum valid quantity",
				mutate: func(p *reservation.NewReservationParams) { p.Quantite = 1 },
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				p := validParams()
				tc.mutate(&p)
				r, err := reservation.NewReservation(p, now)
				if tc.errIs != nil {
					require.ErrorIs(t, err, tc.errIs)
					assert.Nil(t, r)
					return
				}
				require.NoError(t, err)
				require.NotNil(t, r)
			})
		}
	})
}

func TestStatutTransitions(t *testing.T) {
	cases := []struct {
		from    reservation.Statut
		to      reservation.Statut
		allowed bool
	}{
		{reservation.StatutEnAttente, reservation.StatutValidee, true},
		{reservation.StatutEnAttente, reservation.StatutRefusee, true},
		{reservation.StatutEnAttente, reservation.StatutEnLivraison, false},
		{reservation.StatutEnAttente, reservation.StatutLivree, false},
		{reservation.StatutValidee, reservation.StatutEnLivraison, true},
		{reservation.StatutValidee, reservation.StatutRefusee, false},
		{reservation.StatutValidee, reservation.StatutEnAttente, false},
		{reservation.StatutEnLivraison, reservation.StatutLivree, true},
		{reservation.StatutEnLivraison, reservation.StatutEnAttente, false},
		{reservation.StatutRefusee, reservation.StatutValidee, false},
		{reservation.StatutRefusee, reservation.StatutEnAttente, false},
		{reservation.StatutLivree, reservation.StatutEnAttente, false},
		{reservation.StatutLivree, reservation.StatutEnLivraison, false},
	}

	for _, tc := range cases {
		name := tc.from.String() + "->" + tc.to.String()
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestLifecycle(t *testing.T) {
	now := time.Now()

	t.Run("expedier sets tracking and clears archived", func(t *testing.T) {
		r, err := reservation.NewReservation(validParams(), now)
		require.NoError(t, err)
		require.NoError(t, r.Valider())

		require.NoError(t, r.Expedier("  COLIS-123  "))
		assert.Equal(t, reservation.StatutEnLivraison, r.Statut())
		require.NotNil(t, r.Tracking())
		assert.Equal(t, "COLIS-123", *r.Tracking())
		assert.False(t, r.Archived())
	})

	t.Run("expedier rejects blank tracking before transitioning", func(t *testing.T) {
		r, err := reservation.NewReservation(validParams(), now)
		require.NoError(t, err)
		require.NoError(t, r.Valider())

		require.ErrorIs(t, r.Expedier("   "), reservation.ErrEmptyTracking)
		assert.Equal(t, reservation.StatutValidee, r.Statut())
		assert.Nil(t, r.Tracking())
	})

	t.Run("expedier requires a validated reservation", func(t *testing.T) {
		r, err := reservation.NewReservation(validParams(), now)
		require.NoError(t, err)

		require.ErrorIs(t, r.Expedier("COLIS-123"), reservation.ErrInvalidTransition)
	})

	t.Run("livrer archives the reservation", func(t *testing.T) {
		r, err := reservation.NewReservation(validParams(), now)
		require.NoError(t, err)
		require.NoError(t, r.Valider())
		require.NoError(t, r.Expedier("COLIS-123"))

		require.NoError(t, r.Livrer())
		assert.Equal(t, reservation.StatutLivree, r.Statut())
		assert.True(t, r.Archived())
	})

	t.Run("refuser is terminal", func(t *testing.T) {
		r, err := reservation.NewReservation(validParams(), now)
		require.NoError(t, err)
		require.NoError(t, r.Refuser())

		require.ErrorIs(t, r.Valider(), reservation.ErrInvalidTransition)
		require.ErrorIs(t, r.Expedier("COLIS-123"), reservation.ErrInvalidTransition)
		require.ErrorIs(t, r.Livrer(), reservation.ErrInvalidTransition)
	})
}
