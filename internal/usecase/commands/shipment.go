package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"np-reserve/internal/domain/reservation"
	"np-reserve/internal/infra/watch"
	"np-reserve/internal/notify"
	"np-reserve/internal/pkg/clock"
)

var (
	ErrEmptyShipment           = errors.New("shipment must contain at least one reservation")
	ErrReservationOutsideGroup = errors.New("reservation does not belong to the shipment group")
)

type ShipmentCommands struct {
	tx    TxRunner
	hub   *watch.Hub
	clock clock.Clock
}

func NewShipmentCommands(tx TxRunner, hub *watch.Hub, clk clock.Clock) *ShipmentCommands {
	return &ShipmentCommands{tx: tx, hub: hub, clock: clk}
}

// SendShipmentInput targets one (produit, boutique) group from the shipment
// preparation view; every reservation in the batch must belong to it.
type SendShipmentInput struct {
	ProduitID      uuid.UUID
	BoutiqueID     uuid.UUID
	Tracking       string
	ReservationIDs []uuid.UUID
}

type ShipmentResult struct {
	Tracking string
	Shipped  int
}

// Send moves a whole batch of validated reservations into delivery under
// one tracking code. The batch is atomic: if any reservation is missing,
// outside the targeted group, or not in the validated state, nothing ships
// and no notification is queued.
func (c *ShipmentCommands) Send(ctx context.Context, actor Actor, in SendShipmentInput) (ShipmentResult, error) {
	if !actor.isAdmin() {
		return ShipmentResult{}, ErrForbidden
	}
	tracking := strings.TrimSpace(in.Tracking)
	if tracking == "" {
		return ShipmentResult{}, reservation.ErrEmptyTracking
	}
	if len(in.ReservationIDs) == 0 {
		return ShipmentResult{}, ErrEmptyShipment
	}

	now := c.clock.Now()
	err := c.tx.WithinTx(ctx, func(ctx context.Context, s Stores) error {
		var jobs []notify.Job
		for _, id := range in.ReservationIDs {
			r, err := s.Reservations.FindByIDForUpdate(ctx, id)
			if err != nil {
				return err
			}
			if r.ProduitID() != in.ProduitID || r.BoutiqueID() != in.BoutiqueID {
				return ErrReservationOutsideGroup
			}
			if err := r.Expedier(tracking); err != nil {
				return err
			}
			if err := s.Reservations.UpdateState(ctx, r); err != nil {
				return err
			}
			jobs = append(jobs, notify.JobsForStatusChange(r, now)...)
		}
		return s.Notifications.Enqueue(ctx, jobs)
	})
	if err != nil {
		return ShipmentResult{}, err
	}

	c.hub.Publish(watch.Event{Collection: watch.Reservations})
	return ShipmentResult{Tracking: tracking, Shipped: len(in.ReservationIDs)}, nil
}
