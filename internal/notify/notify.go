// Package notify builds the durable notification jobs written alongside
// reservation status changes. Jobs are picked up by an external dispatcher;
// this package only defines the contract and the message texts.
package notify

import (
	"time"

	"github.com/google/uuid"

	"np-reserve/internal/domain/reservation"
)

type Kind string

const (
	KindEmail Kind = "email"
	KindPush  Kind = "push"
)

type JobStatus string

const (
	JobPending JobStatus = "pending"
	JobSent    JobStatus = "sent"
	JobFailed  JobStatus = "failed"
)

// Job is one pending notification row. Topic is the recipient address for
// email jobs and the device push token for push jobs.
type Job struct {
	ID      uuid.UUID
	Kind    Kind
	Topic   string
	Payload Payload
	RunAt   time.Time
}

type Payload struct {
	Title         string    `json:"title"`
	Body          string    `json:"body"`
	ReservationID uuid.UUID `json:"reservation_id"`
}

const statusTitle = "Mise a jour reservation"

// StatusBody returns the customer-facing text for a reservation status.
func StatusBody(statut reservation.Statut) string {
	switch statut {
	case reservation.StatutValidee:
		return "Votre reservation est validee."
	case reservation.StatutRefusee:
		return "Votre reservation a ete refusee."
	case reservation.StatutEnLivraison:
		return "Votre reservation est en cours de livraison."
	case reservation.StatutLivree:
		return "Votre reservation a ete livree."
	default:
		return "Votre reservation est en attente."
	}
}

// JobsForStatusChange builds the email and/or push jobs a reservation's
// notification preferences call for. Push without a token yields no push job.
func JobsForStatusChange(r *reservation.Reservation, now time.Time) []Job {
	payload := Payload{
		Title:         statusTitle,
		Body:          StatusBody(r.Statut()),
		ReservationID: r.ID(),
	}

	var jobs []Job
	if r.NotifyEmail() {
		jobs = append(jobs, Job{
			ID:      uuid.New(),
			Kind:    KindEmail,
			Topic:   r.Email(),
			Payload: payload,
			RunAt:   now,
		})
	}
	if r.NotifyPush() && r.PushToken() != nil && *r.PushToken() != "" {
		jobs = append(jobs, Job{
			ID:      uuid.New(),
			Kind:    KindPush,
			Topic:   *r.PushToken(),
			Payload: payload,
			RunAt:   now,
		})
	}
	return jobs
}
