//go:build unit

package commands_test

import (
	"context"

	"github.com/google/uuid"

	"np-reserve/internal/domain/boutique"
	"np-reserve/internal/domain/produit"
	"np-reserve/internal/domain/reservation"
	"np-reserve/internal/domain/user"
	"np-reserve/internal/infra"
	"np-reserve/internal/notify"
	"np-reserve/internal/usecase/commands"
)

func notFound(msg string) error {
	return infra.WrapRepoErr(infra.KindNotFound, msg, nil)
}

func copyReservation(r *reservation.Reservation) *reservation.Reservation {
	return reservation.ReconstructReservation(
		r.ID(), r.ProduitID(), r.BoutiqueID(), r.Nom(), r.Email(), r.Telephone(),
		r.Taille(), r.Quantite(), r.Acompte(), r.Statut(), r.NotifyEmail(),
		r.NotifyPush(), r.PushToken(), r.Tracking(), r.Archived(), r.CreatedAt(),
	)
}

type fakeReservations struct {
	byID map[uuid.UUID]*reservation.Reservation
}

func newFakeReservations() *fakeReservations {
	return &fakeReservations{byID: make(map[uuid.UUID]*reservation.Reservation)}
}

func (f *fakeReservations) Create(_ context.Context, r *reservation.Reservation) error {
	f.byID[r.ID()] = copyReservation(r)
	return nil
}

func (f *fakeReservations) FindByID(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	r, ok := f.byID[id]
	if !ok {
		return nil, notFound("reservation not found")
	}
	return copyReservation(r), nil
}

func (f *fakeReservations) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	return f.FindByID(ctx, id)
}

func (f *fakeReservations) UpdateState(_ context.Context, r *reservation.Reservation) error {
	if _, ok := f.byID[r.ID()]; !ok {
		return notFound("reservation not found")
	}
	f.byID[r.ID()] = copyReservation(r)
	return nil
}

func (f *fakeReservations) snapshot() map[uuid.UUID]*reservation.Reservation {
	snap := make(map[uuid.UUID]*reservation.Reservation, len(f.byID))
	for id, r := range f.byID {
		snap[id] = copyReservation(r)
	}
	return snap
}

type fakeProduits struct {
	byID map[uuid.UUID]*produit.Produit
}

func newFakeProduits() *fakeProduits {
	return &fakeProduits{byID: make(map[uuid.UUID]*produit.Produit)}
}

func (f *fakeProduits) Create(_ context.Context, p *produit.Produit) error {
	f.byID[p.ID()] = p
	return nil
}

func (f *fakeProduits) Update(_ context.Context, p *produit.Produit) error {
	if _, ok := f.byID[p.ID()]; !ok {
		return notFound("produit not found")
	}
	f.byID[p.ID()] = p
	return nil
}

func (f *fakeProduits) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.byID[id]; !ok {
		return notFound("produit not found")
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeProduits) FindByID(_ context.Context, id uuid.UUID) (*produit.Produit, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, notFound("produit not found")
	}
	return p, nil
}

func (f *fakeProduits) CountByCreatorAndCategorie(_ context.Context, createdBy uuid.UUID, categorie produit.Categorie) (int, error) {
	count := 0
	for _, p := range f.byID {
		if p.CreatedBy() == createdBy && p.Categorie() == categorie {
			count++
		}
	}
	return count, nil
}

type fakeBoutiques struct {
	byID map[uuid.UUID]*boutique.Boutique
}

func newFakeBoutiques() *fakeBoutiques {
	return &fakeBoutiques{byID: make(map[uuid.UUID]*boutique.Boutique)}
}

func (f *fakeBoutiques) Create(_ context.Context, b *boutique.Boutique) error {
	f.byID[b.ID()] = b
	return nil
}

func (f *fakeBoutiques) Update(_ context.Context, b *boutique.Boutique) error {
	if _, ok := f.byID[b.ID()]; !ok {
		return notFound("boutique not found")
	}
	f.byID[b.ID()] = b
	return nil
}

func (f *fakeBoutiques) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.byID[id]; !ok {
		return notFound("boutique not found")
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeBoutiques) FindByID(_ context.Context, id uuid.UUID) (*boutique.Boutique, error) {
	b, ok := f.byID[id]
	if !ok {
		return nil, notFound("boutique not found")
	}
	return b, nil
}

type fakeUsers struct {
	byID map[uuid.UUID]*user.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byID: make(map[uuid.UUID]*user.User)}
}

func (f *fakeUsers) Create(_ context.Context, u *user.User) error {
	for _, existing := range f.byID {
		if existing.Email() == u.Email() {
			return infra.WrapRepoErr(infra.KindDuplicateKey, "email already registered", nil)
		}
	}
	f.byID[u.ID()] = u
	return nil
}

func (f *fakeUsers) Upsert(_ context.Context, u *user.User) error {
	for id, existing := range f.byID {
		if existing.Email() == u.Email() {
			f.byID[id] = user.ReconstructUser(
				id, u.Email(), u.PasswordHash(), u.Role(),
				u.BoutiqueID(), u.DisplayName(), existing.CreatedAt(),
			)
			return nil
		}
	}
	f.byID[u.ID()] = u
	return nil
}

func (f *fakeUsers) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, notFound("user not found")
	}
	return u, nil
}

func (f *fakeUsers) FindByEmail(_ context.Context, email user.Email) (*user.User, error) {
	for _, u := range f.byID {
		if u.Email() == email {
			return u, nil
		}
	}
	return nil, notFound("user not found")
}

func (f *fakeUsers) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.byID[id]; !ok {
		return notFound("user not found")
	}
	delete(f.byID, id)
	return nil
}

type fakeNotifications struct {
	jobs []notify.Job
}

func (f *fakeNotifications) Enqueue(_ context.Context, jobs []notify.Job) error {
	f.jobs = append(f.jobs, jobs...)
	return nil
}

// fixture bundles the fakes behind the command ports; its tx runner rolls
// reservation and notification writes back when fn fails.
type fixture struct {
	reservations  *fakeReservations
	produits      *fakeProduits
	boutiques     *fakeBoutiques
	users         *fakeUsers
	notifications *fakeNotifications
}

func newFixture() *fixture {
	return &fixture{
		reservations:  newFakeReservations(),
		produits:      newFakeProduits(),
		boutiques:     newFakeBoutiques(),
		users:         newFakeUsers(),
		notifications: &fakeNotifications{},
	}
}

func (f *fixture) stores() commands.Stores {
	return commands.Stores{
		Boutiques:     f.boutiques,
		Produits:      f.produits,
		Reservations:  f.reservations,
		Users:         f.users,
		Notifications: f.notifications,
	}
}

func (f *fixture) WithinTx(ctx context.Context, fn func(ctx context.Context, s commands.Stores) error) error {
	resSnap := f.reservations.snapshot()
	jobsLen := len(f.notifications.jobs)

	if err := fn(ctx, f.stores()); err != nil {
		f.reservations.byID = resSnap
		f.notifications.jobs = f.notifications.jobs[:jobsLen]
		return err
	}
	return nil
}
