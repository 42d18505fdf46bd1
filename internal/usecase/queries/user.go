package queries

import (
	"context"

	"github.com/google/uuid"

	"np-reserve/internal/domain/user"
)

type UserReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	ListByRole(ctx context.Context, role user.Role) ([]*user.User, error)
}

type UserQueries struct {
	users UserReader
}

func NewUserQueries(users UserReader) *UserQueries {
	return &UserQueries{users: users}
}

func (q *UserQueries) Get(ctx context.Context, id uuid.UUID) (UserView, error) {
	u, err := q.users.FindByID(ctx, id)
	if err != nil {
		return UserView{}, err
	}
	return toUserView(u), nil
}

// ListGerants returns every provisioned shop manager.
func (q *UserQueries) ListGerants(ctx context.Context) ([]UserView, error) {
	us, err := q.users.ListByRole(ctx, user.RoleGerant)
	if err != nil {
		return nil, err
	}
	views := make([]UserView, 0, len(us))
	for _, u := range us {
		views = append(views, toUserView(u))
	}
	return views, nil
}

func toUserView(u *user.User) UserView {
	return UserView{
		ID:          u.ID(),
		Email:       u.Email().String(),
		Role:        u.Role().String(),
		BoutiqueID:  u.BoutiqueID(),
		DisplayName: u.DisplayName(),
		CreatedAt:   u.CreatedAt(),
	}
}
