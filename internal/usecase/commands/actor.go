package commands

import (
	"errors"

	"github.com/google/uuid"

	"np-reserve/internal/domain/user"
)

var (
	ErrForbidden = errors.New("actor is not allowed to perform this operation")
)

// Actor is the authenticated caller of a command, as carried by its token.
type Actor struct {
	ID         uuid.UUID
	Role       user.Role
	BoutiqueID *uuid.UUID
}

func (a Actor) isAdmin() bool {
	return a.Role == user.RoleAdmin
}

// canManageBoutique reports whether the actor may act on reservations of
// the given shop. Admins may act everywhere; managers only on their own.
func (a Actor) canManageBoutique(boutiqueID uuid.UUID) bool {
	if a.isAdmin() {
		return true
	}
	return a.BoutiqueID != nil && *a.BoutiqueID == boutiqueID
}
