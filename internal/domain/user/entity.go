package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	role         Role
	boutiqueID   *uuid.UUID
	displayName  *string
	createdAt    time.Time
}

func NewUser(email Email, passwordHash string, role Role, boutiqueID *uuid.UUID, displayName *string, now time.Time) (*User, error) {
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}
	return &User{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		boutiqueID:   boutiqueID,
		displayName:  displayName,
		createdAt:    now,
	}, nil
}

func ReconstructUser(id uuid.UUID, email Email, passwordHash string, role Role, boutiqueID *uuid.UUID, displayName *string, createdAt time.Time) *User {
	return &User{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		boutiqueID:   boutiqueID,
		displayName:  displayName,
		createdAt:    createdAt,
	}
}

func (u *User) ID() uuid.UUID          { return u.id }
func (u *User) Email() Email           { return u.email }
func (u *User) PasswordHash() string   { return u.passwordHash }
func (u *User) Role() Role             { return u.role }
func (u *User) BoutiqueID() *uuid.UUID { return u.boutiqueID }
func (u *User) DisplayName() *string   { return u.displayName }
func (u *User) CreatedAt() time.Time   { return u.createdAt }

// IsAdmin reports whether the user holds the platform-wide role.
func (u *User) IsAdmin() bool { return u.role == RoleAdmin }
