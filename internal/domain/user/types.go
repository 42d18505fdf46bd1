package user

import "errors"

var ErrInvalidRole = errors.New("invalid role")

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleGerant Role = "gerant"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleGerant:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
