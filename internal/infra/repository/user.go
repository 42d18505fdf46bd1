package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"np-reserve/internal/domain/user"
	"np-reserve/internal/infra"
)

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) WithTx(tx DBTX) *UserRepository {
	return &UserRepository{db: tx}
}

const userColumns = "id, email, password_hash, role, boutique_id, display_name, created_at"

func scanUser(row interface{ Scan(dest ...any) error }) (*user.User, error) {
	var (
		id           uuid.UUID
		email        string
		passwordHash string
		roleStr      string
		boutiqueID   *uuid.UUID
		displayName  *string
		createdAt    time.Time
	)
	if err := row.Scan(&id, &email, &passwordHash, &roleStr, &boutiqueID, &displayName, &createdAt); err != nil {
		return nil, err
	}

	emailVO, err := user.NewEmail(email)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(roleStr)
	if err != nil {
		return nil, err
	}
	return user.ReconstructUser(id, emailVO, passwordHash, role, boutiqueID, displayName, createdAt), nil
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, role, boutique_id, display_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		u.ID(), u.Email().String(), u.PasswordHash(), u.Role(), u.BoutiqueID(), u.DisplayName(), u.CreatedAt(),
	)
	if err != nil {
		return wrapQueryErr("failed to insert user", err)
	}
	return nil
}

// Upsert inserts the user or, when the email already exists, refreshes its
// credentials and shop binding. Backs manager provisioning.
func (r *UserRepository) Upsert(ctx context.Context, u *user.User) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, role, boutique_id, display_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (email) DO UPDATE
		SET password_hash = EXCLUDED.password_hash,
		    role = EXCLUDED.role,
		    boutique_id = EXCLUDED.boutique_id,
		    display_name = EXCLUDED.display_name`,
		u.ID(), u.Email().String(), u.PasswordHash(), u.Role(), u.BoutiqueID(), u.DisplayName(), u.CreatedAt(),
	)
	if err != nil {
		return wrapQueryErr("failed to upsert user", err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	row := r.db.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", id)
	u, err := scanUser(row)
	if err != nil {
		return nil, wrapQueryErr("failed to find user", err)
	}
	return u, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email user.Email) (*user.User, error) {
	row := r.db.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE email = $1", email.String())
	u, err := scanUser(row)
	if err != nil {
		return nil, wrapQueryErr("failed to find user by email", err)
	}
	return u, nil
}

func (r *UserRepository) ListByRole(ctx context.Context, role user.Role) ([]*user.User, error) {
	rows, err := r.db.Query(ctx, "SELECT "+userColumns+" FROM users WHERE role = $1 ORDER BY created_at DESC", role)
	if err != nil {
		return nil, wrapQueryErr("failed to list users", err)
	}
	defer rows.Close()

	var out []*user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, wrapQueryErr("failed to scan user", err)
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr("failed to iterate users", err)
	}
	return out, nil
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return wrapQueryErr("failed to delete user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "user not found", nil)
	}
	return nil
}
