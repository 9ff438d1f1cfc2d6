package repository

import (
	"context"

	"venue-booking-api/internal/domain/user"
	"venue-booking-api/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) FindActiveByEmail(ctx context.Context, db DBTX, email string) (*user.User, error) {
	const query = `
SELECT id, email, password_hash, role, is_active
FROM users
WHERE email = $1 AND is_active = TRUE`

	var u user.User
	var role string
	err := db.QueryRow(ctx, query, email).Scan(&u.ID, &u.Email, &u.PasswordHash, &role, &u.IsActive)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.NewRepoErr(infra.KindNotFound, "user not found")
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find user", err)
	}

	u.Role, err = user.NewRole(role)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "stored role is invalid", err)
	}
	return &u, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, db DBTX, id uuid.UUID) error {
	const stmt = `UPDATE users SET last_login_at = NOW() WHERE id = $1`

	if _, err := db.Exec(ctx, stmt, id); err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to update last login", err)
	}
	return nil
}
