package repository

import (
	"context"

	"venue-booking-api/internal/domain/booth"
	"venue-booking-api/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BoothRepository struct{}

func NewBoothRepository() *BoothRepository {
	return &BoothRepository{}
}

func (r *BoothRepository) FindByID(ctx context.Context, db DBTX, id uuid.UUID) (*booth.Booth, error) {
	const query = `SELECT id, venue, name, hourly_rate_cents FROM booths WHERE id = $1`

	var (
		boothID         uuid.UUID
		venue, name     string
		hourlyRateCents int64
	)
	err := db.QueryRow(ctx, query, id).Scan(&boothID, &venue, &name, &hourlyRateCents)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.NewRepoErr(infra.KindNotFound, "booth not found")
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find booth", err)
	}
	return booth.NewBooth(boothID, venue, name, hourlyRateCents)
}

// LockRow serializes all hold/booking writes for one booth. Taking the booth
// row lock before the overlap check closes the check-then-insert race without
// an exclusion constraint.
func (r *BoothRepository) LockRow(ctx context.Context, db DBTX, id uuid.UUID) error {
	const query = `SELECT id FROM booths WHERE id = $1 FOR UPDATE`

	var boothID uuid.UUID
	err := db.QueryRow(ctx, query, id).Scan(&boothID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return infra.NewRepoErr(infra.KindNotFound, "booth not found")
		}
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to lock booth row", err)
	}
	return nil
}
