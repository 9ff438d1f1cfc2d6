package commands

import (
	"context"
	"log/slog"

	reqdto "venue-booking-api/internal/handler/dto/request"
	"venue-booking-api/internal/infra"
	"venue-booking-api/internal/pkg/errs"
	"venue-booking-api/internal/pkg/jwt"
	"venue-booking-api/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrTokenGeneration    = errs.New("token generation failed")
)

type LoginResult struct {
	UserID      uuid.UUID
	Role        string
	AccessToken string
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
}

type authCommandsImpl struct {
	userRepo   UserRepository
	jwtService *jwt.Service
	db         *pgxpool.Pool
}

func NewAuthCommands(userRepo UserRepository, jwtService *jwt.Service, db *pgxpool.Pool) AuthCommands {
	return &authCommandsImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
		db:         db,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	staff, err := a.userRepo.FindActiveByEmail(ctx, a.db, req.Email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Same error as a bad password: don't leak account existence.
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := password.Compare(staff.PasswordHash, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(staff.ID, staff.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	if err := a.userRepo.UpdateLastLogin(ctx, a.db, staff.ID); err != nil {
		// Not critical, continue without failing
		slog.Warn("failed to update last login", "user_id", staff.ID, "error", err.Error())
	}

	return &LoginResult{
		UserID:      staff.ID,
		Role:        staff.Role.String(),
		AccessToken: token,
	}, nil
}
