//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"venue-booking-api/internal/domain/user"
	"venue-booking-api/internal/infra"
	"venue-booking-api/internal/pkg/jwt"
	"venue-booking-api/internal/pkg/password"
	"venue-booking-api/internal/usecase/commands"
	"venue-booking-api/tests/common/builder"
	repositorymock "venue-booking-api/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthCommandsTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockUserRepo *repositorymock.MockUserRepository
	jwtService   *jwt.Service
	commands     commands.AuthCommands
}

func (s *AuthCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUserRepo = repositorymock.NewMockUserRepository(s.mockCtrl)
	s.jwtService = jwt.NewService("test-secret", time.Hour)
	s.commands = commands.NewAuthCommands(s.mockUserRepo, s.jwtService, nil)
}

func (s *AuthCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthCommandsSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandsTestSuite))
}

func (s *AuthCommandsTestSuite) staffUser(plaintext string) *user.User {
	hash, err := password.Hash(plaintext)
	s.Require().NoError(err)

	return &user.User{
		ID:           uuid.New(),
		Email:        "staff@example.com",
		PasswordHash: hash,
		Role:         user.RoleAdmin,
		IsActive:     true,
	}
}

func (s *AuthCommandsTestSuite) TestLogin() {
	req := builder.NewAuthBuilder().BuildDTO()

	s.Run("success returns a validating token", func() {
		staff := s.staffUser(req.Password)

		s.mockUserRepo.EXPECT().
			FindActiveByEmail(gomock.Any(), gomock.Any(), req.Email).
			Return(staff, nil)
		s.mockUserRepo.EXPECT().
			UpdateLastLogin(gomock.Any(), gomock.Any(), staff.ID).
			Return(nil)

		result, err := s.commands.Login(context.Background(), req)

		s.Require().NoError(err)
		s.Equal(staff.ID, result.UserID)
		s.Equal("admin", result.Role)

		claims, err := s.jwtService.ValidateToken(result.AccessToken)
		s.Require().NoError(err)
		s.Equal(staff.ID, claims.UserID)
		s.Equal("admin", claims.Role)
	})

	s.Run("unknown email maps to invalid credentials", func() {
		s.mockUserRepo.EXPECT().
			FindActiveByEmail(gomock.Any(), gomock.Any(), req.Email).
			Return(nil, infra.NewRepoErr(infra.KindNotFound, "user not found"))

		result, err := s.commands.Login(context.Background(), req)

		s.Nil(result)
		s.ErrorIs(err, commands.ErrInvalidCredentials)
	})

	s.Run("wrong password maps to invalid credentials", func() {
		staff := s.staffUser("a-different-password")

		s.mockUserRepo.EXPECT().
			FindActiveByEmail(gomock.Any(), gomock.Any(), req.Email).
			Return(staff, nil)

		result, err := s.commands.Login(context.Background(), req)

		s.Nil(result)
		s.ErrorIs(err, commands.ErrInvalidCredentials)
	})

	s.Run("last login bookkeeping failure does not fail the login", func() {
		staff := s.staffUser(req.Password)

		s.mockUserRepo.EXPECT().
			FindActiveByEmail(gomock.Any(), gomock.Any(), req.Email).
			Return(staff, nil)
		s.mockUserRepo.EXPECT().
			UpdateLastLogin(gomock.Any(), gomock.Any(), staff.ID).
			Return(infra.NewRepoErr(infra.KindDBFailure, "boom"))

		result, err := s.commands.Login(context.Background(), req)

		s.Require().NoError(err)
		s.NotEmpty(result.AccessToken)
	})

	s.Run("lookup failure maps to database error", func() {
		s.mockUserRepo.EXPECT().
			FindActiveByEmail(gomock.Any(), gomock.Any(), req.Email).
			Return(nil, infra.NewRepoErr(infra.KindDBFailure, "boom"))

		result, err := s.commands.Login(context.Background(), req)

		s.Nil(result)
		s.ErrorIs(err, commands.ErrDatabaseOperationFailed)
	})
}
