//go:build e2e

package admin_test

import (
	"fmt"
	"net/http"
	"testing"

	reqdto "venue-booking-api/internal/handler/dto/request"
	resdto "venue-booking-api/internal/handler/dto/response"
	"venue-booking-api/tests/common/builder"
	"venue-booking-api/tests/common/dbtest"
	"venue-booking-api/tests/common/httptest"
	"venue-booking-api/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL         = "/api/auth/login"
	createHoldURL    = "/api/holds"
	finalizeURL      = "/api/bookings/finalize"
	adminHoldsURL    = "/api/admin/holds"
	adminBookingsURL = "/api/admin/bookings"
)

type adminSuite struct {
	e2e.SharedSuite
	boothID uuid.UUID
	token   string
}

func TestAdminSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(adminSuite))
}

func (s *adminSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	s.boothID = dbtest.CreateTestBooth(s.T(), s.DB, "downtown", "Booth A", 10000)
	dbtest.CreateTestUser(s.T(), s.DB, "staff@example.com", "staff")
	s.token = s.login("staff@example.com", dbtest.TestPassword)
}

func (s *adminSuite) login(email, password string) string {
	t := s.T()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
		reqdto.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, "login failed: %s", w.Body.String())

	var res resdto.LoginResponse
	httptest.DecodeResponseBody(t, w.Body, &res)
	require.NotEmpty(t, res.AccessToken)
	return res.AccessToken
}

func (s *adminSuite) createHold(sessionID, start, end string) resdto.HoldResponse {
	t := s.T()

	b := builder.NewHoldBuilder().With(func(b *builder.HoldBuilder) {
		b.BoothID = s.boothID
		b.SessionID = sessionID
		b.StartTime = start
		b.EndTime = end
	})

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, createHoldURL, b.BuildDTO(), "")
	require.Equal(t, http.StatusCreated, w.Code, "hold creation failed: %s", w.Body.String())

	var res resdto.HoldResponse
	httptest.DecodeResponseBody(t, w.Body, &res)
	return res
}

func (s *adminSuite) TestLogin() {
	s.Run("valid credentials return a token and update last login", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			reqdto.LoginRequest{Email: "staff@example.com", Password: dbtest.TestPassword}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var res resdto.LoginResponse
		httptest.DecodeResponseBody(t, w.Body, &res)
		require.NotEmpty(t, res.AccessToken)
		require.Equal(t, "staff", res.Role)

		var lastLogin any
		err := s.DB.QueryRow(t.Context(),
			"SELECT last_login_at FROM users WHERE email = 'staff@example.com'").Scan(&lastLogin)
		require.NoError(t, err)
		require.NotNil(t, lastLogin, "last_login_at should be set after login")
	})

	s.Run("wrong password is rejected", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			reqdto.LoginRequest{Email: "staff@example.com", Password: "wrongpassword"}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("unknown user is rejected with the same status", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			reqdto.LoginRequest{Email: "nobody@example.com", Password: dbtest.TestPassword}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("deactivated user cannot log in", func() {
		t := s.T()
		_, err := s.DB.Exec(t.Context(),
			"UPDATE users SET is_active = false WHERE email = 'staff@example.com'")
		require.NoError(t, err)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			reqdto.LoginRequest{Email: "staff@example.com", Password: dbtest.TestPassword}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *adminSuite) TestAuthenticationRequired() {
	s.Run("admin endpoints reject missing and invalid tokens", func() {
		t := s.T()

		listURL := fmt.Sprintf("%s?boothId=%s&date=2026-09-15", adminHoldsURL, s.boothID)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, listURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, listURL, nil, "not-a-real-token")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *adminSuite) TestListHolds() {
	s.Run("lists live and expired holds for the booth and date", func() {
		t := s.T()

		live := s.createHold("session-one", "18:00", "20:00")
		stale := s.createHold("session-two", "20:00", "21:00")
		_, err := s.DB.Exec(t.Context(),
			"UPDATE booth_holds SET expires_at = NOW() - INTERVAL '1 minute' WHERE id = $1", stale.ID)
		require.NoError(t, err)

		listURL := fmt.Sprintf("%s?boothId=%s&date=2026-09-15", adminHoldsURL, s.boothID)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, listURL, nil, s.token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var items []resdto.HoldListItemResponse
		httptest.DecodeResponseBody(t, w.Body, &items)
		require.Len(t, items, 2)

		byID := make(map[uuid.UUID]resdto.HoldListItemResponse, len(items))
		for _, item := range items {
			byID[item.ID] = item
		}
		require.False(t, byID[live.ID].Expired)
		require.Equal(t, "session-one", byID[live.ID].SessionID)
		require.True(t, byID[stale.ID].Expired, "stale hold should be reported as expired")
	})

	s.Run("malformed date is rejected", func() {
		t := s.T()
		listURL := fmt.Sprintf("%s?boothId=%s&date=soon", adminHoldsURL, s.boothID)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, listURL, nil, s.token)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func (s *adminSuite) TestForceReleaseHold() {
	s.Run("staff can release a hold they do not own", func() {
		t := s.T()
		held := s.createHold("session-guest", "18:00", "20:00")

		releaseURL := fmt.Sprintf("%s/%s/release", adminHoldsURL, held.ID)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, releaseURL, nil, s.token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var status string
		err := s.DB.QueryRow(t.Context(),
			"SELECT status FROM booth_holds WHERE id = $1", held.ID).Scan(&status)
		require.NoError(t, err)
		require.Equal(t, "released", status)
	})

	s.Run("already-released hold cannot be released again", func() {
		t := s.T()
		held := s.createHold("session-guest", "18:00", "20:00")

		releaseURL := fmt.Sprintf("%s/%s/release", adminHoldsURL, held.ID)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, releaseURL, nil, s.token)
		require.Equal(t, http.StatusOK, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, releaseURL, nil, s.token)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func (s *adminSuite) TestBookings() {
	s.Run("lists and fetches confirmed bookings", func() {
		t := s.T()
		held := s.createHold("session-abc123", "18:00", "20:00")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, finalizeURL,
			builder.NewFinalizeBuilder().With(func(b *builder.FinalizeBuilder) {
				b.HoldID = held.ID
			}).BuildDTO(), "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var finalized resdto.FinalizeBookingResponse
		httptest.DecodeResponseBody(t, w.Body, &finalized)

		listURL := adminBookingsURL + "?venue=downtown&date=2026-09-15"
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, listURL, nil, s.token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var bookings []resdto.BookingResponse
		httptest.DecodeResponseBody(t, w.Body, &bookings)
		require.Len(t, bookings, 1)
		require.Equal(t, finalized.BookingID, bookings[0].ID)
		require.Equal(t, "Jordan Lee", bookings[0].CustomerName)
		require.Equal(t, int64(20000), bookings[0].TotalCents)

		getURL := fmt.Sprintf("%s/%s", adminBookingsURL, finalized.BookingID)
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, getURL, nil, s.token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var single resdto.BookingResponse
		httptest.DecodeResponseBody(t, w.Body, &single)
		require.Equal(t, finalized.BookingID, single.ID)
		require.Equal(t, "confirmed", single.Status)
	})

	s.Run("missing venue query is rejected", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, adminBookingsURL+"?date=2026-09-15", nil, s.token)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	s.Run("unknown booking id returns 404", func() {
		t := s.T()
		getURL := fmt.Sprintf("%s/%s", adminBookingsURL, uuid.New())
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, getURL, nil, s.token)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}
