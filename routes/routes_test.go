package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"hotel-frontdesk/models"
	"hotel-frontdesk/services"
	"hotel-frontdesk/store"
)

type envelope struct {
	Success   bool            `json:"success"`
	Data      json.RawMessage `json:"data"`
	Error     string          `json:"error"`
	Retryable bool            `json:"retryable"`
}

type testServer struct {
	t      *testing.T
	router *gin.Engine
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	st := store.NewMemoryStore()
	desk := services.NewFrontDeskService(st, services.FrontDeskOptions{})
	_, err := desk.Bootstrap(ctx, services.SeedOptions{AdminPassword: "adminpw", VATRate: services.DefaultVATRate})
	require.NoError(t, err)

	state, v, err := st.Load(ctx)
	require.NoError(t, err)
	hash, err := bcrypt.GenerateFromPassword([]byte("staffpw"), bcrypt.MinCost)
	require.NoError(t, err)
	state.Users = append(state.Users, models.User{
		ID: "staff-1", Username: "staff", PasswordHash: string(hash), Role: models.RoleStaff, IsActive: true,
	})
	_, err = st.Save(ctx, state, v)
	require.NoError(t, err)

	router := SetupRouter(Options{
		Desk: desk,
		Auth: services.NewAuthService(desk, "test-secret", time.Hour),
	})
	return &testServer{t: t, router: router}
}

func (s *testServer) do(method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	s.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func (s *testServer) login(username, password string) string {
	s.t.Helper()
	w, env := s.do(http.MethodPost, "/api/auth/login", "", gin.H{"username": username, "password": password})
	require.Equal(s.t, http.StatusOK, w.Code, w.Body.String())
	var result services.LoginResult
	require.NoError(s.t, json.Unmarshal(env.Data, &result))
	return result.Token
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	w, _ := s.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthRequired(t *testing.T) {
	s := newTestServer(t)

	w, env := s.do(http.MethodGet, "/api/rooms", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, env.Success)

	w, _ = s.do(http.MethodGet, "/api/rooms", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = s.do(http.MethodPost, "/api/auth/login", "", gin.H{"username": "admin", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCheckInCheckOutFlow(t *testing.T) {
	s := newTestServer(t)
	token := s.login("admin", "adminpw")

	w, env := s.do(http.MethodGet, "/api/rooms/available", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var available []models.Room
	require.NoError(t, json.Unmarshal(env.Data, &available))
	assert.Len(t, available, 30)

	checkin := gin.H{"name": "Maria Santos", "phone": "09170000000", "room": "101", "nights": 2, "adults": 1, "children": 0}
	w, env = s.do(http.MethodPost, "/api/checkin", token, checkin)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var guest models.Guest
	require.NoError(t, json.Unmarshal(env.Data, &guest))
	assert.Equal(t, "101", guest.Room)

	w, env = s.do(http.MethodPost, "/api/checkin", token, checkin)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.NotEmpty(t, env.Error)

	w, _ = s.do(http.MethodPost, "/api/checkin", token,
		gin.H{"name": "Big Group", "phone": "1", "room": "104", "nights": 1, "adults": 3, "children": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env = s.do(http.MethodGet, "/api/checkout/101/preview?extraCharges=500", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var preview services.BillPreview
	require.NoError(t, json.Unmarshal(env.Data, &preview))
	assert.True(t, preview.Bill.Total.Equal(decimal.NewFromInt(6160)), preview.Bill.Total.String())

	w, _ = s.do(http.MethodGet, "/api/checkout/101/preview?extraCharges=abc", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env = s.do(http.MethodPost, "/api/checkout", token, gin.H{"room": "101", "extraCharges": 500})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var result services.CheckoutResult
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.True(t, result.Transaction.Amount.Equal(decimal.NewFromInt(6160)))
	assert.Equal(t, "admin", result.Transaction.User)

	w, _ = s.do(http.MethodPost, "/api/checkout", token, gin.H{"room": "101"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w, env = s.do(http.MethodGet, "/api/transactions/recent?n=1", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var txs []models.Transaction
	require.NoError(t, json.Unmarshal(env.Data, &txs))
	require.Len(t, txs, 1)
	assert.Equal(t, models.TransactionCheckOut, txs[0].Type)

	w, env = s.do(http.MethodGet, "/api/guests/"+guest.ID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var stay models.Guest
	require.NoError(t, json.Unmarshal(env.Data, &stay))
	assert.Equal(t, models.GuestCheckedOut, stay.Status)

	w, _ = s.do(http.MethodGet, "/api/guests/missing", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRoomMaintenanceRoutes(t *testing.T) {
	s := newTestServer(t)
	token := s.login("staff", "staffpw")

	w, env := s.do(http.MethodPost, "/api/rooms/103/out-of-order", token, gin.H{"reason": "Leak", "estimatedDate": "2030-01-05"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var room models.Room
	require.NoError(t, json.Unmarshal(env.Data, &room))
	assert.Equal(t, models.RoomOutOfOrder, room.Status)
	assert.Equal(t, "staff", room.OutOfOrder.MarkedBy)

	w, _ = s.do(http.MethodPost, "/api/rooms/103/out-of-order", token, gin.H{"reason": "Leak"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w, _ = s.do(http.MethodPost, "/api/rooms/999/vacant", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = s.do(http.MethodPost, "/api/rooms/103/vacant", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = s.do(http.MethodPost, "/api/rooms/103/out-of-order", token, gin.H{"reason": " "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReportRoutes(t *testing.T) {
	s := newTestServer(t)
	token := s.login("admin", "adminpw")

	w, _ := s.do(http.MethodGet, "/api/reports?start=2025-01-02&end=2025-01-01", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = s.do(http.MethodGet, "/api/reports?start=yesterday&end=2025-01-01", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env := s.do(http.MethodGet, "/api/reports?start=2025-01-01&end=2025-01-31", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var report services.Report
	require.NoError(t, json.Unmarshal(env.Data, &report))
	assert.Equal(t, 30, report.TotalRooms)

	w, _ = s.do(http.MethodGet, "/api/reports/daily", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, env = s.do(http.MethodGet, "/api/dashboard", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var dash services.Dashboard
	require.NoError(t, json.Unmarshal(env.Data, &dash))
	assert.Equal(t, 30, dash.VacantRooms)
}

func TestSettingsRequireAdmin(t *testing.T) {
	s := newTestServer(t)
	staff := s.login("staff", "staffpw")
	admin := s.login("admin", "adminpw")
	update := gin.H{"hotelName": "Harbor View", "vatRate": "0.10"}

	w, _ := s.do(http.MethodPut, "/api/settings/hotel", staff, update)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, env := s.do(http.MethodPut, "/api/settings/hotel", admin, update)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var settings models.HotelSetting
	require.NoError(t, json.Unmarshal(env.Data, &settings))
	assert.Equal(t, "Harbor View", settings.HotelName)

	w, env = s.do(http.MethodGet, "/api/settings/hotel", staff, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &settings))
	assert.True(t, settings.VATRate.Equal(decimal.RequireFromString("0.10")))
}

func TestGuestSearchRoute(t *testing.T) {
	s := newTestServer(t)
	token := s.login("staff", "staffpw")

	for _, checkin := range []gin.H{
		{"name": "Maria Santos", "phone": "09170000000", "room": "101", "nights": 1, "adults": 1, "children": 0},
		{"name": "Pedro Reyes", "phone": "09181111111", "room": "102", "nights": 1, "adults": 1, "children": 0},
	} {
		w, _ := s.do(http.MethodPost, "/api/checkin", token, checkin)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	search := func(path string) []models.Guest {
		w, env := s.do(http.MethodGet, path, token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var guests []models.Guest
		require.NoError(t, json.Unmarshal(env.Data, &guests))
		return guests
	}

	assert.Len(t, search("/api/guests"), 2)

	guests := search("/api/guests?q=maria")
	require.Len(t, guests, 1)
	assert.Equal(t, "101", guests[0].Room)

	guests = search("/api/guests?q=102")
	require.Len(t, guests, 1)
	assert.Equal(t, "Pedro Reyes", guests[0].Name)

	assert.Empty(t, search("/api/guests?q=nobody"))
}
