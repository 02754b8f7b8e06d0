package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"castboard/internal/database"
	"castboard/internal/domain"
	"castboard/internal/middleware"
	"castboard/internal/modules/auth"
	"castboard/internal/modules/catalog"
	"castboard/internal/modules/notification"
	"castboard/internal/modules/roster"
	"castboard/internal/modules/schedule"
	jwtsvc "castboard/internal/pkg/jwt"
	"castboard/internal/pkg/mailer"
	"castboard/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeMailer records sends instead of talking to SMTP. Set fail to make
// the next send report a provider error.
type fakeMailer struct {
	mu   sync.Mutex
	sent []mailer.Message
	fail bool
}

func (f *fakeMailer) Send(_ context.Context, msg mailer.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return fmt.Errorf("provider rejected the message")
	}
	f.sent = append(f.sent, msg)
	return nil
}

type E2ETestSuite struct {
	router *gin.Engine
	db     *gorm.DB
	mail   *fakeMailer
}

type TestResponse struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   *ErrorDetail           `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func setupTestSuite(t *testing.T) *E2ETestSuite {
	db, err := database.Connect(":memory:")
	require.NoError(t, err, "Failed to connect to test database")
	require.NoError(t, database.Migrate(db), "Failed to migrate test database")

	studioRepo := repository.NewStudioRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	actorRepo := repository.NewVoiceActorRepository(db)
	directorRepo := repository.NewDirectorRepository(db)
	availabilityRepo := repository.NewDirectorAvailabilityRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	savedRepo := repository.NewSavedScheduleRepository(db)
	emailLogRepo := repository.NewEmailLogRepository(db)
	staffRepo := repository.NewStaffRepository(db)

	jwtService := jwtsvc.New("test_secret_key_32_characters_min", 24*time.Hour)
	mail := &fakeMailer{}
	hub := schedule.NewHub()

	authHandler := auth.NewHandler(auth.NewService(staffRepo, jwtService))
	catalogHandler := catalog.NewHandler(catalog.NewService(studioRepo, roomRepo))
	rosterHandler := roster.NewHandler(roster.NewService(actorRepo, directorRepo, availabilityRepo))
	scheduleHandler := schedule.NewHandler(schedule.NewService(
		bookingRepo, studioRepo, roomRepo, actorRepo, directorRepo, savedRepo, hub,
	), hub)
	notificationHandler := notification.NewHandler(notification.NewService(
		mail, bookingRepo, actorRepo, directorRepo, roomRepo, studioRepo, emailLogRepo,
	))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())

	v1 := r.Group("/api/v1")
	authHandler.RegisterRoutes(v1)

	protected := v1.Group("/")
	protected.Use(middleware.Authenticate(jwtService))
	{
		catalogHandler.RegisterRoutes(protected)
		rosterHandler.RegisterRoutes(protected)
		scheduleHandler.RegisterRoutes(protected)
		notificationHandler.RegisterRoutes(protected)
	}

	hash, err := auth.HashPassword("coordinator123")
	require.NoError(t, err)
	require.NoError(t, db.Create(&domain.Staff{
		Email:        "coordinator@castboard.io",
		Name:         "Session Coordinator",
		PasswordHash: hash,
	}).Error)

	return &E2ETestSuite{router: r, db: db, mail: mail}
}

func (s *E2ETestSuite) makeRequest(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var bodyBytes []byte
	if body != nil {
		var err error
		bodyBytes, err = json.Marshal(body)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewBuffer(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func parseResponse(t *testing.T, w *httptest.ResponseRecorder) *TestResponse {
	var resp TestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "body: %s", w.Body.String())
	return &resp
}

func (s *E2ETestSuite) login(t *testing.T) string {
	w := s.makeRequest(t, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    "coordinator@castboard.io",
		"password": "coordinator123",
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := parseResponse(t, w)
	token, _ := resp.Data["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func entityID(t *testing.T, resp *TestResponse, key string) int64 {
	entity, ok := resp.Data[key].(map[string]interface{})
	require.True(t, ok, "missing %q in %v", key, resp.Data)
	id, ok := entity["id"].(float64)
	require.True(t, ok)
	return int64(id)
}

func TestAuthRequired(t *testing.T) {
	s := setupTestSuite(t)
	w := s.makeRequest(t, http.MethodGet, "/api/v1/studios", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSchedulingFlow(t *testing.T) {
	s := setupTestSuite(t)
	token := s.login(t)
	date := "2026-03-20"

	// Catalog
	w := s.makeRequest(t, http.MethodPost, "/api/v1/studios", map[string]interface{}{
		"name":    "Northside Recording",
		"address": "1244 Clark Dr",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	studioID := entityID(t, parseResponse(t, w), "studio")

	roomIDs := make([]int64, 0, 2)
	for _, name := range []string{"Booth A", "Booth B"} {
		w = s.makeRequest(t, http.MethodPost, fmt.Sprintf("/api/v1/studios/%d/rooms", studioID), map[string]interface{}{
			"name": name,
		}, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		roomIDs = append(roomIDs, entityID(t, parseResponse(t, w), "room"))
	}

	// Roster
	actorIDs := make([]int64, 0, 3)
	for _, actor := range []map[string]string{
		{"name": "Ana Reyes", "email": "ana@cast.example"},
		{"name": "Ben Okafor", "email": "ben@cast.example"},
		{"name": "Carla Duan", "email": "carla@cast.example"},
	} {
		w = s.makeRequest(t, http.MethodPost, "/api/v1/voice-actors", actor, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		actorIDs = append(actorIDs, entityID(t, parseResponse(t, w), "voice_actor"))
	}

	// Duplicate actor email is rejected
	w = s.makeRequest(t, http.MethodPost, "/api/v1/voice-actors", map[string]string{
		"name": "Ana Again", "email": "ana@cast.example",
	}, token)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = s.makeRequest(t, http.MethodPost, "/api/v1/directors", map[string]interface{}{
		"name":  "Dana Ives",
		"email": "dana@castboard.io",
		"phone": "604-555-0199",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	directorID := entityID(t, parseResponse(t, w), "director")

	// AM booking in Booth A
	w = s.makeRequest(t, http.MethodPost, "/api/v1/bookings", map[string]interface{}{
		"room_id":          roomIDs[0],
		"date":             date,
		"slot_type":        "am",
		"voice_actor_id":   actorIDs[0],
		"voice_actor_id_2": actorIDs[1],
		"director_id":      directorID,
	}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	bookingID := entityID(t, parseResponse(t, w), "booking")

	// Same actor, same AM slot, other room: rejected
	w = s.makeRequest(t, http.MethodPost, "/api/v1/bookings", map[string]interface{}{
		"room_id":          roomIDs[1],
		"date":             date,
		"slot_type":        "am",
		"voice_actor_id":   actorIDs[0],
		"voice_actor_id_2": actorIDs[2],
		"director_id":      directorID,
	}, token)
	require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	resp := parseResponse(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "BOOKING_CONFLICT", resp.Error.Code)

	// The PM slot is still free for the same actor
	w = s.makeRequest(t, http.MethodPost, "/api/v1/bookings", map[string]interface{}{
		"room_id":          roomIDs[1],
		"date":             date,
		"slot_type":        "pm",
		"voice_actor_id":   actorIDs[0],
		"voice_actor_id_2": actorIDs[2],
		"director_id":      directorID,
	}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Self-pairing is rejected before any write
	w = s.makeRequest(t, http.MethodPost, "/api/v1/bookings", map[string]interface{}{
		"room_id":          roomIDs[0],
		"date":             date,
		"slot_type":        "pm",
		"voice_actor_id":   actorIDs[1],
		"voice_actor_id_2": actorIDs[1],
		"director_id":      directorID,
	}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Day view has both bookings, date history has the date
	w = s.makeRequest(t, http.MethodGet, "/api/v1/schedule?date="+date, nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	resp = parseResponse(t, w)
	bookings, _ := resp.Data["bookings"].([]interface{})
	assert.Len(t, bookings, 2)

	w = s.makeRequest(t, http.MethodGet, "/api/v1/schedule/dates", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	resp = parseResponse(t, w)
	dates, _ := resp.Data["dates"].([]interface{})
	require.Len(t, dates, 1)
	assert.Equal(t, date, dates[0])

	// Notification: both shifts are complete and carry drafts
	w = s.makeRequest(t, http.MethodGet, "/api/v1/notifications/shifts?date="+date, nil, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp = parseResponse(t, w)
	shifts, _ := resp.Data["shifts"].([]interface{})
	require.Len(t, shifts, 2)

	shift := shifts[0].(map[string]interface{})
	draft := shift["draft"].(map[string]interface{})
	assert.Equal(t, "dana@castboard.io", draft["to"])

	// Provider failure: 500, flag stays down, failed row in the log
	s.mail.fail = true
	w = s.makeRequest(t, http.MethodPost, "/api/v1/notifications/shift-email", map[string]interface{}{
		"to":            draft["to"],
		"bcc":           draft["bcc"],
		"subject":       draft["subject"],
		"text":          draft["text"],
		"voiceActorIds": draft["voiceActorIds"],
		"bookingId":     bookingID,
		"slotType":      "am",
	}, token)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var failedLogs int64
	s.db.Model(&domain.EmailLog{}).Where("success = ?", false).Count(&failedLogs)
	assert.Equal(t, int64(1), failedLogs)

	var stored domain.Booking
	require.NoError(t, s.db.First(&stored, bookingID).Error)
	assert.False(t, stored.AMEmailsSent)

	// Successful dispatch flips the flag and logs both BCC recipients
	s.mail.fail = false
	w = s.makeRequest(t, http.MethodPost, "/api/v1/notifications/shift-email", map[string]interface{}{
		"to":            draft["to"],
		"bcc":           draft["bcc"],
		"subject":       draft["subject"],
		"text":          draft["text"],
		"voiceActorIds": draft["voiceActorIds"],
		"bookingId":     bookingID,
		"slotType":      "am",
	}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	require.Len(t, s.mail.sent, 1)
	assert.Len(t, s.mail.sent[0].Bcc, 2)

	var successLogs int64
	s.db.Model(&domain.EmailLog{}).Where("success = ?", true).Count(&successLogs)
	assert.Equal(t, int64(2), successLogs)

	require.NoError(t, s.db.First(&stored, bookingID).Error)
	assert.True(t, stored.AMEmailsSent)

	// Saved schedules point at the date, bookings re-derived on read
	w = s.makeRequest(t, http.MethodPost, "/api/v1/schedules", map[string]string{
		"name": "Kickoff day",
		"date": date,
	}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	savedID := entityID(t, parseResponse(t, w), "schedule")

	w = s.makeRequest(t, http.MethodGet, fmt.Sprintf("/api/v1/schedules/%d", savedID), nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	resp = parseResponse(t, w)
	savedBookings, _ := resp.Data["bookings"].([]interface{})
	assert.Len(t, savedBookings, 2)

	// Deleting a booking shrinks the derived set
	w = s.makeRequest(t, http.MethodDelete, fmt.Sprintf("/api/v1/bookings/%d", bookingID), nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = s.makeRequest(t, http.MethodGet, fmt.Sprintf("/api/v1/schedules/%d", savedID), nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	resp = parseResponse(t, w)
	savedBookings, _ = resp.Data["bookings"].([]interface{})
	assert.Len(t, savedBookings, 1)
}

func TestDirectorAvailability(t *testing.T) {
	s := setupTestSuite(t)
	token := s.login(t)

	w := s.makeRequest(t, http.MethodPost, "/api/v1/directors", map[string]string{
		"name": "Dana Ives",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)
	directorID := entityID(t, parseResponse(t, w), "director")

	// Upsert: the second save for the same weekday replaces the first
	for _, start := range []string{"09:00", "10:00"} {
		w = s.makeRequest(t, http.MethodPut, fmt.Sprintf("/api/v1/directors/%d/availability", directorID), map[string]interface{}{
			"day_of_week":   2,
			"am_start_time": start,
			"am_end_time":   "17:30",
		}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}

	w = s.makeRequest(t, http.MethodGet, fmt.Sprintf("/api/v1/directors/%d/availability", directorID), nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	resp := parseResponse(t, w)
	rows, _ := resp.Data["availability"].([]interface{})
	require.Len(t, rows, 1)
	row := rows[0].(map[string]interface{})
	// The stored value is UTC; reads convert back to the local time sent.
	assert.Equal(t, "10:00", row["am_start_time"])
}
