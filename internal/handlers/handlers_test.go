package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"dinewise/internal/auth"
	"dinewise/internal/hours"
	"dinewise/internal/logging"
	"dinewise/internal/queue"
	"dinewise/internal/reservations"
	"dinewise/internal/restaurants"
	"dinewise/internal/storage/storagetest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tickingClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *tickingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := storagetest.New(t)
	log := logging.Discard()
	hoursSvc := hours.NewService(store.DB, log)
	clock := &tickingClock{now: time.Date(2024, 6, 3, 17, 0, 0, 0, time.UTC)}

	h := New(Services{
		Restaurants:  restaurants.NewDirectory(store.DB, auth.Plain{}, log),
		Hours:        hoursSvc,
		Reservations: reservations.NewLedger(store.DB, hoursSvc, log, reservations.WithLocation(time.UTC)),
		Queue:        queue.NewLedger(store.DB, log, queue.WithLocation(time.UTC), queue.WithClock(clock.Now)),
		Store:        store,
		Location:     time.UTC,
	}, log)
	return NewRouter(h, nil, log)
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, into any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), into), w.Body.String())
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Code string `json:"code"`
	}
	decode(t, w, &body)
	return body.Code
}

// signup registers a restaurant open Mondays 11:00-22:00 and returns its id.
func signup(t *testing.T, r http.Handler, userID string) uint {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/restaurants/signup", gin.H{
		"name":     "Trattoria " + userID,
		"userid":   userID,
		"password": "p",
		"cuisine":  "Italian",
		"opening_hours": []gin.H{
			{"day_of_week": 1, "open_time": "11:00", "close_time": "22:00"},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var body struct {
		RestaurantID uint `json:"restaurant_id"`
	}
	decode(t, w, &body)
	require.NotZero(t, body.RestaurantID)
	return body.RestaurantID
}

func TestRestaurantFlow(t *testing.T) {
	r := setupRouter(t)
	id := signup(t, r, "u1")

	w := doJSON(t, r, http.MethodPost, "/restaurants/signup", gin.H{"name": "Other", "userid": "u1", "password": "q"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "DUPLICATE_USER_ID", errorCode(t, w))

	w = doJSON(t, r, http.MethodPost, "/restaurants/signup", gin.H{"userid": "u2"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", errorCode(t, w))

	w = doJSON(t, r, http.MethodPost, "/restaurants/login", gin.H{"userid": "u1", "password": "p"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, fmt.Sprintf(`{"restaurant_id":%d}`, id), w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/restaurants/login", gin.H{"userid": "u1", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", errorCode(t, w))

	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/restaurants/%d", id), gin.H{"location": "1 New St"})
	require.Equal(t, http.StatusOK, w.Code)
	var updated map[string]any
	decode(t, w, &updated)
	assert.Equal(t, "1 New St", updated["location"])
	assert.Equal(t, "Italian", updated["cuisine"])
	assert.NotContains(t, updated, "password")

	w = doJSON(t, r, http.MethodGet, "/restaurants", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Restaurants []map[string]any `json:"restaurants"`
	}
	decode(t, w, &list)
	assert.Len(t, list.Restaurants, 1)

	w = doJSON(t, r, http.MethodGet, "/restaurants/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "RESTAURANT_NOT_FOUND", errorCode(t, w))

	w = doJSON(t, r, http.MethodGet, "/restaurants/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOpeningHoursEndpoints(t *testing.T) {
	r := setupRouter(t)
	id := signup(t, r, "u1")
	path := fmt.Sprintf("/restaurants/%d/opening-hours", id)

	w := doJSON(t, r, http.MethodPut, path, gin.H{"opening_hours": []gin.H{
		{"day_of_week": 0, "open_time": "00:00", "close_time": "00:00"},
		{"day_of_week": 5, "open_time": "17:00", "close_time": "23:30"},
	}})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		OpeningHours []hours.Rule `json:"opening_hours"`
	}
	decode(t, w, &body)
	assert.Equal(t, []hours.Rule{
		{DayOfWeek: 0, OpenTime: "00:00", CloseTime: "00:00"},
		{DayOfWeek: 5, OpenTime: "17:00", CloseTime: "23:30"},
	}, body.OpeningHours)

	w = doJSON(t, r, http.MethodPut, path, gin.H{"opening_hours": []gin.H{
		{"day_of_week": 2, "open_time": "25:00", "close_time": "23:00"},
	}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	for _, body := range []gin.H{{}, {"openinghours": []gin.H{}}, {"opening_hours": []gin.H{}}} {
		w = doJSON(t, r, http.MethodPut, path, body)
		assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		assert.Equal(t, "VALIDATION_ERROR", errorCode(t, w))
	}
	w = doJSON(t, r, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &body)
	assert.Len(t, body.OpeningHours, 2)

	w = doJSON(t, r, http.MethodGet, "/restaurants/999/opening-hours", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReservationFlow(t *testing.T) {
	r := setupRouter(t)
	id := signup(t, r, "u1")

	book := func(at string, n int) *httptest.ResponseRecorder {
		return doJSON(t, r, http.MethodPost, "/reservations", gin.H{
			"restaurant_id":    id,
			"reservation_time": at,
			"customer_name":    fmt.Sprintf("Guest %d", n),
			"phone_number":     fmt.Sprintf("555-000%d", n),
		})
	}

	var first struct {
		ReservationID uint   `json:"reservation_id"`
		Timeslot      string `json:"timeslot"`
	}
	w := book("2024-06-03T11:15:00Z", 0)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	decode(t, w, &first)
	assert.Equal(t, "2024-06-03T11:00:00Z", first.Timeslot)

	for i := 1; i < reservations.Capacity; i++ {
		require.Equal(t, http.StatusCreated, book("2024-06-03 11:00", i).Code)
	}

	w = book("2024-06-03T11:29:00Z", 6)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "SLOT_FULL", errorCode(t, w))

	w = book("2024-06-03T22:00:00Z", 7)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "OUTSIDE_HOURS", errorCode(t, w))

	w = book("2024-06-04T12:00:00Z", 7)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "NO_SCHEDULE_CONFIGURED", errorCode(t, w))

	w = book("tomorrow at noon", 7)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", errorCode(t, w))

	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/reservations/%d", first.ReservationID), gin.H{
		"restaurant_id":    id,
		"reservation_time": "2024-06-03T13:40:00Z",
		"customer_name":    "Guest 0",
		"phone_number":     "555-0000",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"success":true,"timeslot":"2024-06-03T13:30:00Z"}`, w.Body.String())

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/reservations?restaurant_id=%d", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Reservations []struct {
			ID              uint   `json:"id"`
			ReservationTime string `json:"reservation_time"`
		} `json:"reservations"`
	}
	decode(t, w, &list)
	require.Len(t, list.Reservations, reservations.Capacity)
	last := list.Reservations[len(list.Reservations)-1]
	assert.Equal(t, first.ReservationID, last.ID)
	assert.Equal(t, "2024-06-03T13:30:00Z", last.ReservationTime)

	w = doJSON(t, r, http.MethodGet, "/reservations", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	cancelPath := fmt.Sprintf("/reservations/%d", first.ReservationID)
	w = doJSON(t, r, http.MethodDelete, cancelPath, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	w = doJSON(t, r, http.MethodDelete, cancelPath, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "RESERVATION_NOT_FOUND", errorCode(t, w))
}

func TestQueueFlow(t *testing.T) {
	r := setupRouter(t)
	id := signup(t, r, "u1")

	join := func(name, phone string) (uint, int) {
		w := doJSON(t, r, http.MethodPost, "/queue", gin.H{
			"restaurant_id": id,
			"customer_name": name,
			"phone_number":  phone,
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var body struct {
			QueueID  uint `json:"queue_id"`
			Position int  `json:"position"`
		}
		decode(t, w, &body)
		return body.QueueID, body.Position
	}

	annID, annPos := join("Ann", "111")
	_, bobPos := join("Bob", "222")
	_, cidPos := join("Cid", "333")
	assert.Equal(t, []int{1, 2, 3}, []int{annPos, bobPos, cidPos})

	statusPath := fmt.Sprintf("/queue/status?customer_name=bob&phone_number=222&restaurant_id=%d", id)
	w := doJSON(t, r, http.MethodGet, statusPath, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var status struct {
		CustomerName string `json:"customer_name"`
		Position     int    `json:"position"`
	}
	decode(t, w, &status)
	assert.Equal(t, "Bob", status.CustomerName)
	assert.Equal(t, 2, status.Position)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/queue/%d", annID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, statusPath, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &status)
	assert.Equal(t, 1, status.Position)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/queue?restaurant_id=%d", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Queue []struct {
			CustomerName string `json:"customer_name"`
			Position     int    `json:"position"`
		} `json:"queue"`
	}
	decode(t, w, &list)
	require.Len(t, list.Queue, 2)
	assert.Equal(t, "Bob", list.Queue[0].CustomerName)
	assert.Equal(t, 2, list.Queue[1].Position)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/queue/status?customer_name=Zed&phone_number=0&restaurant_id=%d", id), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/queue/status?customer_name=Bob", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/queue/%d", annID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "QUEUE_ENTRY_NOT_FOUND", errorCode(t, w))

	w = doJSON(t, r, http.MethodPost, "/queue", gin.H{"restaurant_id": id})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthAndRequestID(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, "req-42", rec.Header().Get(RequestIDHeader))
}
