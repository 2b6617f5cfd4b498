package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"dinewise/internal/logging"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub(logging.Discard())
	go hub.Run(ctx)

	r := gin.New()
	r.GET("/queue/ws", hub.ServeQueue)
	ts := httptest.NewServer(r)
	t.Cleanup(func() {
		ts.Close()
		cancel()
	})
	return hub, ts
}

func dial(t *testing.T, ts *httptest.Server, restaurantID string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/queue/ws?restaurant_id=" + restaurantID
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) Message {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)
	var msg Message
	require.NoError(t, json.Unmarshal(raw, &msg))
	return msg
}

func TestQueueChangedReachesSubscribersOfThatRestaurant(t *testing.T) {
	hub, ts := newServer(t)

	first := dial(t, ts, "1")
	second := dial(t, ts, "2")
	require.Eventually(t, func() bool {
		return hub.Subscribers(1) == 1 && hub.Subscribers(2) == 1
	}, 2*time.Second, 10*time.Millisecond)

	hub.QueueChanged(1, "joined", 7)
	hub.QueueChanged(2, "left", 9)

	msg := readMessage(t, first)
	assert.Equal(t, Message{EventType: "joined", RestaurantID: 1, QueueID: 7}, msg)

	msg = readMessage(t, second)
	assert.Equal(t, Message{EventType: "left", RestaurantID: 2, QueueID: 9}, msg)
}

func TestDisconnectUnregisters(t *testing.T) {
	hub, ts := newServer(t)

	conn := dial(t, ts, "3")
	require.Eventually(t, func() bool { return hub.Subscribers(3) == 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))
	conn.Close()
	assert.Eventually(t, func() bool { return hub.Subscribers(3) == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestServeQueueRejectsBadRestaurantID(t *testing.T) {
	_, ts := newServer(t)

	for _, id := range []string{"", "0", "abc"} {
		res, err := http.Get(ts.URL + "/queue/ws?restaurant_id=" + id)
		require.NoError(t, err)
		res.Body.Close()
		assert.Equal(t, http.StatusBadRequest, res.StatusCode, "restaurant_id=%q", id)
	}
}

func TestQueueChangedWithoutSubscribersDoesNotBlock(t *testing.T) {
	hub := NewHub(logging.Discard())
	// The hub is not running; publishing must still return.
	for i := 0; i < sendBuffer+10; i++ {
		hub.QueueChanged(1, "joined", uint(i))
	}
}
