// Package ws pushes walk-in queue changes to websocket subscribers.
package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"dinewise/internal/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 54 * time.Second
	sendBuffer = 256
)

// Message is sent to every subscriber of a restaurant when its queue changes.
// Subscribers re-read GET /queue to get the new positions.
type Message struct {
	EventType    string `json:"event_type" example:"joined"`
	RestaurantID uint   `json:"restaurant_id" example:"1"`
	QueueID      uint   `json:"queue_id,omitempty" example:"7"`
}

type broadcast struct {
	restaurantID uint
	payload      []byte
}

// Hub keeps client connections grouped by restaurant.
type Hub struct {
	clients    map[uint]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan broadcast
	done       chan struct{}
	mu         sync.RWMutex
	log        *slog.Logger
}

func NewHub(log *slog.Logger) *Hub {
	return &Hub{
		clients:    make(map[uint]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan broadcast, sendBuffer),
		done:       make(chan struct{}),
		log:        log,
	}
}

// Run serves the hub channels until ctx is done, then closes every client.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for id, clients := range h.clients {
				for client := range clients {
					close(client.Send)
				}
				delete(h.clients, id)
			}
			h.mu.Unlock()
			return
		case client := <-h.register:
			h.mu.Lock()
			if h.clients[client.RestaurantID] == nil {
				h.clients[client.RestaurantID] = make(map[*Client]bool)
			}
			h.clients[client.RestaurantID][client] = true
			h.mu.Unlock()
		case client := <-h.unregister:
			h.mu.Lock()
			h.remove(client)
			h.mu.Unlock()
		case msg := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients[msg.restaurantID] {
				select {
				case client.Send <- msg.payload:
				default:
					h.remove(client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// remove drops client and closes its send channel. Callers hold h.mu.
func (h *Hub) remove(client *Client) {
	clients, ok := h.clients[client.RestaurantID]
	if !ok {
		return
	}
	if _, ok := clients[client]; !ok {
		return
	}
	delete(clients, client)
	close(client.Send)
	if len(clients) == 0 {
		delete(h.clients, client.RestaurantID)
	}
}

// Subscribers returns the number of open connections for a restaurant.
func (h *Hub) Subscribers(restaurantID uint) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[restaurantID])
}

// QueueChanged publishes an event without blocking the caller.
// Events are dropped when the hub falls behind.
func (h *Hub) QueueChanged(restaurantID uint, event string, entryID uint) {
	payload, err := json.Marshal(Message{EventType: event, RestaurantID: restaurantID, QueueID: entryID})
	if err != nil {
		h.log.Error("encode queue event", slog.Any("error", err))
		return
	}
	select {
	case h.broadcast <- broadcast{restaurantID: restaurantID, payload: payload}:
	default:
		h.log.Warn("queue event dropped", slog.Uint64("restaurant_id", uint64(restaurantID)), slog.String("event", event))
	}
}

// Client is one websocket connection.
type Client struct {
	Hub          *Hub
	Conn         *websocket.Conn
	Send         chan []byte
	RestaurantID uint
}

// readPump only watches for the connection going away; clients send nothing meaningful.
func (c *Client) readPump() {
	defer func() {
		select {
		case c.Hub.unregister <- c:
		case <-c.Hub.done:
		}
		c.Conn.Close()
	}()
	c.Conn.SetReadLimit(512)
	_ = c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		return c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.Hub.log.Debug("websocket closed", slog.Any("error", err))
			}
			return
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.Send:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// ServeQueue upgrades the request and subscribes it to one restaurant's queue
// @Summary		Live queue feed
// @Description	Websocket that receives a message every time the restaurant's walk-in queue changes
// @Tags			queue
// @Param			restaurant_id	query	int	true	"Restaurant ID"
// @Success		101	{object}	ws.Message	"Switching protocols, then one message per change"
// @Failure		400	{object}	response.ErrorResponse	"Invalid restaurant id (VALIDATION_ERROR)"
// @Router			/queue/ws [get]
func (h *Hub) ServeQueue(c *gin.Context) {
	id, err := strconv.ParseUint(c.Query("restaurant_id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "restaurant_id: must be a positive integer",
		})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", slog.Any("error", err))
		return
	}
	client := &Client{
		Hub:          h,
		Conn:         conn,
		Send:         make(chan []byte, sendBuffer),
		RestaurantID: uint(id),
	}
	select {
	case h.register <- client:
	case <-h.done:
		conn.Close()
		return
	}

	go client.writePump()
	client.readPump()
}
