package ws

import (
	"log"
	"net/http"
	"sync"

	"github.com/Krypton102019/dk-deli/services"
	"github.com/Krypton102019/dk-deli/store"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// TrackHub fans order status updates out over WebSocket. One set of
// connections per order id.
type TrackHub struct {
	clients    map[string]map[*websocket.Conn]bool // orderID -> set of clients
	broadcast  chan broadcastUpdate
	register   chan Subscription
	unregister chan Subscription
	mu         sync.Mutex
	store      *store.Store
	tracker    *services.TrackingService
}

// Subscription is one client watching one order.
type Subscription struct {
	Conn    *websocket.Conn
	OrderID string
}

type broadcastUpdate struct {
	OrderID string
	Update  services.StatusUpdate
}

func NewTrackHub(st *store.Store) *TrackHub {
	return &TrackHub{
		clients:    make(map[string]map[*websocket.Conn]bool),
		broadcast:  make(chan broadcastUpdate),
		register:   make(chan Subscription),
		unregister: make(chan Subscription),
		store:      st,
	}
}

// SetTracker wires the tracking service in after construction; hub and
// tracker reference each other, so one side has to be set late.
func (h *TrackHub) SetTracker(t *services.TrackingService) {
	h.tracker = t
}

// Publish implements services.StatusPublisher.
func (h *TrackHub) Publish(orderID string, update services.StatusUpdate) {
	h.broadcast <- broadcastUpdate{OrderID: orderID, Update: update}
}

// Run loops over register/unregister/broadcast until the process exits.
func (h *TrackHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.OrderID] == nil {
				h.clients[sub.OrderID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.OrderID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.OrderID][sub.Conn]; ok {
				delete(h.clients[sub.OrderID], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[msg.OrderID] {
				if err := conn.WriteJSON(msg.Update); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[msg.OrderID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/orders/:id
func (h *TrackHub) HandleWebSocket(c *gin.Context) {
	orderID := c.Param("id")

	order, ok := h.store.OrderByID(orderID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "order not found"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := Subscription{Conn: conn, OrderID: order.ID}
	h.register <- sub

	// current status immediately, then the stream
	conn.WriteJSON(services.StatusUpdate{
		OrderID:           order.ID,
		Status:            order.Status,
		EstimatedDelivery: order.EstimatedDelivery,
		At:                order.CreatedAt,
	})

	if h.tracker != nil {
		h.tracker.Watch(order.ID)
	}

	go h.listen(sub)
}

// listen drains the connection until the client goes away.
func (h *TrackHub) listen(sub Subscription) {
	defer func() { h.unregister <- sub }()

	for {
		if _, _, err := sub.Conn.ReadMessage(); err != nil {
			break
		}
	}
}
