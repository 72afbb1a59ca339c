package ws

import (
	"log"
	"net/http"
	"sync"

	"github.com/huozturk-art/dr.burgerweb-sub000/entity"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// KitchenHub fans order events out to every open kitchen board. One event
// per order, so boards can notify per order id instead of guessing from
// count deltas; the 15s reconciliation poll stays as the fallback.
type KitchenHub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan OrderEvent
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex
}

type OrderEvent struct {
	Type  string        `json:"type"` // "order_created" | "status_changed"
	Order *entity.Order `json:"order"`
}

func NewKitchenHub() *KitchenHub {
	return &KitchenHub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan OrderEvent, 16),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

func (h *KitchenHub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteJSON(ev); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// OrderCreated / StatusChanged satisfy services.Notifier.
func (h *KitchenHub) OrderCreated(o *entity.Order) {
	h.broadcast <- OrderEvent{Type: "order_created", Order: o}
}

func (h *KitchenHub) StatusChanged(o *entity.Order) {
	h.broadcast <- OrderEvent{Type: "status_changed", Order: o}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/kitchen
func (h *KitchenHub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	h.register <- conn
	go h.listen(conn)
}

// The board never sends application messages; reading only detects the
// close so the client gets unregistered.
func (h *KitchenHub) listen(conn *websocket.Conn) {
	defer func() { h.unregister <- conn }()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
