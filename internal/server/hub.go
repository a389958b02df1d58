package server

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/pbvote/cstv/internal/applog"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Hub fans driver trace lines out to every connected websocket client, so a
// dashboard can watch a run unfold live instead of waiting for the final
// JSON response.
type Hub struct {
	clients   map[*websocket.Conn]bool
	broadcast chan string
	mu        sync.Mutex
}

// NewHub builds an idle Hub; call Run in its own goroutine to start
// dispatching.
func NewHub() *Hub {
	return &Hub{
		clients:   make(map[*websocket.Conn]bool),
		broadcast: make(chan string, 256),
	}
}

// Run drains the broadcast channel until it's closed, fanning each line out
// to every connected client.
func (h *Hub) Run() {
	log := applog.For("server")
	for line := range h.broadcast {
		h.mu.Lock()
		for c := range h.clients {
			_ = c.SetWriteDeadline(time.Now().Add(5 * time.Second))
			if err := c.WriteMessage(websocket.TextMessage, []byte(line)); err != nil {
				log.Warn("websocket write failed, dropping client", "error", err)
				c.Close()
				delete(h.clients, c)
			}
		}
		h.mu.Unlock()
	}
}

// Trace implements cstv.TraceFunc: it enqueues line for broadcast without
// blocking the driver loop.
func (h *Hub) Trace(line string) {
	select {
	case h.broadcast <- line:
	default:
		// Slow consumers lose trace lines rather than stall the election.
	}
}

// Subscribe upgrades an incoming request to a websocket connection and
// registers it for broadcast.
func (h *Hub) Subscribe(c *gin.Context) {
	log := applog.For("server")
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warn("websocket upgrade failed", "error", err)
		return
	}

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	go func() {
		defer func() {
			h.mu.Lock()
			delete(h.clients, conn)
			h.mu.Unlock()
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
