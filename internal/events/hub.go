package events

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	sendBuffer = 64
)

// allResources is the subscription key of clients that want every event
const allResources = ""

var ErrHubBacklog = errors.New("event hub backlog full")

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The console is served from another origin; CORS is open on the API too.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Client represents a WebSocket client connection
type Client struct {
	hub      *Hub
	conn     *websocket.Conn
	send     chan []byte
	resource string
}

// Hub manages WebSocket connections per resource
type Hub struct {
	clients    map[string]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan Event
	done       chan struct{}
	mu         sync.RWMutex
}

// NewHub creates a new Hub. Call Run to start delivering events.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan Event, 256),
		done:       make(chan struct{}),
	}
}

// Run starts the hub's main loop and returns when ctx is cancelled, closing
// every client.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for _, clients := range h.clients {
				for client := range clients {
					close(client.send)
				}
			}
			h.clients = make(map[string]map[*Client]bool)
			h.mu.Unlock()
			return

		case client := <-h.register:
			h.mu.Lock()
			if h.clients[client.resource] == nil {
				h.clients[client.resource] = make(map[*Client]bool)
			}
			h.clients[client.resource][client] = true
			log.Printf("WebSocket: Client subscribed to %q (total: %d)", client.resource, len(h.clients[client.resource]))
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			h.remove(client)
			h.mu.Unlock()

		case event := <-h.broadcast:
			data, err := json.Marshal(event)
			if err != nil {
				log.Printf("WebSocket: Failed to marshal event: %v", err)
				continue
			}

			h.mu.Lock()
			for _, key := range []string{event.Resource, allResources} {
				for client := range h.clients[key] {
					select {
					case client.send <- data:
					default:
						// slow reader; drop it rather than stall the hub
						h.remove(client)
					}
				}
			}
			h.mu.Unlock()
		}
	}
}

// remove drops a client and closes its send channel. Caller holds mu.
func (h *Hub) remove(client *Client) {
	clients, ok := h.clients[client.resource]
	if !ok {
		return
	}
	if _, ok := clients[client]; !ok {
		return
	}
	delete(clients, client)
	close(client.send)
	log.Printf("WebSocket: Client unsubscribed from %q (remaining: %d)", client.resource, len(clients))
	if len(clients) == 0 {
		delete(h.clients, client.resource)
	}
}

// Publish queues an event for delivery without blocking the caller
func (h *Hub) Publish(ctx context.Context, e Event) error {
	select {
	case h.broadcast <- e:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return ErrHubBacklog
	}
}

// ClientCount returns the number of clients subscribed to a resource. The
// empty resource counts clients watching everything.
func (h *Hub) ClientCount(resource string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[resource])
}

// ServeWS upgrades the request and subscribes the connection to the resource
// named by the "resource" query parameter, or to everything when it is absent.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket: Upgrade failed: %v", err)
		return
	}

	client := &Client{
		hub:      h,
		conn:     conn,
		send:     make(chan []byte, sendBuffer),
		resource: r.URL.Query().Get("resource"),
	}

	select {
	case h.register <- client:
	case <-h.done:
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}

// readPump only watches for the peer going away; clients never send data.
func (c *Client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()

	c.conn.SetReadLimit(512)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("WebSocket: Read error: %v", err)
			}
			return
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
