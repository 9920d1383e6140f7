// Package notify fans advisory store-change events out to connected
// clients over websockets. Events are hints to refresh, not a source of
// truth; a client that misses one just reads slightly stale state until
// its next load.
package notify

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"savora/search"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

type Event struct {
	Topic string `json:"topic"`
	Count int    `json:"count,omitempty"`
	At    string `json:"at"`
}

type Client struct {
	Conn *websocket.Conn
	Send chan []byte
}

type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	done       chan struct{}
	stopOnce   sync.Once

	mu         sync.Mutex
	debouncers map[string]*search.Debouncer
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 16),
		done:       make(chan struct{}),
		debouncers: make(map[string]*search.Debouncer),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.clients[c] = true

		case c := <-h.unregister:
			if h.clients[c] {
				delete(h.clients, c)
				close(c.Send)
			}

		case data := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.Send <- data:
				default:
					close(c.Send)
					delete(h.clients, c)
				}
			}

		case <-h.done:
			for c := range h.clients {
				close(c.Send)
				delete(h.clients, c)
			}
			return
		}
	}
}

func (h *Hub) Stop() {
	h.stopOnce.Do(func() { close(h.done) })
}

// Changed queues a change event for topic. Bursts settle for ~200ms so
// a storm of writes produces one broadcast.
func (h *Hub) Changed(topic string) {
	h.mu.Lock()
	d, ok := h.debouncers[topic]
	if !ok {
		d = search.NewDebouncer(200 * time.Millisecond)
		h.debouncers[topic] = d
	}
	h.mu.Unlock()

	d.Trigger(func() { h.emit(Event{Topic: topic, At: time.Now().UTC().Format(time.RFC3339)}) })
}

func (h *Hub) emit(ev Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		return
	}
	select {
	case h.broadcast <- data:
	case <-h.done:
	}
}

// StartApprovalReminder re-broadcasts the pending-approvals count every
// interval. The tick is idempotent: it reads and reports, nothing else.
func (h *Hub) StartApprovalReminder(ctx context.Context, interval time.Duration, pending func(context.Context) int) {
	if pending == nil {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				h.emit(Event{
					Topic: "approvals",
					Count: pending(ctx),
					At:    time.Now().UTC().Format(time.RFC3339),
				})
			case <-ctx.Done():
				return
			case <-h.done:
				return
			}
		}
	}()
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// ServeWS upgrades the connection and pumps events to the client until
// either side goes away.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("notify: upgrade failed: %v", err)
		return
	}

	client := &Client{Conn: conn, Send: make(chan []byte, 16)}
	select {
	case h.register <- client:
	case <-h.done:
		conn.Close()
		return
	}

	go func() {
		defer conn.Close()
		for data := range client.Send {
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				break
			}
		}
	}()

	go func() {
		defer func() {
			select {
			case h.unregister <- client:
			case <-h.done:
			}
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
