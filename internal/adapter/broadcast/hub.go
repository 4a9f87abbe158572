package broadcast

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// client is one connected event stream observer.
type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub fans committed ledger events out to WebSocket observers. Registration,
// removal and broadcast all go through the Run loop, which owns the client
// set. A client whose queue is full is dropped instead of slowing the ledger.
type Hub struct {
	register   chan *client
	unregister chan *client
	broadcast  chan domain.Event
	clients    map[*client]struct{}
	count      atomic.Int64
	// done is closed when Run returns.
	done chan struct{}

	upgrader     websocket.Upgrader
	buffer       int
	writeTimeout time.Duration
	logger       *slog.Logger
}

var _ port.EventPublisher = (*Hub)(nil)

// NewHub creates a hub. buffer is the per-client queue length.
func NewHub(logger *slog.Logger, buffer int, writeTimeout time.Duration) *Hub {
	if buffer <= 0 {
		buffer = 64
	}
	return &Hub{
		register:     make(chan *client),
		unregister:   make(chan *client),
		broadcast:    make(chan domain.Event, 1024),
		clients:      make(map[*client]struct{}),
		done:         make(chan struct{}),
		upgrader:     websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }},
		buffer:       buffer,
		writeTimeout: writeTimeout,
		logger:       logger,
	}
}

// Run serves registrations and broadcasts until ctx is done, then closes
// every client.
func (h *Hub) Run(ctx context.Context) error {
	defer func() {
		for c := range h.clients {
			h.drop(c)
		}
		close(h.done)
	}()
	for {
		select {
		case <-ctx.Done():
			return nil

		case c := <-h.register:
			h.clients[c] = struct{}{}
			h.count.Add(1)
			h.logger.Debug("event stream client registered", slog.String("remote", c.conn.RemoteAddr().String()))

		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				h.drop(c)
				h.logger.Debug("event stream client unregistered", slog.String("remote", c.conn.RemoteAddr().String()))
			}

		case ev := <-h.broadcast:
			data, err := json.Marshal(ev)
			if err != nil {
				h.logger.Error("failed to marshal event", slog.Any("error", err))
				continue
			}
			for c := range h.clients {
				select {
				case c.send <- data:
				default:
					h.logger.Warn("event stream client too slow, dropping", slog.String("remote", c.conn.RemoteAddr().String()))
					h.drop(c)
				}
			}
		}
	}
}

// Publish queues ev for broadcast. It never blocks; when the hub is
// saturated the event is dropped from the stream. The event log stays
// authoritative.
//
// Events are streamed in the order Publish is called, which for concurrent
// commits may differ from seq order. Observers that need log order reorder
// by seq and fill gaps from GET /api/v1/events.
func (h *Hub) Publish(ev domain.Event) {
	select {
	case h.broadcast <- ev:
	default:
		h.logger.Warn("event stream saturated, event not streamed", slog.Int64("seq", ev.Seq))
	}
}

// Len returns the number of connected clients.
func (h *Hub) Len() int {
	return int(h.count.Load())
}

// ServeHTTP upgrades the request to a WebSocket and streams events to it
// until either side closes.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", slog.Any("error", err))
		return
	}
	c := &client{conn: conn, send: make(chan []byte, h.buffer)}

	select {
	case h.register <- c:
	case <-h.done:
		_ = conn.Close()
		return
	}

	go h.writePump(c)
	h.readPump(c)
}

// drop removes c and closes its queue; writePump then closes the connection.
// Only called from Run.
func (h *Hub) drop(c *client) {
	delete(h.clients, c)
	h.count.Add(-1)
	close(c.send)
}

// readPump discards inbound messages and unregisters the client once the
// connection fails.
func (h *Hub) readPump(c *client) {
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
	}
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

func (h *Hub) writePump(c *client) {
	defer c.conn.Close()
	for data := range c.send {
		if h.writeTimeout > 0 {
			_ = c.conn.SetWriteDeadline(time.Now().Add(h.writeTimeout))
		}
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			h.logger.Debug("event stream write failed", slog.Any("error", err))
			return
		}
	}
	_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}
