package wsbus

import (
	"context"
	"errors"
	"sync"

	"github.com/teleka/teleka-taxi/pkg/logger"
	wrap "github.com/teleka/teleka-taxi/pkg/logger/wrapper"
	"github.com/teleka/teleka-taxi/pkg/metrics"
)

var (
	ErrEmptyConn      = errors.New("connection is empty")
	ErrConnIsNotFound = errors.New("connection not found")
)

// Hub tracks the open WebSocket connection per driver name. A driver has at
// most one live connection; a reconnect replaces the previous one.
type Hub struct {
	clients map[string]*Conn
	l       logger.Logger
	mu      sync.Mutex
}

func NewHub(l logger.Logger) *Hub {
	return &Hub{
		clients: make(map[string]*Conn),
		l:       l,
	}
}

// Add registers a new connection, closing any existing one for the same driver.
func (h *Hub) Add(newConn *Conn) error {
	if newConn == nil {
		return ErrEmptyConn
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	ctx := wrap.WithAction(context.Background(), "add_ws_connection")

	if existing, ok := h.clients[newConn.driverName]; ok {
		h.l.Warn(ctx,
			"replacing existing connection",
			"driver", existing.driverName,
		)
		if err := existing.Close(); err != nil {
			h.l.Warn(ctx,
				"failed to close existing conn",
				"driver", existing.driverName,
				"err", err.Error(),
			)
		}
		metrics.WebSocketConnectionsGauge.Dec()
	}

	h.clients[newConn.driverName] = newConn
	metrics.WebSocketConnectionsGauge.Inc()

	return nil
}

// Delete removes and closes the connection for a driver.
func (h *Hub) Delete(driverName string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	ctx := wrap.WithAction(context.Background(), "ws_connection_delete")

	conn, ok := h.clients[driverName]
	if !ok {
		return ErrConnIsNotFound
	}

	if err := conn.Close(); err != nil {
		h.l.Warn(ctx,
			"failed to close conn",
			"driver", conn.driverName,
			"err", err.Error(),
		)
	}

	delete(h.clients, driverName)
	metrics.WebSocketConnectionsGauge.Dec()

	return nil
}

// SendTo delivers a message to a specific driver.
// Returns ErrConnIsNotFound when the driver has no open connection.
func (h *Hub) SendTo(driverName string, msg any) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conn, ok := h.clients[driverName]; ok {
		return conn.Send(msg)
	}
	return ErrConnIsNotFound
}

// Close closes every tracked connection.
func (h *Hub) Close() {
	ctx := wrap.WithAction(context.Background(), "hub_close")

	h.mu.Lock()
	names := make([]string, 0, len(h.clients))
	for name := range h.clients {
		names = append(names, name)
	}
	h.mu.Unlock()

	for _, name := range names {
		_ = h.Delete(name)
	}

	h.l.Info(ctx, "all websocket connections closed")
}
