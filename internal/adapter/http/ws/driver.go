package wshandler

import (
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/teleka/teleka-taxi/pkg/logger"
	wrap "github.com/teleka/teleka-taxi/pkg/logger/wrapper"
	"github.com/teleka/teleka-taxi/pkg/wsbus"
)

// DriverSocket upgrades driver console connections and parks them in the
// hub so assignments can be pushed without polling.
type DriverSocket struct {
	hub      *wsbus.Hub
	upgrader websocket.Upgrader
	log      logger.Logger
}

func NewDriverSocket(hub *wsbus.Hub, log logger.Logger) *DriverSocket {
	return &DriverSocket{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The consoles are served from the same origin as the API.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		log: log,
	}
}

// Handle keeps the connection open until the driver disconnects. Incoming
// messages are ignored, the channel is push only.
func (h *DriverSocket) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "driver_websocket")

	driverName := r.PathValue("driverName")
	if driverName == "" {
		http.Error(w, "driver name is required", http.StatusBadRequest)
		return
	}
	ctx = wrap.WithDriver(ctx, driverName)

	wsConn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Error(ctx, "failed to upgrade connection", err)
		return
	}

	conn := wsbus.NewConn(r.Context(), driverName, wsConn)
	if err := h.hub.Add(conn); err != nil {
		h.log.Error(ctx, "failed to register connection", err)
		conn.Close()
		return
	}

	h.log.Info(ctx, "driver connected")

	if err := conn.Listen(nil); err != nil {
		h.log.Debug(ctx, "driver connection closed", "reason", err.Error())
	}

	if err := h.hub.Delete(driverName); err != nil && err != wsbus.ErrConnIsNotFound {
		h.log.Warn(ctx, "failed to drop connection", "err", err.Error())
	}
}
