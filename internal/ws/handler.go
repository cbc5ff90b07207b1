package ws

import (
	"net/http"
	"sync"
	"time"

	"github.com/codeforge-ide/codeforge/backend/internal/fs"
	"github.com/codeforge-ide/codeforge/backend/internal/logging"
	"github.com/codeforge-ide/codeforge/backend/internal/monitoring"
	"github.com/codeforge-ide/codeforge/backend/internal/types"
	"github.com/codeforge-ide/codeforge/backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins in dev
	},
}

// Handler manages WebSocket connections streaming filesystem events.
type Handler struct {
	fsvc    *fs.Service
	log     *logging.Logger
	metrics *monitoring.Metrics
}

// NewHandler creates a new WebSocket handler
func NewHandler(fsvc *fs.Service, log *logging.Logger, metrics *monitoring.Metrics) *Handler {
	return &Handler{
		fsvc:    fsvc,
		log:     log,
		metrics: metrics,
	}
}

// conn wraps a websocket connection with a write lock and its active
// subscriptions. gorilla/websocket permits one concurrent writer only.
type conn struct {
	ws      *websocket.Conn
	writeMu sync.Mutex

	subMu sync.Mutex
	subs  map[string]string // subscription ID -> watched path
}

func (c *conn) send(msg types.StreamMessage) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.ws.WriteJSON(msg)
}

func (c *conn) sendError(detail string) error {
	return c.send(types.StreamMessage{Type: "error", Error: detail})
}

// HandleConnection handles WebSocket upgrade and messages
func (h *Handler) HandleConnection(g *gin.Context) {
	ws, err := upgrader.Upgrade(g.Writer, g.Request, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer ws.Close()

	h.metrics.IncWSConnections()
	defer h.metrics.DecWSConnections()

	c := &conn{ws: ws, subs: make(map[string]string)}
	defer h.stopAll(c)

	c.send(types.StreamMessage{
		Type:  "system",
		Event: gin.H{"message": "Connected to CodeForge Backend"},
	})

	for {
		var req types.StreamRequest
		if err := ws.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Debug("websocket read error", zap.Error(err))
			}
			break
		}

		h.metrics.RecordWSMessage("in", req.Type)

		switch req.Type {
		case "watch":
			h.handleWatch(c, req)
		case "unwatch":
			h.handleUnwatch(c, req)
		case "ping":
			c.send(types.StreamMessage{Type: "pong"})
		default:
			c.sendError("unknown message type")
		}
	}
}

func (h *Handler) handleWatch(c *conn, req types.StreamRequest) {
	if err := utils.ValidatePath(req.Path, "path", true); err != nil {
		c.sendError(err.Error())
		return
	}

	handle, err := h.fsvc.WatchDirectory(req.Path)
	if err != nil {
		c.sendError(err.Error())
		return
	}

	subID := uuid.NewString()
	c.subMu.Lock()
	c.subs[subID] = handle.Path()
	c.subMu.Unlock()

	c.send(types.StreamMessage{
		Type:           "watch_started",
		SubscriptionID: subID,
		Path:           handle.Path(),
	})
	h.metrics.SetWatchersActive(len(h.fsvc.WatchedPaths()))

	go h.forward(c, subID, handle)
}

// forward pumps watcher events to the client until the handle closes.
// The channel also closes when another caller re-watches the same path.
func (h *Handler) forward(c *conn, subID string, handle *fs.WatchHandle) {
	for ev := range handle.Events() {
		h.metrics.RecordWatchEvent(string(ev.Type))
		msg := types.StreamMessage{
			Type:           "watch_event",
			SubscriptionID: subID,
			Path:           handle.Path(),
			Event:          ev,
		}
		if err := c.send(msg); err != nil {
			h.fsvc.StopWatching(handle.Path())
			return
		}
	}

	c.subMu.Lock()
	_, active := c.subs[subID]
	delete(c.subs, subID)
	c.subMu.Unlock()

	if active {
		c.send(types.StreamMessage{
			Type:           "watch_stopped",
			SubscriptionID: subID,
			Path:           handle.Path(),
		})
	}
}

func (h *Handler) handleUnwatch(c *conn, req types.StreamRequest) {
	c.subMu.Lock()
	path, ok := c.subs[req.SubscriptionID]
	delete(c.subs, req.SubscriptionID)
	c.subMu.Unlock()

	if !ok {
		c.sendError("unknown subscription: " + req.SubscriptionID)
		return
	}

	if err := h.fsvc.StopWatching(path); err != nil {
		c.sendError(err.Error())
		return
	}

	c.send(types.StreamMessage{
		Type:           "watch_stopped",
		SubscriptionID: req.SubscriptionID,
		Path:           path,
	})
	h.metrics.SetWatchersActive(len(h.fsvc.WatchedPaths()))
}

// stopAll cancels every subscription owned by a disconnecting client.
func (h *Handler) stopAll(c *conn) {
	c.subMu.Lock()
	paths := make([]string, 0, len(c.subs))
	for id, path := range c.subs {
		paths = append(paths, path)
		delete(c.subs, id)
	}
	c.subMu.Unlock()

	for _, path := range paths {
		h.fsvc.StopWatching(path)
	}
	h.metrics.SetWatchersActive(len(h.fsvc.WatchedPaths()))

	// Give forwarders a moment to drain before the connection drops.
	time.Sleep(10 * time.Millisecond)
}
