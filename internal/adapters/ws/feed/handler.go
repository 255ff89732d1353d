package feed

import (
	"context"
	"encoding/json"
	"net/http"
	"slices"
	"time"

	"inkwell/internal/logger"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const historyLimit = 20

// History returns recent feed messages, oldest first.
type History interface {
	Recent(ctx context.Context, limit int64) ([]json.RawMessage, error)
}

type Handler struct {
	hub      *Hub
	history  History
	upgrader websocket.Upgrader
	log      logger.Logger
}

// NewHandler serves the feed. history may be nil.
func NewHandler(hub *Hub, history History, log logger.Logger, allowedOrigins []string) *Handler {
	allowAll := slices.Contains(allowedOrigins, "*")

	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" || allowAll {
				return true
			}

			if !slices.Contains(allowedOrigins, origin) {
				log.Warn("ws: origin rejected", "origin", origin)
				return false
			}
			return true
		},
	}

	return &Handler{
		hub:      hub,
		history:  history,
		upgrader: upgrader,
		log:      log,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Error("ws: upgrade failed", "error", err)
		return
	}

	c := NewClient(h.hub, conn, h.log, uuid.NewString())
	h.replay(r.Context(), c)

	select {
	case h.hub.register <- c:
	case <-h.hub.ctx.Done():
		conn.Close()
		return
	}

	go c.writePump()
	go c.readPump()
}

func (h *Handler) replay(ctx context.Context, c *Client) {
	if h.history == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	msgs, err := h.history.Recent(ctx, historyLimit)
	if err != nil {
		h.log.Warn("ws: failed to load feed history", "error", err)
		return
	}

	for _, msg := range msgs {
		c.send <- msg
	}
}
