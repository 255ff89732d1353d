// Package feed streams post events to websocket clients.
package feed

import (
	"context"
	"encoding/json"
	"sync/atomic"

	"inkwell/internal/domain"
	"inkwell/internal/logger"
)

type Hub struct {
	ctx    context.Context
	cancel context.CancelFunc

	clients map[*Client]bool
	count   atomic.Int64

	register   chan *Client
	unregister chan *Client
	events     chan *domain.WsServerEvent

	log logger.Logger
}

func NewHub(parent context.Context, log logger.Logger) *Hub {
	ctx, cancel := context.WithCancel(parent)

	return &Hub{
		ctx:    ctx,
		cancel: cancel,

		clients: make(map[*Client]bool),

		register:   make(chan *Client),
		unregister: make(chan *Client),
		events:     make(chan *domain.WsServerEvent, 100),

		log: log,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case <-h.ctx.Done():
			h.log.Info("ws: hub shutting down")
			for client := range h.clients {
				delete(h.clients, client)
				close(client.send)
			}
			h.count.Store(0)
			return

		case client := <-h.register:
			h.clients[client] = true
			h.count.Store(int64(len(h.clients)))
			h.log.Info("ws: client registered", "id", client.ID, "total_clients", len(h.clients))

		case client := <-h.unregister:
			h.remove(client)

		case event := <-h.events:
			h.handleEvent(event)
		}
	}
}

func (h *Hub) Stop() {
	h.cancel()
}

// Count is the number of connected clients.
func (h *Hub) Count() int {
	return int(h.count.Load())
}

// Broadcast queues ev for every client. It never blocks the caller: when the
// queue is full or the hub is stopped the event is dropped.
func (h *Hub) Broadcast(ev *domain.WsServerEvent) {
	select {
	case <-h.ctx.Done():
	case h.events <- ev:
	default:
		h.log.Warn("ws: event queue full, dropping event", "event", ev.Event)
	}
}

func (h *Hub) remove(client *Client) {
	if !h.clients[client] {
		return
	}

	delete(h.clients, client)
	close(client.send)
	h.count.Store(int64(len(h.clients)))
	h.log.Info("ws: client unregistered", "id", client.ID, "total_clients", len(h.clients))
}

func (h *Hub) handleEvent(event *domain.WsServerEvent) {
	message, err := json.Marshal(event)
	if err != nil {
		h.log.Error("ws: failed to marshal event", "error", err)
		return
	}

	for client := range h.clients {
		select {
		case client.send <- message:
		default:
			h.log.Warn("ws: client channel full, force unregister", "id", client.ID)
			h.remove(client)
		}
	}
}
