// Package subscribers
package subscribers

import (
	"context"

	"inkwell/internal/adapters/ws/feed"
	"inkwell/internal/domain"
	"inkwell/internal/event"
	"inkwell/internal/logger"
)

type EventBus interface {
	Subscribe(eventName string, handler event.Handler)
}

// Recorder persists feed events so late joiners can catch up.
type Recorder interface {
	Append(ctx context.Context, payload any) (string, error)
}

// Register wires post events to the feed hub. recorder may be nil.
func Register(bus EventBus, hub *feed.Hub, recorder Recorder, log logger.Logger) {
	postCreated := NewPostCreated(hub, recorder, log)
	postUpdated := NewPostUpdated(hub, recorder, log)

	bus.Subscribe(domain.EventNamePostCreated, postCreated.Handle)
	bus.Subscribe(domain.EventNamePostUpdated, postUpdated.Handle)
}
