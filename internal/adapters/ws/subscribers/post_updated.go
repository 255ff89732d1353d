package subscribers

import (
	"context"
	"time"

	"inkwell/internal/adapters/ws/feed"
	"inkwell/internal/domain"
	"inkwell/internal/logger"
)

type PostUpdated struct {
	hub      *feed.Hub
	recorder Recorder
	log      logger.Logger
}

func NewPostUpdated(hub *feed.Hub, recorder Recorder, log logger.Logger) *PostUpdated {
	return &PostUpdated{hub: hub, recorder: recorder, log: log}
}

func (s *PostUpdated) Handle(event any) {
	evt, ok := event.(domain.EventPostUpdated)
	if !ok {
		return
	}

	publish(s.hub, s.recorder, s.log, &domain.WsServerEvent{
		Channel: domain.WsChannelPosts,
		Event:   domain.EventNamePostUpdated,
		Payload: evt,
	})
}

func publish(hub *feed.Hub, recorder Recorder, log logger.Logger, ev *domain.WsServerEvent) {
	hub.Broadcast(ev)

	if recorder == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if _, err := recorder.Append(ctx, ev); err != nil {
		log.Warn("ws: failed to record feed event", "event", ev.Event, "error", err)
	}
}
