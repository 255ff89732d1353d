package subscribers

import (
	"inkwell/internal/adapters/ws/feed"
	"inkwell/internal/domain"
	"inkwell/internal/logger"
)

type PostCreated struct {
	hub      *feed.Hub
	recorder Recorder
	log      logger.Logger
}

func NewPostCreated(hub *feed.Hub, recorder Recorder, log logger.Logger) *PostCreated {
	return &PostCreated{hub: hub, recorder: recorder, log: log}
}

func (s *PostCreated) Handle(event any) {
	evt, ok := event.(domain.EventPostCreated)
	if !ok {
		return
	}

	publish(s.hub, s.recorder, s.log, &domain.WsServerEvent{
		Channel: domain.WsChannelPosts,
		Event:   domain.EventNamePostCreated,
		Payload: evt,
	})
}
