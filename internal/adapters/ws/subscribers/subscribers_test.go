package subscribers

import (
	"context"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"inkwell/internal/adapters/ws/feed"
	"inkwell/internal/domain"
	"inkwell/internal/event"
	"inkwell/internal/logger"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRecorder struct {
	mu     sync.Mutex
	events []*domain.WsServerEvent
}

func (m *memRecorder) Append(_ context.Context, payload any) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.events = append(m.events, payload.(*domain.WsServerEvent))
	return "1-0", nil
}

func TestPostEventsReachFeedAndRecorder(t *testing.T) {
	hub := feed.NewHub(context.Background(), logger.Nop())
	go hub.Run()
	t.Cleanup(hub.Stop)

	srv := httptest.NewServer(feed.NewHandler(hub, nil, logger.Nop(), nil))
	t.Cleanup(srv.Close)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	require.Eventually(t, func() bool { return hub.Count() == 1 }, 2*time.Second, 10*time.Millisecond)

	bus := event.New(logger.Nop())
	rec := &memRecorder{}
	Register(bus, hub, rec, logger.Nop())

	postID := uuid.New()
	bus.Publish(domain.EventNamePostCreated, domain.EventPostCreated{PostID: postID, Title: "T"})
	bus.Publish(domain.EventNamePostUpdated, domain.EventPostUpdated{PostID: postID, Title: "T2"})

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	var created, updated map[string]any
	require.NoError(t, conn.ReadJSON(&created))
	require.NoError(t, conn.ReadJSON(&updated))

	assert.Equal(t, domain.EventNamePostCreated, created["event"])
	assert.Equal(t, postID.String(), created["payload"].(map[string]any)["post_id"])
	assert.Equal(t, domain.EventNamePostUpdated, updated["event"])
	assert.Equal(t, "T2", updated["payload"].(map[string]any)["title"])

	rec.mu.Lock()
	defer rec.mu.Unlock()
	require.Len(t, rec.events, 2)
	assert.Equal(t, domain.EventNamePostCreated, rec.events[0].Event)
}

func TestHandlersIgnoreForeignPayloads(t *testing.T) {
	hub := feed.NewHub(context.Background(), logger.Nop())
	rec := &memRecorder{}

	NewPostCreated(hub, rec, logger.Nop()).Handle("not an event")
	NewPostUpdated(hub, rec, logger.Nop()).Handle(domain.EventPostCreated{})

	assert.Empty(t, rec.events)
}
