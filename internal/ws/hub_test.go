package ws

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/petmatch/petmatch-server/internal/domain"
)

// recordingSender fakes message persistence. When failWith is set every send
// fails; otherwise it returns a stored-looking row and records the call.
type recordingSender struct {
	mu       sync.Mutex
	calls    int
	failWith error
}

func (s *recordingSender) SendMessage(ctx context.Context, senderID, receiverID, conversationID int64, content string, imageURL *string) (*domain.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.failWith != nil {
		return nil, s.failWith
	}
	return &domain.Message{
		ID:             int64(s.calls),
		SenderID:       senderID,
		ReceiverID:     receiverID,
		ConversationID: conversationID,
		Content:        content,
		ImageURL:       imageURL,
		Timestamp:      time.Now().UTC(),
	}, nil
}

func (s *recordingSender) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func testOptions() Options {
	return Options{
		WriteWait:       5 * time.Second,
		PongWait:        60 * time.Second,
		MaxMessageBytes: 64 << 10,
		SendBuffer:      32,
	}
}

// newRelayServer spins up a hub plus an HTTP server exposing /ws, and returns
// the websocket URL to dial.
func newRelayServer(t *testing.T, sender MessageSender) string {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hub := NewHub()
	go hub.Run()
	t.Cleanup(hub.Close)

	r := gin.New()
	r.GET("/ws", Handler(hub, sender, testOptions()))
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return strings.Replace(srv.URL, "http", "ws", 1) + "/ws"
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	if resp != nil && resp.StatusCode != http.StatusSwitchingProtocols {
		t.Fatalf("unexpected handshake status %d", resp.StatusCode)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func send(t *testing.T, conn *websocket.Conn, event string, payload any) {
	t.Helper()
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	frame, err := json.Marshal(Envelope{Event: event, Data: data})
	if err != nil {
		t.Fatalf("marshal envelope: %v", err)
	}
	if err := conn.WriteMessage(websocket.TextMessage, frame); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func readEnvelope(t *testing.T, conn *websocket.Conn, timeout time.Duration) (Envelope, bool) {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(timeout))
	_, raw, err := conn.ReadMessage()
	if err != nil {
		return Envelope{}, false
	}
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		t.Fatalf("unmarshal received frame: %v", err)
	}
	return env, true
}

func TestRelay_BroadcastsToRoomSubscribersOnly(t *testing.T) {
	sender := &recordingSender{}
	url := newRelayServer(t, sender)

	alice := dial(t, url)
	bob := dial(t, url)
	carol := dial(t, url)

	send(t, alice, EventRegisterUser, map[string]any{"user_id": 1})
	send(t, bob, EventRegisterUser, map[string]any{"user_id": 2})

	send(t, alice, EventJoinConversation, map[string]any{"conversation_id": 3})
	send(t, bob, EventJoinConversation, map[string]any{"conversation_id": "3"})
	send(t, carol, EventJoinConversation, map[string]any{"conversation_id": 4})

	// Give the hub time to process the joins before broadcasting.
	time.Sleep(200 * time.Millisecond)

	send(t, alice, EventSendMessage, map[string]any{
		"sender_id": 1, "receiver_id": 2, "conversation_id": 3, "content": "walk at 5?",
	})

	for _, peer := range []*websocket.Conn{alice, bob} {
		env, ok := readEnvelope(t, peer, 2*time.Second)
		if !ok {
			t.Fatalf("room subscriber received no frame")
		}
		if env.Event != EventReceiveMessage {
			t.Fatalf("expected %s, got %s", EventReceiveMessage, env.Event)
		}
		var msg domain.Message
		if err := json.Unmarshal(env.Data, &msg); err != nil {
			t.Fatalf("unmarshal message: %v", err)
		}
		if msg.ID == 0 || msg.Content != "walk at 5?" || msg.ConversationID != 3 {
			t.Fatalf("broadcast must carry the stored row: %+v", msg)
		}
	}

	// Carol sits in a different room and must hear nothing.
	if _, ok := readEnvelope(t, carol, 300*time.Millisecond); ok {
		t.Fatalf("non-subscriber received a frame")
	}

	if sender.callCount() != 1 {
		t.Fatalf("expected exactly one persistence call, got %d", sender.callCount())
	}
}

func TestRelay_InvalidPayloadDropped(t *testing.T) {
	sender := &recordingSender{}
	url := newRelayServer(t, sender)

	conn := dial(t, url)
	send(t, conn, EventJoinConversation, map[string]any{"conversation_id": 3})
	time.Sleep(100 * time.Millisecond)

	// Missing content: dropped before persistence, no error frame back.
	send(t, conn, EventSendMessage, map[string]any{
		"sender_id": 1, "receiver_id": 2, "conversation_id": 3,
	})

	if _, ok := readEnvelope(t, conn, 300*time.Millisecond); ok {
		t.Fatalf("invalid event must be dropped silently")
	}
	if sender.callCount() != 0 {
		t.Fatalf("invalid payload must not reach the store")
	}
}

func TestRelay_PersistFailureDropsEvent(t *testing.T) {
	sender := &recordingSender{failWith: errors.New("db down")}
	url := newRelayServer(t, sender)

	conn := dial(t, url)
	send(t, conn, EventJoinConversation, map[string]any{"conversation_id": 3})
	time.Sleep(100 * time.Millisecond)

	send(t, conn, EventSendMessage, map[string]any{
		"sender_id": 1, "receiver_id": 2, "conversation_id": 3, "content": "hi",
	})

	if _, ok := readEnvelope(t, conn, 300*time.Millisecond); ok {
		t.Fatalf("failed persistence must not broadcast")
	}
	if sender.callCount() != 1 {
		t.Fatalf("expected one attempted persistence call, got %d", sender.callCount())
	}
}

func TestRelay_UnknownEventIgnored(t *testing.T) {
	sender := &recordingSender{}
	url := newRelayServer(t, sender)

	conn := dial(t, url)
	send(t, conn, "typing", map[string]any{"conversation_id": 3})

	// Connection must survive the unknown event.
	send(t, conn, EventJoinConversation, map[string]any{"conversation_id": 3})
	time.Sleep(100 * time.Millisecond)
	send(t, conn, EventSendMessage, map[string]any{
		"sender_id": 1, "receiver_id": 2, "conversation_id": 3, "content": "still here",
	})

	env, ok := readEnvelope(t, conn, 2*time.Second)
	if !ok || env.Event != EventReceiveMessage {
		t.Fatalf("connection should keep working after an unknown event")
	}
}

func TestRelay_MalformedFrameIgnored(t *testing.T) {
	sender := &recordingSender{}
	url := newRelayServer(t, sender)

	conn := dial(t, url)
	if err := conn.WriteMessage(websocket.TextMessage, []byte("not json")); err != nil {
		t.Fatalf("write: %v", err)
	}

	send(t, conn, EventJoinConversation, map[string]any{"conversation_id": 9})
	time.Sleep(100 * time.Millisecond)
	send(t, conn, EventSendMessage, map[string]any{
		"sender_id": 5, "receiver_id": 6, "conversation_id": 9, "content": "ok",
	})

	env, ok := readEnvelope(t, conn, 2*time.Second)
	if !ok || env.Event != EventReceiveMessage {
		t.Fatalf("connection should keep working after a malformed frame")
	}
}
