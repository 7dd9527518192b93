package ws

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/petmatch/petmatch-server/internal/domain"
)

// MessageSender persists one chat message. Satisfied by services.ChatService;
// the relay reuses the exact transactional path of the REST endpoint.
type MessageSender interface {
	SendMessage(ctx context.Context, senderID, receiverID, conversationID int64, content string, imageURL *string) (*domain.Message, error)
}

// Options carries the relay tunables (from config.WSConfig).
type Options struct {
	WriteWait       time.Duration
	PongWait        time.Duration
	MaxMessageBytes int64
	SendBuffer      int
}

// Client is one websocket connection. The connection's registered user id is
// owned by the read goroutine; rooms and registry membership are owned by
// the hub goroutine.
type Client struct {
	hub    *Hub
	conn   *websocket.Conn
	sender MessageSender
	opts   Options
	log    zerolog.Logger

	// userID is set by the registerUser event, zero until then. Multiple
	// connections may register the same id; each tracks its own.
	userID int64

	// send is the outbound frame queue, closed by the hub on drop.
	send chan []byte
}

// newClient wires a connection into the hub and starts both pumps.
func newClient(hub *Hub, conn *websocket.Conn, sender MessageSender, opts Options, lg zerolog.Logger) *Client {
	c := &Client{
		hub:    hub,
		conn:   conn,
		sender: sender,
		opts:   opts,
		log:    lg,
		send:   make(chan []byte, opts.SendBuffer),
	}
	hub.register <- c
	go c.writePump()
	go c.readPump()
	return c
}

// readPump consumes inbound frames until the connection dies, dispatching
// events. Runs on its own goroutine; the only reader of the connection.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(c.opts.MaxMessageBytes)
	_ = c.conn.SetReadDeadline(time.Now().Add(c.opts.PongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(c.opts.PongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.log.Debug().Err(err).Msg("ws: read error")
			}
			return
		}

		var env Envelope
		if err := json.Unmarshal(raw, &env); err != nil {
			c.log.Warn().Err(err).Msg("ws: malformed envelope dropped")
			wsEventsDropped.Inc()
			continue
		}
		c.dispatch(env)
	}
}

// dispatch routes one inbound event. Unknown events and invalid payloads are
// logged and dropped; the sender is never notified.
func (c *Client) dispatch(env Envelope) {
	switch env.Event {
	case EventRegisterUser:
		var p RegisterUserPayload
		if err := json.Unmarshal(env.Data, &p); err != nil || p.UserID <= 0 {
			c.log.Warn().Msg("ws: invalid registerUser payload dropped")
			wsEventsDropped.Inc()
			return
		}
		c.userID = int64(p.UserID)
		c.log = c.log.With().Int64("user_id", c.userID).Logger()
		c.log.Info().Msg("ws: user registered")

	case EventJoinConversation:
		var p JoinConversationPayload
		if err := json.Unmarshal(env.Data, &p); err != nil || p.ConversationID <= 0 {
			c.log.Warn().Msg("ws: invalid joinConversation payload dropped")
			wsEventsDropped.Inc()
			return
		}
		c.hub.join <- subscription{client: c, conversationID: int64(p.ConversationID)}

	case EventSendMessage:
		var p SendMessagePayload
		if err := json.Unmarshal(env.Data, &p); err != nil || !p.Valid() {
			c.log.Warn().Msg("ws: invalid sendMessage payload dropped")
			wsEventsDropped.Inc()
			return
		}
		// Persist first; broadcast only the stored row. A failed transaction
		// drops the event with no client notification.
		msg, err := c.sender.SendMessage(context.Background(), int64(p.SenderID), int64(p.ReceiverID), int64(p.ConversationID), p.Content, p.ImageURL)
		if err != nil {
			c.log.Error().Err(err).Int64("conversation_id", int64(p.ConversationID)).Msg("ws: persist failed, event dropped")
			wsEventsDropped.Inc()
			return
		}
		c.hub.Broadcast(msg.ConversationID, EventReceiveMessage, msg)

	default:
		c.log.Warn().Str("event", env.Event).Msg("ws: unknown event dropped")
		wsEventsDropped.Inc()
	}
}

// writePump flushes queued frames and keeps the connection alive with pings.
// The only writer of the connection.
func (c *Client) writePump() {
	pingPeriod := c.opts.PongWait * 9 / 10
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case frame, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.opts.WriteWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.opts.WriteWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
