package ws

import (
	"encoding/json"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
)

var (
	wsConnections = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "ws_connections",
		Help: "Current number of open websocket connections.",
	})
	wsMessagesRelayed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ws_messages_relayed_total",
		Help: "Total number of chat messages broadcast to rooms.",
	})
	wsEventsDropped = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ws_events_dropped_total",
		Help: "Total number of inbound events dropped by validation or persistence failure.",
	})
)

func init() {
	prometheus.MustRegister(wsConnections, wsMessagesRelayed, wsEventsDropped)
}

// subscription pairs a client with a conversation room.
type subscription struct {
	client         *Client
	conversationID int64
}

// broadcastReq carries a serialized frame to every subscriber of a room.
type broadcastReq struct {
	conversationID int64
	frame          []byte
}

// Hub owns the connection registry and the room subscription table. All maps
// are confined to the Run goroutine; clients talk to the hub exclusively
// through its channels, so no locking is needed.
type Hub struct {
	clients map[*Client]struct{}
	rooms   map[int64]map[*Client]struct{}

	register   chan *Client
	unregister chan *Client
	join       chan subscription
	broadcast  chan broadcastReq
	done       chan struct{}
}

// NewHub returns an idle hub; call Run on its own goroutine to start it.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]struct{}),
		rooms:      make(map[int64]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		join:       make(chan subscription),
		broadcast:  make(chan broadcastReq, 64),
		done:       make(chan struct{}),
	}
}

// Run processes registry events until Close is called. It must run on a
// dedicated goroutine for the lifetime of the server.
func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.clients[c] = struct{}{}
			wsConnections.Inc()

		case c := <-h.unregister:
			h.drop(c)

		case s := <-h.join:
			if _, ok := h.clients[s.client]; !ok {
				continue
			}
			room := h.rooms[s.conversationID]
			if room == nil {
				room = make(map[*Client]struct{})
				h.rooms[s.conversationID] = room
			}
			room[s.client] = struct{}{}

		case b := <-h.broadcast:
			for c := range h.rooms[b.conversationID] {
				select {
				case c.send <- b.frame:
				default:
					// Slow consumer: no delivery guarantees, drop the
					// connection rather than block the hub.
					h.drop(c)
				}
			}
			wsMessagesRelayed.Inc()

		case <-h.done:
			for c := range h.clients {
				h.drop(c)
			}
			return
		}
	}
}

// Close shuts the hub down and disconnects every client.
func (h *Hub) Close() { close(h.done) }

// Broadcast serializes the event envelope and queues it for every subscriber
// of the conversation's room. Safe to call from any goroutine.
func (h *Hub) Broadcast(conversationID int64, event string, data any) {
	payload, err := json.Marshal(data)
	if err != nil {
		log.Error().Err(err).Int64("conversation_id", conversationID).Msg("ws: marshal broadcast payload")
		return
	}
	frame, err := json.Marshal(Envelope{Event: event, Data: payload})
	if err != nil {
		log.Error().Err(err).Int64("conversation_id", conversationID).Msg("ws: marshal broadcast envelope")
		return
	}
	select {
	case h.broadcast <- broadcastReq{conversationID: conversationID, frame: frame}:
	case <-h.done:
	}
}

// drop removes a client from the registry and every room, closing its send
// channel exactly once. Must only be called from the Run goroutine.
func (h *Hub) drop(c *Client) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	for id, room := range h.rooms {
		delete(room, c)
		if len(room) == 0 {
			delete(h.rooms, id)
		}
	}
	close(c.send)
	wsConnections.Dec()
}
