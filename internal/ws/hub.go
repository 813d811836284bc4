package ws

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/op/go-logging"
	"github.com/restotrack/api/internal/events"
)

var log = logging.MustGetLogger("ws")

// TopicKitchen is the room kitchen display screens join.
const TopicKitchen = "kitchen"

// topicEvent is an internal struct for routing events to one room
type topicEvent struct {
	Topic string
	Event events.Event
}

// Hub maintains the set of active clients and broadcasts messages to them
type Hub struct {
	// Registered clients by topic
	rooms map[string]map[*Client]bool

	register   chan *Client
	unregister chan *Client

	// Outbound messages to broadcast
	broadcast chan *topicEvent

	// Closed when Run returns
	done chan struct{}

	// Mutex for thread-safe room access
	mu sync.RWMutex
}

// NewHub creates a new Hub instance
func NewHub() *Hub {
	return &Hub{
		rooms:      make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *topicEvent, 256),
		done:       make(chan struct{}),
	}
}

// Run starts the hub's main loop and returns when ctx is done, closing every
// client's send channel. Call it as a goroutine: go hub.Run(ctx)
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for topic, clients := range h.rooms {
				for client := range clients {
					close(client.send)
				}
				delete(h.rooms, topic)
			}
			h.mu.Unlock()
			return

		case client := <-h.register:
			h.mu.Lock()
			if h.rooms[client.topic] == nil {
				h.rooms[client.topic] = make(map[*Client]bool)
			}
			h.rooms[client.topic][client] = true
			h.mu.Unlock()
			log.Debugf("client %s joined %s", client.id, client.topic)

		case client := <-h.unregister:
			h.mu.Lock()
			h.remove(client)
			h.mu.Unlock()

		case te := <-h.broadcast:
			// Marshal event to JSON once
			message, err := json.Marshal(te.Event)
			if err != nil {
				log.Errorf("marshal ws event: %v", err)
				continue
			}

			h.mu.Lock()
			for client := range h.rooms[te.Topic] {
				select {
				case client.send <- message:
				default:
					// Client's send buffer is full, drop it
					log.Warningf("client %s too slow, disconnecting", client.id)
					h.remove(client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// remove must be called with h.mu held.
func (h *Hub) remove(client *Client) {
	clients, ok := h.rooms[client.topic]
	if !ok {
		return
	}
	if _, exists := clients[client]; !exists {
		return
	}
	delete(clients, client)
	close(client.send)
	if len(clients) == 0 {
		delete(h.rooms, client.topic)
	}
}

// join and leave are no-ops once the hub has stopped.
func (h *Hub) join(c *Client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) leave(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// Broadcast queues an event for every client in topic. If the queue is full
// the event is dropped and logged.
func (h *Hub) Broadcast(topic string, e events.Event) {
	select {
	case h.broadcast <- &topicEvent{Topic: topic, Event: e}:
	default:
		log.Warningf("broadcast queue full, dropping %s event %s", e.Type, e.ID)
	}
}

// Notify sends every event to the kitchen room.
func (h *Hub) Notify(ctx context.Context, e events.Event) {
	h.Broadcast(TopicKitchen, e)
}

// ClientCount returns the number of clients connected to topic.
func (h *Hub) ClientCount(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[topic])
}
